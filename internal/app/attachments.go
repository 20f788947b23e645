package app

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// attachments tracks the files touched while a record is written. Files saved
// during the request are removed again by rollback. Files they replace are
// removed by commit once the record is stored.
type attachments struct {
	store    uploads.FileStore
	logger   logger.Logger
	saved    []string
	replaced []string
}

func newAttachments(store uploads.FileStore, logger logger.Logger) *attachments {
	return &attachments{store: store, logger: logger}
}

// single stores the first file found under one of fields and points *current at it.
func (a *attachments) single(ctx context.Context, form *multipart.Form, kind uploads.Kind, current *string, fields ...string) error {
	header := firstFile(form, fields...)
	if header == nil {
		return nil
	}

	publicPath, err := a.save(ctx, header, kind)
	if err != nil {
		return err
	}
	if *current != "" {
		a.replaced = append(a.replaced, *current)
	}
	*current = publicPath
	return nil
}

// multiple replaces *current with every file uploaded under field. At most limit files are accepted.
func (a *attachments) multiple(ctx context.Context, form *multipart.Form, kind uploads.Kind, current *[]string, limit int, field string) error {
	if form == nil || len(form.File[field]) == 0 {
		return nil
	}
	headers := form.File[field]
	if len(headers) > limit {
		return common.Invalid("at most %d files allowed for %s, got %d", limit, field, len(headers))
	}

	paths := make([]string, 0, len(headers))
	for _, header := range headers {
		publicPath, err := a.save(ctx, header, kind)
		if err != nil {
			return err
		}
		paths = append(paths, publicPath)
	}
	a.replaced = append(a.replaced, *current...)
	*current = paths
	return nil
}

func (a *attachments) save(ctx context.Context, header *multipart.FileHeader, kind uploads.Kind) (string, error) {
	publicPath, err := a.store.Save(ctx, header, kind)
	if err != nil {
		return "", fmt.Errorf("failed to store %s: %w", header.Filename, err)
	}
	a.saved = append(a.saved, publicPath)
	return publicPath, nil
}

// done finishes the request: on err the new files are removed, otherwise the replaced ones.
func (a *attachments) done(ctx context.Context, err error) error {
	if err != nil {
		a.remove(ctx, a.saved...)
		return err
	}
	a.remove(ctx, a.replaced...)
	return nil
}

// remove deletes stored files. Failures are logged since the record itself is already consistent.
func (a *attachments) remove(ctx context.Context, paths ...string) {
	for _, p := range paths {
		if p == "" || isExternal(p) {
			continue
		}
		if err := a.store.Delete(ctx, p); err != nil {
			a.logger.Warn("failed to delete upload", "path", p, "error", err.Error())
		}
	}
}

func firstFile(form *multipart.Form, fields ...string) *multipart.FileHeader {
	if form == nil {
		return nil
	}
	for _, field := range fields {
		if files := form.File[field]; len(files) > 0 {
			return files[0]
		}
	}
	return nil
}

func isExternal(p string) bool {
	return strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://")
}
