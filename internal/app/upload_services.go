package app

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// uploadService implements the uploads.UploadService interface
type uploadService struct {
	store  uploads.FileStore
	logger logger.Logger
}

// NewUploadService creates a new instance of UploadService
func NewUploadService(store uploads.FileStore, logger logger.Logger) (uploads.UploadService, error) {
	return &uploadService{
		store:  store,
		logger: logger,
	}, nil
}

func (s *uploadService) UploadSingle(ctx context.Context, form *multipart.Form) (string, error) {
	header := firstFile(form, "file")
	if header == nil {
		return "", common.Invalid("no file uploaded")
	}

	files := newAttachments(s.store, s.logger)
	return files.save(ctx, header, uploads.KindDocument)
}

// UploadMultiple stores "image" and "resume". When one of them fails, the other is removed again.
func (s *uploadService) UploadMultiple(ctx context.Context, form *multipart.Form) (map[string]string, error) {
	result := make(map[string]string)
	files := newAttachments(s.store, s.logger)

	var image, resume string
	err := files.single(ctx, form, uploads.KindImage, &image, "image")
	if err == nil {
		err = files.single(ctx, form, uploads.KindDocument, &resume, "resume")
	}
	if err := files.done(ctx, err); err != nil {
		return nil, err
	}

	if image != "" {
		result["image"] = image
	}
	if resume != "" {
		result["resume"] = resume
	}
	if len(result) == 0 {
		return nil, common.Invalid("no files uploaded")
	}
	return result, nil
}
