package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/config"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// Sniffed MIME type to the extension the stored file gets.
var (
	imageTypes = map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/gif":  ".gif",
		"image/webp": ".webp",
	}
	documentTypes = map[string]string{
		"application/pdf":    ".pdf",
		"application/msword": ".doc",
		"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
	}
)

// LocalFileStore implements uploads.FileStore on a directory.
type LocalFileStore struct {
	dir         string
	prefix      string
	maxFileSize int64
	logger      logger.Logger
	now         func() time.Time
}

// NewLocalFileStore creates the upload directory if needed.
func NewLocalFileStore(settings config.StorageSettings, logger logger.Logger) (*LocalFileStore, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	dir, err := filepath.Abs(settings.UploadDir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve upload dir: %w", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload dir %s: %w", dir, err)
	}

	return &LocalFileStore{
		dir:         dir,
		prefix:      strings.TrimRight(settings.PublicPrefix, "/"),
		maxFileSize: settings.MaxFileSize,
		logger:      logger,
		now:         time.Now,
	}, nil
}

// Dir returns the absolute directory files are written to.
func (s *LocalFileStore) Dir() string {
	return s.dir
}

// Save sniffs the content type, enforces the size limit and writes the file
// as <unix-millis>-<uuid><ext>.
func (s *LocalFileStore) Save(ctx context.Context, header *multipart.FileHeader, kind uploads.Kind) (string, error) {
	if header == nil {
		return "", common.Invalid("no file provided")
	}
	if header.Size > s.maxFileSize {
		return "", common.Invalid("file %s exceeds the limit of %d bytes", header.Filename, s.maxFileSize)
	}

	src, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	mtype, err := mimetype.DetectReader(src)
	if err != nil {
		return "", fmt.Errorf("failed to detect content type: %w", err)
	}
	ext, ok := allowedExtension(mtype, kind)
	if !ok {
		return "", common.Invalid("file %s has unsupported type %s", header.Filename, mtype.String())
	}
	if _, err := src.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("failed to rewind uploaded file: %w", err)
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%s%s", s.now().UnixMilli(), uuid.NewString(), ext)
	if err := s.write(filepath.Join(s.dir, name), src); err != nil {
		return "", err
	}

	publicPath := s.prefix + "/" + name
	s.logger.Info("stored upload", "path", publicPath, "type", mtype.String(), "size", header.Size)
	return publicPath, nil
}

func (s *LocalFileStore) write(target string, src io.Reader) error {
	dst, err := os.OpenFile(target, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	// Read one byte past the limit to notice clients that lie about the size.
	n, err := io.Copy(dst, io.LimitReader(src, s.maxFileSize+1))
	closeErr := dst.Close()
	if err == nil && n > s.maxFileSize {
		err = common.Invalid("file exceeds the limit of %d bytes", s.maxFileSize)
	}
	if err == nil {
		err = closeErr
	}
	if err != nil {
		_ = os.Remove(target)
		if errors.Is(err, common.ErrValidation) {
			return err
		}
		return fmt.Errorf("failed to write file: %w", err)
	}
	return nil
}

// Delete removes a file returned by Save. Paths outside the upload directory
// are rejected, missing files are not an error.
func (s *LocalFileStore) Delete(_ context.Context, publicPath string) error {
	if publicPath == "" {
		return nil
	}

	target, err := s.resolve(publicPath)
	if err != nil {
		return err
	}

	if err := os.Remove(target); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete file %s: %w", publicPath, err)
	}
	s.logger.Info("deleted upload", "path", publicPath)
	return nil
}

func (s *LocalFileStore) resolve(publicPath string) (string, error) {
	clean := path.Clean("/" + strings.TrimPrefix(publicPath, "/"))
	rel := strings.TrimPrefix(clean, s.prefix+"/")
	if rel == clean || rel == "" || strings.Contains(rel, "/") {
		return "", common.Invalid("path %s is not inside %s", publicPath, s.prefix)
	}

	target := filepath.Join(s.dir, rel)
	if filepath.Dir(target) != s.dir {
		return "", common.Invalid("path %s is not inside %s", publicPath, s.prefix)
	}
	return target, nil
}

func allowedExtension(mtype *mimetype.MIME, kind uploads.Kind) (string, bool) {
	for m := mtype; m != nil; m = m.Parent() {
		if ext, ok := imageTypes[m.String()]; ok {
			return ext, true
		}
		if kind == uploads.KindDocument {
			if ext, ok := documentTypes[m.String()]; ok {
				return ext, true
			}
		}
	}
	return "", false
}
