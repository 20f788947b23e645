// Package uploads defines how uploaded files are stored and referenced.
package uploads

import (
	"context"
	"mime/multipart"
)

// Kind restricts which content types a stored file may have.
type Kind string

const (
	// KindImage accepts jpeg, png, gif and webp.
	KindImage Kind = "image"
	// KindDocument accepts every image type plus pdf, doc and docx.
	KindDocument Kind = "document"
)

// FileStore persists uploaded files and hands out their public paths.
type FileStore interface {
	// Save validates and stores the file, returning a path such as /uploads/<name>.
	// Rejected files yield an error wrapping common.ErrValidation.
	Save(ctx context.Context, header *multipart.FileHeader, kind Kind) (string, error)
	// Delete removes a file previously returned by Save. Missing files are ignored.
	Delete(ctx context.Context, publicPath string) error
}

// UploadService exposes the stand-alone upload endpoints.
type UploadService interface {
	// UploadSingle stores the "file" field of form.
	UploadSingle(ctx context.Context, form *multipart.Form) (string, error)
	// UploadMultiple stores the "image" and "resume" fields, keyed by field name.
	UploadMultiple(ctx context.Context, form *multipart.Form) (map[string]string, error)
}
