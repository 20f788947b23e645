package profile

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// BioService manages biography records and their image and resume files.
type BioService interface {
	// Create stores the files found in form, then persists a new Bio built from patch.
	Create(ctx context.Context, patch *BioPatch, form *multipart.Form) (*Bio, error)
	List(ctx context.Context, query *common.ListQuery) ([]*Bio, error)
	GetByID(ctx context.Context, id uint) (*Bio, error)
	// Update applies patch to the stored Bio. Uploaded files replace the stored ones.
	Update(ctx context.Context, id uint, patch *BioPatch, form *multipart.Form) (*Bio, error)
	// DeleteByID removes the record and the files it references.
	DeleteByID(ctx context.Context, id uint) error
}

// BioRepository defines the persistence operations for Bio
type BioRepository interface {
	Create(ctx context.Context, bio *Bio) error
	List(ctx context.Context, query *common.ListQuery) ([]*Bio, error)
	GetByID(ctx context.Context, id uint) (*Bio, error)
	Update(ctx context.Context, bio *Bio) error
	DeleteByID(ctx context.Context, id uint) error
}
