package education

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// Service defines the education use cases. The optional "img" upload is
// stored alongside the record.
type Service interface {
	Create(ctx context.Context, patch *Patch, form *multipart.Form) (*Education, error)
	List(ctx context.Context, query *common.ListQuery) ([]*Education, error)
	GetByID(ctx context.Context, id uint) (*Education, error)
	Update(ctx context.Context, id uint, patch *Patch, form *multipart.Form) (*Education, error)
	DeleteByID(ctx context.Context, id uint) error
}

// Repository defines the persistence operations for Education
type Repository interface {
	Create(ctx context.Context, e *Education) error
	List(ctx context.Context, query *common.ListQuery) ([]*Education, error)
	GetByID(ctx context.Context, id uint) (*Education, error)
	Update(ctx context.Context, e *Education) error
	DeleteByID(ctx context.Context, id uint) error
}
