package experience

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// Service defines the experience use cases, including the "img" and "doc" uploads.
type Service interface {
	Create(ctx context.Context, patch *Patch, form *multipart.Form) (*Experience, error)
	List(ctx context.Context, query *common.ListQuery) ([]*Experience, error)
	GetByID(ctx context.Context, id uint) (*Experience, error)
	Update(ctx context.Context, id uint, patch *Patch, form *multipart.Form) (*Experience, error)
	DeleteByID(ctx context.Context, id uint) error
}

// Repository defines the persistence operations for Experience
type Repository interface {
	Create(ctx context.Context, e *Experience) error
	List(ctx context.Context, query *common.ListQuery) ([]*Experience, error)
	GetByID(ctx context.Context, id uint) (*Experience, error)
	Update(ctx context.Context, e *Experience) error
	DeleteByID(ctx context.Context, id uint) error
}
