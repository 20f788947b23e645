package projects

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// ProjectService defines the project use cases. The cover image comes from the
// "image" (or "iconImage") field, the gallery from up to MaxImages "images".
type ProjectService interface {
	Create(ctx context.Context, patch *ProjectPatch, form *multipart.Form) (*Project, error)
	List(ctx context.Context, query *common.ListQuery) ([]*Project, error)
	GetByID(ctx context.Context, id uint) (*Project, error)
	Update(ctx context.Context, id uint, patch *ProjectPatch, form *multipart.Form) (*Project, error)
	DeleteByID(ctx context.Context, id uint) error
}

// CategoryService defines the project category use cases.
type CategoryService interface {
	Create(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context, query *common.ListQuery) ([]*Category, error)
	GetByID(ctx context.Context, id uint) (*Category, error)
	// Update renames the category and moves its projects along.
	Update(ctx context.Context, id uint, name string) (*Category, error)
	// DeleteByID fails with common.ErrConflict while projects still use the category.
	DeleteByID(ctx context.Context, id uint) error
}

// ProjectRepository defines the persistence operations for Project
type ProjectRepository interface {
	Create(ctx context.Context, p *Project) error
	List(ctx context.Context, query *common.ListQuery) ([]*Project, error)
	GetByID(ctx context.Context, id uint) (*Project, error)
	Update(ctx context.Context, p *Project) error
	DeleteByID(ctx context.Context, id uint) error
	CountByCategory(ctx context.Context, category string) (int64, error)
}

// CategoryRepository defines the persistence operations for Category
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	List(ctx context.Context, query *common.ListQuery) ([]*Category, error)
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	Update(ctx context.Context, c *Category) error
	// Rename stores c and rewrites the category of every project filed under
	// previous, in one transaction.
	Rename(ctx context.Context, c *Category, previous string) error
	DeleteByID(ctx context.Context, id uint) error
}
