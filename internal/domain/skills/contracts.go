package skills

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// SkillService defines the skill use cases. A referenced category must exist.
type SkillService interface {
	Create(ctx context.Context, patch *SkillPatch, form *multipart.Form) (*Skill, error)
	List(ctx context.Context, query *common.ListQuery) ([]*Skill, error)
	GetByID(ctx context.Context, id uint) (*Skill, error)
	Update(ctx context.Context, id uint, patch *SkillPatch, form *multipart.Form) (*Skill, error)
	DeleteByID(ctx context.Context, id uint) error
}

// CategoryService defines the skill category use cases.
type CategoryService interface {
	Create(ctx context.Context, name string) (*Category, error)
	List(ctx context.Context, query *common.ListQuery) ([]*Category, error)
	GetByID(ctx context.Context, id uint) (*Category, error)
	Update(ctx context.Context, id uint, name string) (*Category, error)
	// DeleteByID fails with common.ErrConflict while skills still reference the category.
	DeleteByID(ctx context.Context, id uint) error
}

// SkillRepository defines the persistence operations for Skill
type SkillRepository interface {
	Create(ctx context.Context, s *Skill) error
	List(ctx context.Context, query *common.ListQuery) ([]*Skill, error)
	GetByID(ctx context.Context, id uint) (*Skill, error)
	Update(ctx context.Context, s *Skill) error
	DeleteByID(ctx context.Context, id uint) error
	CountByCategory(ctx context.Context, categoryID uint) (int64, error)
}

// CategoryRepository defines the persistence operations for Category
type CategoryRepository interface {
	Create(ctx context.Context, c *Category) error
	List(ctx context.Context, query *common.ListQuery) ([]*Category, error)
	GetByID(ctx context.Context, id uint) (*Category, error)
	GetByName(ctx context.Context, name string) (*Category, error)
	Update(ctx context.Context, c *Category) error
	DeleteByID(ctx context.Context, id uint) error
}
