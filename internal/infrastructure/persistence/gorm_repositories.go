package persistence

import (
	"context"
	"fmt"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"
	"github.com/MGTheTrain/portfolio-api/internal/domain/education"
	"github.com/MGTheTrain/portfolio-api/internal/domain/experience"
	"github.com/MGTheTrain/portfolio-api/internal/domain/profile"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/skills"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"

	"gorm.io/gorm"
)

// NewGormBioRepository creates a new GORM-based BioRepository implementation
func NewGormBioRepository(db *gorm.DB, logger logger.Logger) (profile.BioRepository, error) {
	return newGormRepository[profile.Bio, models.BioModel](db, logger, "bio", profile.ListSchema), nil
}

// NewGormEducationRepository creates a new GORM-based education Repository implementation
func NewGormEducationRepository(db *gorm.DB, logger logger.Logger) (education.Repository, error) {
	return newGormRepository[education.Education, models.EducationModel](db, logger, "education", education.ListSchema), nil
}

// NewGormExperienceRepository creates a new GORM-based experience Repository implementation
func NewGormExperienceRepository(db *gorm.DB, logger logger.Logger) (experience.Repository, error) {
	return newGormRepository[experience.Experience, models.ExperienceModel](db, logger, "experience", experience.ListSchema), nil
}

// NewGormContactRepository creates a new GORM-based contact Repository implementation
func NewGormContactRepository(db *gorm.DB, logger logger.Logger) (contacts.Repository, error) {
	return newGormRepository[contacts.Contact, models.ContactModel](db, logger, "contact", contacts.ListSchema), nil
}

type gormProjectRepository struct {
	*gormRepository[projects.Project, models.ProjectModel, *models.ProjectModel]
}

// NewGormProjectRepository creates a new GORM-based ProjectRepository implementation
func NewGormProjectRepository(db *gorm.DB, logger logger.Logger) (projects.ProjectRepository, error) {
	return &gormProjectRepository{
		gormRepository: newGormRepository[projects.Project, models.ProjectModel](db, logger, "project", projects.ProjectListSchema),
	}, nil
}

func (r *gormProjectRepository) CountByCategory(ctx context.Context, category string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.ProjectModel{}).Where("category = ?", category).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count projects of category %q: %w", category, err)
	}
	return count, nil
}

type gormSkillRepository struct {
	*gormRepository[skills.Skill, models.SkillModel, *models.SkillModel]
}

// NewGormSkillRepository creates a new GORM-based SkillRepository implementation
func NewGormSkillRepository(db *gorm.DB, logger logger.Logger) (skills.SkillRepository, error) {
	return &gormSkillRepository{
		gormRepository: newGormRepository[skills.Skill, models.SkillModel](db, logger, "skill", skills.SkillListSchema),
	}, nil
}

func (r *gormSkillRepository) CountByCategory(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SkillModel{}).Where("skill_category_id = ?", categoryID).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count skills of category %d: %w", categoryID, err)
	}
	return count, nil
}

type gormSkillCategoryRepository struct {
	*gormRepository[skills.Category, models.SkillCategoryModel, *models.SkillCategoryModel]
}

// NewGormSkillCategoryRepository creates a new GORM-based skills CategoryRepository implementation
func NewGormSkillCategoryRepository(db *gorm.DB, logger logger.Logger) (skills.CategoryRepository, error) {
	return &gormSkillCategoryRepository{
		gormRepository: newGormRepository[skills.Category, models.SkillCategoryModel](db, logger, "skill category", skills.CategoryListSchema),
	}, nil
}

func (r *gormSkillCategoryRepository) GetByName(ctx context.Context, name string) (*skills.Category, error) {
	return r.first(ctx, "name = ?", name)
}

type gormProjectCategoryRepository struct {
	*gormRepository[projects.Category, models.ProjectCategoryModel, *models.ProjectCategoryModel]
}

// NewGormProjectCategoryRepository creates a new GORM-based projects CategoryRepository implementation
func NewGormProjectCategoryRepository(db *gorm.DB, logger logger.Logger) (projects.CategoryRepository, error) {
	return &gormProjectCategoryRepository{
		gormRepository: newGormRepository[projects.Category, models.ProjectCategoryModel](db, logger, "project category", projects.CategoryListSchema),
	}, nil
}

func (r *gormProjectCategoryRepository) GetByName(ctx context.Context, name string) (*projects.Category, error) {
	return r.first(ctx, "name = ?", name)
}

func (r *gormProjectCategoryRepository) Rename(ctx context.Context, c *projects.Category, previous string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txRepo := newGormRepository[projects.Category, models.ProjectCategoryModel](tx, r.logger, r.entity, r.schema)
		if err := txRepo.Update(ctx, c); err != nil {
			return err
		}
		if previous == c.Name {
			return nil
		}

		result := tx.Model(&models.ProjectModel{}).Where("category = ?", previous).Update("category", c.Name)
		if result.Error != nil {
			return fmt.Errorf("failed to move projects to category %q: %w", c.Name, result.Error)
		}
		r.logger.Info("Moved projects to renamed category", "category", c.Name, "projects", result.RowsAffected)
		return nil
	})
}

type gormUserRepository struct {
	*gormRepository[users.User, models.UserModel, *models.UserModel]
}

// NewGormUserRepository creates a new GORM-based users Repository implementation
func NewGormUserRepository(db *gorm.DB, logger logger.Logger) (users.Repository, error) {
	return &gormUserRepository{
		gormRepository: newGormRepository[users.User, models.UserModel](db, logger, "user", common.ListSchema{}),
	}, nil
}

func (r *gormUserRepository) GetByEmail(ctx context.Context, email string) (*users.User, error) {
	return r.first(ctx, "email = ?", users.NormalizeEmail(email))
}
