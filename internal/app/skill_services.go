package app

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/skills"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// skillService implements the skills.SkillService interface
type skillService struct {
	repo         skills.SkillRepository
	categoryRepo skills.CategoryRepository
	store        uploads.FileStore
	logger       logger.Logger
}

// NewSkillService creates a new instance of SkillService
func NewSkillService(repo skills.SkillRepository, categoryRepo skills.CategoryRepository, store uploads.FileStore, logger logger.Logger) (skills.SkillService, error) {
	return &skillService{
		repo:         repo,
		categoryRepo: categoryRepo,
		store:        store,
		logger:       logger,
	}, nil
}

func (s *skillService) Create(ctx context.Context, patch *skills.SkillPatch, form *multipart.Form) (*skills.Skill, error) {
	skill := &skills.Skill{}
	patch.Apply(skill)
	if err := s.validate(ctx, skill); err != nil {
		return nil, err
	}

	files := newAttachments(s.store, s.logger)
	err := files.single(ctx, form, uploads.KindImage, &skill.Image, "image")
	if err == nil {
		err = s.repo.Create(ctx, skill)
	}
	if err := files.done(ctx, err); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) List(ctx context.Context, query *common.ListQuery) ([]*skills.Skill, error) {
	return s.repo.List(ctx, query)
}

func (s *skillService) GetByID(ctx context.Context, id uint) (*skills.Skill, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *skillService) Update(ctx context.Context, id uint, patch *skills.SkillPatch, form *multipart.Form) (*skills.Skill, error) {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(skill)
	if err := s.validate(ctx, skill); err != nil {
		return nil, err
	}

	files := newAttachments(s.store, s.logger)
	err = files.single(ctx, form, uploads.KindImage, &skill.Image, "image")
	if err == nil {
		err = s.repo.Update(ctx, skill)
	}
	if err := files.done(ctx, err); err != nil {
		return nil, err
	}
	return skill, nil
}

func (s *skillService) DeleteByID(ctx context.Context, id uint) error {
	skill, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	newAttachments(s.store, s.logger).remove(ctx, skill.Image)
	return nil
}

// validate checks the fields and that the referenced category exists.
func (s *skillService) validate(ctx context.Context, skill *skills.Skill) error {
	if err := skill.Validate(); err != nil {
		return err
	}
	if skill.SkillCategoryID == nil {
		return nil
	}
	if _, err := s.categoryRepo.GetByID(ctx, *skill.SkillCategoryID); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Invalid("skill category %d does not exist", *skill.SkillCategoryID)
		}
		return err
	}
	return nil
}

// skillCategoryService implements the skills.CategoryService interface
type skillCategoryService struct {
	repo      skills.CategoryRepository
	skillRepo skills.SkillRepository
	logger    logger.Logger
}

// NewSkillCategoryService creates a new instance of skills.CategoryService
func NewSkillCategoryService(repo skills.CategoryRepository, skillRepo skills.SkillRepository, logger logger.Logger) (skills.CategoryService, error) {
	return &skillCategoryService{
		repo:      repo,
		skillRepo: skillRepo,
		logger:    logger,
	}, nil
}

func (s *skillCategoryService) Create(ctx context.Context, name string) (*skills.Category, error) {
	c := &skills.Category{Name: name}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *skillCategoryService) List(ctx context.Context, query *common.ListQuery) ([]*skills.Category, error) {
	return s.repo.List(ctx, query)
}

func (s *skillCategoryService) GetByID(ctx context.Context, id uint) (*skills.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *skillCategoryService) Update(ctx context.Context, id uint, name string) (*skills.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	c.Name = name
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *skillCategoryService) DeleteByID(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	count, err := s.skillRepo.CountByCategory(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("skill category %d is used by %d skills: %w", id, count, common.ErrConflict)
	}
	return s.repo.DeleteByID(ctx, id)
}
