package app

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// projectService implements the projects.ProjectService interface
type projectService struct {
	repo         projects.ProjectRepository
	categoryRepo projects.CategoryRepository
	store        uploads.FileStore
	logger       logger.Logger
}

// NewProjectService creates a new instance of ProjectService
func NewProjectService(repo projects.ProjectRepository, categoryRepo projects.CategoryRepository, store uploads.FileStore, logger logger.Logger) (projects.ProjectService, error) {
	return &projectService{
		repo:         repo,
		categoryRepo: categoryRepo,
		store:        store,
		logger:       logger,
	}, nil
}

func (s *projectService) Create(ctx context.Context, patch *projects.ProjectPatch, form *multipart.Form) (*projects.Project, error) {
	p := &projects.Project{}
	patch.Apply(p)
	if err := s.validate(ctx, p, true); err != nil {
		return nil, err
	}

	files := newAttachments(s.store, s.logger)
	err := s.attach(ctx, files, p, form)
	if err == nil {
		err = s.repo.Create(ctx, p)
	}
	if err := files.done(ctx, err); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context, query *common.ListQuery) ([]*projects.Project, error) {
	return s.repo.List(ctx, query)
}

func (s *projectService) GetByID(ctx context.Context, id uint) (*projects.Project, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectService) Update(ctx context.Context, id uint, patch *projects.ProjectPatch, form *multipart.Form) (*projects.Project, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(p)
	// The stored category is only checked again when the request sets it.
	if err := s.validate(ctx, p, patch != nil && patch.Category != nil); err != nil {
		return nil, err
	}

	files := newAttachments(s.store, s.logger)
	err = s.attach(ctx, files, p, form)
	if err == nil {
		err = s.repo.Update(ctx, p)
	}
	if err := files.done(ctx, err); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) DeleteByID(ctx context.Context, id uint) error {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	newAttachments(s.store, s.logger).remove(ctx, append([]string{p.Image}, p.Images...)...)
	return nil
}

// validate checks the fields and, when checkCategory is set, that the
// category names an existing project category.
func (s *projectService) validate(ctx context.Context, p *projects.Project, checkCategory bool) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if !checkCategory {
		return nil
	}
	if _, err := s.categoryRepo.GetByName(ctx, p.Category); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.Invalid("project category %q does not exist", p.Category)
		}
		return err
	}
	return nil
}

func (s *projectService) attach(ctx context.Context, files *attachments, p *projects.Project, form *multipart.Form) error {
	if err := files.single(ctx, form, uploads.KindImage, &p.Image, "image", "iconImage"); err != nil {
		return err
	}
	return files.multiple(ctx, form, uploads.KindImage, &p.Images, projects.MaxImages, "images")
}

// projectCategoryService implements the projects.CategoryService interface
type projectCategoryService struct {
	repo        projects.CategoryRepository
	projectRepo projects.ProjectRepository
	logger      logger.Logger
}

// NewProjectCategoryService creates a new instance of projects.CategoryService
func NewProjectCategoryService(repo projects.CategoryRepository, projectRepo projects.ProjectRepository, logger logger.Logger) (projects.CategoryService, error) {
	return &projectCategoryService{
		repo:        repo,
		projectRepo: projectRepo,
		logger:      logger,
	}, nil
}

func (s *projectCategoryService) Create(ctx context.Context, name string) (*projects.Category, error) {
	c := &projects.Category{Name: name}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *projectCategoryService) List(ctx context.Context, query *common.ListQuery) ([]*projects.Category, error) {
	return s.repo.List(ctx, query)
}

func (s *projectCategoryService) GetByID(ctx context.Context, id uint) (*projects.Category, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *projectCategoryService) Update(ctx context.Context, id uint, name string) (*projects.Category, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previous := c.Name
	c.Name = name
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Rename(ctx, c, previous); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *projectCategoryService) DeleteByID(ctx context.Context, id uint) error {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	count, err := s.projectRepo.CountByCategory(ctx, c.Name)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("project category %d is used by %d projects: %w", id, count, common.ErrConflict)
	}
	return s.repo.DeleteByID(ctx, id)
}
