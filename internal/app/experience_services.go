package app

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/experience"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// experienceService implements the experience.Service interface
type experienceService struct {
	repo   experience.Repository
	store  uploads.FileStore
	logger logger.Logger
}

// NewExperienceService creates a new instance of experience.Service
func NewExperienceService(repo experience.Repository, store uploads.FileStore, logger logger.Logger) (experience.Service, error) {
	return &experienceService{
		repo:   repo,
		store:  store,
		logger: logger,
	}, nil
}

func (s *experienceService) Create(ctx context.Context, patch *experience.Patch, form *multipart.Form) (*experience.Experience, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	e := &experience.Experience{}
	patch.Apply(e)
	if err := e.Validate(); err != nil {
		return nil, err
	}

	files := newAttachments(s.store, s.logger)
	err := s.attach(ctx, files, e, form)
	if err == nil {
		err = s.repo.Create(ctx, e)
	}
	if err := files.done(ctx, err); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *experienceService) List(ctx context.Context, query *common.ListQuery) ([]*experience.Experience, error) {
	return s.repo.List(ctx, query)
}

func (s *experienceService) GetByID(ctx context.Context, id uint) (*experience.Experience, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *experienceService) Update(ctx context.Context, id uint, patch *experience.Patch, form *multipart.Form) (*experience.Experience, error) {
	if err := patch.Validate(); err != nil {
		return nil, err
	}
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	previousDoc := e.Doc
	patch.Apply(e)
	if err := e.Validate(); err != nil {
		return nil, err
	}

	files := newAttachments(s.store, s.logger)
	// A link given in place of the stored document replaces it as well.
	if patch != nil && patch.Doc != nil && previousDoc != "" && previousDoc != e.Doc {
		files.replaced = append(files.replaced, previousDoc)
	}
	err = s.attach(ctx, files, e, form)
	if err == nil {
		err = s.repo.Update(ctx, e)
	}
	if err := files.done(ctx, err); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *experienceService) DeleteByID(ctx context.Context, id uint) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	newAttachments(s.store, s.logger).remove(ctx, e.Img, e.Doc)
	return nil
}

func (s *experienceService) attach(ctx context.Context, files *attachments, e *experience.Experience, form *multipart.Form) error {
	if err := files.single(ctx, form, uploads.KindImage, &e.Img, "img"); err != nil {
		return err
	}
	return files.single(ctx, form, uploads.KindDocument, &e.Doc, "doc")
}
