package app

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/education"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// educationService implements the education.Service interface
type educationService struct {
	repo   education.Repository
	store  uploads.FileStore
	logger logger.Logger
}

// NewEducationService creates a new instance of education.Service
func NewEducationService(repo education.Repository, store uploads.FileStore, logger logger.Logger) (education.Service, error) {
	return &educationService{
		repo:   repo,
		store:  store,
		logger: logger,
	}, nil
}

func (s *educationService) Create(ctx context.Context, patch *education.Patch, form *multipart.Form) (*education.Education, error) {
	e := &education.Education{}
	patch.Apply(e)
	if err := e.Validate(); err != nil {
		return nil, err
	}

	files := newAttachments(s.store, s.logger)
	err := files.single(ctx, form, uploads.KindImage, &e.Img, "img")
	if err == nil {
		err = s.repo.Create(ctx, e)
	}
	if err := files.done(ctx, err); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *educationService) List(ctx context.Context, query *common.ListQuery) ([]*education.Education, error) {
	return s.repo.List(ctx, query)
}

func (s *educationService) GetByID(ctx context.Context, id uint) (*education.Education, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *educationService) Update(ctx context.Context, id uint, patch *education.Patch, form *multipart.Form) (*education.Education, error) {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(e)
	if err := e.Validate(); err != nil {
		return nil, err
	}

	files := newAttachments(s.store, s.logger)
	err = files.single(ctx, form, uploads.KindImage, &e.Img, "img")
	if err == nil {
		err = s.repo.Update(ctx, e)
	}
	if err := files.done(ctx, err); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *educationService) DeleteByID(ctx context.Context, id uint) error {
	e, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	newAttachments(s.store, s.logger).remove(ctx, e.Img)
	return nil
}
