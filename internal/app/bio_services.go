package app

import (
	"context"
	"mime/multipart"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/profile"
	"github.com/MGTheTrain/portfolio-api/internal/domain/uploads"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// bioService implements the profile.BioService interface
type bioService struct {
	repo   profile.BioRepository
	store  uploads.FileStore
	logger logger.Logger
}

// NewBioService creates a new instance of BioService
func NewBioService(repo profile.BioRepository, store uploads.FileStore, logger logger.Logger) (profile.BioService, error) {
	return &bioService{
		repo:   repo,
		store:  store,
		logger: logger,
	}, nil
}

func (s *bioService) Create(ctx context.Context, patch *profile.BioPatch, form *multipart.Form) (*profile.Bio, error) {
	bio := &profile.Bio{}
	patch.Apply(bio)
	if err := bio.Validate(); err != nil {
		return nil, err
	}

	files := newAttachments(s.store, s.logger)
	err := s.attach(ctx, files, bio, form)
	if err == nil {
		err = s.repo.Create(ctx, bio)
	}
	if err := files.done(ctx, err); err != nil {
		return nil, err
	}
	return bio, nil
}

func (s *bioService) List(ctx context.Context, query *common.ListQuery) ([]*profile.Bio, error) {
	return s.repo.List(ctx, query)
}

func (s *bioService) GetByID(ctx context.Context, id uint) (*profile.Bio, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bioService) Update(ctx context.Context, id uint, patch *profile.BioPatch, form *multipart.Form) (*profile.Bio, error) {
	bio, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(bio)
	if err := bio.Validate(); err != nil {
		return nil, err
	}

	files := newAttachments(s.store, s.logger)
	err = s.attach(ctx, files, bio, form)
	if err == nil {
		err = s.repo.Update(ctx, bio)
	}
	if err := files.done(ctx, err); err != nil {
		return nil, err
	}
	return bio, nil
}

func (s *bioService) DeleteByID(ctx context.Context, id uint) error {
	bio, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		return err
	}
	newAttachments(s.store, s.logger).remove(ctx, bio.Image, bio.Resume)
	return nil
}

func (s *bioService) attach(ctx context.Context, files *attachments, bio *profile.Bio, form *multipart.Form) error {
	if err := files.single(ctx, form, uploads.KindImage, &bio.Image, "image", "profile_pic"); err != nil {
		return err
	}
	return files.single(ctx, form, uploads.KindDocument, &bio.Resume, "resume")
}
