package app

import (
	"context"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// contactService implements the contacts.Service interface
type contactService struct {
	repo   contacts.Repository
	logger logger.Logger
}

// NewContactService creates a new instance of contacts.Service
func NewContactService(repo contacts.Repository, logger logger.Logger) (contacts.Service, error) {
	return &contactService{
		repo:   repo,
		logger: logger,
	}, nil
}

func (s *contactService) Create(ctx context.Context, patch *contacts.Patch) (*contacts.Contact, error) {
	c := &contacts.Contact{}
	patch.Apply(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contactService) List(ctx context.Context, query *common.ListQuery) ([]*contacts.Contact, error) {
	return s.repo.List(ctx, query)
}

func (s *contactService) GetByID(ctx context.Context, id uint) (*contacts.Contact, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *contactService) Update(ctx context.Context, id uint, patch *contacts.Patch) (*contacts.Contact, error) {
	c, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.Apply(c)
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *contactService) DeleteByID(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}
