package contacts

import (
	"context"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// Service defines the contact use cases. Only Create is reachable without a token.
type Service interface {
	Create(ctx context.Context, patch *Patch) (*Contact, error)
	List(ctx context.Context, query *common.ListQuery) ([]*Contact, error)
	GetByID(ctx context.Context, id uint) (*Contact, error)
	Update(ctx context.Context, id uint, patch *Patch) (*Contact, error)
	DeleteByID(ctx context.Context, id uint) error
}

// Repository defines the persistence operations for Contact
type Repository interface {
	Create(ctx context.Context, c *Contact) error
	List(ctx context.Context, query *common.ListQuery) ([]*Contact, error)
	GetByID(ctx context.Context, id uint) (*Contact, error)
	Update(ctx context.Context, c *Contact) error
	DeleteByID(ctx context.Context, id uint) error
}
