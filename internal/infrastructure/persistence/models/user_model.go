package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
)

// UserModel is the GORM database model for administrators
type UserModel struct {
	ID           uint   `gorm:"primaryKey"`
	Email        string `gorm:"not null;uniqueIndex;type:varchar(255)"`
	PasswordHash string `gorm:"not null;type:varchar(255)"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// PrimaryKey returns the row id.
func (m *UserModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:           m.ID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Email = u.Email
	m.PasswordHash = u.PasswordHash
	m.CreatedAt = u.CreatedAt
	m.UpdatedAt = u.UpdatedAt
}
