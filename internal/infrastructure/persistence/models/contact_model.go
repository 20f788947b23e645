package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/contacts"
)

// ContactModel is the GORM database model for contact form submissions
type ContactModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;type:varchar(255)"`
	Email     string `gorm:"not null;index;type:varchar(255)"`
	Message   string `gorm:"not null;type:text"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ContactModel) TableName() string {
	return "contacts"
}

// PrimaryKey returns the row id.
func (m *ContactModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *ContactModel) ToDomain() *contacts.Contact {
	return &contacts.Contact{
		ID:        m.ID,
		Name:      m.Name,
		Email:     m.Email,
		Message:   m.Message,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ContactModel) FromDomain(c *contacts.Contact) {
	m.ID = c.ID
	m.Name = c.Name
	m.Email = c.Email
	m.Message = c.Message
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}
