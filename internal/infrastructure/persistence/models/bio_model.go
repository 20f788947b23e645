package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/profile"
	"gorm.io/datatypes"
)

// BioModel is the GORM database model for the biography
type BioModel struct {
	ID          uint                        `gorm:"primaryKey"`
	Name        string                      `gorm:"not null;type:varchar(255)"`
	Roles       datatypes.JSONSlice[string] `gorm:"not null"`
	Description string                      `gorm:"not null;type:text"`
	Github      string                      `gorm:"not null;type:varchar(255)"`
	Linkedin    string                      `gorm:"not null;type:varchar(255)"`
	Twitter     string                      `gorm:"type:varchar(255)"`
	Insta       string                      `gorm:"type:varchar(255)"`
	Facebook    string                      `gorm:"type:varchar(255)"`
	Resume      string                      `gorm:"type:varchar(512)"`
	Image       string                      `gorm:"type:varchar(512)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (BioModel) TableName() string {
	return "bios"
}

// PrimaryKey returns the row id.
func (m *BioModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *BioModel) ToDomain() *profile.Bio {
	return &profile.Bio{
		ID:          m.ID,
		Name:        m.Name,
		Roles:       fromJSONSlice(m.Roles),
		Description: m.Description,
		Github:      m.Github,
		Linkedin:    m.Linkedin,
		Twitter:     m.Twitter,
		Insta:       m.Insta,
		Facebook:    m.Facebook,
		Resume:      m.Resume,
		Image:       m.Image,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BioModel) FromDomain(b *profile.Bio) {
	m.ID = b.ID
	m.Name = b.Name
	m.Roles = toJSONSlice(b.Roles)
	m.Description = b.Description
	m.Github = b.Github
	m.Linkedin = b.Linkedin
	m.Twitter = b.Twitter
	m.Insta = b.Insta
	m.Facebook = b.Facebook
	m.Resume = b.Resume
	m.Image = b.Image
	m.CreatedAt = b.CreatedAt
	m.UpdatedAt = b.UpdatedAt
}
