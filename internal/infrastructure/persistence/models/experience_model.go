package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/experience"
	"gorm.io/datatypes"
)

// ExperienceModel is the GORM database model for work experience
type ExperienceModel struct {
	ID        uint                        `gorm:"primaryKey"`
	Role      string                      `gorm:"not null;type:varchar(255)"`
	Company   string                      `gorm:"not null;type:varchar(255)"`
	Date      string                      `gorm:"not null;type:varchar(100)"`
	Desc      string                      `gorm:"column:description;not null;type:text"`
	Skills    datatypes.JSONSlice[string] `gorm:"not null"`
	Img       string                      `gorm:"type:varchar(512)"`
	Doc       string                      `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ExperienceModel) TableName() string {
	return "experiences"
}

// PrimaryKey returns the row id.
func (m *ExperienceModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *ExperienceModel) ToDomain() *experience.Experience {
	return &experience.Experience{
		ID:        m.ID,
		Role:      m.Role,
		Company:   m.Company,
		Date:      m.Date,
		Desc:      m.Desc,
		Skills:    fromJSONSlice(m.Skills),
		Img:       m.Img,
		Doc:       m.Doc,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ExperienceModel) FromDomain(e *experience.Experience) {
	m.ID = e.ID
	m.Role = e.Role
	m.Company = e.Company
	m.Date = e.Date
	m.Desc = e.Desc
	m.Skills = toJSONSlice(e.Skills)
	m.Img = e.Img
	m.Doc = e.Doc
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}
