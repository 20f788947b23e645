package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/education"
)

// EducationModel is the GORM database model for education entries
type EducationModel struct {
	ID        uint   `gorm:"primaryKey"`
	School    string `gorm:"not null;type:varchar(255)"`
	Degree    string `gorm:"not null;type:varchar(255)"`
	Date      string `gorm:"not null;type:varchar(100)"`
	Grade     string `gorm:"type:varchar(100)"`
	Desc      string `gorm:"column:description;not null;type:text"`
	Img       string `gorm:"type:varchar(512)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (EducationModel) TableName() string {
	return "educations"
}

// PrimaryKey returns the row id.
func (m *EducationModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *EducationModel) ToDomain() *education.Education {
	return &education.Education{
		ID:        m.ID,
		School:    m.School,
		Degree:    m.Degree,
		Date:      m.Date,
		Grade:     m.Grade,
		Desc:      m.Desc,
		Img:       m.Img,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *EducationModel) FromDomain(e *education.Education) {
	m.ID = e.ID
	m.School = e.School
	m.Degree = e.Degree
	m.Date = e.Date
	m.Grade = e.Grade
	m.Desc = e.Desc
	m.Img = e.Img
	m.CreatedAt = e.CreatedAt
	m.UpdatedAt = e.UpdatedAt
}
