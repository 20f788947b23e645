package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/skills"
)

// SkillCategoryModel is the GORM database model for skill categories
type SkillCategoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex;type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (SkillCategoryModel) TableName() string {
	return "skill_categories"
}

// PrimaryKey returns the row id.
func (m *SkillCategoryModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *SkillCategoryModel) ToDomain() *skills.Category {
	return &skills.Category{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

// FromDomain converts domain entity to GORM model
func (m *SkillCategoryModel) FromDomain(c *skills.Category) {
	m.ID = c.ID
	m.Name = c.Name
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// SkillModel is the GORM database model for skills
type SkillModel struct {
	ID              uint                `gorm:"primaryKey"`
	Title           string              `gorm:"not null;type:varchar(255)"`
	Name            string              `gorm:"not null;type:varchar(255)"`
	Image           string              `gorm:"type:varchar(512)"`
	SkillCategoryID *uint               `gorm:"index"`
	SkillCategory   *SkillCategoryModel `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName specifies the table name for GORM
func (SkillModel) TableName() string {
	return "skills"
}

// PrimaryKey returns the row id.
func (m *SkillModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *SkillModel) ToDomain() *skills.Skill {
	return &skills.Skill{
		ID:              m.ID,
		Title:           m.Title,
		Name:            m.Name,
		Image:           m.Image,
		SkillCategoryID: m.SkillCategoryID,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *SkillModel) FromDomain(s *skills.Skill) {
	m.ID = s.ID
	m.Title = s.Title
	m.Name = s.Name
	m.Image = s.Image
	m.SkillCategoryID = s.SkillCategoryID
	m.CreatedAt = s.CreatedAt
	m.UpdatedAt = s.UpdatedAt
}
