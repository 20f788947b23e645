package models

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/projects"
	"gorm.io/datatypes"
)

// ProjectCategoryModel is the GORM database model for project categories
type ProjectCategoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;uniqueIndex;type:varchar(50)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName specifies the table name for GORM
func (ProjectCategoryModel) TableName() string {
	return "project_categories"
}

// PrimaryKey returns the row id.
func (m *ProjectCategoryModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *ProjectCategoryModel) ToDomain() *projects.Category {
	return &projects.Category{ID: m.ID, Name: m.Name, CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}

// FromDomain converts domain entity to GORM model
func (m *ProjectCategoryModel) FromDomain(c *projects.Category) {
	m.ID = c.ID
	m.Name = c.Name
	m.CreatedAt = c.CreatedAt
	m.UpdatedAt = c.UpdatedAt
}

// ProjectModel is the GORM database model for projects
type ProjectModel struct {
	ID          uint                        `gorm:"primaryKey"`
	Title       string                      `gorm:"not null;type:varchar(255)"`
	Date        string                      `gorm:"type:varchar(100)"`
	Description string                      `gorm:"not null;type:text"`
	Category    string                      `gorm:"not null;index;type:varchar(50)"`
	Tags        datatypes.JSONSlice[string] `gorm:"not null"`
	Github      string                      `gorm:"type:varchar(255)"`
	Webapp      string                      `gorm:"type:varchar(255)"`
	Image       string                      `gorm:"type:varchar(512)"`
	Images      datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (ProjectModel) TableName() string {
	return "projects"
}

// PrimaryKey returns the row id.
func (m *ProjectModel) PrimaryKey() uint { return m.ID }

// ToDomain converts GORM model to domain entity
func (m *ProjectModel) ToDomain() *projects.Project {
	return &projects.Project{
		ID:          m.ID,
		Title:       m.Title,
		Date:        m.Date,
		Description: m.Description,
		Category:    m.Category,
		Tags:        fromJSONSlice(m.Tags),
		Github:      m.Github,
		Webapp:      m.Webapp,
		Image:       m.Image,
		Images:      fromJSONSlice(m.Images),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ProjectModel) FromDomain(p *projects.Project) {
	m.ID = p.ID
	m.Title = p.Title
	m.Date = p.Date
	m.Description = p.Description
	m.Category = p.Category
	m.Tags = toJSONSlice(p.Tags)
	m.Github = p.Github
	m.Webapp = p.Webapp
	m.Image = p.Image
	m.Images = toJSONSlice(p.Images)
	m.CreatedAt = p.CreatedAt
	m.UpdatedAt = p.UpdatedAt
}
