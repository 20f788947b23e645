// Package projects models portfolio projects and their categories.
package projects

import (
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// MaxImages is the number of gallery images a project may hold.
const MaxImages = 5

// Project entity. Category holds the name of a ProjectCategory.
type Project struct {
	ID          uint
	Title       string   `validate:"notblank,max=255"`
	Date        string   `validate:"max=100"`
	Description string   `validate:"notblank"`
	Category    string   `validate:"categoryname"`
	Tags        []string `validate:"dive,notblank"`
	Github      string   `validate:"omitempty,url"`
	Webapp      string   `validate:"omitempty,url"`
	Image       string
	Images      []string `validate:"max=5"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate for validating Project struct
func (p *Project) Validate() error {
	p.Category = strings.TrimSpace(p.Category)
	return common.ValidateStruct(p)
}

// ProjectPatch holds optional Project fields.
type ProjectPatch struct {
	Title       *string
	Date        *string
	Description *string
	Category    *string
	Tags        *[]string
	Github      *string
	Webapp      *string
}

// Apply copies every set field of p onto project.
func (p *ProjectPatch) Apply(project *Project) {
	if p == nil {
		return
	}
	for dst, src := range map[*string]*string{
		&project.Title:       p.Title,
		&project.Date:        p.Date,
		&project.Description: p.Description,
		&project.Category:    p.Category,
		&project.Github:      p.Github,
		&project.Webapp:      p.Webapp,
	} {
		if src != nil {
			*dst = *src
		}
	}
	if p.Tags != nil {
		project.Tags = *p.Tags
	}
}

// Category entity
type Category struct {
	ID        uint
	Name      string `validate:"categoryname"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate trims the name and checks its length.
func (c *Category) Validate() error {
	c.Name = strings.TrimSpace(c.Name)
	return common.ValidateStruct(c)
}

var ProjectListSchema = common.ListSchema{
	Sort: map[string]string{
		"id":        "id",
		"title":     "title",
		"date":      "date",
		"category":  "category",
		"createdAt": "created_at",
	},
	Filter: map[string]string{
		"category": "category",
	},
}

var CategoryListSchema = common.ListSchema{
	Sort: map[string]string{
		"id":   "id",
		"name": "name",
	},
}
