// Package skills models skills and the categories that group them.
package skills

import (
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// Skill entity
type Skill struct {
	ID              uint
	Title           string `validate:"notblank,max=255"`
	Name            string `validate:"notblank,max=255"`
	Image           string
	SkillCategoryID *uint
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Validate for validating Skill struct
func (s *Skill) Validate() error {
	return common.ValidateStruct(s)
}

// SkillPatch holds optional Skill fields. A SkillCategoryID of 0 detaches the
// skill from its category.
type SkillPatch struct {
	Title           *string
	Name            *string
	SkillCategoryID *uint
}

// Apply copies every set field of p onto s.
func (p *SkillPatch) Apply(s *Skill) {
	if p == nil {
		return
	}
	if p.Title != nil {
		s.Title = *p.Title
	}
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.SkillCategoryID != nil {
		if *p.SkillCategoryID == 0 {
			s.SkillCategoryID = nil
		} else {
			id := *p.SkillCategoryID
			s.SkillCategoryID = &id
		}
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

var SkillListSchema = common.ListSchema{
	Sort: map[string]string{
		"id":        "id",
		"title":     "title",
		"name":      "name",
		"createdAt": "created_at",
	},
	Filter: map[string]string{
		"category_id": "skill_category_id",
		"title":       "title",
	},
}

var CategoryListSchema = common.ListSchema{
	Sort: map[string]string{
		"id":   "id",
		"name": "name",
	},
}
