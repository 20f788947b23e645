// Package profile models the portfolio owner's biography, served as both
// "about" and "bio".
package profile

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// Bio entity
type Bio struct {
	ID          uint
	Name        string   `validate:"notblank,max=255"`
	Roles       []string `validate:"min=1,dive,notblank"`
	Description string   `validate:"notblank"`
	Github      string   `validate:"required,url"`
	Linkedin    string   `validate:"required,url"`
	Twitter     string   `validate:"omitempty,url"`
	Insta       string   `validate:"omitempty,url"`
	Facebook    string   `validate:"omitempty,url"`
	Resume      string
	Image       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Validate for validating Bio struct
func (b *Bio) Validate() error {
	return common.ValidateStruct(b)
}

// BioPatch carries the fields of a create or update request. Nil fields are
// left untouched.
type BioPatch struct {
	Name        *string
	Roles       *[]string
	Description *string
	Github      *string
	Linkedin    *string
	Twitter     *string
	Insta       *string
	Facebook    *string
}

// Apply copies every set field of p onto b.
func (p *BioPatch) Apply(b *Bio) {
	if p == nil {
		return
	}
	setString(&b.Name, p.Name)
	if p.Roles != nil {
		b.Roles = *p.Roles
	}
	setString(&b.Description, p.Description)
	setString(&b.Github, p.Github)
	setString(&b.Linkedin, p.Linkedin)
	setString(&b.Twitter, p.Twitter)
	setString(&b.Insta, p.Insta)
	setString(&b.Facebook, p.Facebook)
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// ListSchema lists the sortable columns of bios.
var ListSchema = common.ListSchema{
	Sort: map[string]string{
		"id":        "id",
		"name":      "name",
		"createdAt": "created_at",
		"updatedAt": "updated_at",
	},
}
