// Package contacts models messages submitted through the contact form.
package contacts

import (
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// Contact entity
type Contact struct {
	ID        uint
	Name      string `validate:"notblank,max=255"`
	Email     string `validate:"required,email,max=255"`
	Message   string `validate:"notblank,max=5000"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate normalises the e-mail address and checks every field.
func (c *Contact) Validate() error {
	c.Email = strings.ToLower(strings.TrimSpace(c.Email))
	return common.ValidateStruct(c)
}

// Patch holds optional Contact fields.
type Patch struct {
	Name    *string
	Email   *string
	Message *string
}

// Apply copies every set field of p onto c.
func (p *Patch) Apply(c *Contact) {
	if p == nil {
		return
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Email != nil {
		c.Email = *p.Email
	}
	if p.Message != nil {
		c.Message = *p.Message
	}
}

var ListSchema = common.ListSchema{
	Sort: map[string]string{
		"id":        "id",
		"name":      "name",
		"email":     "email",
		"createdAt": "created_at",
	},
	Filter: map[string]string{
		"email": "email",
	},
}
