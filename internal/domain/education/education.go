// Package education models entries of the education history.
package education

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// Education entity
type Education struct {
	ID        uint
	School    string `validate:"notblank,max=255"`
	Degree    string `validate:"notblank,max=255"`
	Date      string `validate:"notblank,max=100"`
	Grade     string `validate:"max=100"`
	Desc      string `validate:"notblank"`
	Img       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating Education struct
func (e *Education) Validate() error {
	return common.ValidateStruct(e)
}

// Patch holds optional Education fields.
type Patch struct {
	School *string
	Degree *string
	Date   *string
	Grade  *string
	Desc   *string
}

// Apply copies every set field of p onto e.
func (p *Patch) Apply(e *Education) {
	if p == nil {
		return
	}
	for dst, src := range map[*string]*string{
		&e.School: p.School,
		&e.Degree: p.Degree,
		&e.Date:   p.Date,
		&e.Grade:  p.Grade,
		&e.Desc:   p.Desc,
	} {
		if src != nil {
			*dst = *src
		}
	}
}

var ListSchema = common.ListSchema{
	Sort: map[string]string{
		"id":        "id",
		"school":    "school",
		"date":      "date",
		"createdAt": "created_at",
	},
	Filter: map[string]string{
		"school": "school",
	},
}
