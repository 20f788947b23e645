// Package experience models work experience entries.
package experience

import (
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// Experience entity. Doc is either an uploaded document or an external URL.
type Experience struct {
	ID        uint
	Role      string   `validate:"notblank,max=255"`
	Company   string   `validate:"notblank,max=255"`
	Date      string   `validate:"notblank,max=100"`
	Desc      string   `validate:"notblank"`
	Skills    []string `validate:"min=1,dive,notblank"`
	Img       string
	Doc       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate for validating Experience struct
func (e *Experience) Validate() error {
	return common.ValidateStruct(e)
}

// Patch holds optional Experience fields.
type Patch struct {
	Role    *string
	Company *string
	Date    *string
	Desc    *string
	Skills  *[]string
	// Doc sets an http(s) link instead of uploading a document. An empty
	// string clears it.
	Doc *string
}

type docLink struct {
	Doc string `validate:"omitempty,http_url"`
}

// Validate rejects a Doc that is not an http(s) URL. Upload paths are only
// ever set by the document upload itself.
func (p *Patch) Validate() error {
	if p == nil || p.Doc == nil {
		return nil
	}
	return common.ValidateStruct(&docLink{Doc: *p.Doc})
}

// Apply copies every set field of p onto e.
func (p *Patch) Apply(e *Experience) {
	if p == nil {
		return
	}
	if p.Role != nil {
		e.Role = *p.Role
	}
	if p.Company != nil {
		e.Company = *p.Company
	}
	if p.Date != nil {
		e.Date = *p.Date
	}
	if p.Desc != nil {
		e.Desc = *p.Desc
	}
	if p.Skills != nil {
		e.Skills = *p.Skills
	}
	if p.Doc != nil {
		e.Doc = *p.Doc
	}
}

var ListSchema = common.ListSchema{
	Sort: map[string]string{
		"id":        "id",
		"company":   "company",
		"date":      "date",
		"createdAt": "created_at",
	},
	Filter: map[string]string{
		"company": "company",
	},
}
