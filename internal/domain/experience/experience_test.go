//go:build unit
// +build unit

package experience

import (
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"

	"github.com/stretchr/testify/assert"
)

func TestPatch_Validate_Doc(t *testing.T) {
	doc := func(s string) *Patch { return &Patch{Doc: &s} }

	tests := []struct {
		name      string
		patch     *Patch
		shouldErr bool
	}{
		{"nil patch", nil, false},
		{"doc not set", &Patch{}, false},
		{"cleared", doc(""), false},
		{"https link", doc("https://example.com/reference.pdf"), false},
		{"http link", doc("http://example.com/reference"), false},
		{"plain text", doc("not a url"), true},
		{"upload path", doc("/uploads/3f2a.pdf"), true},
		{"ftp link", doc("ftp://example.com/reference.pdf"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.patch.Validate()
			if tt.shouldErr {
				assert.ErrorIs(t, err, common.ErrValidation)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
