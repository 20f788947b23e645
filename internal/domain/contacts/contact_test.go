//go:build unit
// +build unit

package contacts

import (
	"testing"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContact_Validate(t *testing.T) {
	tests := []struct {
		name      string
		contact   Contact
		shouldErr bool
	}{
		{"valid", Contact{Name: "Jane", Email: "jane@example.com", Message: "Hi"}, false},
		{"missing name", Contact{Email: "jane@example.com", Message: "Hi"}, true},
		{"invalid email", Contact{Name: "Jane", Email: "jane", Message: "Hi"}, true},
		{"blank message", Contact{Name: "Jane", Email: "jane@example.com", Message: "  "}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.contact.Validate()
			if tt.shouldErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrValidation)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestContact_Validate_NormalisesEmail(t *testing.T) {
	c := Contact{Name: "Jane", Email: "  Jane@Example.COM ", Message: "Hi"}
	require.NoError(t, c.Validate())
	assert.Equal(t, "jane@example.com", c.Email)
}
