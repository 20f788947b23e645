//go:build unit
// +build unit

package common

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testSchema = ListSchema{
	Sort:   map[string]string{"createdAt": "created_at", "name": "name"},
	Filter: map[string]string{"email": "email"},
}

func TestListQuery_Validate(t *testing.T) {
	tests := []struct {
		name      string
		query     ListQuery
		shouldErr bool
	}{
		{"empty", ListQuery{}, false},
		{"valid paging", ListQuery{Limit: 10, Offset: 20}, false},
		{"limit too large", ListQuery{Limit: MaxListLimit + 1}, true},
		{"negative offset", ListQuery{Offset: -1}, true},
		{"valid sort", ListQuery{SortBy: "name", SortOrder: SortDesc}, false},
		{"unknown sort field", ListQuery{SortBy: "password"}, true},
		{"invalid sort order", ListQuery{SortBy: "name", SortOrder: "up"}, true},
		{"valid filter", ListQuery{Filters: map[string]string{"email": "a@b.c"}}, false},
		{"unknown filter", ListQuery{Filters: map[string]string{"id; drop": "1"}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate(testSchema)
			if tt.shouldErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, ErrValidation))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestListQuery_OrderClause(t *testing.T) {
	assert.Equal(t, "id asc", (&ListQuery{}).OrderClause(testSchema))
	assert.Equal(t, "created_at desc", (&ListQuery{SortBy: "createdAt", SortOrder: SortDesc}).OrderClause(testSchema))
	assert.Equal(t, "name asc", (&ListQuery{SortBy: "name"}).OrderClause(testSchema))
}

func TestValidateStruct_WrapsErrValidation(t *testing.T) {
	type entity struct {
		Name string `validate:"notblank"`
	}

	err := ValidateStruct(&entity{Name: " "})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "Field: Name, Tag: notblank")

	assert.NoError(t, ValidateStruct(&entity{Name: "ok"}))
}
