//go:build unit
// +build unit

package projects

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProject_Validate(t *testing.T) {
	base := func() Project {
		return Project{Title: "Portfolio", Description: "This site", Category: "Web"}
	}

	tests := []struct {
		name      string
		mutate    func(p *Project)
		shouldErr bool
	}{
		{"valid", func(p *Project) {}, false},
		{"missing title", func(p *Project) { p.Title = "" }, true},
		{"missing category", func(p *Project) { p.Category = " " }, true},
		{"category too long", func(p *Project) { p.Category = strings.Repeat("x", 51) }, true},
		{"bad github url", func(p *Project) { p.Github = "not a url" }, true},
		{"five images", func(p *Project) { p.Images = []string{"a", "b", "c", "d", "e"} }, false},
		{"six images", func(p *Project) { p.Images = []string{"a", "b", "c", "d", "e", "f"} }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base()
			tt.mutate(&p)
			if tt.shouldErr {
				assert.Error(t, p.Validate())
			} else {
				assert.NoError(t, p.Validate())
			}
		})
	}
}

func TestCategory_Validate_TrimsName(t *testing.T) {
	c := Category{Name: "  Mobile  "}
	require.NoError(t, c.Validate())
	assert.Equal(t, "Mobile", c.Name)
}

func TestProjectPatch_Apply(t *testing.T) {
	p := Project{Title: "Old", Description: "Desc", Category: "Web", Tags: []string{"go"}}
	title := "New"
	tags := []string{"go", "gin"}

	(&ProjectPatch{Title: &title, Tags: &tags}).Apply(&p)

	assert.Equal(t, "New", p.Title)
	assert.Equal(t, "Desc", p.Description)
	assert.Equal(t, []string{"go", "gin"}, p.Tags)
}
