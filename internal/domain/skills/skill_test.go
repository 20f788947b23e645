//go:build unit
// +build unit

package skills

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkill_Validate(t *testing.T) {
	assert.NoError(t, (&Skill{Title: "Backend", Name: "Go"}).Validate())
	assert.Error(t, (&Skill{Title: "", Name: "Go"}).Validate())
	assert.Error(t, (&Skill{Title: "Backend", Name: "  "}).Validate())
}

func TestSkillPatch_Apply_Category(t *testing.T) {
	existing := uint(3)
	s := Skill{Title: "Backend", Name: "Go", SkillCategoryID: &existing}

	newID := uint(7)
	(&SkillPatch{SkillCategoryID: &newID}).Apply(&s)
	if assert.NotNil(t, s.SkillCategoryID) {
		assert.Equal(t, uint(7), *s.SkillCategoryID)
	}

	zero := uint(0)
	(&SkillPatch{SkillCategoryID: &zero}).Apply(&s)
	assert.Nil(t, s.SkillCategoryID)
	assert.Equal(t, "Go", s.Name)
}

func TestCategory_Validate(t *testing.T) {
	assert.NoError(t, (&Category{Name: "Frontend"}).Validate())
	assert.Error(t, (&Category{Name: ""}).Validate())
}
