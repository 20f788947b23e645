package validators

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const (
	// TagNotBlank rejects strings that are empty after trimming white space.
	TagNotBlank = "notblank"
	// TagCategoryName accepts 1 to MaxCategoryNameLength characters after trimming.
	TagCategoryName = "categoryname"

	MaxCategoryNameLength = 50
)

// NotBlank reports whether the string field contains at least one non-space rune.
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

// CategoryName validates the length of a skill or project category name.
func CategoryName(fl validator.FieldLevel) bool {
	n := utf8.RuneCountInString(strings.TrimSpace(fl.Field().String()))
	return n >= 1 && n <= MaxCategoryNameLength
}

// Register adds every custom tag of this package to v.
func Register(v *validator.Validate) error {
	custom := map[string]validator.Func{
		TagNotBlank:     NotBlank,
		TagCategoryName: CategoryName,
	}
	for tag, fn := range custom {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}
