package common

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MGTheTrain/portfolio-api/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateErr  error
	validateOnce sync.Once
)

func instance() (*validator.Validate, error) {
	validateOnce.Do(func() {
		validate = validator.New()
		if err := validators.Register(validate); err != nil {
			validateErr = fmt.Errorf("failed to register custom validator: %w", err)
		}
	})
	return validate, validateErr
}

// ValidateStruct checks the validate tags of s. Failures wrap ErrValidation.
func ValidateStruct(s interface{}) error {
	v, err := instance()
	if err != nil {
		return err
	}

	err = v.Struct(s)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		messages := make([]string, 0, len(validationErrors))
		for _, fieldErr := range validationErrors {
			messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
		}
		return fmt.Errorf("%w: %s", ErrValidation, strings.Join(messages, "; "))
	}
	return fmt.Errorf("%w: %v", ErrValidation, err)
}

// Invalid builds a validation error with a custom message.
func Invalid(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
