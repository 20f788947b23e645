package config

import (
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func instance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

func validateStruct(s interface{}) error {
	return instance().Struct(s)
}

// validateStructExcept skips the named fields, including any nested struct
// they hold.
func validateStructExcept(s interface{}, fields ...string) error {
	return instance().StructExcept(s, fields...)
}
