package config

import (
	"fmt"
	"time"
)

// AuthSettings configures token issuing and the bootstrap admin account.
// The admin account is only created when both AdminEmail and AdminPassword are set.
type AuthSettings struct {
	JWTSecret     string        `mapstructure:"jwt_secret" validate:"required,min=16"`
	TokenTTL      time.Duration `mapstructure:"token_ttl" validate:"gt=0"`
	AdminEmail    string        `mapstructure:"admin_email" validate:"omitempty,email"`
	AdminPassword string        `mapstructure:"admin_password" validate:"omitempty,min=8"`
}

// Validate checks that all fields in AuthSettings are valid
func (s *AuthSettings) Validate() error {
	if err := validateStruct(s); err != nil {
		return fmt.Errorf("validation failed for AuthSettings: %w", err)
	}
	if (s.AdminEmail == "") != (s.AdminPassword == "") {
		return fmt.Errorf("admin email and admin password must be set together")
	}
	return nil
}
