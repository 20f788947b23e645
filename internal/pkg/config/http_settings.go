package config

import "fmt"

// CorsSettings lists the browser origins allowed to call the API.
type CorsSettings struct {
	AllowedOrigins []string `mapstructure:"allowed_origins" validate:"required,min=1,dive,required"`
}

// Validate checks that all fields in CorsSettings are valid
func (s *CorsSettings) Validate() error {
	if err := validateStruct(s); err != nil {
		return fmt.Errorf("validation failed for CorsSettings: %w", err)
	}
	return nil
}

// RateLimitSettings throttles the public write endpoints (contact form, login).
// When RedisAddr is set the counters are shared through Redis, otherwise they
// are kept in process memory.
type RateLimitSettings struct {
	RequestsPerMinute int    `mapstructure:"requests_per_minute" validate:"gt=0"`
	Burst             int    `mapstructure:"burst" validate:"gt=0"`
	RedisAddr         string `mapstructure:"redis_addr" validate:"omitempty,hostname_port"`
	RedisPassword     string `mapstructure:"redis_password"`
	RedisDB           int    `mapstructure:"redis_db" validate:"gte=0"`
}

// Validate checks that all fields in RateLimitSettings are valid
func (s *RateLimitSettings) Validate() error {
	if err := validateStruct(s); err != nil {
		return fmt.Errorf("validation failed for RateLimitSettings: %w", err)
	}
	return nil
}
