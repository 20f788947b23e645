//go:build unit
// +build unit

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStorageSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *StorageSettings
		expectedError bool
	}{
		{"valid", &StorageSettings{UploadDir: "uploads", PublicPrefix: "/uploads", MaxFileSize: DefaultMaxFileSize}, false},
		{"missing upload dir", &StorageSettings{PublicPrefix: "/uploads", MaxFileSize: DefaultMaxFileSize}, true},
		{"relative public prefix", &StorageSettings{UploadDir: "uploads", PublicPrefix: "uploads", MaxFileSize: DefaultMaxFileSize}, true},
		{"zero max size", &StorageSettings{UploadDir: "uploads", PublicPrefix: "/uploads"}, true},
		{"max size above 100 MB", &StorageSettings{UploadDir: "uploads", PublicPrefix: "/uploads", MaxFileSize: 200 << 20}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthSettingsValidation(t *testing.T) {
	const secret = "0123456789abcdef0123"

	tests := []struct {
		name          string
		settings      *AuthSettings
		expectedError bool
	}{
		{"valid without admin", &AuthSettings{JWTSecret: secret, TokenTTL: time.Hour}, false},
		{"valid with admin", &AuthSettings{JWTSecret: secret, TokenTTL: time.Hour, AdminEmail: "admin@example.com", AdminPassword: "supersecret"}, false},
		{"short secret", &AuthSettings{JWTSecret: "short", TokenTTL: time.Hour}, true},
		{"zero ttl", &AuthSettings{JWTSecret: secret}, true},
		{"admin email without password", &AuthSettings{JWTSecret: secret, TokenTTL: time.Hour, AdminEmail: "admin@example.com"}, true},
		{"invalid admin email", &AuthSettings{JWTSecret: secret, TokenTTL: time.Hour, AdminEmail: "admin", AdminPassword: "supersecret"}, true},
		{"short admin password", &AuthSettings{JWTSecret: secret, TokenTTL: time.Hour, AdminEmail: "admin@example.com", AdminPassword: "short"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRateLimitSettingsValidation(t *testing.T) {
	tests := []struct {
		name          string
		settings      *RateLimitSettings
		expectedError bool
	}{
		{"valid in-memory", &RateLimitSettings{RequestsPerMinute: 10, Burst: 5}, false},
		{"valid redis", &RateLimitSettings{RequestsPerMinute: 10, Burst: 5, RedisAddr: "localhost:6379"}, false},
		{"zero rate", &RateLimitSettings{Burst: 5}, true},
		{"zero burst", &RateLimitSettings{RequestsPerMinute: 10}, true},
		{"redis address without port", &RateLimitSettings{RequestsPerMinute: 10, Burst: 5, RedisAddr: "localhost"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.settings.Validate()
			if tt.expectedError {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCorsSettingsValidation(t *testing.T) {
	assert.NoError(t, (&CorsSettings{AllowedOrigins: []string{"http://localhost:5173"}}).Validate())
	assert.Error(t, (&CorsSettings{}).Validate())
	assert.Error(t, (&CorsSettings{AllowedOrigins: []string{""}}).Validate())
}
