//go:build unit
// +build unit

package v1

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthHandler_Login(t *testing.T) {
	mockService := new(MockAuthService)
	handler := NewAuthHandler(mockService)

	mockService.On("Login", mock.Anything, "admin@example.com", "secret-pass").Return("signed.jwt.token", nil)
	mockService.On("Login", mock.Anything, "admin@example.com", "wrong").
		Return("", fmt.Errorf("%w: invalid credentials", common.ErrUnauthorized))

	c, w := newJSONContext("POST", "/api/auth/login", `{"email":"admin@example.com","password":"secret-pass"}`)
	handler.Login(c)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "signed.jwt.token", decodeBody[LoginResponse](t, w).Token)

	c, w = newJSONContext("POST", "/api/auth/login", `{"email":"admin@example.com","password":"wrong"}`)
	handler.Login(c)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	c, w = newJSONContext("POST", "/api/auth/login", `{"email":"admin@example.com"}`)
	handler.Login(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthHandler_Profile(t *testing.T) {
	mockService := new(MockAuthService)
	handler := NewAuthHandler(mockService)

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	mockService.On("Profile", mock.Anything, uint(1)).
		Return(&users.User{ID: 1, Email: "admin@example.com", PasswordHash: "$2a$secret", CreatedAt: created}, nil)

	c, w := newJSONContext("GET", "/api/auth/profile", "")
	c.Set(claimsKey, &users.Claims{UserID: 1, Email: "admin@example.com"})
	handler.Profile(c)

	assert.Equal(t, http.StatusOK, w.Code)
	body := decodeBody[ProfileResponse](t, w)
	assert.Equal(t, "admin@example.com", body.User.Email)
	assert.NotContains(t, w.Body.String(), "$2a$secret")
}

func TestAuthHandler_Profile_WithoutClaims(t *testing.T) {
	handler := NewAuthHandler(new(MockAuthService))

	c, w := newJSONContext("GET", "/api/auth/profile", "")
	handler.Profile(c)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
