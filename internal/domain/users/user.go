// Package users models the administrators allowed to change portfolio content.
package users

import (
	"strings"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
)

// User entity. PasswordHash never leaves the application layer.
type User struct {
	ID           uint
	Email        string `validate:"required,email,max=255"`
	PasswordHash string `validate:"required"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Validate normalises the e-mail address and checks every field.
func (u *User) Validate() error {
	u.Email = NormalizeEmail(u.Email)
	return common.ValidateStruct(u)
}

// NormalizeEmail lower-cases and trims an e-mail address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// MinPasswordLength applies to every password set through the application.
const MinPasswordLength = 8

// Claims are the facts carried by an access token.
type Claims struct {
	UserID    uint
	Email     string
	ExpiresAt time.Time
}
