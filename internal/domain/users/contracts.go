package users

import (
	"context"
)

// AuthService authenticates administrators and manages their accounts.
type AuthService interface {
	// Login checks the credentials and returns a signed access token.
	// Unknown users and wrong passwords both yield common.ErrUnauthorized.
	Login(ctx context.Context, email, password string) (string, error)
	// Authenticate verifies an access token.
	Authenticate(ctx context.Context, token string) (*Claims, error)
	Profile(ctx context.Context, userID uint) (*User, error)
	CreateUser(ctx context.Context, email, password string) (*User, error)
	SetPassword(ctx context.Context, email, password string) error
	// EnsureAdmin creates the user unless one with the same e-mail exists.
	EnsureAdmin(ctx context.Context, email, password string) error
}

// Repository defines the persistence operations for User
type Repository interface {
	Create(ctx context.Context, u *User) error
	GetByID(ctx context.Context, id uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Update(ctx context.Context, u *User) error
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenManager issues and verifies access tokens.
type TokenManager interface {
	Issue(user *User) (string, error)
	Verify(token string) (*Claims, error)
}
