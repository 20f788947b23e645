package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"

	"github.com/golang-jwt/jwt/v5"
)

const issuer = "portfolio-api"

// AccessClaims is the payload of an access token.
type AccessClaims struct {
	jwt.RegisteredClaims
	Email string `json:"email"`
}

// JWTManager signs and parses HS256 access tokens.
type JWTManager struct {
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

// NewJWTManager creates a token manager. ttl is the lifetime of issued tokens.
func NewJWTManager(signingKey string, ttl time.Duration) (*JWTManager, error) {
	if signingKey == "" {
		return nil, errors.New("jwt signing key must not be empty")
	}
	if ttl <= 0 {
		return nil, fmt.Errorf("invalid token ttl %s", ttl)
	}
	return &JWTManager{
		signingKey: []byte(signingKey),
		ttl:        ttl,
		now:        time.Now,
	}, nil
}

// Issue returns a signed token for user.
func (m *JWTManager) Issue(user *users.User) (string, error) {
	now := m.now()
	claims := AccessClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   strconv.FormatUint(uint64(user.ID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		Email: user.Email,
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return token, nil
}

// Verify checks signature, algorithm, issuer and expiry. Every failure wraps
// common.ErrUnauthorized.
func (m *JWTManager) Verify(tokenStr string) (*users.Claims, error) {
	tok, err := jwt.ParseWithClaims(tokenStr, &AccessClaims{}, func(token *jwt.Token) (any, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return m.signingKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrUnauthorized, err)
	}

	claims, ok := tok.Claims.(*AccessClaims)
	if !ok || !tok.Valid {
		return nil, fmt.Errorf("%w: invalid token", common.ErrUnauthorized)
	}

	id, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || id == 0 {
		return nil, fmt.Errorf("%w: invalid subject", common.ErrUnauthorized)
	}

	return &users.Claims{
		UserID:    uint(id),
		Email:     claims.Email,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
