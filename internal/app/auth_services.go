package app

import (
	"context"
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/MGTheTrain/portfolio-api/internal/domain/common"
	"github.com/MGTheTrain/portfolio-api/internal/domain/users"
	"github.com/MGTheTrain/portfolio-api/internal/pkg/logger"
)

// authService implements the users.AuthService interface
type authService struct {
	repo   users.Repository
	hasher users.PasswordHasher
	tokens users.TokenManager
	logger logger.Logger
}

// NewAuthService creates a new instance of AuthService
func NewAuthService(repo users.Repository, hasher users.PasswordHasher, tokens users.TokenManager, logger logger.Logger) (users.AuthService, error) {
	return &authService{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
		logger: logger,
	}, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.GetByEmail(ctx, users.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return "", fmt.Errorf("%w: invalid credentials", common.ErrUnauthorized)
		}
		return "", err
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			s.logger.Warn("failed login attempt", "user_id", user.ID)
			return "", fmt.Errorf("%w: invalid credentials", common.ErrUnauthorized)
		}
		return "", err
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return "", err
	}
	s.logger.Info("user logged in", "user_id", user.ID)
	return token, nil
}

func (s *authService) Authenticate(_ context.Context, token string) (*users.Claims, error) {
	return s.tokens.Verify(token)
}

func (s *authService) Profile(ctx context.Context, userID uint) (*users.User, error) {
	return s.repo.GetByID(ctx, userID)
}

func (s *authService) CreateUser(ctx context.Context, email, password string) (*users.User, error) {
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &users.User{Email: email, PasswordHash: hash}
	if err := user.Validate(); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) SetPassword(ctx context.Context, email, password string) error {
	user, err := s.repo.GetByEmail(ctx, users.NormalizeEmail(email))
	if err != nil {
		return err
	}

	hash, err := s.hashPassword(password)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	if err := s.repo.Update(ctx, user); err != nil {
		return err
	}
	s.logger.Info("password changed", "user_id", user.ID)
	return nil
}

func (s *authService) EnsureAdmin(ctx context.Context, email, password string) error {
	_, err := s.repo.GetByEmail(ctx, users.NormalizeEmail(email))
	if err == nil {
		return nil
	}
	if !errors.Is(err, common.ErrNotFound) {
		return err
	}

	user, err := s.CreateUser(ctx, email, password)
	if err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}
	s.logger.Info("admin user created", "user_id", user.ID)
	return nil
}

func (s *authService) hashPassword(password string) (string, error) {
	if utf8.RuneCountInString(password) < users.MinPasswordLength {
		return "", common.Invalid("password must be at least %d characters", users.MinPasswordLength)
	}
	// bcrypt ignores everything past 72 bytes.
	if len(password) > 72 {
		return "", common.Invalid("password must not exceed 72 bytes")
	}
	return s.hasher.Hash(password)
}
