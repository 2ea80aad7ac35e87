package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shoplite/internal/common"
	"shoplite/internal/models"
	"shoplite/internal/repositories"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles registration and credential verification. Login returns
// a bare identity summary; no session token is minted.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (*models.User, error)
	Authenticate(ctx context.Context, email, password string) (*models.UserSummary, error)
}

type authService struct {
	userRepo repositories.UserRepository
}

func NewAuthService(userRepo repositories.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register stores a new user with a bcrypt digest of the password. The
// plaintext is never persisted. Duplicate username/email surfaces as
// ErrDuplicateIdentity from the repository's unique constraints, so
// concurrent registrations cannot race past a check-then-insert window.
func (s *authService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if err := common.ValidateRequiredString(username, "username"); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}
	if err := common.ValidateRequiredString(email, "email"); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}
	if err := common.ValidateRequiredString(password, "password"); err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		CreatedAt:    time.Now(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Authenticate verifies the password against the stored digest. The bcrypt
// comparison is deliberately slow and runs before any further storage access.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*models.UserSummary, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return nil, common.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}

	return user.Summary(), nil
}
