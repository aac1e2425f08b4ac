package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/taskman/internal/common"
	"github.com/dmitrijs2005/taskman/internal/cryptox"
	"github.com/dmitrijs2005/taskman/internal/logging"
	"github.com/dmitrijs2005/taskman/internal/models"
	"github.com/dmitrijs2005/taskman/internal/repositories/users"
	"github.com/google/uuid"
)

// AuthService creates accounts and verifies credentials. Returned users never
// carry the password hash.
type AuthService interface {
	SignUp(ctx context.Context, email string, password []byte, name string) (*models.User, error)
	SignIn(ctx context.Context, email string, password []byte) (*models.User, error)
}

type authService struct {
	users  users.Repository
	hasher *cryptox.PasswordHasher
	logger logging.Logger
	newID  func() string
}

// NewAuthService constructs an AuthService over the users repository.
func NewAuthService(repo users.Repository, hasher *cryptox.PasswordHasher, logger logging.Logger) AuthService {
	return &authService{
		users:  repo,
		hasher: hasher,
		logger: logger.With("component", "auth"),
		newID:  uuid.NewString,
	}
}

// SignUp hashes the password, assigns a fresh id and stores the user.
// The email is stored as given; uniqueness is left to the store.
func (s *authService) SignUp(ctx context.Context, email string, password []byte, name string) (*models.User, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", common.ErrValidation)
	}
	if len(password) == 0 {
		return nil, fmt.Errorf("%w: password is required", common.ErrValidation)
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		ID:           s.newID(),
		Email:        email,
		Name:         name,
		PasswordHash: hashed,
	}
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, common.ErrDuplicateEmail) {
			s.logger.Info(ctx, "sign-up rejected: email taken")
			return nil, err
		}
		s.logger.Error(ctx, "sign-up failed", "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "user signed up", "user_id", user.ID)
	return user.Public(), nil
}

// SignIn looks the email up verbatim and verifies the password. An unknown
// email still costs one bcrypt comparison, and both failures return the same
// common.ErrInvalidCredentials.
func (s *authService) SignIn(ctx context.Context, email string, password []byte) (*models.User, error) {
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			s.hasher.CompareDummy(password)
			s.logger.Info(ctx, "sign-in rejected")
			return nil, common.ErrInvalidCredentials
		}
		s.logger.Error(ctx, "sign-in failed", "error", err)
		return nil, err
	}

	if !s.hasher.Compare(user.PasswordHash, password) {
		s.logger.Info(ctx, "sign-in rejected")
		return nil, common.ErrInvalidCredentials
	}

	s.logger.Info(ctx, "user signed in", "user_id", user.ID)
	return user.Public(), nil
}
