package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tempdev/site/internal/apperr"
	"github.com/tempdev/site/internal/model"
	"github.com/tempdev/site/internal/repository"
)

// AuthServiceImpl is the AuthService implementation.
type AuthServiceImpl struct {
	userRepo repository.UserRepository
}

// NewAuthService creates an AuthServiceImpl backed by userRepo.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &AuthServiceImpl{userRepo: userRepo}
}

// Signup creates an account. Emails are unique regardless of case.
func (s *AuthServiceImpl) Signup(ctx context.Context, req SignupRequest) (*model.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" || req.Password == "" {
		return nil, apperr.Validation("Missing required fields.")
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		return nil, apperr.Store("Could not create account.", err)
	}
	u := &model.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.userRepo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, apperr.Conflict("Email already registered.")
		}
		slog.Error("create user failed", "error", err)
		return nil, apperr.Store("Could not create account.", err)
	}
	slog.Info("new user created", "user_id", u.ID)
	return u, nil
}

// Login returns the user when email and password match.
func (s *AuthServiceImpl) Login(ctx context.Context, email, password string) (*model.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperr.Validation("Missing email or password.")
	}

	u, err := s.userRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, apperr.Unauthorized("Invalid credentials.")
	}
	if err != nil {
		slog.Error("find user failed", "error", err)
		return nil, apperr.Store("Could not sign in.", err)
	}
	if !VerifyPassword(password, u.PasswordHash) {
		slog.Debug("password mismatch", "user_id", u.ID)
		return nil, apperr.Unauthorized("Invalid credentials.")
	}
	return u, nil
}
