package service

import (
	"context"

	"github.com/tempdev/site/internal/model"
)

// SignupRequest is the raw signup input.
type SignupRequest struct {
	Name     string
	Email    string
	Password string
}

// AuthService handles account creation and credential checks.
// No session or token is issued.
type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (*model.User, error)
	Login(ctx context.Context, email, password string) (*model.User, error)
}
