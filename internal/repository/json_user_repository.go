package repository

import (
	"context"
	"strings"

	"github.com/tempdev/site/internal/model"
)

// JSONUserRepository stores accounts in a JSON array file (users.json).
type JSONUserRepository struct {
	file *jsonFile[model.User]
}

// NewJSONUserRepository opens path, creating an empty array if it is missing.
func NewJSONUserRepository(path string) (*JSONUserRepository, error) {
	f, err := openJSONFile[model.User](path)
	if err != nil {
		return nil, err
	}
	return &JSONUserRepository{file: f}, nil
}

var _ UserRepository = (*JSONUserRepository)(nil)

// FindByEmail looks the user up ignoring case.
func (r *JSONUserRepository) FindByEmail(_ context.Context, email string) (*model.User, error) {
	users, err := r.file.read()
	if err != nil {
		return nil, err
	}
	for _, u := range users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

// Create appends u unless another account already uses the same email.
// The uniqueness check and the append happen under the same lock.
func (r *JSONUserRepository) Create(_ context.Context, u *model.User) error {
	return r.file.update(func(users []model.User) ([]model.User, error) {
		for _, existing := range users {
			if strings.EqualFold(existing.Email, u.Email) {
				return nil, ErrDuplicateEmail
			}
		}
		return append(users, *u), nil
	})
}
