package repository

import (
	"context"

	"github.com/tempdev/site/internal/model"
)

// DB checks that the backing store is reachable.
type DB interface {
	Ping(ctx context.Context) error
}

// ContactRepository is the Contact Store: append plus delivery-status updates.
type ContactRepository interface {
	Save(ctx context.Context, c *model.ContactSubmission) error
	UpdateStatus(ctx context.Context, id, status string) error
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
}

// UserRepository persists site accounts. Emails are unique case-insensitively.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) error
}
