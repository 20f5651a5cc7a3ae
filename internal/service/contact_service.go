package service

import (
	"context"

	"github.com/tempdev/site/internal/model"
)

// ContactRequest is the raw contact-form input.
type ContactRequest struct {
	Name        string
	Email       string
	Budget      string
	ProjectType string
	Details     string
}

// ContactService defines the contact-intake workflow.
type ContactService interface {
	// Submit validates req, persists a new submission and emails both the
	// owner and the submitter. Failures are *apperr.Error values.
	Submit(ctx context.Context, req ContactRequest) (*model.ContactSubmission, error)

	// List returns stored submissions according to the given options.
	List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error)
}

// ContactConfig holds the deployment-specific parts of the emails.
type ContactConfig struct {
	OwnerAddress string // receives the owner notification
	FromAddress  string
	ReplyHours   int // reply-time promise in the acknowledgment
	SiteName     string
}
