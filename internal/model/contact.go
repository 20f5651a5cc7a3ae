package model

import "time"

// Delivery status of the two emails sent for a contact submission.
const (
	ContactStatusPending     = "pending"
	ContactStatusSent        = "sent"
	ContactStatusEmailFailed = "email_failed"
)

// ContactSubmission is one contact-form submission. Everything except Status
// is written once; Status records the outcome of the email dispatch.
type ContactSubmission struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Budget      string    `json:"budget"`
	ProjectType string    `json:"projectType"`
	Details     string    `json:"details"`
	Ticket      string    `json:"ticket"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ContactListOptions carries filter and pagination parameters for listing submissions.
type ContactListOptions struct {
	// Status filters by delivery status. Empty string and "all" return everything.
	Status string
	Limit  int
	Offset int
}
