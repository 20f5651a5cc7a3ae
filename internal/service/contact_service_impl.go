package service

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tempdev/site/internal/apperr"
	"github.com/tempdev/site/internal/mailer"
	"github.com/tempdev/site/internal/model"
	"github.com/tempdev/site/internal/repository"
	"golang.org/x/sync/errgroup"
)

// contactServiceImpl is the production implementation of ContactService.
type contactServiceImpl struct {
	repo   repository.ContactRepository
	sender mailer.Sender
	cfg    ContactConfig
	now    func() time.Time
}

// NewContactService creates a ContactService. sender may be nil, in which
// case every submission fails with a configuration error before anything is stored.
func NewContactService(repo repository.ContactRepository, sender mailer.Sender, cfg ContactConfig) ContactService {
	return &contactServiceImpl{
		repo:   repo,
		sender: sender,
		cfg:    cfg,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func (s *contactServiceImpl) Submit(ctx context.Context, req ContactRequest) (*model.ContactSubmission, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	if name == "" || email == "" {
		return nil, apperr.Validation("Name and email required.")
	}

	// Checked before persisting so an unconfigured deployment stores nothing.
	if s.sender == nil {
		slog.Error("contact submission rejected: mail transport not configured")
		return nil, apperr.Configuration("Email service not configured.")
	}

	rec := &model.ContactSubmission{
		ID:          uuid.NewString(),
		Name:        name,
		Email:       email,
		Budget:      req.Budget,
		ProjectType: req.ProjectType,
		Details:     req.Details,
		Ticket:      NewTicket(),
		Status:      model.ContactStatusPending,
		CreatedAt:   s.now(),
	}
	if err := s.repo.Save(ctx, rec); err != nil {
		slog.Error("save contact submission failed", "ticket", rec.Ticket, "error", err)
		return nil, apperr.Store("Could not save your request.", err)
	}

	sendErr := s.dispatch(ctx, rec)

	rec.Status = model.ContactStatusSent
	if sendErr != nil {
		rec.Status = model.ContactStatusEmailFailed
	}
	// The record outlives the request, so the status update must too.
	if err := s.repo.UpdateStatus(context.WithoutCancel(ctx), rec.ID, rec.Status); err != nil {
		slog.Warn("update contact status failed", "ticket", rec.Ticket, "status", rec.Status, "error", err)
	}

	if sendErr != nil {
		slog.Error("contact email failed", "ticket", rec.Ticket, "error", sendErr)
		return nil, apperr.EmailDelivery("Email send failed.", sendErr)
	}

	slog.Info("contact submission received", "ticket", rec.Ticket, "id", rec.ID)
	return rec, nil
}

// dispatch sends the owner notification and the acknowledgment concurrently.
// The first failure cancels the other send and is returned.
func (s *contactServiceImpl) dispatch(ctx context.Context, rec *model.ContactSubmission) error {
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return s.sender.Send(gctx, ownerNotification(rec, s.cfg))
	})
	g.Go(func() error {
		return s.sender.Send(gctx, submitterAcknowledgment(rec, s.cfg))
	})
	return g.Wait()
}

func (s *contactServiceImpl) List(ctx context.Context, opts model.ContactListOptions) ([]*model.ContactSubmission, error) {
	return s.repo.List(ctx, opts)
}
