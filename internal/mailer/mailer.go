package mailer

import (
	"context"
	"errors"
	"fmt"

	"github.com/tempdev/site/internal/config"
	"github.com/tempdev/site/internal/storage"
	"github.com/wneessen/go-mail"
)

// ErrNotConfigured means no transport could be built from the configuration.
var ErrNotConfigured = errors.New("mailer: transport not configured")

// Message is a plain-text email.
type Message struct {
	From    string
	To      string
	ReplyTo string // optional
	Subject string
	Text    string
}

// Sender delivers messages.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}

// New picks the transport: SMTP when all SMTP settings are present, else the
// file outbox when outboxDir is set. It returns ErrNotConfigured otherwise.
func New(smtp config.SMTPConfig, outboxDir string) (Sender, error) {
	if smtp.Configured() {
		s, err := NewSMTPSender(smtp)
		if err != nil {
			return nil, err
		}
		return s, nil
	}
	if outboxDir != "" {
		return NewOutboxSender(storage.NewLocalStorage(outboxDir)), nil
	}
	return nil, ErrNotConfigured
}

// build renders msg as a MIME message.
func (m Message) build() (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.From); err != nil {
		return nil, fmt.Errorf("mailer: from %q: %w", m.From, err)
	}
	if err := msg.To(m.To); err != nil {
		return nil, fmt.Errorf("mailer: to %q: %w", m.To, err)
	}
	if m.ReplyTo != "" {
		if err := msg.ReplyTo(m.ReplyTo); err != nil {
			return nil, fmt.Errorf("mailer: reply-to %q: %w", m.ReplyTo, err)
		}
	}
	msg.Subject(m.Subject)
	msg.SetDate()
	msg.SetMessageID()
	msg.SetBodyString(mail.TypeTextPlain, m.Text)
	return msg, nil
}
