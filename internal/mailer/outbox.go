package mailer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/tempdev/site/internal/storage"
)

// OutboxSender writes each message as an .eml file instead of sending it.
// Meant for local development where no SMTP relay is available.
type OutboxSender struct {
	store storage.Storage
}

func NewOutboxSender(store storage.Storage) *OutboxSender {
	return &OutboxSender{store: store}
}

func (o *OutboxSender) Send(ctx context.Context, msg Message) error {
	m, err := msg.build()
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if _, err := m.WriteTo(&buf); err != nil {
		return fmt.Errorf("mailer: render: %w", err)
	}

	key := fmt.Sprintf("%s_%s.eml", time.Now().UTC().Format("20060102T150405"), uuid.NewString())
	loc, err := o.store.Save(ctx, key, &buf, "message/rfc822")
	if err != nil {
		return fmt.Errorf("mailer: outbox: %w", err)
	}
	slog.Debug("email written to outbox", "to", msg.To, "path", loc)
	return nil
}
