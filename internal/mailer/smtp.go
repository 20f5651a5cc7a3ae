package mailer

import (
	"context"
	"fmt"

	"github.com/tempdev/site/internal/config"
	"github.com/wneessen/go-mail"
)

// implicitTLSPort is the SMTPS port; every other port negotiates STARTTLS when offered.
const implicitTLSPort = 465

// SMTPSender delivers through an SMTP relay with PLAIN auth. Each Send dials
// its own connection, so one SMTPSender can be used from many goroutines.
type SMTPSender struct {
	host string
	opts []mail.Option
}

// NewSMTPSender returns ErrNotConfigured unless host, port, user and password are all set.
func NewSMTPSender(cfg config.SMTPConfig) (*SMTPSender, error) {
	if !cfg.Configured() {
		return nil, ErrNotConfigured
	}
	opts := []mail.Option{
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.User),
		mail.WithPassword(cfg.Pass),
	}
	if cfg.Timeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.Timeout))
	}
	if cfg.Port == implicitTLSPort {
		opts = append(opts, mail.WithSSL())
	} else {
		opts = append(opts, mail.WithTLSPolicy(mail.TLSOpportunistic))
	}
	return &SMTPSender{host: cfg.Host, opts: opts}, nil
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	m, err := msg.build()
	if err != nil {
		return err
	}
	client, err := mail.NewClient(s.host, s.opts...)
	if err != nil {
		return fmt.Errorf("mailer: smtp client: %w", err)
	}
	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mailer: send to %s: %w", msg.To, err)
	}
	return nil
}
