package notification

import (
	"context"
	"fmt"

	"flowerdecor/config"
	"flowerdecor/models"

	"github.com/wneessen/go-mail"
	"go.uber.org/zap"
)

// SMTPMailer sends mail through an authenticated SMTP relay (Gmail app passwords by default).
// A fresh client is dialed per message, so concurrent sends share no connection state.
type SMTPMailer struct {
	host     string
	opts     []mail.Option
	fromName string
	fromAddr string
	logger   *zap.Logger
}

func NewSMTPMailer(cfg config.Config, logger *zap.Logger) (*SMTPMailer, error) {
	if !cfg.MailConfigured() {
		return nil, ErrNotConfigured
	}
	opts := []mail.Option{
		mail.WithPort(cfg.SMTPPort),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.SMTPUser),
		mail.WithPassword(cfg.SMTPPass),
		mail.WithTLSPolicy(mail.TLSMandatory),
	}
	if cfg.MailTimeout > 0 {
		opts = append(opts, mail.WithTimeout(cfg.MailTimeout))
	}
	// Validate the option set once so misconfiguration fails at startup.
	if _, err := mail.NewClient(cfg.SMTPHost, opts...); err != nil {
		return nil, fmt.Errorf("invalid SMTP configuration: %w", err)
	}
	return &SMTPMailer{
		host:     cfg.SMTPHost,
		opts:     opts,
		fromName: cfg.MailFromName,
		fromAddr: cfg.SMTPUser,
		logger:   logger,
	}, nil
}

func (m *SMTPMailer) Ready() error { return nil }

// Verify dials and authenticates against the relay without sending anything.
func (m *SMTPMailer) Verify(ctx context.Context) error {
	client, err := mail.NewClient(m.host, m.opts...)
	if err != nil {
		return err
	}
	if err := client.DialWithContext(ctx); err != nil {
		return err
	}
	return client.Close()
}

func (m *SMTPMailer) Send(ctx context.Context, message models.NotificationMessage) error {
	fail := func(err error) error {
		m.logger.Warn("email delivery failed",
			zap.String("kind", string(message.Kind)),
			zap.String("to", message.To),
			zap.Error(err),
		)
		return &DeliveryError{Kind: message.Kind, Recipient: message.To, Err: err}
	}

	msg := mail.NewMsg()
	if err := msg.FromFormat(m.fromName, m.fromAddr); err != nil {
		return fail(err)
	}
	if err := msg.To(message.To); err != nil {
		return fail(err)
	}
	if message.ReplyTo != "" {
		if err := msg.ReplyTo(message.ReplyTo); err != nil {
			return fail(err)
		}
	}
	msg.Subject(message.Subject)
	msg.SetBodyString(mail.TypeTextHTML, message.HTMLBody)

	client, err := mail.NewClient(m.host, m.opts...)
	if err != nil {
		return fail(err)
	}
	if err := client.DialAndSendWithContext(ctx, msg); err != nil {
		return fail(err)
	}

	m.logger.Info("email sent", zap.String("kind", string(message.Kind)), zap.String("to", message.To))
	return nil
}
