package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"flowerdecor/config"
	"flowerdecor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() config.Config {
	return config.Config{
		SMTPHost:     "127.0.0.1",
		SMTPPort:     1,
		SMTPUser:     "decor@example.com",
		SMTPPass:     "app-password",
		MailFromName: "Flower Decor",
		MailTimeout:  time.Second,
	}
}

func TestNewSMTPMailerRequiresCredentials(t *testing.T) {
	cfg := testConfig()
	cfg.SMTPPass = ""

	_, err := NewSMTPMailer(cfg, zap.NewNop())
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestSMTPMailerRejectsInvalidRecipient(t *testing.T) {
	mailer, err := NewSMTPMailer(testConfig(), zap.NewNop())
	require.NoError(t, err)

	err = mailer.Send(context.Background(), models.NotificationMessage{
		Kind:    models.NotificationCustomer,
		To:      "not an address",
		Subject: "Booking Confirmed!",
	})

	var dErr *DeliveryError
	require.True(t, errors.As(err, &dErr))
	assert.Equal(t, models.NotificationCustomer, dErr.Kind)
	assert.Equal(t, "not an address", dErr.Recipient)
}

func TestSMTPMailerUnreachableRelay(t *testing.T) {
	mailer, err := NewSMTPMailer(testConfig(), zap.NewNop())
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err = mailer.Send(ctx, models.NotificationMessage{
		Kind:    models.NotificationOperator,
		To:      "ops@example.com",
		Subject: "New Booking Received - BK1",
	})

	var dErr *DeliveryError
	require.True(t, errors.As(err, &dErr))
	assert.Equal(t, "ops@example.com", dErr.Recipient)
	assert.NoError(t, mailer.Ready())
}

func TestDisabledSender(t *testing.T) {
	var sender Sender = DisabledSender{}
	assert.ErrorIs(t, Ready(sender), ErrNotConfigured)
	assert.ErrorIs(t, Ready(nil), ErrNotConfigured)

	err := sender.Send(context.Background(), models.NotificationMessage{Kind: models.NotificationContact, To: "x@example.com"})
	var dErr *DeliveryError
	require.True(t, errors.As(err, &dErr))
	assert.ErrorIs(t, err, ErrNotConfigured)
	assert.Contains(t, err.Error(), "contact")
}
