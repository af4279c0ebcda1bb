package notification

import (
	"context"
	"errors"
	"fmt"

	"flowerdecor/models"
)

// ErrNotConfigured is returned when no mail credentials were supplied.
var ErrNotConfigured = errors.New("email transporter not configured")

// Sender delivers one transactional email. Implementations never retry.
type Sender interface {
	Send(ctx context.Context, msg models.NotificationMessage) error
}

// DeliveryError reports a failed send. The booking it belongs to stays persisted.
type DeliveryError struct {
	Kind      models.NotificationKind
	Recipient string
	Err       error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("deliver %s email to %s: %v", e.Kind, e.Recipient, e.Err)
}

func (e *DeliveryError) Unwrap() error { return e.Err }

// Ready reports whether sender can attempt deliveries at all. Senders that do not
// implement Ready() error are assumed ready.
func Ready(sender Sender) error {
	if sender == nil {
		return ErrNotConfigured
	}
	if r, ok := sender.(interface{ Ready() error }); ok {
		return r.Ready()
	}
	return nil
}

// DisabledSender stands in when SMTP credentials are missing.
type DisabledSender struct{}

func (DisabledSender) Ready() error { return ErrNotConfigured }

func (DisabledSender) Send(_ context.Context, msg models.NotificationMessage) error {
	return &DeliveryError{Kind: msg.Kind, Recipient: msg.To, Err: ErrNotConfigured}
}
