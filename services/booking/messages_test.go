package booking

import (
	"testing"
	"time"

	"flowerdecor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBooking() models.Booking {
	return models.Booking{
		BookingID:   "BK1764547200123",
		Name:        "Asha",
		Email:       "asha@example.com",
		PhoneNumber: "+91 99641 18761",
		EventType:   "Wedding",
		EventDate:   time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC),
		Venue:       "Lotus Hall",
		GuestCount:  "150",
		Budget:      "₹30K-₹50K",
		FloralStyle: []string{"Classic Floral", "Royal Luxury"},
	}
}

func TestCustomerConfirmation(t *testing.T) {
	msg, err := CustomerConfirmation(sampleBooking())
	require.NoError(t, err)

	assert.Equal(t, models.NotificationCustomer, msg.Kind)
	assert.Equal(t, "asha@example.com", msg.To)
	assert.Contains(t, msg.Subject, "BK1764547200123")
	assert.Contains(t, msg.HTMLBody, "1 December 2025")
	assert.Contains(t, msg.HTMLBody, "Lotus Hall")
	assert.Contains(t, msg.HTMLBody, "Classic Floral, Royal Luxury")
	assert.Contains(t, msg.HTMLBody, "We will contact you within 24 hours.")
	assert.NotContains(t, msg.HTMLBody, "99641")
}

func TestCustomerConfirmationFallbacks(t *testing.T) {
	b := sampleBooking()
	b.Venue, b.GuestCount, b.Budget, b.FloralStyle = "", "", "", nil

	msg, err := CustomerConfirmation(b)
	require.NoError(t, err)

	assert.Contains(t, msg.HTMLBody, "<strong>Venue:</strong> TBD")
	assert.Contains(t, msg.HTMLBody, "<strong>Guests:</strong> Not specified")
	assert.Contains(t, msg.HTMLBody, "<strong>Style:</strong> Not specified")
}

func TestOperatorAlert(t *testing.T) {
	b := sampleBooking()
	b.PhoneNumber = ""

	msg, err := OperatorAlert(b, "ops@flowerdecor.com")
	require.NoError(t, err)

	assert.Equal(t, models.NotificationOperator, msg.Kind)
	assert.Equal(t, "ops@flowerdecor.com", msg.To)
	assert.Equal(t, "asha@example.com", msg.ReplyTo)
	assert.Contains(t, msg.Subject, "New Booking Received - BK1764547200123")
	assert.Contains(t, msg.HTMLBody, "<strong>Phone:</strong> N/A")
	assert.Contains(t, msg.HTMLBody, "asha@example.com")
	assert.Contains(t, msg.HTMLBody, "<strong>Venue:</strong> Lotus Hall")
	assert.Contains(t, msg.HTMLBody, "<strong>Style:</strong> Classic Floral, Royal Luxury")
}

func TestOperatorAlertFallbacks(t *testing.T) {
	b := sampleBooking()
	b.Venue, b.GuestCount, b.Budget, b.FloralStyle = "", "", "", nil

	msg, err := OperatorAlert(b, "ops@flowerdecor.com")
	require.NoError(t, err)

	assert.Contains(t, msg.HTMLBody, "<strong>Venue:</strong> N/A")
	assert.Contains(t, msg.HTMLBody, "<strong>Guests:</strong> N/A")
	assert.Contains(t, msg.HTMLBody, "<strong>Budget:</strong> N/A")
	assert.Contains(t, msg.HTMLBody, "<strong>Style:</strong> N/A")
}

func TestMessagesEscapeUserInput(t *testing.T) {
	b := sampleBooking()
	b.Name = `<script>alert("x")</script>`

	msg, err := OperatorAlert(b, "ops@flowerdecor.com")
	require.NoError(t, err)
	assert.NotContains(t, msg.HTMLBody, "<script>")
	assert.Contains(t, msg.HTMLBody, "&lt;script&gt;")
}
