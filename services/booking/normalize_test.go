package booking

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeFoldsLegacyFields(t *testing.T) {
	booking, err := normalize(map[string]any{
		"name":        "  Asha ",
		"email":       "asha@example.com",
		"eventType":   "Wedding",
		"eventDate":   "2025-12-01",
		"guests":      float64(150),
		"requests":    "Marigold entrance arch",
		"floralStyle": []any{"Classic Floral", " ", "Royal Luxury"},
		"budget":      "₹30K-₹50K",
	})
	require.NoError(t, err)

	assert.Equal(t, "Asha", booking.Name)
	assert.Equal(t, "150", booking.GuestCount)
	assert.Equal(t, "Marigold entrance arch", booking.Message)
	assert.Equal(t, []string{"Classic Floral", "Royal Luxury"}, booking.FloralStyle)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), booking.EventDate)
}

func TestNormalizePrefersCanonicalNames(t *testing.T) {
	booking, err := normalize(map[string]any{
		"name": "Asha", "email": "asha@example.com", "eventType": "Wedding",
		"eventDate":  "2025-12-01T18:30:00+05:30",
		"guestCount": "80", "guests": "200",
		"message": "canonical", "requests": "legacy",
		"floralStyle": "Boho Chic",
	})
	require.NoError(t, err)

	assert.Equal(t, "80", booking.GuestCount)
	assert.Equal(t, "canonical", booking.Message)
	assert.Equal(t, []string{"Boho Chic"}, booking.FloralStyle)
	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), booking.EventDate)
}

func TestNormalizeKeepsCalendarDayOfOffsetDates(t *testing.T) {
	testCases := []struct {
		in   string
		want time.Time
	}{
		{in: "2025-12-01T00:00:00+05:30", want: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2025-12-01T23:30:00-08:00", want: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
		{in: "2025-12-01T10:15:00.250Z", want: time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range testCases {
		t.Run(tc.in, func(t *testing.T) {
			got, err := parseEventDate(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNormalizeRequiresStringFields(t *testing.T) {
	_, err := normalize(map[string]any{
		"name": float64(0), "email": "asha@example.com", "eventType": false, "eventDate": []any{"2025-12-01"},
	})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"name", "eventType", "eventDate"}, vErr.InvalidFields)
}

func TestNormalizeRejectsMalformedValues(t *testing.T) {
	_, err := normalize(map[string]any{
		"name": "Asha", "email": "asha-at-example", "eventType": "Wedding", "eventDate": "next friday",
	})

	var vErr *ValidationError
	require.True(t, errors.As(err, &vErr))
	assert.Equal(t, []string{"email", "eventDate"}, vErr.InvalidFields)
	assert.Contains(t, vErr.Error(), "invalid: email, eventDate")
}
