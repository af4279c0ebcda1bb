package booking

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"flowerdecor/models"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var eventDateLayouts = []string{"2006-01-02", time.RFC3339Nano, time.RFC3339}

// normalize maps a validated raw submission onto the canonical Booking schema.
// Required fields must be JSON strings. Legacy names are folded in: "guests" for
// guestCount and "requests" for message.
func normalize(raw map[string]any) (models.Booking, error) {
	booking := models.Booking{
		Name:        stringField(raw, "name"),
		Email:       stringField(raw, "email"),
		PhoneNumber: stringField(raw, "phoneNumber"),
		EventType:   stringField(raw, "eventType"),
		Venue:       stringField(raw, "venue"),
		GuestCount:  firstNonEmpty(stringField(raw, "guestCount"), stringField(raw, "guests")),
		Budget:      stringField(raw, "budget"),
		FloralStyle: stringList(raw["floralStyle"]),
		Message:     firstNonEmpty(stringField(raw, "message"), stringField(raw, "requests")),
	}

	vErr := &ValidationError{}
	for _, field := range RequiredFields {
		if _, ok := raw[field].(string); !ok {
			vErr.InvalidFields = append(vErr.InvalidFields, field)
		}
	}
	if !slices.Contains(vErr.InvalidFields, "email") {
		if err := validate.Var(booking.Email, "required,email"); err != nil {
			vErr.InvalidFields = append(vErr.InvalidFields, "email")
		}
	}
	if !slices.Contains(vErr.InvalidFields, "eventDate") {
		date, err := parseEventDate(stringField(raw, "eventDate"))
		if err != nil {
			vErr.InvalidFields = append(vErr.InvalidFields, "eventDate")
		}
		booking.EventDate = date
	}

	if len(vErr.InvalidFields) > 0 {
		return models.Booking{}, vErr
	}
	return booking, nil
}

// parseEventDate keeps the calendar day in the offset the client sent.
func parseEventDate(s string) (time.Time, error) {
	for _, layout := range eventDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized event date %q", s)
}

func stringField(raw map[string]any, key string) string {
	switch v := raw[key].(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprint(v))
	}
}

// stringList accepts a single style or a list of styles and drops blanks.
func stringList(v any) []string {
	var out []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	switch val := v.(type) {
	case string:
		add(val)
	case []string:
		for _, s := range val {
			add(s)
		}
	case []any:
		for _, item := range val {
			if s, ok := item.(string); ok {
				add(s)
			}
		}
	}
	return out
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
