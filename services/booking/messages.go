package booking

import (
	"fmt"
	"html/template"
	"strings"

	"flowerdecor/models"
)

const eventDateFormat = "2 January 2006"

var customerTmpl = template.Must(template.New("customer").Parse(`
<h2>Your Decoration Booking is Confirmed!</h2>
<p><strong>Booking ID:</strong> {{.BookingID}}</p>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Event:</strong> {{.EventType}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Venue:</strong> {{.Venue}}</p>
<p><strong>Guests:</strong> {{.Guests}}</p>
<p><strong>Budget:</strong> {{.Budget}}</p>
<p><strong>Style:</strong> {{.Style}}</p>
<p>We will contact you within 24 hours.</p>
`))

var operatorTmpl = template.Must(template.New("operator").Parse(`
<h2>New Booking Received</h2>
<p><strong>ID:</strong> {{.BookingID}}</p>
<p><strong>Name:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Phone:</strong> {{.Phone}}</p>
<p><strong>Event:</strong> {{.EventType}}</p>
<p><strong>Date:</strong> {{.Date}}</p>
<p><strong>Venue:</strong> {{.Venue}}</p>
<p><strong>Guests:</strong> {{.Guests}}</p>
<p><strong>Budget:</strong> {{.Budget}}</p>
<p><strong>Style:</strong> {{.Style}}</p>
{{- if .Message}}
<p><strong>Requests:</strong> {{.Message}}</p>
{{- end}}
`))

type messageView struct {
	BookingID string
	Name      string
	Email     string
	Phone     string
	EventType string
	Date      string
	Venue     string
	Guests    string
	Budget    string
	Style     string
	Message   string
}

// CustomerConfirmation builds the confirmation sent to the booking's own address.
func CustomerConfirmation(b models.Booking) (models.NotificationMessage, error) {
	view := messageView{
		BookingID: b.BookingID,
		Name:      b.Name,
		EventType: b.EventType,
		Date:      b.EventDate.Format(eventDateFormat),
		Venue:     orDefault(b.Venue, "TBD"),
		Guests:    orDefault(b.GuestCount, "Not specified"),
		Budget:    orDefault(b.Budget, "Not specified"),
		Style:     orDefault(strings.Join(b.FloralStyle, ", "), "Not specified"),
	}
	body, err := render(customerTmpl, view)
	if err != nil {
		return models.NotificationMessage{}, err
	}
	return models.NotificationMessage{
		Kind:     models.NotificationCustomer,
		To:       b.Email,
		Subject:  fmt.Sprintf("🎉 Booking Confirmed! ID: %s", b.BookingID),
		HTMLBody: body,
	}, nil
}

// OperatorAlert builds the internal notification: every booking field plus contact
// details. Replies go to the customer.
func OperatorAlert(b models.Booking, operatorEmail string) (models.NotificationMessage, error) {
	view := messageView{
		BookingID: b.BookingID,
		Name:      b.Name,
		Email:     b.Email,
		Phone:     orDefault(b.PhoneNumber, "N/A"),
		EventType: b.EventType,
		Date:      b.EventDate.Format(eventDateFormat),
		Venue:     orDefault(b.Venue, "N/A"),
		Guests:    orDefault(b.GuestCount, "N/A"),
		Budget:    orDefault(b.Budget, "N/A"),
		Style:     orDefault(strings.Join(b.FloralStyle, ", "), "N/A"),
		Message:   b.Message,
	}
	body, err := render(operatorTmpl, view)
	if err != nil {
		return models.NotificationMessage{}, err
	}
	return models.NotificationMessage{
		Kind:     models.NotificationOperator,
		To:       operatorEmail,
		ReplyTo:  b.Email,
		Subject:  fmt.Sprintf("📩 New Booking Received - %s", b.BookingID),
		HTMLBody: body,
	}, nil
}

func render(tmpl *template.Template, data any) (string, error) {
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("render %s email: %w", tmpl.Name(), err)
	}
	return sb.String(), nil
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
