package contact

import (
	"context"
	"fmt"
	"html/template"
	"net/http"
	"strings"
	"time"

	"flowerdecor/models"
	"flowerdecor/services/notification"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const defaultMailTimeout = 15 * time.Second

// Asia/Kolkata observes no DST.
var receivedZone = time.FixedZone("IST", 5*60*60+30*60)

var validate = validator.New()

var contactTmpl = template.Must(template.New("contact").Parse(`
<h2>New Contact Form</h2>
<p>Received: {{.Received}}</p>
<p><strong>Customer Name:</strong> {{.Name}}</p>
<p><strong>Email Address:</strong> {{.Email}}</p>
<p><strong>Message:</strong></p>
<div style="white-space: pre-wrap">{{.Message}}</div>
<p><em>Automated message from website contact form</em></p>
`))

// Outcome is the HTTP-level result of one contact submission.
type Outcome struct {
	Status int
	Body   models.ContactResponse
	Err    error
}

// Pipeline relays website contact messages to the operator inbox. Nothing is persisted.
type Pipeline struct {
	sender      notification.Sender
	to          string
	mailTimeout time.Duration
	now         func() time.Time
	logger      *zap.Logger
}

func NewPipeline(sender notification.Sender, contactEmail string, mailTimeout time.Duration, logger *zap.Logger) *Pipeline {
	if mailTimeout <= 0 {
		mailTimeout = defaultMailTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Pipeline{sender: sender, to: contactEmail, mailTimeout: mailTimeout, now: time.Now, logger: logger}
}

// Handle validates req and forwards it. Client cancellation does not abort a send in progress.
func (p *Pipeline) Handle(ctx context.Context, req models.ContactRequest) Outcome {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	if req.Name == "" || req.Email == "" || strings.TrimSpace(req.Message) == "" {
		return rejected(http.StatusBadRequest, "Name, email, and message are required", nil)
	}
	if err := validate.Var(req.Email, "email"); err != nil {
		return rejected(http.StatusBadRequest, "Please enter a valid email address", err)
	}
	if err := notification.Ready(p.sender); err != nil {
		p.logger.Error("contact form unavailable", zap.Error(err))
		return rejected(http.StatusInternalServerError, "Server configuration error", err)
	}

	msg, err := p.message(req)
	if err != nil {
		return rejected(http.StatusInternalServerError, "Failed to send email. Please try again.", err)
	}

	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.mailTimeout)
	defer cancel()
	if err := p.sender.Send(sendCtx, msg); err != nil {
		p.logger.Error("contact email failed", zap.String("from", req.Email), zap.Error(err))
		return rejected(http.StatusInternalServerError, "Failed to send email. Please try again.", err)
	}

	p.logger.Info("contact email sent", zap.String("from", req.Email))
	return Outcome{
		Status: http.StatusOK,
		Body:   models.ContactResponse{Success: true, Message: "Message sent successfully!"},
	}
}

func (p *Pipeline) message(req models.ContactRequest) (models.NotificationMessage, error) {
	var sb strings.Builder
	err := contactTmpl.Execute(&sb, struct {
		Name, Email, Message, Received string
	}{
		Name:     req.Name,
		Email:    req.Email,
		Message:  req.Message,
		Received: p.now().In(receivedZone).Format("2/1/2006, 3:04:05 pm"),
	})
	if err != nil {
		return models.NotificationMessage{}, fmt.Errorf("render contact email: %w", err)
	}
	return models.NotificationMessage{
		Kind:     models.NotificationContact,
		To:       p.to,
		ReplyTo:  req.Email,
		Subject:  fmt.Sprintf("🌸 New Contact: %s", req.Name),
		HTMLBody: sb.String(),
	}, nil
}

func rejected(status int, message string, err error) Outcome {
	return Outcome{
		Status: status,
		Body:   models.ContactResponse{Success: false, Error: message},
		Err:    err,
	}
}
