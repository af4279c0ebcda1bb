package booking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"flowerdecor/models"
	"flowerdecor/services/notification"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// State is a step of the per-request intake state machine.
type State string

const (
	StateReceived  State = "RECEIVED"
	StateValidated State = "VALIDATED"
	StatePersisted State = "PERSISTED"
	StateNotified  State = "NOTIFIED"
	StateResponded State = "RESPONDED"
	StateRejected  State = "REJECTED"
	StateFailed    State = "FAILED"
)

const (
	defaultStoreTimeout = 5 * time.Second
	defaultMailTimeout  = 15 * time.Second
)

// Store is the persistence the pipeline depends on.
type Store interface {
	Create(ctx context.Context, booking models.Booking) (models.Booking, error)
}

// Outcome is the HTTP-level result of one intake.
type Outcome struct {
	Status    int
	Body      any
	State     State
	BookingID string
	Err       error
}

// PipelineConfig carries the addresses and per-call ceilings of the pipeline.
type PipelineConfig struct {
	OperatorEmail string
	StoreTimeout  time.Duration
	MailTimeout   time.Duration
}

// IntakePipeline validates, persists and announces a booking submission.
type IntakePipeline struct {
	store  Store
	sender notification.Sender
	ids    IDGenerator
	cfg    PipelineConfig
	logger *zap.Logger
}

func NewIntakePipeline(store Store, sender notification.Sender, ids IDGenerator, cfg PipelineConfig, logger *zap.Logger) *IntakePipeline {
	if cfg.StoreTimeout <= 0 {
		cfg.StoreTimeout = defaultStoreTimeout
	}
	if cfg.MailTimeout <= 0 {
		cfg.MailTimeout = defaultMailTimeout
	}
	if ids == nil {
		ids = TimestampIDGenerator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakePipeline{store: store, sender: sender, ids: ids, cfg: cfg, logger: logger}
}

// Handle runs one submission to a terminal state. Cancellation of ctx is ignored;
// each external call is bounded by its own timeout. FAILED outcomes are not logged
// here; the caller logs them once with Outcome.Err and Outcome.BookingID.
func (p *IntakePipeline) Handle(ctx context.Context, raw map[string]any) Outcome {
	ctx = context.WithoutCancel(ctx)

	// RECEIVED -> VALIDATED
	if result := Validate(raw); !result.OK {
		p.logger.Info("booking rejected", zap.Strings("missingFields", result.MissingFields))
		return Outcome{
			Status: http.StatusBadRequest,
			State:  StateRejected,
			Body:   gin.H{"error": "Missing required fields", "missingFields": result.MissingFields},
			Err:    &ValidationError{MissingFields: result.MissingFields},
		}
	}
	booking, err := normalize(raw)
	if err != nil {
		var vErr *ValidationError
		errors.As(err, &vErr)
		p.logger.Info("booking rejected", zap.Strings("invalidFields", vErr.InvalidFields))
		return Outcome{
			Status: http.StatusBadRequest,
			State:  StateRejected,
			Body:   gin.H{"error": invalidFieldMessage(vErr), "invalidFields": vErr.InvalidFields},
			Err:    err,
		}
	}
	if err := notification.Ready(p.sender); err != nil {
		return p.fail("", "Booking service is temporarily unavailable", err)
	}

	// VALIDATED -> PERSISTED
	booking.BookingID = p.ids.NewID()
	log := p.logger.With(zap.String("bookingId", booking.BookingID))

	storeCtx, cancel := context.WithTimeout(ctx, p.cfg.StoreTimeout)
	stored, err := p.store.Create(storeCtx, booking)
	cancel()
	if err != nil {
		return p.fail(booking.BookingID, "Failed to save booking. Please try again.", err)
	}
	log.Info("booking persisted", zap.String("id", stored.ID.Hex()))

	// PERSISTED -> NOTIFIED
	if err := p.notify(ctx, stored); err != nil {
		// The booking stays saved; the client is told the request failed.
		return p.fail(stored.BookingID, "Booking could not be confirmed by email. Please contact us.", err)
	}

	// NOTIFIED -> RESPONDED
	log.Info("booking confirmed")
	return Outcome{
		Status:    http.StatusCreated,
		State:     StateResponded,
		BookingID: stored.BookingID,
		Body: models.BookingCreatedResponse{
			Message:   "Booking created successfully",
			BookingID: stored.BookingID,
		},
	}
}

// notify sends the customer and operator emails concurrently and waits for both.
func (p *IntakePipeline) notify(ctx context.Context, booking models.Booking) error {
	customer, err := CustomerConfirmation(booking)
	if err != nil {
		return err
	}
	operator, err := OperatorAlert(booking, p.cfg.OperatorEmail)
	if err != nil {
		return err
	}

	var g errgroup.Group
	for _, msg := range []models.NotificationMessage{customer, operator} {
		g.Go(func() error {
			sendCtx, cancel := context.WithTimeout(ctx, p.cfg.MailTimeout)
			defer cancel()
			return p.sender.Send(sendCtx, msg)
		})
	}
	return g.Wait()
}

func (p *IntakePipeline) fail(bookingID, message string, err error) Outcome {
	return Outcome{
		Status:    http.StatusInternalServerError,
		State:     StateFailed,
		BookingID: bookingID,
		Body:      gin.H{"error": message},
		Err:       err,
	}
}

func invalidFieldMessage(vErr *ValidationError) string {
	if len(vErr.InvalidFields) == 0 {
		return "Invalid request body"
	}
	switch vErr.InvalidFields[0] {
	case "email":
		return "Please enter a valid email address"
	case "eventDate":
		return "Invalid event date"
	default:
		return "Name and event type must be text"
	}
}
