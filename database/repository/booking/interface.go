package bookingRepo

import (
	"context"
	"time"

	"flowerdecor/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// BookingRepository persists accepted bookings. Stored bookings are immutable.
type BookingRepository interface {
	// Create assigns a storage id and creation time and durably records the booking.
	Create(ctx context.Context, booking models.Booking) (models.Booking, error)
	// ListRecent returns bookings newest first.
	ListRecent(ctx context.Context, limit int) ([]models.Booking, error)
	GetByBookingID(ctx context.Context, bookingID string) (*models.Booking, error)
	Count(ctx context.Context) (int64, error)
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

// NewMongoBookingRepo returns a BookingRepository backed by the "bookings" collection.
func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return newMongoBookingRepo(db.Collection("bookings"), time.Now)
}

func newMongoBookingRepo(coll *mongo.Collection, now func() time.Time) *MongoBookingRepo {
	return &MongoBookingRepo{coll: coll, now: now}
}

func normalizeLimit(limit int) int {
	switch {
	case limit <= 0:
		return defaultListLimit
	case limit > maxListLimit:
		return maxListLimit
	default:
		return limit
	}
}
