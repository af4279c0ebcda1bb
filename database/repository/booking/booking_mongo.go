package bookingRepo

import (
	"context"

	"flowerdecor/database/repository"
	"flowerdecor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *MongoBookingRepo) Create(ctx context.Context, booking models.Booking) (models.Booking, error) {
	booking.ID = primitive.NewObjectID()
	booking.CreatedAt = r.now().UTC()

	if _, err := r.coll.InsertOne(ctx, booking); err != nil {
		return models.Booking{}, repository.Wrap("create booking", err)
	}
	return booking, nil
}

func (r *MongoBookingRepo) ListRecent(ctx context.Context, limit int) ([]models.Booking, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(int64(normalizeLimit(limit)))

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, repository.Wrap("list bookings", err)
	}
	defer cursor.Close(ctx)

	bookings := []models.Booking{}
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, repository.Wrap("decode bookings", err)
	}
	return bookings, nil
}

func (r *MongoBookingRepo) GetByBookingID(ctx context.Context, bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.coll.FindOne(ctx, bson.M{"bookingId": bookingID}).Decode(&booking); err != nil {
		return nil, repository.Wrap("get booking", err)
	}
	return &booking, nil
}

func (r *MongoBookingRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, repository.Wrap("count bookings", err)
	}
	return n, nil
}
