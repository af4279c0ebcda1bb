package testimonialRepo

import (
	"context"
	"time"

	"flowerdecor/database/repository"
	"flowerdecor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestimonialRepository interface {
	ListRecent(ctx context.Context, limit int64) ([]models.Testimonial, error)
	Create(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error)
	Count(ctx context.Context) (int64, error)
}

type MongoTestimonialRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoTestimonialRepo(db *mongo.Database) *MongoTestimonialRepo {
	return &MongoTestimonialRepo{coll: db.Collection("testimonials"), now: time.Now}
}

func (r *MongoTestimonialRepo) ListRecent(ctx context.Context, limit int64) ([]models.Testimonial, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}).SetLimit(limit)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, repository.Wrap("list testimonials", err)
	}
	defer cursor.Close(ctx)

	testimonials := []models.Testimonial{}
	if err := cursor.All(ctx, &testimonials); err != nil {
		return nil, repository.Wrap("decode testimonials", err)
	}
	return testimonials, nil
}

func (r *MongoTestimonialRepo) Create(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error) {
	testimonial.ID = primitive.NewObjectID()
	testimonial.CreatedAt = r.now().UTC()
	if _, err := r.coll.InsertOne(ctx, testimonial); err != nil {
		return models.Testimonial{}, repository.Wrap("create testimonial", err)
	}
	return testimonial, nil
}

func (r *MongoTestimonialRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, repository.Wrap("count testimonials", err)
	}
	return n, nil
}
