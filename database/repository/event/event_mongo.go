package eventRepo

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

// EventRepository stores the showcased events.
type EventRepository interface {
	List(ctx context.Context) ([]models.Event, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error)
	Create(ctx context.Context, event models.Event) (models.Event, error)
	Update(ctx context.Context, id primitive.ObjectID, input models.EventInput) (*models.Event, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type MongoEventRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoEventRepo(db *mongo.Database) *MongoEventRepo {
	return &MongoEventRepo{coll: db.Collection("events"), now: time.Now}
}

func (r *MongoEventRepo) List(ctx context.Context) ([]models.Event, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, repository.Wrap("list events", err)
	}
	defer cursor.Close(ctx)

	events := []models.Event{}
	if err := cursor.All(ctx, &events); err != nil {
		return nil, repository.Wrap("decode events", err)
	}
	return events, nil
}

func (r *MongoEventRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	var event models.Event
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&event); err != nil {
		return nil, repository.Wrap("get event", err)
	}
	return &event, nil
}

func (r *MongoEventRepo) Create(ctx context.Context, event models.Event) (models.Event, error) {
	now := r.now().UTC()
	event.ID = primitive.NewObjectID()
	event.CreatedAt = now
	event.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return models.Event{}, repository.Wrap("create event", err)
	}
	return event, nil
}

func (r *MongoEventRepo) Update(ctx context.Context, id primitive.ObjectID, input models.EventInput) (*models.Event, error) {
	set := bson.M{"updatedAt": r.now().UTC()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Desc != nil {
		set["desc"] = *input.Desc
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.Availability != nil {
		set["availability"] = *input.Availability
	}
	if input.EventDate != nil {
		set["eventDate"] = input.EventDate.UTC()
	}
	if input.EventType != nil {
		set["eventType"] = *input.EventType
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Event
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, repository.Wrap("update event", err)
	}
	return &updated, nil
}

func (r *MongoEventRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.Wrap("delete event", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MongoEventRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, repository.Wrap("count events", err)
	}
	return n, nil
}
