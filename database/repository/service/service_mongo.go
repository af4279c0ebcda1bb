package serviceRepo

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

// ServiceRepository stores the decoration packages shown on the services page.
type ServiceRepository interface {
	List(ctx context.Context) ([]models.Service, error)
	Create(ctx context.Context, service models.Service) (models.Service, error)
	Update(ctx context.Context, id primitive.ObjectID, input models.ServiceInput) (*models.Service, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Count(ctx context.Context) (int64, error)
}

type MongoServiceRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoServiceRepo(db *mongo.Database) *MongoServiceRepo {
	return &MongoServiceRepo{coll: db.Collection("services"), now: time.Now}
}

// List returns all services, newest first.
func (r *MongoServiceRepo) List(ctx context.Context) ([]models.Service, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, repository.Wrap("list services", err)
	}
	defer cursor.Close(ctx)

	services := []models.Service{}
	if err := cursor.All(ctx, &services); err != nil {
		return nil, repository.Wrap("decode services", err)
	}
	return services, nil
}

func (r *MongoServiceRepo) Create(ctx context.Context, service models.Service) (models.Service, error) {
	now := r.now().UTC()
	service.ID = primitive.NewObjectID()
	service.CreatedAt = now
	service.UpdatedAt = now
	if _, err := r.coll.InsertOne(ctx, service); err != nil {
		return models.Service{}, repository.Wrap("create service", err)
	}
	return service, nil
}

// Update applies the non-nil fields of input and returns the updated document.
func (r *MongoServiceRepo) Update(ctx context.Context, id primitive.ObjectID, input models.ServiceInput) (*models.Service, error) {
	set := bson.M{"updatedAt": r.now().UTC()}
	if input.Title != nil {
		set["title"] = *input.Title
	}
	if input.Desc != nil {
		set["desc"] = *input.Desc
	}
	if input.Price != nil {
		set["price"] = *input.Price
	}
	if input.Availability != nil {
		set["availability"] = *input.Availability
	}
	if input.Image != nil {
		set["image"] = *input.Image
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var updated models.Service
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&updated)
	if err != nil {
		return nil, repository.Wrap("update service", err)
	}
	return &updated, nil
}

func (r *MongoServiceRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return repository.Wrap("delete service", err)
	}
	if res.DeletedCount == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *MongoServiceRepo) Count(ctx context.Context) (int64, error) {
	n, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, repository.Wrap("count services", err)
	}
	return n, nil
}
