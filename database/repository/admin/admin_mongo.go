package adminRepo

import (
	"context"
	"fmt"
	"time"

	"flowerdecor/database/repository"
	"flowerdecor/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type AdminRepository interface {
	GetByUsername(ctx context.Context, username string) (*models.Admin, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error)
	Create(ctx context.Context, admin models.Admin) (models.Admin, error)
}

type MongoAdminRepo struct {
	coll *mongo.Collection
	now  func() time.Time
}

func NewMongoAdminRepo(db *mongo.Database) *MongoAdminRepo {
	return &MongoAdminRepo{coll: db.Collection("admins"), now: time.Now}
}

// EnsureIndexes makes usernames unique.
func (r *MongoAdminRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "username", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create admin indexes: %w", err)
	}
	return nil
}

func (r *MongoAdminRepo) GetByUsername(ctx context.Context, username string) (*models.Admin, error) {
	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&admin); err != nil {
		return nil, repository.Wrap("get admin", err)
	}
	return &admin, nil
}

func (r *MongoAdminRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*models.Admin, error) {
	var admin models.Admin
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&admin); err != nil {
		return nil, repository.Wrap("get admin", err)
	}
	return &admin, nil
}

func (r *MongoAdminRepo) Create(ctx context.Context, admin models.Admin) (models.Admin, error) {
	admin.ID = primitive.NewObjectID()
	admin.CreatedAt = r.now().UTC()
	if _, err := r.coll.InsertOne(ctx, admin); err != nil {
		return models.Admin{}, repository.Wrap("create admin", err)
	}
	return admin, nil
}
