package serviceRepo

import (
	"context"
	"testing"
	"time"

	"flowerdecor/database/repository"
	"flowerdecor/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestMongoServiceRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

	mt.Run("create stamps timestamps", func(mt *mtest.T) {
		repo := &MongoServiceRepo{coll: mt.Coll, now: func() time.Time { return now }}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		svc, err := repo.Create(context.Background(), models.Service{Title: "Mandap Florals", Price: 15000, Availability: true})
		require.NoError(mt, err)
		assert.False(mt, svc.ID.IsZero())
		assert.Equal(mt, now, svc.CreatedAt)
		assert.Equal(mt, now, svc.UpdatedAt)
	})

	mt.Run("update returns the new document", func(mt *mtest.T) {
		repo := &MongoServiceRepo{coll: mt.Coll, now: func() time.Time { return now }}
		id := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: bson.D{
			{Key: "_id", Value: id},
			{Key: "title", Value: "Mandap Florals"},
			{Key: "availability", Value: false},
		}}))

		unavailable := false
		svc, err := repo.Update(context.Background(), id, models.ServiceInput{Availability: &unavailable})
		require.NoError(mt, err)
		assert.Equal(mt, id, svc.ID)
		assert.False(mt, svc.Availability)
	})

	mt.Run("update of a missing document", func(mt *mtest.T) {
		repo := &MongoServiceRepo{coll: mt.Coll, now: func() time.Time { return now }}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "value", Value: nil}))

		title := "x"
		_, err := repo.Update(context.Background(), primitive.NewObjectID(), models.ServiceInput{Title: &title})
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})

	mt.Run("delete of a missing document", func(mt *mtest.T) {
		repo := &MongoServiceRepo{coll: mt.Coll, now: func() time.Time { return now }}
		mt.AddMockResponses(mtest.CreateSuccessResponse(bson.E{Key: "n", Value: 0}))

		err := repo.Delete(context.Background(), primitive.NewObjectID())
		assert.ErrorIs(mt, err, repository.ErrNotFound)
	})
}
