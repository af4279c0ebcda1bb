package testimonialRepo

import (
	"context"
	"errors"
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

func TestMongoTestimonialRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))
	now := time.Date(2024, 11, 2, 9, 0, 0, 0, time.UTC)

	mt.Run("create stamps id and time", func(mt *mtest.T) {
		repo := &MongoTestimonialRepo{coll: mt.Coll, now: func() time.Time { return now }}
		mt.AddMockResponses(mtest.CreateSuccessResponse())

		stored, err := repo.Create(context.Background(), models.Testimonial{Name: "Meera", Rating: 5})
		require.NoError(mt, err)
		assert.False(mt, stored.ID.IsZero())
		assert.Equal(mt, now, stored.CreatedAt)
	})

	mt.Run("write error is a persistence error", func(mt *mtest.T) {
		repo := &MongoTestimonialRepo{coll: mt.Coll, now: time.Now}
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index: 0, Code: 121, Message: "document failed validation",
		}))

		_, err := repo.Create(context.Background(), models.Testimonial{Name: "Ravi", Rating: 4})
		var pErr *repository.PersistenceError
		assert.True(mt, errors.As(err, &pErr))
	})

	mt.Run("list recent decodes documents", func(mt *mtest.T) {
		repo := &MongoTestimonialRepo{coll: mt.Coll, now: time.Now}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(
			mtest.CreateCursorResponse(1, ns, mtest.FirstBatch,
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Meera"}, {Key: "rating", Value: 5}},
				bson.D{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "name", Value: "Ravi"}, {Key: "rating", Value: 4}},
			),
			mtest.CreateCursorResponse(0, ns, mtest.NextBatch),
		)

		testimonials, err := repo.ListRecent(context.Background(), 10)
		require.NoError(mt, err)
		require.Len(mt, testimonials, 2)
		assert.Equal(mt, "Meera", testimonials[0].Name)
		assert.Equal(mt, 4, testimonials[1].Rating)
	})

	mt.Run("count", func(mt *mtest.T) {
		repo := &MongoTestimonialRepo{coll: mt.Coll, now: time.Now}
		ns := mt.Coll.Database().Name() + "." + mt.Coll.Name()
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch, bson.D{{Key: "n", Value: int32(3)}}))

		n, err := repo.Count(context.Background())
		require.NoError(mt, err)
		assert.Equal(mt, int64(3), n)
	})
}

var _ TestimonialRepository = (*MongoTestimonialRepo)(nil)
