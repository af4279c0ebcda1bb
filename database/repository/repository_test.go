package repository

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestWrapClassifiesDriverErrors(t *testing.T) {
	assert.NoError(t, Wrap("op", nil))
	assert.ErrorIs(t, Wrap("find", mongo.ErrNoDocuments), ErrNotFound)

	dup := mongo.WriteException{WriteErrors: mongo.WriteErrors{{Code: 11000, Message: "E11000 duplicate key"}}}
	err := Wrap("insert", dup)
	var pErr *PersistenceError
	assert.True(t, errors.As(err, &pErr))
	assert.Equal(t, "insert", pErr.Op)
	assert.ErrorIs(t, err, ErrDuplicate)

	err = Wrap("insert", context.DeadlineExceeded)
	assert.True(t, errors.As(err, &pErr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestParseID(t *testing.T) {
	_, err := ParseID("not-an-id")
	assert.ErrorIs(t, err, ErrInvalidID)

	oid, err := ParseID("64b7f0c2a1b2c3d4e5f60718")
	assert.NoError(t, err)
	assert.Equal(t, "64b7f0c2a1b2c3d4e5f60718", oid.Hex())
}
