package repository

import (
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	// ErrNotFound is returned when the requested document does not exist.
	ErrNotFound = errors.New("repository: not found")
	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("repository: duplicate key")
	// ErrInvalidID is returned for ids that are not valid ObjectIDs.
	ErrInvalidID = errors.New("repository: invalid id")
)

// PersistenceError reports that the document store was unreachable or rejected a write.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Wrap classifies a driver error. ErrNoDocuments becomes ErrNotFound, everything
// else becomes a *PersistenceError (duplicate keys additionally match ErrDuplicate).
func Wrap(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, mongo.ErrNoDocuments) {
		return ErrNotFound
	}
	if mongo.IsDuplicateKeyError(err) {
		return &PersistenceError{Op: op, Err: fmt.Errorf("%w: %v", ErrDuplicate, err)}
	}
	return &PersistenceError{Op: op, Err: err}
}

// ParseID converts a hex string into an ObjectID.
func ParseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return oid, nil
}
