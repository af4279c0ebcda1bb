package storage

import (
	"context"
	"errors"
	"io"

	"flowerdecor/models"
)

// ErrNotConfigured is returned by DisabledStore when no Cloudinary credentials were supplied.
var ErrNotConfigured = errors.New("image storage not configured")

// ImageStore keeps uploaded decoration photos.
type ImageStore interface {
	Upload(ctx context.Context, file io.Reader, filename string) (models.StoredImage, error)
	// Delete removes an image by public id. Deleting a missing image is not an error.
	Delete(ctx context.Context, publicID string) error
}

// DisabledStore stands in when image storage is not configured.
type DisabledStore struct{}

func (DisabledStore) Upload(context.Context, io.Reader, string) (models.StoredImage, error) {
	return models.StoredImage{}, ErrNotConfigured
}

func (DisabledStore) Delete(context.Context, string) error { return ErrNotConfigured }
