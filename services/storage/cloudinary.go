package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"flowerdecor/config"
	"flowerdecor/models"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"go.uber.org/zap"
)

// uploadAPI is the subset of *uploader.API the store uses.
type uploadAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
	Destroy(ctx context.Context, params uploader.DestroyParams) (*uploader.DestroyResult, error)
}

// CloudinaryStore implements ImageStore on Cloudinary.
type CloudinaryStore struct {
	api    uploadAPI
	folder string
	now    func() time.Time
	logger *zap.Logger
}

// NewCloudinaryStore returns ErrNotConfigured when any credential is missing.
func NewCloudinaryStore(cfg config.Config, logger *zap.Logger) (*CloudinaryStore, error) {
	if cfg.CloudinaryCloudName == "" || cfg.CloudinaryAPIKey == "" || cfg.CloudinaryAPISecret == "" {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromParams(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Cloudinary: %w", err)
	}
	return newCloudinaryStore(&cld.Upload, cfg.UploadFolder, logger), nil
}

func newCloudinaryStore(api uploadAPI, folder string, logger *zap.Logger) *CloudinaryStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CloudinaryStore{api: api, folder: folder, now: time.Now, logger: logger}
}

func (s *CloudinaryStore) Upload(ctx context.Context, file io.Reader, filename string) (models.StoredImage, error) {
	result, err := s.api.Upload(ctx, file, uploader.UploadParams{
		Folder:   s.folder,
		PublicID: publicIDFor(filename, s.now()),
	})
	if err != nil {
		return models.StoredImage{}, fmt.Errorf("CloudinaryStore: failed to upload image: %w", err)
	}
	if result == nil || result.PublicID == "" {
		return models.StoredImage{}, fmt.Errorf("CloudinaryStore: no public ID returned")
	}
	s.logger.Info("image uploaded", zap.String("publicId", result.PublicID))
	return models.StoredImage{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

func (s *CloudinaryStore) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}
	result, err := s.api.Destroy(ctx, uploader.DestroyParams{PublicID: publicID})
	if err != nil {
		return fmt.Errorf("CloudinaryStore: failed to delete image: %w", err)
	}
	if result != nil && result.Result != "ok" && result.Result != "not found" {
		return fmt.Errorf("CloudinaryStore: delete %s: unexpected result %q", publicID, result.Result)
	}
	s.logger.Info("image deleted", zap.String("publicId", publicID))
	return nil
}

// publicIDFor prefixes the sanitized base name with unix milliseconds so that
// re-uploads of the same file never overwrite each other.
func publicIDFor(filename string, at time.Time) string {
	base := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			return r
		default:
			return '-'
		}
	}, base)
	stamp := strconv.FormatInt(at.UnixMilli(), 10)
	if base == "" || base == "-" {
		return stamp
	}
	return stamp + "-" + base
}
