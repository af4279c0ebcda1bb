package content

import (
	"context"
	"time"

	"flowerdecor/models"
	"flowerdecor/services/storage"

	eventRepo "flowerdecor/database/repository/event"
	serviceRepo "flowerdecor/database/repository/service"
	testimonialRepo "flowerdecor/database/repository/testimonial"

	"go.uber.org/zap"
)

const (
	servicesKey     = "content:services"
	eventsKey       = "content:events"
	testimonialsKey = "content:testimonials"

	// RecentTestimonials is how many testimonials the public list returns.
	RecentTestimonials = 10

	defaultCacheTTL = 5 * time.Minute
)

// Cache is a byte-oriented key/value cache; utils.RedisCache satisfies it.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

// Counter counts documents in a collection outside this package.
type Counter interface {
	Count(ctx context.Context) (int64, error)
}

// ContentService manages the services, events and testimonials shown on the website.
type ContentService interface {
	ListServices(ctx context.Context) ([]models.Service, error)
	CreateService(ctx context.Context, input models.ServiceInput) (models.Service, error)
	UpdateService(ctx context.Context, id string, input models.ServiceInput) (*models.Service, error)
	DeleteService(ctx context.Context, id string) error

	ListEvents(ctx context.Context) ([]models.Event, error)
	CreateEvent(ctx context.Context, input models.EventInput) (models.Event, error)
	UpdateEvent(ctx context.Context, id string, input models.EventInput) (*models.Event, error)
	DeleteEvent(ctx context.Context, id string) error

	ListTestimonials(ctx context.Context) ([]models.Testimonial, error)
	CreateTestimonial(ctx context.Context, testimonial models.Testimonial) (models.Testimonial, error)

	Stats(ctx context.Context) (models.ContentStats, error)
}

// Deps wires the stores the content service reads and writes. Cache and Images are optional.
type Deps struct {
	Services     serviceRepo.ServiceRepository
	Events       eventRepo.EventRepository
	Testimonials testimonialRepo.TestimonialRepository
	Bookings     Counter
	Images       storage.ImageStore
	Cache        Cache
	CacheTTL     time.Duration
}

type DefaultContentService struct {
	services     serviceRepo.ServiceRepository
	events       eventRepo.EventRepository
	testimonials testimonialRepo.TestimonialRepository
	bookings     Counter
	images       storage.ImageStore
	cache        Cache
	ttl          time.Duration
	logger       *zap.Logger
}

func NewContentService(deps Deps, logger *zap.Logger) *DefaultContentService {
	if deps.CacheTTL <= 0 {
		deps.CacheTTL = defaultCacheTTL
	}
	if deps.Images == nil {
		deps.Images = storage.DisabledStore{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultContentService{
		services:     deps.Services,
		events:       deps.Events,
		testimonials: deps.Testimonials,
		bookings:     deps.Bookings,
		images:       deps.Images,
		cache:        deps.Cache,
		ttl:          deps.CacheTTL,
		logger:       logger,
	}
}
