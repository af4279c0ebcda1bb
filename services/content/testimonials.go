package content

import (
	"context"
	"strings"

	"flowerdecor/models"

	"go.uber.org/zap"
)

func (s *DefaultContentService) ListTestimonials(ctx context.Context) ([]models.Testimonial, error) {
	return cachedList(ctx, s, testimonialsKey, func(ctx context.Context) ([]models.Testimonial, error) {
		return s.testimonials.ListRecent(ctx, RecentTestimonials)
	})
}

func (s *DefaultContentService) CreateTestimonial(ctx context.Context, t models.Testimonial) (models.Testimonial, error) {
	t.Name = strings.TrimSpace(t.Name)
	t.Email = strings.TrimSpace(t.Email)
	if t.Name == "" {
		return models.Testimonial{}, invalid("name", "Name is required")
	}
	if t.Rating < 1 || t.Rating > 5 {
		return models.Testimonial{}, invalid("rating", "Rating must be between 1 and 5")
	}

	created, err := s.testimonials.Create(ctx, t)
	if err != nil {
		return models.Testimonial{}, err
	}
	s.invalidate(ctx, testimonialsKey)
	s.logger.Info("testimonial submitted", zap.String("id", created.ID.Hex()), zap.Int("rating", created.Rating))
	return created, nil
}
