package content

import (
	"context"
	"strings"

	"flowerdecor/database/repository"
	"flowerdecor/models"

	"go.uber.org/zap"
)

func (s *DefaultContentService) ListEvents(ctx context.Context) ([]models.Event, error) {
	return cachedList(ctx, s, eventsKey, s.events.List)
}

func (s *DefaultContentService) CreateEvent(ctx context.Context, input models.EventInput) (models.Event, error) {
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		return models.Event{}, invalid("title", "Title is required")
	}
	if input.Price != nil && *input.Price < 0 {
		return models.Event{}, invalid("price", "Price must not be negative")
	}

	event := models.Event{
		Title:        strings.TrimSpace(*input.Title),
		Availability: true,
		EventDate:    input.EventDate,
	}
	if input.Desc != nil {
		event.Desc = *input.Desc
	}
	if input.Image != nil {
		event.Image = *input.Image
	}
	if input.Price != nil {
		event.Price = *input.Price
	}
	if input.Availability != nil {
		event.Availability = *input.Availability
	}
	if input.EventType != nil {
		event.EventType = *input.EventType
	}

	created, err := s.events.Create(ctx, event)
	if err != nil {
		return models.Event{}, err
	}
	s.invalidate(ctx, eventsKey)
	s.logger.Info("event created", zap.String("id", created.ID.Hex()))
	return created, nil
}

func (s *DefaultContentService) UpdateEvent(ctx context.Context, id string, input models.EventInput) (*models.Event, error) {
	oid, err := repository.ParseID(id)
	if err != nil {
		return nil, err
	}
	if input.Title != nil {
		trimmed := strings.TrimSpace(*input.Title)
		if trimmed == "" {
			return nil, invalid("title", "Title is required")
		}
		input.Title = &trimmed
	}
	if input.Price != nil && *input.Price < 0 {
		return nil, invalid("price", "Price must not be negative")
	}

	updated, err := s.events.Update(ctx, oid, input)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, eventsKey)
	return updated, nil
}

// DeleteEvent removes the event and then its stored image. Image removal failures
// are logged; the event is already gone at that point.
func (s *DefaultContentService) DeleteEvent(ctx context.Context, id string) error {
	oid, err := repository.ParseID(id)
	if err != nil {
		return err
	}
	event, err := s.events.GetByID(ctx, oid)
	if err != nil {
		return err
	}
	if err := s.events.Delete(ctx, oid); err != nil {
		return err
	}
	s.invalidate(ctx, eventsKey)

	log := s.logger.With(zap.String("id", id))
	if publicID := imagePublicID(event.Image); publicID != "" {
		if err := s.images.Delete(ctx, publicID); err != nil {
			log.Warn("event deleted but image removal failed", zap.String("image", publicID), zap.Error(err))
			return nil
		}
	}
	log.Info("event deleted")
	return nil
}

// imagePublicID returns the storage public id of an event image. Absolute URLs
// point at images this service does not manage.
func imagePublicID(image string) string {
	image = strings.TrimSpace(image)
	if strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://") {
		return ""
	}
	return image
}
