package content

import (
	"context"
	"strings"

	"flowerdecor/database/repository"
	"flowerdecor/models"

	"go.uber.org/zap"
)

func (s *DefaultContentService) ListServices(ctx context.Context) ([]models.Service, error) {
	return cachedList(ctx, s, servicesKey, s.services.List)
}

func (s *DefaultContentService) CreateService(ctx context.Context, input models.ServiceInput) (models.Service, error) {
	if input.Title == nil || strings.TrimSpace(*input.Title) == "" {
		return models.Service{}, invalid("title", "Title is required")
	}
	if err := validateServiceInput(input); err != nil {
		return models.Service{}, err
	}

	service := models.Service{
		Title:        strings.TrimSpace(*input.Title),
		Availability: true,
	}
	if input.Desc != nil {
		service.Desc = *input.Desc
	}
	if input.Price != nil {
		service.Price = *input.Price
	}
	if input.Availability != nil {
		service.Availability = *input.Availability
	}
	if input.Image != nil {
		service.Image = *input.Image
	}

	created, err := s.services.Create(ctx, service)
	if err != nil {
		return models.Service{}, err
	}
	s.invalidate(ctx, servicesKey)
	s.logger.Info("service created", zap.String("id", created.ID.Hex()))
	return created, nil
}

func (s *DefaultContentService) UpdateService(ctx context.Context, id string, input models.ServiceInput) (*models.Service, error) {
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
	if err := validateServiceInput(input); err != nil {
		return nil, err
	}

	updated, err := s.services.Update(ctx, oid, input)
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx, servicesKey)
	return updated, nil
}

func (s *DefaultContentService) DeleteService(ctx context.Context, id string) error {
	oid, err := repository.ParseID(id)
	if err != nil {
		return err
	}
	if err := s.services.Delete(ctx, oid); err != nil {
		return err
	}
	s.invalidate(ctx, servicesKey)
	s.logger.Info("service deleted", zap.String("id", id))
	return nil
}

func validateServiceInput(input models.ServiceInput) error {
	if input.Price != nil && *input.Price < 0 {
		return invalid("price", "Price must not be negative")
	}
	return nil
}
