package content

import (
	"context"
	"encoding/json"

	"go.uber.org/zap"
)

// cachedList serves key from the cache when possible and falls back to load.
// Cache failures are logged and never surface to the caller.
func cachedList[T any](ctx context.Context, s *DefaultContentService, key string, load func(context.Context) ([]T, error)) ([]T, error) {
	if s.cache != nil {
		data, found, err := s.cache.Get(ctx, key)
		switch {
		case err != nil:
			s.logger.Warn("content cache read failed", zap.String("key", key), zap.Error(err))
		case found:
			var items []T
			if err := json.Unmarshal(data, &items); err == nil {
				return items, nil
			}
			s.logger.Warn("content cache entry corrupt", zap.String("key", key))
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}
	if items == nil {
		items = []T{}
	}

	if s.cache != nil {
		if data, err := json.Marshal(items); err == nil {
			if err := s.cache.Set(ctx, key, data, s.ttl); err != nil {
				s.logger.Warn("content cache write failed", zap.String("key", key), zap.Error(err))
			}
		}
	}
	return items, nil
}

func (s *DefaultContentService) invalidate(ctx context.Context, key string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("content cache invalidation failed", zap.String("key", key), zap.Error(err))
	}
}
