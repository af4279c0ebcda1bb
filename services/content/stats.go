package content

import (
	"context"

	"flowerdecor/models"

	"golang.org/x/sync/errgroup"
)

// Stats counts every content collection concurrently for the admin dashboard.
func (s *DefaultContentService) Stats(ctx context.Context) (models.ContentStats, error) {
	var stats models.ContentStats
	g, gctx := errgroup.WithContext(ctx)

	counts := []struct {
		counter Counter
		dst     *int64
	}{
		{s.services, &stats.Services},
		{s.testimonials, &stats.Testimonials},
		{s.events, &stats.Events},
		{s.bookings, &stats.Bookings},
	}
	for _, c := range counts {
		if c.counter == nil {
			continue
		}
		g.Go(func() error {
			n, err := c.counter.Count(gctx)
			if err != nil {
				return err
			}
			*c.dst = n
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return models.ContentStats{}, err
	}
	return stats, nil
}
