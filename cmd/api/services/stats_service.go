package services

import (
	"context"

	"bloomie-blog/repositories"
)

// StatsService exposes the dashboard aggregates.
type StatsService struct {
	store BlogStore
}

func NewStatsService(store BlogStore) *StatsService {
	return &StatsService{store: store}
}

// Compute returns totals and the per-category breakdown, ordered by count
// descending.
func (s *StatsService) Compute(ctx context.Context) (*repositories.BlogStatistics, error) {
	return s.store.Statistics(ctx)
}
