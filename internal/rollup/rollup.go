package rollup

import (
	"context"
	"fmt"
	"time"

	"codeberg.org/askayo/server/askayo/daily"
	"codeberg.org/askayo/server/internal/errors"
	"codeberg.org/askayo/server/internal/logger"
)

type Store interface {
	Compute(ctx context.Context, day time.Time) (*daily.Rollup, error)
	Upsert(ctx context.Context, ru *daily.Rollup) error
}

// computes and stores analytics_daily rows
type Service struct {
	store Store
	now   func() time.Time
}

func NewService(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// the UTC calendar day before today
func (s *Service) Yesterday() time.Time {
	y := s.now().UTC().AddDate(0, 0, -1)
	return time.Date(y.Year(), y.Month(), y.Day(), 0, 0, 0, 0, time.UTC)
}

// rolls up a single day, replacing any existing row for it
func (s *Service) RunDay(ctx context.Context, day time.Time) (*daily.Rollup, error) {
	ru, err := s.store.Compute(ctx, day)
	if err != nil {
		return nil, errors.Persistence("compute daily rollup", err)
	}

	if err := s.store.Upsert(ctx, ru); err != nil {
		return nil, errors.Persistence("upsert daily rollup", err)
	}

	logger.Info("daily rollup stored",
		"date", ru.Date,
		"total_lookups", ru.TotalLookups,
		"unique_users", ru.UniqueUsers,
		"total_feedback", ru.TotalFeedback,
		"ai_rewrites", ru.AIRewrites,
	)

	return ru, nil
}

// rolls up days consecutive days ending at last, oldest first
func (s *Service) Backfill(ctx context.Context, last time.Time, days int) ([]daily.Rollup, error) {
	if days < 1 {
		return nil, fmt.Errorf("days must be at least 1, got %d", days)
	}

	out := make([]daily.Rollup, 0, days)

	for i := days - 1; i >= 0; i-- {
		ru, err := s.RunDay(ctx, last.AddDate(0, 0, -i))
		if err != nil {
			return out, err
		}

		out = append(out, *ru)
	}

	return out, nil
}
