package analytics

import (
	"context"

	"codeberg.org/askayo/server/askayo/daily"
	"codeberg.org/askayo/server/internal/analytics"
)

// what the handlers need from the analytics service
type Service interface {
	Overview(ctx context.Context) (*analytics.Overview, error)
	Daily(ctx context.Context, days int) ([]daily.Rollup, error)
	TermDetail(ctx context.Context, termKey string) (*analytics.TermDetail, error)
	UserEngagement(ctx context.Context) (*analytics.Engagement, error)
}
