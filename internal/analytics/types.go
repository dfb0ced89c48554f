package analytics

import (
	"context"
	"time"

	"codeberg.org/askayo/server/askayo/daily"
	"codeberg.org/askayo/server/askayo/feedback"
	"codeberg.org/askayo/server/askayo/lookups"
	"codeberg.org/askayo/server/askayo/missingterms"
	"codeberg.org/askayo/server/askayo/users"
)

type UserStore interface {
	Count(ctx context.Context) (int, error)
	CountActiveSince(ctx context.Context, since time.Time) (int, error)
	AverageLookups(ctx context.Context) (float64, error)
	LookupHistogram(ctx context.Context) ([]users.LookupCount, error)
}

type LookupStore interface {
	Count(ctx context.Context) (int, error)
	PopularTerms(ctx context.Context, limit int) ([]lookups.PopularTerm, error)
	TermTotals(ctx context.Context, termKey string) (lookups.TermTotals, error)
	ComplexityBreakdown(ctx context.Context, termKey string) ([]lookups.ComplexityCount, error)
	RecentForTerm(ctx context.Context, termKey string, limit int) ([]lookups.RecentLookup, error)
}

type FeedbackStore interface {
	Count(ctx context.Context) (int, error)
	ConfusingTerms(ctx context.Context, limit int) ([]feedback.ConfusingTerm, error)
	BreakdownForTerm(ctx context.Context, termKey string) ([]feedback.TypeCount, error)
}

type MissingTermStore interface {
	Top(ctx context.Context, limit int) ([]missingterms.MissingTerm, error)
}

type DailyStore interface {
	ListSince(ctx context.Context, since string) ([]daily.Rollup, error)
}

// read-only aggregation over the analytics tables
type Service struct {
	users    UserStore
	lookups  LookupStore
	feedback FeedbackStore
	missing  MissingTermStore
	daily    DailyStore
	now      func() time.Time
}

type Totals struct {
	TotalUsers    int `json:"total_users"`
	ActiveUsers   int `json:"active_users"`
	TotalLookups  int `json:"total_lookups"`
	TotalFeedback int `json:"total_feedback"`
}

type MissingTermSummary struct {
	MissingText string    `json:"missing_text"`
	LookupCount int       `json:"lookup_count"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

type Overview struct {
	Overview       Totals                   `json:"overview"`
	PopularTerms   []lookups.PopularTerm    `json:"popular_terms"`
	ConfusingTerms []feedback.ConfusingTerm `json:"confusing_terms"`
	MissingTerms   []MissingTermSummary     `json:"missing_terms"`
}

type TermDetail struct {
	TermKey             string                    `json:"term_key"`
	TotalLookups        int                       `json:"total_lookups"`
	UniqueUsers         int                       `json:"unique_users"`
	ComplexityBreakdown []lookups.ComplexityCount `json:"complexity_breakdown"`
	FeedbackBreakdown   []feedback.TypeCount      `json:"feedback_breakdown"`
	RecentLookups       []lookups.RecentLookup    `json:"recent_lookups"`
}

type Bucket struct {
	Bucket    string `json:"bucket"`
	UserCount int    `json:"user_count"`
}

type Retention struct {
	ActiveLastWeek  int    `json:"active_last_week"`
	ActiveLastMonth int    `json:"active_last_month"`
	RetentionRate   string `json:"retention_rate"`
}

type Engagement struct {
	AvgLookupsPerUser string    `json:"avg_lookups_per_user"`
	UserDistribution  []Bucket  `json:"user_distribution"`
	Retention         Retention `json:"retention"`
}
