package rewriter

import (
	"context"
	"time"

	"codeberg.org/askayo/server/askayo/rewrites"
	"codeberg.org/askayo/server/internal/events"
	"codeberg.org/askayo/server/internal/llm"
)

type RewriteStore interface {
	Create(ctx context.Context, rw *rewrites.Rewrite) error
	Totals(ctx context.Context) (rewrites.Totals, error)
	DailyTotalsSince(ctx context.Context, since time.Time) ([]rewrites.DailyTotals, error)
}

// turns confusing explanations into simpler ones via the completion API
type Service struct {
	completer llm.Completer
	store     RewriteStore
	events    events.Emitter
	model     string
	pricing   llm.Pricing
	now       func() time.Time
}

type Request struct {
	ClientID            string
	TermKey             string
	TermDisplay         string
	OriginalExplanation string
	ComplexityLevel     string
	UserContext         string
}

type Result struct {
	RewriteID            int64
	RewrittenExplanation string
	TokensUsed           int
	CostUSD              float64
}

type Stats struct {
	TotalRewrites  int                    `json:"total_rewrites"`
	TotalTokens    int                    `json:"total_tokens"`
	TotalCost      float64                `json:"total_cost"`
	RewritesByDate []rewrites.DailyTotals `json:"rewrites_by_date"`
}
