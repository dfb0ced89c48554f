package daily

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles analytics_daily database operations
type Repository struct {
	db *pgxpool.Pool
}

// pre-aggregated analytics for one calendar date
type Rollup struct {
	Date           string    `json:"date"` // YYYY-MM-DD
	TotalLookups   int       `json:"total_lookups"`
	UniqueUsers    int       `json:"unique_users"`
	TotalFeedback  int       `json:"total_feedback"`
	ThumbsUp       int       `json:"thumbs_up"`
	ThumbsDown     int       `json:"thumbs_down"`
	ConfusedClicks int       `json:"confused_clicks"`
	AIRewrites     int       `json:"ai_rewrites"`
	TopTerms       []TopTerm `json:"top_terms"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type TopTerm struct {
	TermKey     string `json:"term_key"`
	TermDisplay string `json:"term_display"`
	Count       int    `json:"count"`
}
