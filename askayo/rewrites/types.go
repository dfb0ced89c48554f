package rewrites

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles AI rewrite database operations
type Repository struct {
	db *pgxpool.Pool
}

// one persisted model rewrite
type Rewrite struct {
	ID                   int64     `json:"id"`
	ClientID             string    `json:"client_id"`
	TermKey              string    `json:"term_key"`
	OriginalExplanation  string    `json:"original_explanation"`
	RewrittenExplanation string    `json:"rewritten_explanation"`
	Model                string    `json:"model"`
	TokensUsed           int       `json:"tokens_used"`
	CostUSD              float64   `json:"cost_usd"`
	CreatedAt            time.Time `json:"created_at"`
}

type Totals struct {
	Rewrites int
	Tokens   int
	CostUSD  float64
}

// rewrites created on one calendar date
type DailyTotals struct {
	Date   string  `json:"date"` // YYYY-MM-DD
	Count  int     `json:"count"`
	Tokens int     `json:"tokens"`
	Cost   float64 `json:"cost"`
}
