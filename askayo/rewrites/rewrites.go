package rewrites

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new rewrite repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// inserts the rewrite and fills in its ID and CreatedAt
func (r *Repository) Create(ctx context.Context, rw *Rewrite) error {
	return r.db.QueryRow(
		ctx,
		queryCreate,
		rw.ClientID,
		rw.TermKey,
		rw.OriginalExplanation,
		rw.RewrittenExplanation,
		rw.Model,
		rw.TokensUsed,
		rw.CostUSD,
	).Scan(&rw.ID, &rw.CreatedAt)
}

// lifetime rewrite count, token sum and cost sum
func (r *Repository) Totals(ctx context.Context) (Totals, error) {
	var t Totals
	err := r.db.QueryRow(ctx, queryTotals).Scan(&t.Rewrites, &t.Tokens, &t.CostUSD)
	return t, err
}

// per-date totals for rewrites created at or after since, newest date first
func (r *Repository) DailyTotalsSince(ctx context.Context, since time.Time) ([]DailyTotals, error) {
	rows, err := r.db.Query(ctx, queryDailyTotalsSince, since)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	days := []DailyTotals{}

	for rows.Next() {
		var d DailyTotals
		if err := rows.Scan(&d.Date, &d.Count, &d.Tokens, &d.Cost); err != nil {
			return nil, err
		}

		days = append(days, d)
	}

	return days, rows.Err()
}
