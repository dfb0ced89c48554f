package daily

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/askayo/server/internal/logger"
)

const topTermsLimit = 10

// creates a new daily rollup repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// rollups dated on or after since (YYYY-MM-DD), newest first
func (r *Repository) ListSince(ctx context.Context, since string) ([]Rollup, error) {
	rows, err := r.db.Query(ctx, queryListSince, since)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	rollups := []Rollup{}

	for rows.Next() {
		var ru Rollup
		var topTermsJSON []byte

		err := rows.Scan(
			&ru.Date,
			&ru.TotalLookups,
			&ru.UniqueUsers,
			&ru.TotalFeedback,
			&ru.ThumbsUp,
			&ru.ThumbsDown,
			&ru.ConfusedClicks,
			&ru.AIRewrites,
			&topTermsJSON,
			&ru.UpdatedAt,
		)

		if err != nil {
			return nil, err
		}

		ru.TopTerms = []TopTerm{}

		if len(topTermsJSON) > 0 {
			if err := json.Unmarshal(topTermsJSON, &ru.TopTerms); err != nil {
				logger.FromContext(ctx).Warn("malformed top_terms in daily rollup", "date", ru.Date, "error", err)
				ru.TopTerms = []TopTerm{}
			}
		}

		rollups = append(rollups, ru)
	}

	return rollups, rows.Err()
}

// writes the rollup for ru.Date, replacing any previous one
func (r *Repository) Upsert(ctx context.Context, ru *Rollup) error {
	topTerms := ru.TopTerms
	if topTerms == nil {
		topTerms = []TopTerm{}
	}

	topTermsJSON, err := json.Marshal(topTerms)
	if err != nil {
		return fmt.Errorf("failed to marshal top terms: %w", err)
	}

	return r.db.QueryRow(
		ctx,
		queryUpsert,
		ru.Date,
		ru.TotalLookups,
		ru.UniqueUsers,
		ru.TotalFeedback,
		ru.ThumbsUp,
		ru.ThumbsDown,
		ru.ConfusedClicks,
		ru.AIRewrites,
		string(topTermsJSON),
	).Scan(&ru.UpdatedAt)
}

// aggregates the base tables for the UTC calendar day containing day
func (r *Repository) Compute(ctx context.Context, day time.Time) (*Rollup, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, 1)

	ru := &Rollup{Date: start.Format(time.DateOnly)}

	err := r.db.QueryRow(ctx, queryComputeCounts, start, end).Scan(
		&ru.TotalLookups,
		&ru.UniqueUsers,
		&ru.TotalFeedback,
		&ru.ThumbsUp,
		&ru.ThumbsDown,
		&ru.ConfusedClicks,
		&ru.AIRewrites,
	)

	if err != nil {
		return nil, fmt.Errorf("failed to compute counts: %w", err)
	}

	rows, err := r.db.Query(ctx, queryComputeTopTerms, start, end, topTermsLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to compute top terms: %w", err)
	}

	defer rows.Close()

	ru.TopTerms = []TopTerm{}

	for rows.Next() {
		var t TopTerm
		if err := rows.Scan(&t.TermKey, &t.TermDisplay, &t.Count); err != nil {
			return nil, err
		}

		ru.TopTerms = append(ru.TopTerms, t)
	}

	return ru, rows.Err()
}
