package feedback

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
)

// creates a new feedback repository
func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

// reports whether s is one of ValidTypes
func IsValidType(s string) bool {
	for _, t := range ValidTypes {
		if string(t) == s {
			return true
		}
	}

	return false
}

// comma-separated list of ValidTypes, for error messages
func ValidTypesList() string {
	names := make([]string, len(ValidTypes))
	for i, t := range ValidTypes {
		names[i] = string(t)
	}

	return strings.Join(names, ", ")
}

// inserts the feedback and fills in its ID and CreatedAt
func (r *Repository) Create(ctx context.Context, f *Feedback) error {
	return r.db.QueryRow(
		ctx,
		queryCreate,
		f.ClientID,
		f.TermKey,
		string(f.FeedbackType),
		f.ComplexityLevel,
		f.Comment,
	).Scan(&f.ID, &f.CreatedAt)
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, queryCount).Scan(&count)
	return count, err
}

// terms with the most "confused" feedback
func (r *Repository) ConfusingTerms(ctx context.Context, limit int) ([]ConfusingTerm, error) {
	rows, err := r.db.Query(ctx, queryConfusingTerms, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	terms := []ConfusingTerm{}

	for rows.Next() {
		var t ConfusingTerm
		if err := rows.Scan(&t.TermKey, &t.ConfusedCount); err != nil {
			return nil, err
		}

		terms = append(terms, t)
	}

	return terms, rows.Err()
}

// feedback counts per type for a term
func (r *Repository) BreakdownForTerm(ctx context.Context, termKey string) ([]TypeCount, error) {
	rows, err := r.db.Query(ctx, queryBreakdownForTerm, termKey)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	breakdown := []TypeCount{}

	for rows.Next() {
		var tc TypeCount
		var feedbackType string

		if err := rows.Scan(&feedbackType, &tc.Count); err != nil {
			return nil, err
		}

		tc.FeedbackType = Type(feedbackType)
		breakdown = append(breakdown, tc)
	}

	return breakdown, rows.Err()
}
