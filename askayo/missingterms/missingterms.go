package missingterms

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5"

	"codeberg.org/askayo/server/internal/storage"
)

// creates a new missing-term repository
func NewRepository(db storage.DBTX) *Repository {
	return &Repository{db: db}
}

// canonical form used as the unique key: trimmed, single-spaced, lower-case
func Normalize(text string) string {
	return strings.ToLower(strings.Join(strings.Fields(text), " "))
}

// creates the missing term with lookup_count 1, or increments it and refreshes last_seen_at
func (r *Repository) Record(ctx context.Context, occ Occurrence) (*MissingTerm, error) {
	row := r.db.QueryRow(
		ctx,
		queryRecord,
		occ.ClientID,
		Normalize(occ.Text),
		occ.PageURL,
		occ.PageContext,
	)

	return scanMissingTerm(row)
}

// most frequently missed terms
func (r *Repository) Top(ctx context.Context, limit int) ([]MissingTerm, error) {
	rows, err := r.db.Query(ctx, queryTop, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	terms := []MissingTerm{}

	for rows.Next() {
		mt, err := scanMissingTerm(rows)
		if err != nil {
			return nil, err
		}

		terms = append(terms, *mt)
	}

	return terms, rows.Err()
}

func scanMissingTerm(row pgx.Row) (*MissingTerm, error) {
	var mt MissingTerm

	err := row.Scan(
		&mt.ID,
		&mt.ClientID,
		&mt.MissingText,
		&mt.PageURL,
		&mt.PageContext,
		&mt.LookupCount,
		&mt.FirstSeenAt,
		&mt.LastSeenAt,
	)

	if err != nil {
		return nil, err
	}

	return &mt, nil
}
