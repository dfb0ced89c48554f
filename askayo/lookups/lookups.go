package lookups

import (
	"context"
	"time"

	"codeberg.org/askayo/server/internal/storage"
)

// creates a new lookup repository
func NewRepository(db storage.DBTX) *Repository {
	return &Repository{db: db}
}

// inserts the lookup and fills in its ID and LookupTimestamp
func (r *Repository) Create(ctx context.Context, l *Lookup) error {
	return r.db.QueryRow(
		ctx,
		queryCreate,
		l.ClientID,
		l.TermKey,
		l.TermDisplay,
		l.ComplexityLevel,
		l.PageURL,
		l.PageContext,
		l.Found,
	).Scan(&l.ID, &l.LookupTimestamp)
}

// number of distinct term keys a client has looked up
func (r *Repository) CountDistinctTermsForClient(ctx context.Context, clientID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, queryCountDistinctTermsForClient, clientID).Scan(&count)
	return count, err
}

// earliest lookup_timestamp for a client, nil when the client has no lookups
func (r *Repository) FirstLookupForClient(ctx context.Context, clientID string) (*time.Time, error) {
	var first *time.Time
	err := r.db.QueryRow(ctx, queryFirstLookupForClient, clientID).Scan(&first)
	return first, err
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, queryCount).Scan(&count)
	return count, err
}

// most looked-up found terms with their distinct client counts
func (r *Repository) PopularTerms(ctx context.Context, limit int) ([]PopularTerm, error) {
	rows, err := r.db.Query(ctx, queryPopularTerms, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	terms := []PopularTerm{}

	for rows.Next() {
		var t PopularTerm
		if err := rows.Scan(&t.TermKey, &t.TermDisplay, &t.LookupCount, &t.UniqueUsers); err != nil {
			return nil, err
		}

		terms = append(terms, t)
	}

	return terms, rows.Err()
}

// found-lookup count and distinct clients for one term
func (r *Repository) TermTotals(ctx context.Context, termKey string) (TermTotals, error) {
	var totals TermTotals
	err := r.db.QueryRow(ctx, queryTermTotals, termKey).Scan(&totals.TotalLookups, &totals.UniqueUsers)
	return totals, err
}

func (r *Repository) ComplexityBreakdown(ctx context.Context, termKey string) ([]ComplexityCount, error) {
	rows, err := r.db.Query(ctx, queryComplexityBreakdown, termKey)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	breakdown := []ComplexityCount{}

	for rows.Next() {
		var cc ComplexityCount
		if err := rows.Scan(&cc.ComplexityLevel, &cc.Count); err != nil {
			return nil, err
		}

		breakdown = append(breakdown, cc)
	}

	return breakdown, rows.Err()
}

// latest found lookups for a term, newest first
func (r *Repository) RecentForTerm(ctx context.Context, termKey string, limit int) ([]RecentLookup, error) {
	rows, err := r.db.Query(ctx, queryRecentForTerm, termKey, limit)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	recent := []RecentLookup{}

	for rows.Next() {
		var rl RecentLookup
		if err := rows.Scan(&rl.ClientID, &rl.ComplexityLevel, &rl.PageURL, &rl.LookupTimestamp); err != nil {
			return nil, err
		}

		recent = append(recent, rl)
	}

	return recent, rows.Err()
}
