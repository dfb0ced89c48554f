package users

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"

	"codeberg.org/askayo/server/internal/storage"
)

// creates a new user repository
func NewRepository(db storage.DBTX) *Repository {
	return &Repository{db: db}
}

// creates the user on first sight or bumps total_lookups and last_seen_at, in one statement
func (r *Repository) RecordLookup(ctx context.Context, clientID string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryRecordLookup, clientID).Scan(
		&user.ID,
		&user.ClientID,
		&user.FirstSeenAt,
		&user.LastSeenAt,
		&user.TotalLookups,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// finds a user by client id, returning ErrNotFound when absent
func (r *Repository) FindByClientID(ctx context.Context, clientID string) (*User, error) {
	var user User

	err := r.db.QueryRow(ctx, queryFindByClientID, clientID).Scan(
		&user.ID,
		&user.ClientID,
		&user.FirstSeenAt,
		&user.LastSeenAt,
		&user.TotalLookups,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *Repository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, queryCount).Scan(&count)
	return count, err
}

// counts users whose last_seen_at is at or after since
func (r *Repository) CountActiveSince(ctx context.Context, since time.Time) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, queryCountActiveSince, since).Scan(&count)
	return count, err
}

// mean total_lookups across all users, 0 when there are none
func (r *Repository) AverageLookups(ctx context.Context) (float64, error) {
	var avg float64
	err := r.db.QueryRow(ctx, queryAverageLookups).Scan(&avg)
	return avg, err
}

// returns how many users have each distinct total_lookups value
func (r *Repository) LookupHistogram(ctx context.Context) ([]LookupCount, error) {
	rows, err := r.db.Query(ctx, queryLookupHistogram)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var histogram []LookupCount

	for rows.Next() {
		var lc LookupCount
		if err := rows.Scan(&lc.TotalLookups, &lc.Users); err != nil {
			return nil, err
		}

		histogram = append(histogram, lc)
	}

	return histogram, rows.Err()
}
