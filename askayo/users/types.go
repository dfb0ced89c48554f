package users

import (
	"errors"
	"time"

	"codeberg.org/askayo/server/internal/storage"
)

var ErrNotFound = errors.New("user not found")

// handles user database operations
type Repository struct {
	db storage.DBTX
}

// one anonymous extension installation
type User struct {
	ID           int64     `json:"id"`
	ClientID     string    `json:"client_id"`
	FirstSeenAt  time.Time `json:"first_seen_at"`
	LastSeenAt   time.Time `json:"last_seen_at"`
	TotalLookups int       `json:"total_lookups"`
}

// number of users sharing the same total_lookups value
type LookupCount struct {
	TotalLookups int
	Users        int
}
