package missingterms

import (
	"time"

	"codeberg.org/askayo/server/internal/storage"
)

// handles missing-term database operations
type Repository struct {
	db storage.DBTX
}

// a looked-up term that the glossary could not resolve
type MissingTerm struct {
	ID          int64     `json:"id"`
	ClientID    string    `json:"client_id"`
	MissingText string    `json:"missing_text"`
	PageURL     *string   `json:"page_url,omitempty"`
	PageContext *string   `json:"page_context,omitempty"`
	LookupCount int       `json:"lookup_count"`
	FirstSeenAt time.Time `json:"first_seen_at"`
	LastSeenAt  time.Time `json:"last_seen_at"`
}

// what a caller reports when a lookup misses
type Occurrence struct {
	ClientID    string
	Text        string
	PageURL     *string
	PageContext *string
}
