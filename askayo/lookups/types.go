package lookups

import (
	"time"

	"codeberg.org/askayo/server/internal/storage"
)

const DefaultComplexity = "simple"

// handles term lookup database operations
type Repository struct {
	db storage.DBTX
}

// one term-lookup event; immutable once written
type Lookup struct {
	ID              int64     `json:"id"`
	ClientID        string    `json:"client_id"`
	TermKey         string    `json:"term_key"`
	TermDisplay     string    `json:"term_display"`
	ComplexityLevel string    `json:"complexity_level"`
	PageURL         *string   `json:"page_url,omitempty"`
	PageContext     *string   `json:"page_context,omitempty"`
	Found           bool      `json:"found"`
	LookupTimestamp time.Time `json:"lookup_timestamp"`
}

type PopularTerm struct {
	TermKey     string `json:"term_key"`
	TermDisplay string `json:"term_display"`
	LookupCount int    `json:"lookup_count"`
	UniqueUsers int    `json:"unique_users"`
}

type TermTotals struct {
	TotalLookups int
	UniqueUsers  int
}

type ComplexityCount struct {
	ComplexityLevel string `json:"complexity_level"`
	Count           int    `json:"count"`
}

type RecentLookup struct {
	ClientID        string    `json:"client_id"`
	ComplexityLevel string    `json:"complexity_level"`
	PageURL         *string   `json:"page_url"`
	LookupTimestamp time.Time `json:"lookup_timestamp"`
}
