package ingestion

import (
	"context"
	"time"

	"codeberg.org/askayo/server/askayo/feedback"
	"codeberg.org/askayo/server/askayo/lookups"
	"codeberg.org/askayo/server/askayo/missingterms"
	"codeberg.org/askayo/server/askayo/users"
	"codeberg.org/askayo/server/internal/events"
)

type UserStore interface {
	RecordLookup(ctx context.Context, clientID string) (*users.User, error)
	FindByClientID(ctx context.Context, clientID string) (*users.User, error)
}

type LookupStore interface {
	Create(ctx context.Context, l *lookups.Lookup) error
	CountDistinctTermsForClient(ctx context.Context, clientID string) (int, error)
	FirstLookupForClient(ctx context.Context, clientID string) (*time.Time, error)
}

type FeedbackStore interface {
	Create(ctx context.Context, f *feedback.Feedback) error
}

type MissingTermStore interface {
	Record(ctx context.Context, occ missingterms.Occurrence) (*missingterms.MissingTerm, error)
}

// stores that take part in recording one lookup
type LookupWriters struct {
	Users   UserStore
	Lookups LookupStore
	Missing MissingTermStore
}

// runs fn with writers bound to one transaction; nothing fn wrote survives an error
type Transactor interface {
	InTx(ctx context.Context, fn func(w LookupWriters) error) error
}

// records lookups and feedback from the extension and answers per-user stats
type Service struct {
	users    UserStore
	lookups  LookupStore
	feedback FeedbackStore
	tx       Transactor
	events   events.Emitter
	now      func() time.Time
}

// a term lookup reported by the extension
// empty TermDisplay and ComplexityLevel fall back to term_key and "simple"; nil Found means true
type LookupInput struct {
	ClientID        string
	TermKey         string
	TermDisplay     string
	ComplexityLevel string
	PageURL         *string
	PageContext     *string
	Found           *bool
}

type LookupResult struct {
	LookupID     int64
	TotalLookups int
}

type FeedbackInput struct {
	ClientID        string
	TermKey         string
	FeedbackType    string
	ComplexityLevel *string
	Comment         *string
}

// per-client usage; FirstSeen and LastSeen are nil for unknown clients
type UserStats struct {
	TotalLookups int
	UniqueTerms  int
	DaysActive   int
	FirstSeen    *time.Time
	LastSeen     *time.Time
}
