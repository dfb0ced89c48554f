package feedback

import (
	"context"
	"time"

	"codeberg.org/askayo/server/internal/ingestion"
)

// what the handlers need from the ingestion service
type Service interface {
	RecordLookup(ctx context.Context, in ingestion.LookupInput) (*ingestion.LookupResult, error)
	SubmitFeedback(ctx context.Context, in ingestion.FeedbackInput) (int64, error)
	UserStats(ctx context.Context, clientID string) (*ingestion.UserStats, error)
}

type LookupRequest struct {
	ClientID        string  `json:"client_id" example:"ext-7f3a"`
	TermKey         string  `json:"term_key" example:"apr"`
	TermDisplay     string  `json:"term_display,omitempty" example:"APR"`
	ComplexityLevel string  `json:"complexity_level,omitempty" example:"simple"`
	PageURL         *string `json:"page_url,omitempty"`
	PageContext     *string `json:"page_context,omitempty"`
	Found           *bool   `json:"found,omitempty"`
}

type LookupResponse struct {
	LookupID     int64 `json:"lookup_id"`
	TotalLookups int   `json:"total_lookups"`
}

type SubmitRequest struct {
	ClientID        string  `json:"client_id" example:"ext-7f3a"`
	TermKey         string  `json:"term_key" example:"apr"`
	FeedbackType    string  `json:"feedback_type" example:"confused"`
	ComplexityLevel *string `json:"complexity_level,omitempty"`
	Comment         *string `json:"comment,omitempty"`
}

type SubmitResponse struct {
	FeedbackID int64 `json:"feedback_id"`
}

type StatsResponse struct {
	TotalLookups int        `json:"total_lookups"`
	UniqueTerms  int        `json:"unique_terms"`
	DaysActive   int        `json:"days_active"`
	FirstSeen    *time.Time `json:"first_seen,omitempty"`
	LastSeen     *time.Time `json:"last_seen,omitempty"`
}
