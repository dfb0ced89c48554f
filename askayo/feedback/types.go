package feedback

import (
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// handles feedback database operations
type Repository struct {
	db *pgxpool.Pool
}

type Type string

const (
	TypeThumbsUp   Type = "thumbs_up"
	TypeThumbsDown Type = "thumbs_down"
	TypeConfused   Type = "confused"
)

// every accepted feedback_type, in display order
var ValidTypes = []Type{TypeThumbsUp, TypeThumbsDown, TypeConfused}

// one feedback submission; immutable once written
type Feedback struct {
	ID              int64     `json:"id"`
	ClientID        string    `json:"client_id"`
	TermKey         string    `json:"term_key"`
	FeedbackType    Type      `json:"feedback_type"`
	ComplexityLevel *string   `json:"complexity_level,omitempty"`
	Comment         *string   `json:"comment,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type ConfusingTerm struct {
	TermKey       string `json:"term_key"`
	ConfusedCount int    `json:"confused_count"`
}

type TypeCount struct {
	FeedbackType Type `json:"feedback_type"`
	Count        int  `json:"count"`
}
