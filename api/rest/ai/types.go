package ai

import (
	"context"

	"codeberg.org/askayo/server/internal/rewriter"
)

// what the handlers need from the rewrite service
type Service interface {
	Rewrite(ctx context.Context, req rewriter.Request) (*rewriter.Result, error)
	Stats(ctx context.Context) (*rewriter.Stats, error)
}

type RewriteRequest struct {
	ClientID            string `json:"client_id" example:"ext-7f3a"`
	TermKey             string `json:"term_key" example:"apr"`
	TermDisplay         string `json:"term_display,omitempty" example:"APR"`
	OriginalExplanation string `json:"original_explanation"`
	ComplexityLevel     string `json:"complexity_level,omitempty" example:"simple"`
	UserContext         string `json:"user_context,omitempty"`
}

type RewriteResponse struct {
	RewriteID            int64   `json:"rewrite_id"`
	RewrittenExplanation string  `json:"rewritten_explanation"`
	TokensUsed           int     `json:"tokens_used"`
	CostUSD              float64 `json:"cost_usd"`
}
