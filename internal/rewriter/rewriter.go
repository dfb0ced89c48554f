package rewriter

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"codeberg.org/askayo/server/askayo/rewrites"
	"codeberg.org/askayo/server/internal/errors"
	"codeberg.org/askayo/server/internal/events"
	"codeberg.org/askayo/server/internal/llm"
	"codeberg.org/askayo/server/internal/metrics"
)

const (
	providerName = "OpenAI"
	temperature  = 0.7
	maxTokens    = 300
	statsWindow  = 30 * 24 * time.Hour
)

// fails when model has no pricing entry, so a misconfigured model is caught at startup
func NewService(completer llm.Completer, store RewriteStore, ev events.Emitter, model string) (*Service, error) {
	if model == "" {
		model = llm.DefaultOpenAIModel
	}

	pricing, err := llm.PricingFor(model)
	if err != nil {
		return nil, err
	}

	return &Service{
		completer: completer,
		store:     store,
		events:    ev,
		model:     model,
		pricing:   pricing,
		now:       time.Now,
	}, nil
}

// requests one simplified explanation; nothing is stored when the API call fails
func (s *Service) Rewrite(ctx context.Context, req Request) (*Result, error) {
	if err := errors.Require(
		errors.Field{Name: "client_id", Value: req.ClientID},
		errors.Field{Name: "term_key", Value: req.TermKey},
		errors.Field{Name: "original_explanation", Value: req.OriginalExplanation},
	); err != nil {
		return nil, err
	}

	term := req.TermDisplay
	if strings.TrimSpace(term) == "" {
		term = req.TermKey
	}

	resp, err := s.completer.Complete(ctx, llm.ChatRequest{
		Model: s.model,
		Messages: []llm.Message{
			{Role: llm.RoleSystem, Content: systemPrompt},
			{Role: llm.RoleUser, Content: buildPrompt(term, req.OriginalExplanation, req.UserContext)},
		},
		Temperature: temperature,
		MaxTokens:   maxTokens,
	})

	if err != nil {
		metrics.RecordLLMRequest(s.model, 0, 0, 0, err)
		return nil, upstreamError(err)
	}

	cost := s.pricing.Cost(resp.Usage)
	metrics.RecordLLMRequest(s.model, resp.Usage.PromptTokens, resp.Usage.CompletionTokens, cost, nil)

	rw := &rewrites.Rewrite{
		ClientID:             req.ClientID,
		TermKey:              req.TermKey,
		OriginalExplanation:  req.OriginalExplanation,
		RewrittenExplanation: strings.TrimSpace(resp.Text),
		Model:                s.model,
		TokensUsed:           resp.Usage.TotalTokens,
		CostUSD:              cost,
	}

	if err := s.store.Create(ctx, rw); err != nil {
		return nil, errors.Persistence("create ai rewrite", err)
	}

	rounded := llm.Round6(cost)

	props := events.Properties{
		"term_key":    req.TermKey,
		"tokens_used": rw.TokensUsed,
		"cost_usd":    rounded,
	}

	if req.ComplexityLevel != "" {
		props["complexity_level"] = req.ComplexityLevel
	}

	s.events.Track(events.AIRewrite, props)

	return &Result{
		RewriteID:            rw.ID,
		RewrittenExplanation: rw.RewrittenExplanation,
		TokensUsed:           rw.TokensUsed,
		CostUSD:              rounded,
	}, nil
}

// lifetime totals plus per-day totals for the last 30 days
func (s *Service) Stats(ctx context.Context) (*Stats, error) {
	totals, err := s.store.Totals(ctx)
	if err != nil {
		return nil, errors.Persistence("rewrite totals", err)
	}

	byDate, err := s.store.DailyTotalsSince(ctx, s.now().Add(-statsWindow))
	if err != nil {
		return nil, errors.Persistence("rewrite totals by date", err)
	}

	return &Stats{
		TotalRewrites:  totals.Rewrites,
		TotalTokens:    totals.Tokens,
		TotalCost:      totals.CostUSD,
		RewritesByDate: byDate,
	}, nil
}

// provider answers become UpstreamError, transport failures stay plain errors (500)
func upstreamError(err error) error {
	var apiErr *llm.APIError
	if stderrors.As(err, &apiErr) {
		return errors.Upstream(providerName, apiErr.StatusCode, apiErr.Message, err)
	}

	return fmt.Errorf("completion request failed: %w", err)
}
