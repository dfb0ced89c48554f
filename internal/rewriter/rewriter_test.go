package rewriter

import (
	"context"
	stderrors "errors"
	"net/http"
	"strings"
	"testing"
	"time"

	"codeberg.org/askayo/server/askayo/rewrites"
	"codeberg.org/askayo/server/internal/errors"
	"codeberg.org/askayo/server/internal/events"
	"codeberg.org/askayo/server/internal/llm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// implements llm.Completer for testing
type mockCompleter struct {
	completeFunc func(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error)
	calls        []llm.ChatRequest
}

func (m *mockCompleter) Complete(ctx context.Context, req llm.ChatRequest) (*llm.ChatResponse, error) {
	m.calls = append(m.calls, req)

	if m.completeFunc != nil {
		return m.completeFunc(ctx, req)
	}

	return &llm.ChatResponse{
		Text:  "  Think of APR as the yearly price tag on borrowed money.  ",
		Usage: llm.Usage{PromptTokens: 100, CompletionTokens: 50, TotalTokens: 150},
	}, nil
}

// implements RewriteStore for testing
type mockStore struct {
	created []*rewrites.Rewrite
	totals  rewrites.Totals
	daily   []rewrites.DailyTotals
	since   time.Time
}

func (m *mockStore) Create(_ context.Context, rw *rewrites.Rewrite) error {
	m.created = append(m.created, rw)
	rw.ID = int64(len(m.created))

	return nil
}

func (m *mockStore) Totals(context.Context) (rewrites.Totals, error) {
	return m.totals, nil
}

func (m *mockStore) DailyTotalsSince(_ context.Context, since time.Time) ([]rewrites.DailyTotals, error) {
	m.since = since
	return m.daily, nil
}

type mockEmitter struct {
	tracked []string
	props   []events.Properties
}

func (m *mockEmitter) Track(event string, props events.Properties) {
	m.tracked = append(m.tracked, event)
	m.props = append(m.props, props)
}

func (m *mockEmitter) TrackError(error, events.Properties) {}

func newTestService(t *testing.T, c *mockCompleter, s *mockStore, e *mockEmitter) *Service {
	t.Helper()

	svc, err := NewService(c, s, e, "")
	require.NoError(t, err)

	return svc
}

func validRequest() Request {
	return Request{
		ClientID:            "c1",
		TermKey:             "apr",
		TermDisplay:         "APR",
		OriginalExplanation: "Annual percentage rate of charge.",
		ComplexityLevel:     "simple",
	}
}

func TestNewService_UnknownModel(t *testing.T) {
	_, err := NewService(&mockCompleter{}, &mockStore{}, &mockEmitter{}, "gpt-unknown")
	assert.Error(t, err)
}

func TestRewrite_Success(t *testing.T) {
	c, s, e := &mockCompleter{}, &mockStore{}, &mockEmitter{}

	res, err := newTestService(t, c, s, e).Rewrite(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(1), res.RewriteID)
	assert.Equal(t, "Think of APR as the yearly price tag on borrowed money.", res.RewrittenExplanation)
	assert.Equal(t, 150, res.TokensUsed)
	assert.Equal(t, 0.00025, res.CostUSD)

	require.Len(t, s.created, 1)
	assert.Equal(t, "gpt-3.5-turbo", s.created[0].Model)
	assert.Equal(t, 150, s.created[0].TokensUsed)
	assert.Equal(t, "Annual percentage rate of charge.", s.created[0].OriginalExplanation)

	require.Len(t, c.calls, 1)
	call := c.calls[0]
	assert.Equal(t, "gpt-3.5-turbo", call.Model)
	assert.InDelta(t, 0.7, call.Temperature, 1e-6)
	assert.Equal(t, 300, call.MaxTokens)
	require.Len(t, call.Messages, 2)
	assert.Equal(t, llm.RoleSystem, call.Messages[0].Role)
	assert.Contains(t, call.Messages[1].Content, `"APR"`)
	assert.Contains(t, call.Messages[1].Content, `"Annual percentage rate of charge."`)
	assert.NotContains(t, call.Messages[1].Content, "Additional context")

	assert.Equal(t, []string{events.AIRewrite}, e.tracked)
	assert.Equal(t, 150, e.props[0]["tokens_used"])
}

func TestRewrite_UsesTermKeyAndContext(t *testing.T) {
	c := &mockCompleter{}

	req := validRequest()
	req.TermDisplay = ""
	req.UserContext = "I am a student"

	_, err := newTestService(t, c, &mockStore{}, &mockEmitter{}).Rewrite(context.Background(), req)
	require.NoError(t, err)

	prompt := c.calls[0].Messages[1].Content
	assert.Contains(t, prompt, `explanation of "apr"`)
	assert.Contains(t, prompt, "Additional context: I am a student")
	assert.True(t, strings.HasSuffix(prompt, "Rewrite the explanation now:"))
}

func TestRewrite_MissingExplanation(t *testing.T) {
	c, s := &mockCompleter{}, &mockStore{}

	req := validRequest()
	req.OriginalExplanation = ""

	_, err := newTestService(t, c, s, &mockEmitter{}).Rewrite(context.Background(), req)

	var verr *errors.ValidationError
	require.True(t, stderrors.As(err, &verr))
	assert.Equal(t, "original_explanation is required", verr.Message)
	assert.Empty(t, c.calls)
	assert.Empty(t, s.created)
}

func TestRewrite_UpstreamFailure(t *testing.T) {
	c := &mockCompleter{
		completeFunc: func(context.Context, llm.ChatRequest) (*llm.ChatResponse, error) {
			return nil, &llm.APIError{StatusCode: http.StatusTooManyRequests, Message: "Rate limit reached"}
		},
	}
	s, e := &mockStore{}, &mockEmitter{}

	_, err := newTestService(t, c, s, e).Rewrite(context.Background(), validRequest())

	var uerr *errors.UpstreamError
	require.True(t, stderrors.As(err, &uerr))
	assert.Equal(t, http.StatusTooManyRequests, uerr.StatusCode)
	assert.Equal(t, "OpenAI API error: Rate limit reached", uerr.Error())
	assert.Empty(t, s.created)
	assert.Empty(t, e.tracked)
}

func TestRewrite_TransportFailureIsNotUpstream(t *testing.T) {
	c := &mockCompleter{
		completeFunc: func(context.Context, llm.ChatRequest) (*llm.ChatResponse, error) {
			return nil, context.DeadlineExceeded
		},
	}

	_, err := newTestService(t, c, &mockStore{}, &mockEmitter{}).Rewrite(context.Background(), validRequest())
	require.Error(t, err)

	var uerr *errors.UpstreamError
	assert.False(t, stderrors.As(err, &uerr))
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	s := &mockStore{
		totals: rewrites.Totals{Rewrites: 3, Tokens: 450, CostUSD: 0.00075},
		daily:  []rewrites.DailyTotals{{Date: "2025-06-15", Count: 2, Tokens: 300, Cost: 0.0005}},
	}

	svc := newTestService(t, &mockCompleter{}, s, &mockEmitter{})
	svc.now = func() time.Time { return now }

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, stats.TotalRewrites)
	assert.Equal(t, 450, stats.TotalTokens)
	assert.Equal(t, 0.00075, stats.TotalCost)
	assert.Len(t, stats.RewritesByDate, 1)
	assert.Equal(t, now.Add(-30*24*time.Hour), s.since)
}
