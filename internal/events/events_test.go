package events

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codeberg.org/askayo/server/internal/metrics"
)

// implements streamWriter for testing
type mockStream struct {
	mu      sync.Mutex
	calls   []*redis.XAddArgs
	xaddErr error
}

func (m *mockStream) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, a)

	if m.xaddErr != nil {
		return redis.NewStringResult("", m.xaddErr)
	}

	return redis.NewStringResult("1-0", nil)
}

func newTestTracker(stream streamWriter) *Tracker {
	t := NewTracker(nil)
	t.stream = stream
	t.now = func() time.Time { return time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC) }

	return t
}

func TestTrack_WithoutRedisCountsOnly(t *testing.T) {
	m := metrics.Get()
	m.EventsTotal.Reset()

	tracker := NewTracker(nil)
	tracker.Track(TermLookup, Properties{"term_key": "apr"})
	tracker.Wait()

	assert.Equal(t, 1.0, testutil.ToFloat64(m.EventsTotal.WithLabelValues(TermLookup)))
}

func TestTrack_PublishesToStream(t *testing.T) {
	stream := &mockStream{}
	tracker := newTestTracker(stream)

	tracker.Track(FeedbackSubmitted, Properties{"term_key": "apr", "feedback_type": "confused"})
	tracker.Wait()

	require.Len(t, stream.calls, 1)

	args := stream.calls[0]
	assert.Equal(t, DefaultStream, args.Stream)
	assert.Equal(t, int64(10000), args.MaxLen)
	assert.True(t, args.Approx)

	values, ok := args.Values.(map[string]any)
	require.True(t, ok)
	assert.Equal(t, FeedbackSubmitted, values["event"])
	assert.JSONEq(t, `{"term_key":"apr","feedback_type":"confused"}`, values["properties"].(string))
	assert.Equal(t, "2025-03-01T12:00:00Z", values["timestamp"])
}

func TestTrack_SwallowsPublishErrors(t *testing.T) {
	stream := &mockStream{xaddErr: errors.New("connection refused")}
	tracker := newTestTracker(stream)

	assert.NotPanics(t, func() {
		tracker.Track(AIRewrite, Properties{"tokens_used": 150})
		tracker.Wait()
	})

	assert.Len(t, stream.calls, 1)
}

func TestTrackError(t *testing.T) {
	stream := &mockStream{}
	tracker := newTestTracker(stream)

	tracker.TrackError(errors.New("db down"), Properties{"op": "record lookup"})
	tracker.TrackError(nil, Properties{"op": "ignored"})
	tracker.Wait()

	require.Len(t, stream.calls, 1)

	values := stream.calls[0].Values.(map[string]any)
	assert.Equal(t, ErrorEvent, values["event"])
	assert.JSONEq(t, `{"error":"db down","op":"record lookup"}`, values["properties"].(string))
}
