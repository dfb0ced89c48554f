// Package events emits fire-and-forget analytics events.
//
// Every event is logged and counted. When a Redis client is configured the
// event is also appended to a capped stream for downstream consumers.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"codeberg.org/askayo/server/internal/logger"
	"codeberg.org/askayo/server/internal/metrics"
)

const (
	TermLookup        = "term_lookup"
	FeedbackSubmitted = "feedback_submitted"
	AIRewrite         = "ai_rewrite"
	ErrorEvent        = "error"

	DefaultStream  = "askayo:events"
	defaultMaxLen  = 10000
	defaultTimeout = 2 * time.Second
)

// Properties is the free-form payload attached to an event.
type Properties map[string]any

// Emitter is what services depend on.
type Emitter interface {
	Track(event string, props Properties)
	TrackError(err error, fields Properties)
}

// the subset of *redis.Client the tracker needs
type streamWriter interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
}

type Tracker struct {
	stream  streamWriter
	name    string
	maxLen  int64
	timeout time.Duration
	now     func() time.Time
	wg      sync.WaitGroup
}

// creates a tracker; rdb may be nil, in which case events are only logged and counted
func NewTracker(rdb *redis.Client) *Tracker {
	t := &Tracker{
		name:    DefaultStream,
		maxLen:  defaultMaxLen,
		timeout: defaultTimeout,
		now:     time.Now,
	}

	if rdb != nil {
		t.stream = rdb
	}

	return t
}

// records an event without blocking the caller
func (t *Tracker) Track(event string, props Properties) {
	metrics.RecordEvent(event)
	logger.Debug("analytics event", "event", event, "properties", map[string]any(props))

	if t.stream == nil {
		return
	}

	payload, err := json.Marshal(props)
	if err != nil {
		logger.ErrorErr(err, "failed to encode event properties", "event", event)
		return
	}

	ts := t.now().UTC().Format(time.RFC3339Nano)

	t.wg.Add(1)

	go func() {
		defer t.wg.Done()

		ctx, cancel := context.WithTimeout(context.Background(), t.timeout)
		defer cancel()

		err := t.stream.XAdd(ctx, &redis.XAddArgs{
			Stream: t.name,
			MaxLen: t.maxLen,
			Approx: true,
			Values: map[string]any{
				"event":      event,
				"properties": string(payload),
				"timestamp":  ts,
			},
		}).Err()

		if err != nil {
			logger.ErrorErr(err, "failed to publish analytics event", "event", event, "stream", t.name)
		}
	}()
}

// records an error event with the error message merged into fields
// callers log the error themselves
func (t *Tracker) TrackError(err error, fields Properties) {
	if err == nil {
		return
	}

	props := Properties{"error": err.Error()}
	for k, v := range fields {
		props[k] = v
	}

	t.Track(ErrorEvent, props)
}

// waits for in-flight publishes, used on shutdown
func (t *Tracker) Wait() {
	t.wg.Wait()
}
