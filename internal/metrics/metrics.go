package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "askayo"

// holds all Prometheus metrics for the service
type Metrics struct {
	// HTTP metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RateLimitedTotal    *prometheus.CounterVec

	// analytics events emitted by the tracker
	EventsTotal *prometheus.CounterVec

	// completion API usage
	LLMRequestsTotal *prometheus.CounterVec
	LLMTokensTotal   *prometheus.CounterVec
	LLMCostUSDTotal  *prometheus.CounterVec
}

var (
	instance *Metrics
	once     sync.Once
)

// returns the process-wide metrics, registering them on first use
func Get() *Metrics {
	once.Do(func() {
		instance = &Metrics{
			HTTPRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "http_requests_total",
					Help:      "Total number of HTTP requests",
				},
				[]string{"method", "path", "status"},
			),
			HTTPRequestDuration: promauto.NewHistogramVec(
				prometheus.HistogramOpts{
					Namespace: namespace,
					Name:      "http_request_duration_seconds",
					Help:      "HTTP request latency in seconds",
					Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
				},
				[]string{"method", "path", "status"},
			),
			RateLimitedTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "rate_limited_total",
					Help:      "Requests rejected by the rate limiter",
				},
				[]string{"path"},
			),
			EventsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "events_total",
					Help:      "Analytics events tracked, by event name",
				},
				[]string{"event"},
			),
			LLMRequestsTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "llm_requests_total",
					Help:      "Completion API calls by model and outcome",
				},
				[]string{"model", "outcome"},
			),
			LLMTokensTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "llm_tokens_total",
					Help:      "Tokens consumed by completion calls",
				},
				[]string{"model", "kind"},
			),
			LLMCostUSDTotal: promauto.NewCounterVec(
				prometheus.CounterOpts{
					Namespace: namespace,
					Name:      "llm_cost_usd_total",
					Help:      "Estimated USD spent on completion calls",
				},
				[]string{"model"},
			),
		}
	})

	return instance
}

func RecordEvent(event string) {
	Get().EventsTotal.WithLabelValues(event).Inc()
}

// records one completion call; tokens and cost only count on success
func RecordLLMRequest(model string, promptTokens, completionTokens int, costUSD float64, err error) {
	m := Get()

	if err != nil {
		m.LLMRequestsTotal.WithLabelValues(model, "error").Inc()
		return
	}

	m.LLMRequestsTotal.WithLabelValues(model, "success").Inc()
	m.LLMTokensTotal.WithLabelValues(model, "prompt").Add(float64(promptTokens))
	m.LLMTokensTotal.WithLabelValues(model, "completion").Add(float64(completionTokens))
	m.LLMCostUSDTotal.WithLabelValues(model).Add(costUSD)
}
