package middleware

import (
	"fmt"
	"net/http"

	"codeberg.org/askayo/server/internal/envelope"
	"codeberg.org/askayo/server/internal/logger"
	"codeberg.org/askayo/server/internal/metrics"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
	sredis "github.com/ulule/limiter/v3/drivers/store/redis"
)

const rateLimitPrefix = "askayo:limiter"

// per-IP rate limiting
// rate uses the limiter format ("120-M", "10-S"); counters live in redis when rdb is set, else in memory
func RateLimit(rate string, rdb *redis.Client) (gin.HandlerFunc, error) {
	parsed, err := limiter.NewRateFromFormatted(rate)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", rate, err)
	}

	var store limiter.Store

	if rdb != nil {
		store, err = sredis.NewStoreWithOptions(rdb, limiter.StoreOptions{
			Prefix:   rateLimitPrefix,
			MaxRetry: 3,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create redis limiter store: %w", err)
		}
	} else {
		store = memory.NewStoreWithOptions(limiter.StoreOptions{
			Prefix:          rateLimitPrefix,
			CleanUpInterval: limiter.DefaultCleanUpInterval,
		})
	}

	m := metrics.Get()

	return mgin.NewMiddleware(
		limiter.New(store, parsed),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			m.RateLimitedTotal.WithLabelValues(c.FullPath()).Inc()
			logger.FromContext(c.Request.Context()).Warn("rate limit exceeded", "client_ip", c.ClientIP())
			envelope.Fail(c, http.StatusTooManyRequests, "Too many requests")
		}),
		mgin.WithErrorHandler(func(c *gin.Context, err error) {
			// fail open when the store is unreachable
			logger.FromContext(c.Request.Context()).Error("rate limiter error", "error", err)
			c.Next()
		}),
	), nil
}
