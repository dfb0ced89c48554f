package middleware

import (
	"github.com/gin-gonic/gin"

	"codeberg.org/askayo/server/internal/events"
)

// reports every error attached to the request with c.Error as an error event
func ErrorEvents(ev events.Emitter) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, ge := range c.Errors {
			ev.TrackError(ge.Err, events.Properties{
				"method":     c.Request.Method,
				"path":       c.FullPath(),
				"status":     c.Writer.Status(),
				"request_id": GetRequestID(c),
			})
		}
	}
}
