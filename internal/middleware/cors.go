package middleware

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS for the extension and any configured web origins
// with no origins configured every origin is allowed, including chrome-extension:// and moz-extension://
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:           []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:           []string{"Origin", "Content-Length", "Content-Type", RequestIDHeader},
		ExposeHeaders:          []string{RequestIDHeader},
		AllowBrowserExtensions: true,
		MaxAge:                 12 * time.Hour,
	}

	if len(allowedOrigins) == 0 {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = allowedOrigins
	}

	return cors.New(config)
}
