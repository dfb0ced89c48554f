package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"codeberg.org/askayo/server/api/rest/ai"
	"codeberg.org/askayo/server/api/rest/analytics"
	"codeberg.org/askayo/server/api/rest/feedback"
	"codeberg.org/askayo/server/api/rest/health"
	"codeberg.org/askayo/server/internal/middleware"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) error {
	router.Use(middleware.RequestID())
	router.Use(middleware.Metrics())
	router.Use(middleware.ErrorEvents(server.services.Events))
	router.Use(middleware.CORS(server.config.CORSAllowedOrigins))

	router.GET("/health", health.Handler(server.db))
	router.GET("/ping", health.PingHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	rateLimit, err := middleware.RateLimit(server.config.RateLimit, server.redis)
	if err != nil {
		return fmt.Errorf("failed to configure rate limiting: %w", err)
	}

	api := router.Group("/api")
	api.Use(rateLimit)

	{
		feedback.RegisterRoutes(api, server.services.Ingestion)
		ai.RegisterRoutes(api, server.services.Rewriter)
		analytics.RegisterRoutes(api, server.services.Analytics)
	}

	return nil
}
