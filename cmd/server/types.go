package main

import (
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"codeberg.org/askayo/server/internal/analytics"
	"codeberg.org/askayo/server/internal/config"
	"codeberg.org/askayo/server/internal/events"
	"codeberg.org/askayo/server/internal/ingestion"
	"codeberg.org/askayo/server/internal/rewriter"
)

// holds all dependencies and state for the API server
type Server struct {
	db       *pgxpool.Pool
	redis    *redis.Client // nil when REDIS_URL is unset
	config   *config.Config
	services *Services
	router   *gin.Engine
}

// holds the domain services the handlers call
type Services struct {
	Ingestion *ingestion.Service
	Analytics *analytics.Service
	Rewriter  *rewriter.Service
	Events    *events.Tracker
}
