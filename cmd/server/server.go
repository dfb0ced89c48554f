package main

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"codeberg.org/askayo/server/internal/config"
	"codeberg.org/askayo/server/internal/logger"
	"codeberg.org/askayo/server/internal/storage"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	if cfg.AutoMigrate {
		if err := storage.Migrate(cfg.DatabaseURL); err != nil {
			return nil, fmt.Errorf("failed to run migrations: %w", err)
		}
	}

	opts := storage.DefaultPoolOptions()
	opts.MaxConns = cfg.DBMaxConns

	db, err := storage.Open(ctx, cfg.DatabaseURL, opts)
	if err != nil {
		return nil, err
	}

	logger.Info("connected to database", "max_conns", opts.MaxConns)

	// redis is optional: without it events are only logged and rate limits are per-process
	var rdb *redis.Client

	if cfg.RedisURL != "" {
		rdb, err = storage.OpenRedis(ctx, cfg.RedisURL)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
	}

	services, err := InitializeServices(cfg, db, rdb)
	if err != nil {
		closeRedis(rdb)
		db.Close()
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	server := &Server{
		db:       db,
		redis:    rdb,
		config:   cfg,
		services: services,
		router:   router,
	}

	if err := RegisterRoutes(router, server); err != nil {
		closeRedis(rdb)
		db.Close()
		return nil, err
	}

	return server, nil
}

func closeRedis(rdb *redis.Client) {
	if rdb != nil {
		rdb.Close() //nolint:errcheck,gosec // best-effort cleanup
	}
}
