package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/askayo/server/internal/config"
	"codeberg.org/askayo/server/internal/logger"
)

// @title Ask AYO API
// @version 1.0
// @description Backend for the Ask AYO browser extension
// @description
// @description Features:
// @description - Term lookup and feedback tracking
// @description - AI rewrites of confusing explanations
// @description - Usage analytics and engagement metrics

// @BasePath /

func main() {
	// load configuration from environment
	cfg, err := config.LoadEnvironmentVariables()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	logger.Setup(cfg.Environment)
	logger.Info("starting ask ayo server", "environment", cfg.Environment)

	// create server with all dependencies
	srv, err := NewServer(context.Background(), cfg)
	if err != nil {
		logger.FatalErr(err, "failed to create server")
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      srv.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 75 * time.Second, // completion calls can take up to 60s
		IdleTimeout:  60 * time.Second,
	}

	// start server in goroutine
	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.FatalErr(err, "server failed to start")
		}
	}()

	// wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	// graceful shutdown with 10 second timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		logger.ErrorErr(err, "server forced to shutdown")
	}

	// let in-flight event publishes finish before closing redis
	srv.services.Events.Wait()

	closeRedis(srv.redis)

	// close database connection
	srv.db.Close()

	logger.Info("server stopped")
}
