package main

import (
	"context"
	"os"
	"time"

	"codeberg.org/askayo/server/askayo/daily"
	"codeberg.org/askayo/server/internal/config"
	"codeberg.org/askayo/server/internal/logger"
	"codeberg.org/askayo/server/internal/rollup"
	"codeberg.org/askayo/server/internal/storage"
)

func main() {
	flags, err := config.ParseRollupFlags(os.Args[1:])
	if err != nil {
		logger.FatalErr(err, "invalid flags")
	}

	config.LoadDotEnv()
	logger.Setup(os.Getenv("ENVIRONMENT"))

	databaseURL, err := config.LoadDatabaseURL()
	if err != nil {
		logger.FatalErr(err, "failed to load configuration")
	}

	if flags.Migrate {
		if err := storage.Migrate(databaseURL); err != nil {
			logger.FatalErr(err, "failed to apply migrations")
		}
	}

	ctx := context.Background()

	db, err := storage.Open(ctx, databaseURL, storage.DefaultPoolOptions())
	if err != nil {
		logger.FatalErr(err, "failed to connect to database")
	}

	defer db.Close()

	svc := rollup.NewService(daily.NewRepository(db))

	last := svc.Yesterday()
	if flags.Date != "" {
		// already validated by ParseRollupFlags
		last, _ = time.Parse(time.DateOnly, flags.Date)
	}

	start := time.Now()

	rows, err := svc.Backfill(ctx, last, flags.Days)
	if err != nil {
		db.Close()
		logger.FatalErr(err, "rollup failed", "completed_days", len(rows))
	}

	logger.Info("rollup complete",
		"days", len(rows),
		"through", last.Format(time.DateOnly),
		"duration", time.Since(start),
	)
}
