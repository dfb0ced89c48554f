package main

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"codeberg.org/askayo/server/askayo/daily"
	"codeberg.org/askayo/server/askayo/feedback"
	"codeberg.org/askayo/server/askayo/lookups"
	"codeberg.org/askayo/server/askayo/missingterms"
	"codeberg.org/askayo/server/askayo/rewrites"
	"codeberg.org/askayo/server/askayo/users"
	"codeberg.org/askayo/server/internal/analytics"
	"codeberg.org/askayo/server/internal/config"
	"codeberg.org/askayo/server/internal/events"
	"codeberg.org/askayo/server/internal/ingestion"
	"codeberg.org/askayo/server/internal/llm"
	"codeberg.org/askayo/server/internal/rewriter"
)

// creates repositories and wires them into the domain services
func InitializeServices(cfg *config.Config, db *pgxpool.Pool, rdb *redis.Client) (*Services, error) {
	userRepo := users.NewRepository(db)
	lookupRepo := lookups.NewRepository(db)
	feedbackRepo := feedback.NewRepository(db)
	missingRepo := missingterms.NewRepository(db)
	rewriteRepo := rewrites.NewRepository(db)
	dailyRepo := daily.NewRepository(db)

	tracker := events.NewTracker(rdb)

	completer := llm.NewOpenAIClient(llm.OpenAIConfig{
		APIKey:  cfg.OpenAIKey,
		BaseURL: cfg.OpenAIBaseURL,
	})

	rewriteService, err := rewriter.NewService(completer, rewriteRepo, tracker, cfg.OpenAIModel)
	if err != nil {
		return nil, fmt.Errorf("failed to create rewrite service: %w", err)
	}

	return &Services{
		Ingestion: ingestion.NewService(userRepo, lookupRepo, feedbackRepo, ingestion.NewPostgresTransactor(db), tracker),
		Analytics: analytics.NewService(userRepo, lookupRepo, feedbackRepo, missingRepo, dailyRepo),
		Rewriter:  rewriteService,
		Events:    tracker,
	}, nil
}
