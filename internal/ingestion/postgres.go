package ingestion

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/askayo/server/askayo/lookups"
	"codeberg.org/askayo/server/askayo/missingterms"
	"codeberg.org/askayo/server/askayo/users"
	"codeberg.org/askayo/server/internal/storage"
)

// Transactor backed by a postgres transaction
type PostgresTransactor struct {
	pool *pgxpool.Pool
}

func NewPostgresTransactor(pool *pgxpool.Pool) *PostgresTransactor {
	return &PostgresTransactor{pool: pool}
}

func (p *PostgresTransactor) InTx(ctx context.Context, fn func(w LookupWriters) error) error {
	return storage.WithTx(ctx, p.pool, func(tx pgx.Tx) error {
		return fn(LookupWriters{
			Users:   users.NewRepository(tx),
			Lookups: lookups.NewRepository(tx),
			Missing: missingterms.NewRepository(tx),
		})
	})
}
