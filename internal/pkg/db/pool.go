package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Options struct {
	URL      string
	MaxConns int32
	MinConns int32
}

// Connect creates a connection pool to Postgres and checks it with a ping.
// URL may be a postgres:// URL or a keyword/value DSN.
func Connect(ctx context.Context, options Options) (*pgxpool.Pool, error) {
	cfg, err := ParseConfig(options)
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return pool, nil
}

func ParseConfig(options Options) (*pgxpool.Config, error) {
	cfg, err := pgxpool.ParseConfig(options.URL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	if options.MaxConns > 0 {
		cfg.MaxConns = options.MaxConns
	}

	if options.MinConns > 0 {
		cfg.MinConns = options.MinConns
	}

	return cfg, nil
}
