package db

import (
	"context"
	_ "embed"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
)

//go:embed schema.sql
var schemaSQL string

// Schema returns the idempotent DDL and catalog seed used by Migrate.
func Schema() string {
	return schemaSQL
}

// Migrate applies the embedded schema. Safe to run on every start.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	log.Debug("applying db schema")
	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}
