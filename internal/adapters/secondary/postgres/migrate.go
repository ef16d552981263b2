package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Migrate creates the two tables if they do not exist. Both carry a unique
// index on endpoint; prediction_request rows cascade when their algorithm
// is deleted.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS ml_model (
			id          UUID PRIMARY KEY,
			created_at  TIMESTAMPTZ NOT NULL,
			owner_id    UUID NOT NULL,
			name        VARCHAR(128) NOT NULL,
			version     VARCHAR(16) NOT NULL,
			description VARCHAR(1000) NOT NULL DEFAULT '',
			endpoint    VARCHAR(256) NOT NULL UNIQUE,
			file_path   VARCHAR(256) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS prediction_request (
			id               UUID PRIMARY KEY,
			created_at       TIMESTAMPTZ NOT NULL,
			owner_id         UUID NOT NULL,
			course_title     VARCHAR(128) NOT NULL,
			price            DOUBLE PRECISION NOT NULL,
			content_duration DOUBLE PRECISION NOT NULL,
			num_lectures     INTEGER NOT NULL,
			level            VARCHAR(32) NOT NULL,
			days             INTEGER NOT NULL,
			prediction       DOUBLE PRECISION NOT NULL,
			algorithm_id     UUID NOT NULL REFERENCES ml_model(id) ON DELETE CASCADE,
			endpoint         VARCHAR(256) NOT NULL UNIQUE
		)`,
		`CREATE INDEX IF NOT EXISTS idx_prediction_request_algorithm
			ON prediction_request(algorithm_id)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate schema: %w", err)
		}
	}
	return nil
}
