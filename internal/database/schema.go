package database

import (
	"context"
	"fmt"
)

// EnsureSchema creates the application tables if they do not exist yet.
// Measurements reference sensors without ON DELETE CASCADE: the cascade is an
// explicit two-step transaction owned by the cleanup service.
func EnsureSchema(ctx context.Context, db DB) error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id BIGSERIAL PRIMARY KEY,
			username VARCHAR(30) NOT NULL UNIQUE,
			password_hash TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS sensors (
			id BIGINT PRIMARY KEY,
			mode VARCHAR(10) NOT NULL,
			"limit" INTEGER NOT NULL,
			user_id BIGINT NOT NULL REFERENCES users(id),
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS measurements (
			id BIGSERIAL PRIMARY KEY,
			sensor_id BIGINT NOT NULL REFERENCES sensors(id),
			value DOUBLE PRECISION NOT NULL,
			timestamp TIMESTAMPTZ NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_measurements_sensor_timestamp
			ON measurements(sensor_id, timestamp DESC)`,
	}

	for _, query := range queries {
		if _, err := db.GetDB().ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to initialize schema: %w", err)
		}
	}
	return nil
}
