package repository

import "fmt"

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id BIGSERIAL PRIMARY KEY,
		username TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		profile_type TEXT,
		selected_banks JSONB,
		overrides JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS snapshots (
		user_id BIGINT PRIMARY KEY REFERENCES users(id) ON DELETE CASCADE,
		doc JSONB NOT NULL,
		generated_at TIMESTAMPTZ NOT NULL
	)`,
}

// Migrate creates the schema if it does not exist yet.
func (r *Repository) Migrate() error {
	for _, stmt := range migrations {
		if _, err := r.db.Exec(stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}
