package store

import (
	"context"
	"fmt"
)

// EnsureSchema creates the submissions table when it does not exist yet.
// Called once at startup by whatever owns the store.
func (s *Store) EnsureSchema(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS submissions (
			id              UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			candidate_name  TEXT NOT NULL DEFAULT '',
			candidate_email TEXT NOT NULL DEFAULT '',
			filename        TEXT NOT NULL DEFAULT '',
			job_category    TEXT NOT NULL,
			mode            TEXT NOT NULL,
			overall_score   DOUBLE PRECISION NOT NULL,
			passed          BOOLEAN NOT NULL,
			result          JSONB NOT NULL,
			evaluated_at    TIMESTAMPTZ NOT NULL,
			created_at      TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`)
	if err != nil {
		return fmt.Errorf("failed to ensure submissions schema: %w", err)
	}
	return nil
}
