package sqlite

import (
	"context"
)

func (s *SQLiteStore) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS results (
			pass_id TEXT PRIMARY KEY,
			finished_at_unix INTEGER NOT NULL,
			score INTEGER NOT NULL,
			total INTEGER NOT NULL,
			percentage INTEGER NOT NULL,
			grade TEXT NOT NULL,
			hints_used INTEGER NOT NULL DEFAULT 0,
			fifty_fifty_used INTEGER NOT NULL DEFAULT 0,
			skipped INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE TABLE IF NOT EXISTS result_categories (
			pass_id TEXT NOT NULL REFERENCES results(pass_id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			category TEXT NOT NULL,
			correct INTEGER NOT NULL,
			total INTEGER NOT NULL,
			PRIMARY KEY (pass_id, position)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_results_finished_at ON results(finished_at_unix DESC);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
