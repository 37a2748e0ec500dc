package sqlite

import (
	"context"
	"errors"
	"time"

	"eduquiz/internal/quiz"
)

// SaveResult writes a finished pass and its category breakdown in one
// transaction. A pass id that is already stored is left untouched.
func (s *SQLiteStore) SaveResult(ctx context.Context, result quiz.Result) error {
	if result.PassID == "" {
		return errors.New("pass id is required")
	}
	if result.FinishedAt.IsZero() {
		result.FinishedAt = time.Now().UTC()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(
		ctx,
		`INSERT OR IGNORE INTO results (pass_id, finished_at_unix, score, total, percentage, grade, hints_used, fifty_fifty_used, skipped)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		result.PassID,
		result.FinishedAt.UnixNano(),
		result.Score,
		result.Total,
		result.Percentage,
		result.Grade.String(),
		result.HintsUsed,
		result.FiftyFiftyUsed,
		result.Skipped,
	)
	if err != nil {
		return err
	}
	inserted, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if inserted == 0 {
		return tx.Commit()
	}

	for idx, stat := range result.Categories {
		if _, err := tx.ExecContext(
			ctx,
			`INSERT INTO result_categories (pass_id, position, category, correct, total) VALUES (?, ?, ?, ?, ?)`,
			result.PassID,
			idx,
			stat.Category,
			stat.Correct,
			stat.Total,
		); err != nil {
			return err
		}
	}

	return tx.Commit()
}

func (s *SQLiteStore) ListResults(ctx context.Context, limit int) ([]quiz.Result, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT pass_id, finished_at_unix, score, total, percentage, grade, hints_used, fifty_fifty_used, skipped
		 FROM results
		 ORDER BY finished_at_unix DESC, pass_id ASC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}

	results := make([]quiz.Result, 0)
	for rows.Next() {
		var (
			result         quiz.Result
			finishedAtUnix int64
			grade          string
		)
		if err := rows.Scan(
			&result.PassID,
			&finishedAtUnix,
			&result.Score,
			&result.Total,
			&result.Percentage,
			&grade,
			&result.HintsUsed,
			&result.FiftyFiftyUsed,
			&result.Skipped,
		); err != nil {
			_ = rows.Close()
			return nil, err
		}
		if err := result.Grade.UnmarshalText([]byte(grade)); err != nil {
			_ = rows.Close()
			return nil, err
		}
		result.FinishedAt = time.Unix(0, finishedAtUnix).UTC()
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		_ = rows.Close()
		return nil, err
	}
	_ = rows.Close()

	for idx := range results {
		categories, err := s.resultCategories(ctx, results[idx].PassID)
		if err != nil {
			return nil, err
		}
		results[idx].Categories = categories
	}

	return results, nil
}

func (s *SQLiteStore) resultCategories(ctx context.Context, passID string) ([]quiz.CategoryStat, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT category, correct, total FROM result_categories WHERE pass_id = ? ORDER BY position ASC`,
		passID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stats []quiz.CategoryStat
	for rows.Next() {
		var stat quiz.CategoryStat
		if err := rows.Scan(&stat.Category, &stat.Correct, &stat.Total); err != nil {
			return nil, err
		}
		stats = append(stats, stat)
	}
	return stats, rows.Err()
}
