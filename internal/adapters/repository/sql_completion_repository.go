package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
)

var _ domain.CompletionRepository = (*SQLCompletionRepository)(nil)

const upsertCompletionQuery = `
	INSERT INTO habit_completions (habit, year, month, day, completed)
	VALUES (?, ?, ?, ?, ?)
	ON CONFLICT (habit, year, month, day)
	DO UPDATE SET completed = excluded.completed`

const loadMonthQuery = `
	SELECT habit, day, completed
	FROM habit_completions
	WHERE year = ? AND month = ?`

// SQLCompletionRepository works on both SQLite and Postgres; queries are
// written with '?' placeholders and rebound for the connected driver.
type SQLCompletionRepository struct {
	db *sqlx.DB
}

func NewSQLCompletionRepository(db *sqlx.DB) *SQLCompletionRepository {
	return &SQLCompletionRepository{db: db}
}

type completionRow struct {
	Habit     string `db:"habit"`
	Day       int    `db:"day"`
	Completed int    `db:"completed"`
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func (r *SQLCompletionRepository) Upsert(ctx context.Context, rec domain.CompletionRecord) error {
	_, err := r.db.ExecContext(ctx, r.db.Rebind(upsertCompletionQuery),
		rec.Habit, rec.Year, rec.Month, rec.Day, boolToInt(rec.Completed))
	if err != nil {
		return fmt.Errorf("%w: %q %04d-%02d-%02d: %w",
			domain.ErrRecordWriteFailed, rec.Habit, rec.Year, rec.Month, rec.Day, err)
	}
	return nil
}

func (r *SQLCompletionRepository) UpsertMany(ctx context.Context, records []domain.CompletionRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: begin transaction: %w", domain.ErrRecordWriteFailed, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PreparexContext(ctx, tx.Rebind(upsertCompletionQuery))
	if err != nil {
		return fmt.Errorf("%w: prepare upsert: %w", domain.ErrRecordWriteFailed, err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.ExecContext(ctx, rec.Habit, rec.Year, rec.Month, rec.Day, boolToInt(rec.Completed)); err != nil {
			return fmt.Errorf("%w: %q %04d-%02d-%02d: %w",
				domain.ErrRecordWriteFailed, rec.Habit, rec.Year, rec.Month, rec.Day, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", domain.ErrRecordWriteFailed, err)
	}
	return nil
}

func (r *SQLCompletionRepository) LoadMonth(ctx context.Context, year, month int) (domain.MonthRecords, error) {
	rows := []completionRow{}

	if err := r.db.SelectContext(ctx, &rows, r.db.Rebind(loadMonthQuery), year, month); err != nil {
		return nil, fmt.Errorf("%w: %04d-%02d: %w", domain.ErrRecordReadFailed, year, month, err)
	}

	out := make(domain.MonthRecords, len(rows))
	for _, row := range rows {
		out[domain.HabitDay{Habit: row.Habit, Day: row.Day}] = row.Completed != 0
	}
	return out, nil
}
