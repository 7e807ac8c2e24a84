package domain

import "context"

type CompletionRepository interface {
	// Upsert writes or overwrites the record stored at its natural key.
	// Calling it repeatedly with the same record leaves a single row behind.
	Upsert(ctx context.Context, record CompletionRecord) error

	// UpsertMany applies Upsert to every record of one edit batch atomically.
	UpsertMany(ctx context.Context, records []CompletionRecord) error

	// LoadMonth returns every stored record for the given year and month, across all habits.
	LoadMonth(ctx context.Context, year, month int) (MonthRecords, error)
}
