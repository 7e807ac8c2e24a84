package repository

import (
	"context"
	"sync"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
)

var _ domain.CompletionRepository = (*InMemoryCompletionRepository)(nil)

type InMemoryCompletionRepository struct {
	store map[domain.CompletionKey]bool

	mu sync.RWMutex
}

func NewInMemoryCompletionRepository() *InMemoryCompletionRepository {
	return &InMemoryCompletionRepository{
		store: make(map[domain.CompletionKey]bool),
	}
}

func (r *InMemoryCompletionRepository) Upsert(ctx context.Context, record domain.CompletionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.store[record.Key()] = record.Completed
	return nil
}

func (r *InMemoryCompletionRepository) UpsertMany(ctx context.Context, records []domain.CompletionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, rec := range records {
		r.store[rec.Key()] = rec.Completed
	}
	return nil
}

func (r *InMemoryCompletionRepository) LoadMonth(ctx context.Context, year, month int) (domain.MonthRecords, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(domain.MonthRecords)
	for k, completed := range r.store {
		if k.Year == year && k.Month == month {
			out[domain.HabitDay{Habit: k.Habit, Day: k.Day}] = completed
		}
	}
	return out, nil
}

// Len reports how many keys are stored.
func (r *InMemoryCompletionRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.store)
}
