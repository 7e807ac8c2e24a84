package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
)

var _ domain.CompletionRepository = (*CachedCompletionRepository)(nil)

const DefaultCacheTTL = 30 * time.Minute

// CachedCompletionRepository keeps LoadMonth results in redis. The store stays
// the source of truth: cache errors are logged and never returned.
type CachedCompletionRepository struct {
	next  domain.CompletionRepository
	cache *redis.Client
	ttl   time.Duration
}

func NewCachedCompletionRepository(next domain.CompletionRepository, cache *redis.Client, ttl time.Duration) *CachedCompletionRepository {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedCompletionRepository{
		next:  next,
		cache: cache,
		ttl:   ttl,
	}
}

type cachedCell struct {
	Habit     string `json:"h"`
	Day       int    `json:"d"`
	Completed bool   `json:"c"`
}

func monthGenerationKey(year, month int) string {
	return fmt.Sprintf("completions:gen:%04d:%02d", year, month)
}

// monthCacheKey embeds the month generation, so a snapshot read before a write
// can never be served once that write has bumped the generation.
func monthCacheKey(year, month int, gen int64) string {
	return fmt.Sprintf("completions:%04d:%02d:%d", year, month, gen)
}

func (r *CachedCompletionRepository) generation(ctx context.Context, year, month int) (int64, error) {
	gen, err := r.cache.Get(ctx, monthGenerationKey(year, month)).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// bump advances the generation of every month touched by a write.
func (r *CachedCompletionRepository) bump(ctx context.Context, records ...domain.CompletionRecord) {
	seen := make(map[string]struct{})
	pipe := r.cache.Pipeline()
	for _, rec := range records {
		k := monthGenerationKey(rec.Year, rec.Month)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		pipe.Incr(ctx, k)
	}
	if len(seen) == 0 {
		return
	}
	if _, err := pipe.Exec(ctx); err != nil {
		log.Printf("[CACHE] Failed to invalidate %d month(s): %v", len(seen), err)
	}
}

func (r *CachedCompletionRepository) Upsert(ctx context.Context, record domain.CompletionRecord) error {
	if err := r.next.Upsert(ctx, record); err != nil {
		return err
	}
	r.bump(ctx, record)
	return nil
}

func (r *CachedCompletionRepository) UpsertMany(ctx context.Context, records []domain.CompletionRecord) error {
	if err := r.next.UpsertMany(ctx, records); err != nil {
		return err
	}
	r.bump(ctx, records...)
	return nil
}

func (r *CachedCompletionRepository) LoadMonth(ctx context.Context, year, month int) (domain.MonthRecords, error) {
	gen, err := r.generation(ctx, year, month)
	if err != nil {
		log.Printf("[CACHE] Redis read error: %v", err)
		return r.next.LoadMonth(ctx, year, month)
	}
	key := monthCacheKey(year, month, gen)

	val, err := r.cache.Get(ctx, key).Result()
	if err == nil {
		var cells []cachedCell
		if err := json.Unmarshal([]byte(val), &cells); err == nil {
			out := make(domain.MonthRecords, len(cells))
			for _, c := range cells {
				out[domain.HabitDay{Habit: c.Habit, Day: c.Day}] = c.Completed
			}
			return out, nil
		}

		log.Printf("[CACHE] Corrupted data for %s, cleaning up key", key)
		r.cache.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("[CACHE] Redis read error: %v", err)
	}

	records, err := r.next.LoadMonth(ctx, year, month)
	if err != nil {
		return nil, err
	}

	cells := make([]cachedCell, 0, len(records))
	for hd, completed := range records {
		cells = append(cells, cachedCell{Habit: hd.Habit, Day: hd.Day, Completed: completed})
	}

	if data, err := json.Marshal(cells); err == nil {
		if setErr := r.cache.Set(ctx, key, data, r.ttl).Err(); setErr != nil {
			log.Printf("[CACHE] Redis set error: %v", setErr)
		}
	}

	return records, nil
}
