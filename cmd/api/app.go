package main

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/adapters/cache"
	"github.com/comitanigiacomo/kanso-habit-grid/internal/adapters/repository"
	"github.com/comitanigiacomo/kanso-habit-grid/internal/config"
	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/services"
)

// app holds everything built at startup. db and rdb are nil when not configured.
type app struct {
	cfg     *config.Config
	catalog *domain.HabitCatalog
	db      *sqlx.DB
	rdb     *redis.Client
	repo    domain.CompletionRepository
	tracker *services.TrackerService
}

func loadConfig() (*config.Config, error) {
	cfg := config.Load()
	if flagCatalogFile != "" {
		cfg.CatalogFile = flagCatalogFile
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// bootstrap opens the store and, when redis is configured, the month cache.
// Every command goes through the cache so CLI writes invalidate what the
// server has cached. A store that cannot be opened is fatal; an unreachable
// redis only disables caching.
func bootstrap(ctx context.Context, cfg *config.Config) (*app, error) {
	catalog, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}

	a := &app{cfg: cfg, catalog: catalog}

	if driver, dsn, ok := cfg.DatabaseDriver(); ok {
		log.Printf("[STORE] Opening %s store...", cfg.StoreDriver)
		a.db, err = repository.OpenDatabase(ctx, driver, dsn)
		if err != nil {
			return nil, err
		}
		a.repo = repository.NewSQLCompletionRepository(a.db)
	} else {
		log.Println("[STORE] Using in-memory store, data is lost on exit")
		a.repo = repository.NewInMemoryCompletionRepository()
	}

	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(ctx, cfg.Redis())
		if err != nil {
			log.Printf("[CACHE] Redis unavailable, running without cache: %v", err)
		} else {
			a.rdb = rdb
			a.repo = repository.NewCachedCompletionRepository(a.repo, rdb, cfg.CacheTTL)
		}
	}

	a.tracker = services.NewTrackerService(a.repo, catalog)
	return a, nil
}

func (a *app) Close() {
	if a.rdb != nil {
		if err := a.rdb.Close(); err != nil {
			log.Printf("[CACHE] Close error: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			log.Printf("[STORE] Close error: %v", err)
		}
	}
}

func newApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return bootstrap(ctx, cfg)
}
