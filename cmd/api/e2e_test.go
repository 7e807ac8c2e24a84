package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/comitanigiacomo/kanso-habit-grid/internal/adapters/handler/http"
	"github.com/comitanigiacomo/kanso-habit-grid/internal/config"
	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/services"
)

type monthResponse struct {
	View  domain.MonthView  `json:"view"`
	Stats domain.MonthStats `json:"stats"`
}

func sqliteConfig(t *testing.T) *config.Config {
	return &config.Config{
		Port:        "8080",
		StoreDriver: config.StoreSQLite,
		SQLitePath:  filepath.Join(t.TempDir(), "nested", "habit_tracker.db"),
		RateLimit:   100,
	}
}

func newTestServer(t *testing.T, a *app) *gin.Engine {
	return adapterHTTP.NewRouter(adapterHTTP.RouterDependencies{
		TrackerHandler: adapterHTTP.NewTrackerHandler(a.tracker),
		DB:             a.db,
		StartTime:      time.Now(),
	})
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, path, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestEndToEnd_MonthLifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	cfg := sqliteConfig(t)

	a, err := bootstrap(ctx, cfg)
	require.NoError(t, err)
	router := newTestServer(t, a)

	habits := a.catalog.Names()
	dim := domain.DaysInMonth(2027, 2)

	t.Run("1. Empty month renders all false", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/api/v1/months/2027/2", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var resp monthResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Len(t, resp.View.Rows, len(habits))
		assert.Equal(t, 28, resp.View.DaysInMonth)
		assert.Equal(t, 0, resp.Stats.Overall.Completed)
		assert.Equal(t, len(habits)*28, resp.Stats.Overall.Total)
	})

	t.Run("2. Apply a full edit batch", func(t *testing.T) {
		flags := make([]bool, len(habits)*dim)
		// habit 3 done every day
		for d := 0; d < dim; d++ {
			flags[3*dim+d] = true
		}

		w := doJSON(t, router, http.MethodPut, "/api/v1/months/2027/2", map[string]any{"flags": flags})
		require.Equal(t, http.StatusOK, w.Code)

		var stats domain.MonthStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, 100, stats.Habits[3].Percent)
		assert.Equal(t, 10, stats.Overall.Percent)
	})

	t.Run("3. Toggle one cell", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/months/2027/2/days/1",
			map[string]any{"habit": habits[3], "completed": false})
		require.Equal(t, http.StatusOK, w.Code)

		var stats domain.MonthStats
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
		assert.Equal(t, 27, stats.Habits[3].Completed)
	})

	t.Run("4. Out of range day is rejected", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPut, "/api/v1/months/2027/2/days/30",
			map[string]any{"habit": habits[0], "completed": true})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("5. Data survives a restart", func(t *testing.T) {
		a.Close()

		reopened, err := bootstrap(ctx, cfg)
		require.NoError(t, err)
		defer reopened.Close()

		view, stats, err := reopened.tracker.RenderMonth(ctx, 2027, 2)
		require.NoError(t, err)
		assert.False(t, view.Rows[3].Days[0])
		assert.True(t, view.Rows[3].Days[1])
		assert.Equal(t, 27, stats.Habits[3].Completed)
	})
}

func TestBootstrap_MemoryStore(t *testing.T) {
	a, err := bootstrap(context.Background(), &config.Config{StoreDriver: config.StoreMemory})
	require.NoError(t, err)
	defer a.Close()

	assert.Nil(t, a.db)
	assert.Nil(t, a.rdb, "redis stays off when REDIS_HOST is empty")
	assert.Equal(t, domain.DefaultHabitCatalog().Names(), a.catalog.Names())
}

func TestBootstrap_BadCatalogFile(t *testing.T) {
	cfg := &config.Config{
		StoreDriver: config.StoreMemory,
		CatalogFile: filepath.Join(t.TempDir(), "missing.yaml"),
	}

	_, err := bootstrap(context.Background(), cfg)
	assert.Error(t, err)
}

func TestPrintMonth(t *testing.T) {
	ctx := context.Background()
	a, err := bootstrap(ctx, &config.Config{StoreDriver: config.StoreMemory})
	require.NoError(t, err)

	habit := a.catalog.At(0)
	for _, day := range []int{1, 2} {
		_, err := a.tracker.SetCompletion(ctx, services.SetCompletionInput{
			Habit: habit, Year: 2026, Month: 2, Day: day, Completed: true,
		})
		require.NoError(t, err)
	}

	view, stats, err := a.tracker.RenderMonth(ctx, 2026, 2)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, printMonth(&out, view, stats))

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	require.Len(t, lines, a.catalog.Len()+2)

	assert.True(t, strings.HasPrefix(lines[0], "February 2026"))
	assert.Contains(t, lines[1], habit)
	assert.Contains(t, lines[1], "xx"+strings.Repeat(".", 26))
	assert.True(t, strings.HasSuffix(lines[1], "7%"))
	assert.Contains(t, lines[len(lines)-1], "2/280")
	assert.True(t, strings.HasSuffix(lines[len(lines)-1], "1%"))
}
