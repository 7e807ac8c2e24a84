package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
)

const gym = "Gym Workout 💪"

// setupCLIEnv points the commands at a fresh SQLite file. With a non-nil
// miniredis the month cache is enabled too.
func setupCLIEnv(t *testing.T, mr *miniredis.Miniredis) {
	t.Helper()

	t.Setenv("STORE_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", filepath.Join(t.TempDir(), "habit_tracker.db"))
	t.Setenv("HABIT_CATALOG_FILE", "")
	t.Setenv("REDIS_PASSWORD", "")
	t.Setenv("REDIS_DB", "0")

	if mr != nil {
		t.Setenv("REDIS_HOST", mr.Host())
		t.Setenv("REDIS_PORT", mr.Port())
	} else {
		t.Setenv("REDIS_HOST", "")
	}
}

// runCLI executes the root command. Flag values stick between runs, so
// callers always pass every flag they rely on.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	rootCmd.SetArgs(args)
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return out.String(), err
}

func TestCLI_CheckAndShow(t *testing.T) {
	setupCLIEnv(t, nil)

	t.Run("check marks a day", func(t *testing.T) {
		out, err := runCLI(t, "check", "--habit", gym, "--year", "2026", "--month", "3", "--day", "1", "--done=true")
		require.NoError(t, err)
		assert.Contains(t, out, gym+": 1/31 (3%)")
		assert.Contains(t, out, "Overall: 1/310 (0%)")
	})

	t.Run("check --done=false clears it", func(t *testing.T) {
		out, err := runCLI(t, "check", "--habit", gym, "--year", "2026", "--month", "3", "--day", "1", "--done=false")
		require.NoError(t, err)
		assert.Contains(t, out, gym+": 0/31 (0%)")
	})

	t.Run("show prints the stored grid", func(t *testing.T) {
		_, err := runCLI(t, "check", "--habit", gym, "--year", "2026", "--month", "3", "--day", "2", "--done=true")
		require.NoError(t, err)

		out, err := runCLI(t, "show", "--year", "2026", "--month", "3")
		require.NoError(t, err)

		lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
		require.Len(t, lines, domain.DefaultHabitCatalog().Len()+2)
		assert.True(t, strings.HasPrefix(lines[0], "March 2026"))
		assert.Contains(t, lines[1], gym)
		assert.Contains(t, lines[1], ".x"+strings.Repeat(".", 29))
		assert.Contains(t, lines[len(lines)-1], "1/310")
	})

	t.Run("check rejects a day outside the month", func(t *testing.T) {
		_, err := runCLI(t, "check", "--habit", gym, "--year", "2026", "--month", "2", "--day", "29", "--done=true")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})

	t.Run("show rejects a year outside the catalog", func(t *testing.T) {
		_, err := runCLI(t, "show", "--year", "1999", "--month", "3")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	})
}

func TestCLI_CheckInvalidatesServerCache(t *testing.T) {
	mr := miniredis.RunT(t)
	setupCLIEnv(t, mr)
	ctx := context.Background()

	cfg, err := loadConfig()
	require.NoError(t, err)

	server, err := bootstrap(ctx, cfg)
	require.NoError(t, err)
	defer server.Close()
	require.NotNil(t, server.rdb, "server must run with the month cache")

	view, _, err := server.tracker.RenderMonth(ctx, 2026, 3)
	require.NoError(t, err)
	require.False(t, view.Rows[0].Days[0])

	_, err = runCLI(t, "check", "--habit", gym, "--year", "2026", "--month", "3", "--day", "1", "--done=true")
	require.NoError(t, err)

	view, _, err = server.tracker.RenderMonth(ctx, 2026, 3)
	require.NoError(t, err)
	assert.True(t, view.Rows[0].Days[0], "server must see the write made from the terminal")

	// the UI submits the grid it just rendered plus one more tick
	flags := view.Flags()
	flags[1] = true
	stats, err := server.tracker.ApplyEdits(ctx, 2026, 3, flags)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Habits[0].Completed)

	view, _, err = server.tracker.RenderMonth(ctx, 2026, 3)
	require.NoError(t, err)
	assert.True(t, view.Rows[0].Days[0])
	assert.True(t, view.Rows[0].Days[1])
}
