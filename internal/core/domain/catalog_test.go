package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
)

var testYears = domain.YearRange{First: 2026, Last: 2030}

func TestNewHabitCatalog(t *testing.T) {
	t.Run("Preserves order", func(t *testing.T) {
		c, err := domain.NewHabitCatalog([]string{"Run", "Read", "Sleep"}, testYears)
		require.NoError(t, err)

		assert.Equal(t, 3, c.Len())
		assert.Equal(t, []string{"Run", "Read", "Sleep"}, c.Names())

		idx, ok := c.Index("Sleep")
		assert.True(t, ok)
		assert.Equal(t, 2, idx)
		assert.Equal(t, "Read", c.At(1))
	})

	t.Run("Names returns a copy", func(t *testing.T) {
		c, err := domain.NewHabitCatalog([]string{"Run", "Read"}, testYears)
		require.NoError(t, err)

		names := c.Names()
		names[0] = "Mutated"

		assert.Equal(t, "Run", c.At(0))
	})

	t.Run("Rejects empty catalog", func(t *testing.T) {
		_, err := domain.NewHabitCatalog(nil, testYears)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("Rejects blank names", func(t *testing.T) {
		_, err := domain.NewHabitCatalog([]string{"Run", "  "}, testYears)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("Rejects duplicates", func(t *testing.T) {
		_, err := domain.NewHabitCatalog([]string{"Run", "Run"}, testYears)
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})

	t.Run("Rejects inverted year range", func(t *testing.T) {
		_, err := domain.NewHabitCatalog([]string{"Run"}, domain.YearRange{First: 2030, Last: 2026})
		assert.ErrorIs(t, err, domain.ErrInvalidCatalog)
	})
}

func TestDefaultHabitCatalog(t *testing.T) {
	c := domain.DefaultHabitCatalog()

	assert.Equal(t, 10, c.Len())
	assert.Equal(t, "Gym Workout 💪", c.At(0))
	assert.Equal(t, "Sleep Early 7 Hours 😴", c.At(9))
	assert.Equal(t, []int{2026, 2027, 2028, 2029, 2030}, c.Years().Years())
	assert.True(t, c.Years().Contains(2028))
	assert.False(t, c.Years().Contains(2031))
}
