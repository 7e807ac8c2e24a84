package services

import (
	"fmt"
	"math"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
)

// percent rounds half to even, matching how the dashboard has always printed it.
func percent(completed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.RoundToEven(float64(completed) / float64(total) * 100))
}

func countTrue(flags []bool) int {
	n := 0
	for _, f := range flags {
		if f {
			n++
		}
	}
	return n
}

func OverallPercentage(flags []bool) domain.CompletionStat {
	completed := countTrue(flags)
	return domain.CompletionStat{
		Completed: completed,
		Total:     len(flags),
		Percent:   percent(completed, len(flags)),
	}
}

// PerHabitPercentage expects the contiguous chunk of one habit, so Total is
// the number of days in the month.
func PerHabitPercentage(habitFlags []bool) domain.CompletionStat {
	return OverallPercentage(habitFlags)
}

// SliceByHabit splits a flat flag sequence into contiguous per-habit chunks.
func SliceByHabit(flags []bool, daysInMonth int) ([][]bool, error) {
	if daysInMonth <= 0 {
		return nil, fmt.Errorf("%w: days in month must be positive, got %d", domain.ErrInvalidInput, daysInMonth)
	}
	if len(flags)%daysInMonth != 0 {
		return nil, fmt.Errorf("%w: %d flags is not a multiple of %d days", domain.ErrInvalidInput, len(flags), daysInMonth)
	}

	chunks := make([][]bool, 0, len(flags)/daysInMonth)
	for start := 0; start < len(flags); start += daysInMonth {
		chunks = append(chunks, flags[start:start+daysInMonth])
	}
	return chunks, nil
}

func MonthStatsFor(layout *domain.GridLayout, flags []bool) (*domain.MonthStats, error) {
	if len(flags) != layout.Len() {
		return nil, fmt.Errorf("%w: expected %d flags, got %d", domain.ErrInvalidInput, layout.Len(), len(flags))
	}

	chunks, err := SliceByHabit(flags, layout.DaysInMonth)
	if err != nil {
		return nil, err
	}

	stats := &domain.MonthStats{
		Year:        layout.Year,
		Month:       layout.Month,
		DaysInMonth: layout.DaysInMonth,
		Overall:     OverallPercentage(flags),
		Habits:      make([]domain.HabitStat, 0, len(chunks)),
	}

	for i, chunk := range chunks {
		stats.Habits = append(stats.Habits, domain.HabitStat{
			Habit:          layout.Catalog.At(i),
			CompletionStat: PerHabitPercentage(chunk),
		})
	}

	return stats, nil
}
