package domain

import (
	"fmt"
	"strings"
)

// CompletionKey is the natural key of a CompletionRecord.
type CompletionKey struct {
	Habit string
	Year  int
	Month int
	Day   int
}

type CompletionRecord struct {
	Habit     string `json:"habit" db:"habit"`
	Year      int    `json:"year" db:"year"`
	Month     int    `json:"month" db:"month"`
	Day       int    `json:"day" db:"day"`
	Completed bool   `json:"completed" db:"completed"`
}

func NewCompletionRecord(habit string, year, month, day int, completed bool) CompletionRecord {
	return CompletionRecord{
		Habit:     habit,
		Year:      year,
		Month:     month,
		Day:       day,
		Completed: completed,
	}
}

func (r CompletionRecord) Key() CompletionKey {
	return CompletionKey{Habit: r.Habit, Year: r.Year, Month: r.Month, Day: r.Day}
}

// Validate checks the record against the catalog and the Gregorian calendar.
// Stores never call it; callers validate before writing.
func (r CompletionRecord) Validate(catalog *HabitCatalog) error {
	if strings.TrimSpace(r.Habit) == "" {
		return fmt.Errorf("%w: habit is required", ErrInvalidInput)
	}
	if catalog != nil && !catalog.Contains(r.Habit) {
		return fmt.Errorf("%w: unknown habit %q", ErrInvalidInput, r.Habit)
	}
	return ValidateDay(r.Year, r.Month, r.Day)
}

// HabitDay addresses one cell of a month.
type HabitDay struct {
	Habit string
	Day   int
}

// MonthRecords holds the stored flags of one month. Missing keys mean "not completed".
type MonthRecords map[HabitDay]bool

func (m MonthRecords) Completed(habit string, day int) bool {
	return m[HabitDay{Habit: habit, Day: day}]
}
