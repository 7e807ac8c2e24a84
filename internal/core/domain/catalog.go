package domain

import (
	"fmt"
	"strings"
)

const (
	DefaultFirstYear = 2026
	DefaultLastYear  = 2030
)

var defaultHabits = []string{
	"Gym Workout 💪",
	"Read 5 pages 📚",
	"Meditate 10 mins 🧘",
	"Apply Skin Care (Morning) 🧴",
	"Drink 2.5+ L Water 💧",
	"Walk 10k steps 🚶‍♂️",
	"Personal Growth 1 hour",
	"Eat Healthy Food 🥗",
	"Apply Skin Care (Night) 🧴",
	"Sleep Early 7 Hours 😴",
}

// YearRange is the inclusive window of years offered to the user.
type YearRange struct {
	First int `json:"first" yaml:"first"`
	Last  int `json:"last" yaml:"last"`
}

func (r YearRange) Contains(year int) bool {
	return year >= r.First && year <= r.Last
}

func (r YearRange) Years() []int {
	years := make([]int, 0, r.Last-r.First+1)
	for y := r.First; y <= r.Last; y++ {
		years = append(years, y)
	}
	return years
}

// HabitCatalog is the fixed, ordered list of tracked habits. It is built once
// at startup and never mutated afterwards.
type HabitCatalog struct {
	names []string
	index map[string]int
	years YearRange
}

func NewHabitCatalog(names []string, years YearRange) (*HabitCatalog, error) {
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: at least one habit is required", ErrInvalidCatalog)
	}
	if years.First > years.Last {
		return nil, fmt.Errorf("%w: year range %d..%d is empty", ErrInvalidCatalog, years.First, years.Last)
	}

	c := &HabitCatalog{
		names: make([]string, 0, len(names)),
		index: make(map[string]int, len(names)),
		years: years,
	}
	for _, n := range names {
		if strings.TrimSpace(n) == "" {
			return nil, fmt.Errorf("%w: habit name cannot be blank", ErrInvalidCatalog)
		}
		if _, dup := c.index[n]; dup {
			return nil, fmt.Errorf("%w: duplicate habit %q", ErrInvalidCatalog, n)
		}
		c.index[n] = len(c.names)
		c.names = append(c.names, n)
	}
	return c, nil
}

func DefaultHabitCatalog() *HabitCatalog {
	c, err := NewHabitCatalog(defaultHabits, YearRange{First: DefaultFirstYear, Last: DefaultLastYear})
	if err != nil {
		panic(err)
	}
	return c
}

func (c *HabitCatalog) Len() int { return len(c.names) }

func (c *HabitCatalog) At(i int) string { return c.names[i] }

func (c *HabitCatalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

func (c *HabitCatalog) Index(name string) (int, bool) {
	i, ok := c.index[name]
	return i, ok
}

func (c *HabitCatalog) Contains(name string) bool {
	_, ok := c.index[name]
	return ok
}

func (c *HabitCatalog) Years() YearRange { return c.years }
