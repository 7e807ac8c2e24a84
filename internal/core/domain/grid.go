package domain

import "fmt"

// GridCell is one (habit, day) position of the month grid.
type GridCell struct {
	Habit string `json:"habit"`
	Day   int    `json:"day"`
}

// GridLayout fixes the row-major order of a month grid: habits in catalog
// order on the outside, days 1..DaysInMonth ascending on the inside.
type GridLayout struct {
	Catalog     *HabitCatalog
	Year        int
	Month       int
	DaysInMonth int
}

func NewGridLayout(catalog *HabitCatalog, year, month int) (*GridLayout, error) {
	if catalog == nil || catalog.Len() == 0 {
		return nil, fmt.Errorf("%w: empty habit catalog", ErrInvalidInput)
	}
	if err := ValidateMonth(month); err != nil {
		return nil, err
	}
	return &GridLayout{
		Catalog:     catalog,
		Year:        year,
		Month:       month,
		DaysInMonth: DaysInMonth(year, month),
	}, nil
}

func (g *GridLayout) Len() int {
	return g.Catalog.Len() * g.DaysInMonth
}

func (g *GridLayout) CellAt(i int) (GridCell, error) {
	if i < 0 || i >= g.Len() {
		return GridCell{}, fmt.Errorf("%w: position %d outside grid of %d cells", ErrInvalidInput, i, g.Len())
	}
	return GridCell{
		Habit: g.Catalog.At(i / g.DaysInMonth),
		Day:   i%g.DaysInMonth + 1,
	}, nil
}

// PositionOf is the inverse of CellAt. It fails for habits outside the
// catalog and days outside the month.
func (g *GridLayout) PositionOf(habit string, day int) (int, error) {
	if err := NewCompletionRecord(habit, g.Year, g.Month, day, false).Validate(g.Catalog); err != nil {
		return 0, err
	}
	h, _ := g.Catalog.Index(habit)
	return h*g.DaysInMonth + day - 1, nil
}

func (g *GridLayout) Cells() []GridCell {
	cells := make([]GridCell, 0, g.Len())
	for _, habit := range g.Catalog.names {
		for day := 1; day <= g.DaysInMonth; day++ {
			cells = append(cells, GridCell{Habit: habit, Day: day})
		}
	}
	return cells
}

// Records maps a flat flag sequence back onto completion records.
func (g *GridLayout) Records(flags []bool) ([]CompletionRecord, error) {
	if len(flags) != g.Len() {
		return nil, fmt.Errorf("%w: expected %d flags for %04d-%02d, got %d",
			ErrInvalidInput, g.Len(), g.Year, g.Month, len(flags))
	}

	records := make([]CompletionRecord, 0, len(flags))
	for i, done := range flags {
		cell, err := g.CellAt(i)
		if err != nil {
			return nil, err
		}
		records = append(records, NewCompletionRecord(cell.Habit, g.Year, g.Month, cell.Day, done))
	}
	return records, nil
}

// Flags projects stored records onto the layout, treating absent keys as false.
func (g *GridLayout) Flags(stored MonthRecords) []bool {
	flags := make([]bool, 0, g.Len())
	for _, cell := range g.Cells() {
		flags = append(flags, stored.Completed(cell.Habit, cell.Day))
	}
	return flags
}

// BuildIndex returns the ordered (habit, day) pairs of the month grid.
func BuildIndex(catalog *HabitCatalog, year, month int) ([]GridCell, error) {
	layout, err := NewGridLayout(catalog, year, month)
	if err != nil {
		return nil, err
	}
	return layout.Cells(), nil
}
