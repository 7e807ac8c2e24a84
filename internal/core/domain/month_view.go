package domain

// HabitRow is one line of the month grid.
type HabitRow struct {
	Habit string `json:"habit"`
	Days  []bool `json:"days"`
}

// MonthView is a read-only projection of one month onto the catalog. It is never persisted.
type MonthView struct {
	Year        int        `json:"year"`
	Month       int        `json:"month"`
	DaysInMonth int        `json:"days_in_month"`
	Rows        []HabitRow `json:"rows"`
}

func NewMonthView(layout *GridLayout, stored MonthRecords) *MonthView {
	view := &MonthView{
		Year:        layout.Year,
		Month:       layout.Month,
		DaysInMonth: layout.DaysInMonth,
		Rows:        make([]HabitRow, 0, layout.Catalog.Len()),
	}

	for _, habit := range layout.Catalog.names {
		row := HabitRow{Habit: habit, Days: make([]bool, layout.DaysInMonth)}
		for day := 1; day <= layout.DaysInMonth; day++ {
			row.Days[day-1] = stored.Completed(habit, day)
		}
		view.Rows = append(view.Rows, row)
	}
	return view
}

// Flags returns the row-major flag sequence of the view.
func (v *MonthView) Flags() []bool {
	flags := make([]bool, 0, len(v.Rows)*v.DaysInMonth)
	for _, row := range v.Rows {
		flags = append(flags, row.Days...)
	}
	return flags
}
