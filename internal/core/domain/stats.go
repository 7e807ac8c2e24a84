package domain

type CompletionStat struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
	Percent   int `json:"percent"`
}

type HabitStat struct {
	Habit string `json:"habit"`
	CompletionStat
}

type MonthStats struct {
	Year        int            `json:"year"`
	Month       int            `json:"month"`
	DaysInMonth int            `json:"days_in_month"`
	Overall     CompletionStat `json:"overall"`
	Habits      []HabitStat    `json:"habits"`
}
