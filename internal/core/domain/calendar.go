package domain

import "fmt"

const (
	MinMonth = 1
	MaxMonth = 12
)

// IsLeapYear follows the proleptic Gregorian rule.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInMonth returns 0 for a month outside 1..12.
func DaysInMonth(year, month int) int {
	switch month {
	case 1, 3, 5, 7, 8, 10, 12:
		return 31
	case 4, 6, 9, 11:
		return 30
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	default:
		return 0
	}
}

func ValidateMonth(month int) error {
	if month < MinMonth || month > MaxMonth {
		return fmt.Errorf("%w: month %d must be between 1 and 12", ErrInvalidInput, month)
	}
	return nil
}

func ValidateDay(year, month, day int) error {
	if err := ValidateMonth(month); err != nil {
		return err
	}
	dim := DaysInMonth(year, month)
	if day < 1 || day > dim {
		return fmt.Errorf("%w: day %d out of range 1..%d for %04d-%02d", ErrInvalidInput, day, dim, year, month)
	}
	return nil
}
