package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
)

func TestCompletionRecord_Validate(t *testing.T) {
	catalog := domain.DefaultHabitCatalog()
	habit := catalog.At(0)

	tests := []struct {
		name    string
		record  domain.CompletionRecord
		wantErr bool
	}{
		{"Valid", domain.NewCompletionRecord(habit, 2026, 1, 31, true), false},
		{"Leap day", domain.NewCompletionRecord(habit, 2028, 2, 29, true), false},
		{"Day past end of month", domain.NewCompletionRecord(habit, 2026, 2, 29, true), true},
		{"Unknown habit", domain.NewCompletionRecord("Juggling", 2026, 1, 1, true), true},
		{"Blank habit", domain.NewCompletionRecord(" ", 2026, 1, 1, true), true},
		{"Invalid month", domain.NewCompletionRecord(habit, 2026, 13, 1, false), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.record.Validate(catalog)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompletionRecord_Key(t *testing.T) {
	a := domain.NewCompletionRecord("Run", 2026, 3, 4, true)
	b := domain.NewCompletionRecord("Run", 2026, 3, 4, false)

	assert.Equal(t, a.Key(), b.Key(), "completed flag is not part of the natural key")
}
