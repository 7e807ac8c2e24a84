package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
)

type catalogFile struct {
	Habits []string          `yaml:"habits"`
	Years  *domain.YearRange `yaml:"years"`
}

// LoadCatalog reads the habit catalog from a YAML file. An empty path selects
// the built-in catalog.
//
//	habits:
//	  - Gym Workout
//	  - Read 5 pages
//	years:
//	  first: 2026
//	  last: 2030
func LoadCatalog(path string) (*domain.HabitCatalog, error) {
	if path == "" {
		return domain.DefaultHabitCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", path, err)
	}

	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}

	years := domain.YearRange{First: domain.DefaultFirstYear, Last: domain.DefaultLastYear}
	if f.Years != nil {
		years = *f.Years
	}

	return domain.NewHabitCatalog(f.Habits, years)
}
