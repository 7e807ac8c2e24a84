package services

import (
	"context"
	"fmt"

	"github.com/comitanigiacomo/kanso-habit-grid/internal/core/domain"
)

type TrackerService struct {
	repo    domain.CompletionRepository
	catalog *domain.HabitCatalog
}

func NewTrackerService(repo domain.CompletionRepository, catalog *domain.HabitCatalog) *TrackerService {
	return &TrackerService{
		repo:    repo,
		catalog: catalog,
	}
}

type SetCompletionInput struct {
	Habit     string
	Year      int
	Month     int
	Day       int
	Completed bool
}

func (s *TrackerService) Catalog() *domain.HabitCatalog {
	return s.catalog
}

func (s *TrackerService) layout(year, month int) (*domain.GridLayout, error) {
	if !s.catalog.Years().Contains(year) {
		years := s.catalog.Years()
		return nil, fmt.Errorf("%w: year %d outside %d..%d", domain.ErrInvalidInput, year, years.First, years.Last)
	}
	return domain.NewGridLayout(s.catalog, year, month)
}

func (s *TrackerService) RenderMonth(ctx context.Context, year, month int) (*domain.MonthView, *domain.MonthStats, error) {
	layout, err := s.layout(year, month)
	if err != nil {
		return nil, nil, err
	}

	stored, err := s.repo.LoadMonth(ctx, year, month)
	if err != nil {
		return nil, nil, err
	}

	view := domain.NewMonthView(layout, stored)

	stats, err := MonthStatsFor(layout, view.Flags())
	if err != nil {
		return nil, nil, err
	}

	return view, stats, nil
}

func (s *TrackerService) ApplyEdits(ctx context.Context, year, month int, flags []bool) (*domain.MonthStats, error) {
	layout, err := s.layout(year, month)
	if err != nil {
		return nil, err
	}

	records, err := layout.Records(flags)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpsertMany(ctx, records); err != nil {
		return nil, err
	}

	return MonthStatsFor(layout, flags)
}

func (s *TrackerService) SetCompletion(ctx context.Context, input SetCompletionInput) (*domain.MonthStats, error) {
	layout, err := s.layout(input.Year, input.Month)
	if err != nil {
		return nil, err
	}
	if _, err := layout.PositionOf(input.Habit, input.Day); err != nil {
		return nil, err
	}

	record := domain.NewCompletionRecord(input.Habit, input.Year, input.Month, input.Day, input.Completed)
	if err := s.repo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	return s.MonthStats(ctx, input.Year, input.Month)
}

func (s *TrackerService) MonthStats(ctx context.Context, year, month int) (*domain.MonthStats, error) {
	_, stats, err := s.RenderMonth(ctx, year, month)
	return stats, err
}
