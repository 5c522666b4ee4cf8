package services

import (
	"context"
	"log"

	"github.com/npandey/habitpulse/internal/core/domain"
)

const trailingWindowDays = 7

// StatsService derives the personal dashboard figures: the weekly percent
// series, its summary, and all-time per-habit rates. A failed store read
// degrades to zero-valued metrics rather than an error; every aggregate
// here is defined over empty input.
type StatsService struct {
	habitRepo  domain.HabitRepository
	recordRepo domain.RecordRepository
	clock      domain.Clock
}

func NewStatsService(habitRepo domain.HabitRepository, recordRepo domain.RecordRepository, clock domain.Clock) *StatsService {
	return &StatsService{
		habitRepo:  habitRepo,
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// WeeklyPercents returns the trailing 7-day window and the zero-filled
// percent per day.
func (s *StatsService) WeeklyPercents(ctx context.Context, userName string) ([]domain.DayKey, []int) {
	days := domain.LastNDays(s.clock, trailingWindowDays)

	records, err := s.recordRepo.ListByUserAndDates(ctx, userName, days)
	if err != nil {
		log.Printf("[STATS] record fetch failed for %s, reporting empty week: %v", userName, err)
		records = nil
	}

	grouped := domain.GroupByDay(domain.FilterValid(records), days)
	return days, domain.DailyPercents(grouped, days, domain.EmptyDayZeroFill)
}

func (s *StatsService) GetWeeklySummary(ctx context.Context, userName string) *domain.WeeklySummary {
	days, percents := s.WeeklyPercents(ctx, userName)

	return &domain.WeeklySummary{
		Days:        days,
		Percents:    percents,
		Average:     domain.WeeklyAverage(percents),
		BestDay:     domain.BestDay(percents),
		PerfectDays: domain.PerfectDayCount(percents),
	}
}

// GetHabitStats computes all-time completion rates per habit, in the
// user's habit creation order.
func (s *StatsService) GetHabitStats(ctx context.Context, userName string) []domain.HabitStat {
	habits, err := s.habitRepo.ListByUser(ctx, userName)
	if err != nil {
		log.Printf("[STATS] habit fetch failed for %s, reporting no stats: %v", userName, err)
		return []domain.HabitStat{}
	}

	records, err := s.recordRepo.ListByUser(ctx, userName)
	if err != nil {
		log.Printf("[STATS] record fetch failed for %s, reporting zero rates: %v", userName, err)
		records = nil
	}

	return domain.HabitStats(habits, domain.FilterValid(records))
}
