package services

import (
	"context"
	"log"
	"sort"

	"github.com/npandey/habitpulse/internal/core/domain"
)

// LeaderboardService builds the cross-user views: the ranked leaderboard
// and the comparison chart. Per-user fetches are independent; one failing
// user degrades to a zero row instead of sinking the whole board.
type LeaderboardService struct {
	userRepo   domain.UserRepository
	recordRepo domain.RecordRepository
	clock      domain.Clock
}

func NewLeaderboardService(userRepo domain.UserRepository, recordRepo domain.RecordRepository, clock domain.Clock) *LeaderboardService {
	return &LeaderboardService{
		userRepo:   userRepo,
		recordRepo: recordRepo,
		clock:      clock,
	}
}

// GetLeaderboard ranks every user by their all-time average daily percent,
// streak as tiebreak. The average runs over days that actually have logs;
// a user with no history ranks with zeros.
//
// Streaks come from the persisted state. Only a user whose streak was
// never evaluated gets a recompute over their logged days, with the same
// qualifying rule as the persisted transition.
func (s *LeaderboardService) GetLeaderboard(ctx context.Context) []domain.RankedEntry {
	users, err := s.userRepo.List(ctx)
	if err != nil {
		log.Printf("[LEADERBOARD] user fetch failed, reporting empty board: %v", err)
		return []domain.RankedEntry{}
	}

	entries := make([]domain.RankedEntry, 0, len(users))
	for _, u := range users {
		percents := s.allTimePercents(ctx, u.Name)

		streak := u.Streak
		if u.LastUpdated == nil {
			streak = domain.RecomputeStreak(percents)
		}

		entries = append(entries, domain.RankedEntry{
			UserName: u.Name,
			Percent:  domain.WeeklyAverage(percents),
			Streak:   streak,
		})
	}

	return domain.Rank(entries)
}

// GetComparison builds one running-trend line per user over the trailing
// n-day window. Empty days are skipped, not zero-filled: a user who never
// logged on a day should not flatline against the others. The average and
// best figures read the same skip-filtered series the trend does.
func (s *LeaderboardService) GetComparison(ctx context.Context, n int) ([]domain.DayKey, []domain.ComparisonEntry) {
	days := domain.LastNDays(s.clock, n)

	users, err := s.userRepo.List(ctx)
	if err != nil {
		log.Printf("[LEADERBOARD] user fetch failed, reporting empty comparison: %v", err)
		return days, []domain.ComparisonEntry{}
	}

	entries := make([]domain.ComparisonEntry, 0, len(users))
	for _, u := range users {
		records, err := s.recordRepo.ListByUserAndDates(ctx, u.Name, days)
		if err != nil {
			log.Printf("[LEADERBOARD] record fetch failed for %s, reporting zero line: %v", u.Name, err)
			records = nil
		}

		grouped := domain.GroupByDay(domain.FilterValid(records), days)
		series := domain.DailyPercents(grouped, days, domain.EmptyDaySkip)

		streak := u.Streak
		if u.LastUpdated == nil {
			streak = domain.RecomputeStreak(series)
		}

		entries = append(entries, domain.ComparisonEntry{
			UserName: u.Name,
			Trend:    domain.RunningTrend(series),
			Average:  domain.WeeklyAverage(series),
			BestDay:  domain.BestDay(series),
			Streak:   streak,
		})
	}

	return days, entries
}

func (s *LeaderboardService) allTimePercents(ctx context.Context, userName string) []int {
	records, err := s.recordRepo.ListByUser(ctx, userName)
	if err != nil {
		log.Printf("[LEADERBOARD] record fetch failed for %s, reporting zero row: %v", userName, err)
		return nil
	}

	valid := domain.FilterValid(records)

	seen := make(map[domain.DayKey]bool)
	var days []domain.DayKey
	for _, r := range valid {
		if !seen[r.Date] {
			seen[r.Date] = true
			days = append(days, r.Date)
		}
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	grouped := domain.GroupByDay(valid, days)
	return domain.DailyPercents(grouped, days, domain.EmptyDayZeroFill)
}
