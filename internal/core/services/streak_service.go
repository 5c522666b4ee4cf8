package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"

	"github.com/npandey/habitpulse/internal/core/domain"
)

// streakHistoryDays bounds the history scanned when no persisted streak
// state exists for a user.
const streakHistoryDays = 30

// StreakService owns the persisted streak counter. UpdateIfNeeded is the
// single write path; everything else reads the persisted value.
type StreakService struct {
	userRepo   domain.UserRepository
	recordRepo domain.RecordRepository
	clock      domain.Clock

	// one lock per user so a duplicate concurrent invocation cannot
	// double-increment before the last_updated guard lands
	locks sync.Map
}

func NewStreakService(userRepo domain.UserRepository, recordRepo domain.RecordRepository, clock domain.Clock) *StreakService {
	return &StreakService{
		userRepo:   userRepo,
		recordRepo: recordRepo,
		clock:      clock,
	}
}

func (s *StreakService) userLock(userName string) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(userName, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// UpdateIfNeeded runs the once-per-day streak transition for a user and
// returns the resulting streak. Invoked at session start and after record
// writes; repeat invocations within the same calendar day are no-ops.
//
// The rule: today counts if its percent exceeds the threshold. A counting
// today extends the streak when yesterday also counted, otherwise restarts
// it at 1. A non-counting today resets to 0.
func (s *StreakService) UpdateIfNeeded(ctx context.Context, userName string) (int, error) {
	mu := s.userLock(userName)
	mu.Lock()
	defer mu.Unlock()

	days := domain.LastNDays(s.clock, 2)
	yesterday, today := days[0], days[1]

	currentStreak := 0
	var lastUpdated *domain.DayKey

	state, err := s.userRepo.GetStreakState(ctx, userName)
	switch {
	case err == nil:
		currentStreak = state.Streak
		lastUpdated = state.LastUpdated
	case errors.Is(err, domain.ErrUserNotFound):
		// first evaluation for this user, start from zero state
	default:
		return 0, fmt.Errorf("streak service: read state for %s: %w", userName, err)
	}

	if lastUpdated != nil && *lastUpdated == today {
		return currentStreak, nil
	}

	records, err := s.recordRepo.ListByUserAndDates(ctx, userName, days)
	if err != nil {
		log.Printf("[STREAK] record fetch failed for %s, evaluating empty days: %v", userName, err)
		records = nil
	}

	grouped := domain.GroupByDay(domain.FilterValid(records), days)
	todayPercent := domain.DailyPercent(grouped[today])
	yesterdayPercent := domain.DailyPercent(grouped[yesterday])

	newStreak := 0
	if domain.QualifiesForStreak(todayPercent) {
		if domain.QualifiesForStreak(yesterdayPercent) {
			newStreak = currentStreak + 1
		} else {
			newStreak = 1
		}
	}

	if err := s.userRepo.SetStreakState(ctx, userName, newStreak, today); err != nil {
		return 0, fmt.Errorf("streak service: persist state for %s: %w", userName, err)
	}

	return newStreak, nil
}

// Streak reads the persisted streak. For a user whose streak has never
// been evaluated it falls back to recomputing from recent history, with
// the same qualifying rule as the transition.
func (s *StreakService) Streak(ctx context.Context, userName string) (int, error) {
	state, err := s.userRepo.GetStreakState(ctx, userName)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return s.recomputeFromHistory(ctx, userName), nil
		}
		return 0, fmt.Errorf("streak service: read state for %s: %w", userName, err)
	}

	if state.LastUpdated == nil {
		return s.recomputeFromHistory(ctx, userName), nil
	}
	return state.Streak, nil
}

func (s *StreakService) recomputeFromHistory(ctx context.Context, userName string) int {
	days := domain.LastNDays(s.clock, streakHistoryDays)

	records, err := s.recordRepo.ListByUserAndDates(ctx, userName, days)
	if err != nil {
		log.Printf("[STREAK] history fetch failed for %s, reporting 0: %v", userName, err)
		return 0
	}

	grouped := domain.GroupByDay(domain.FilterValid(records), days)
	percents := domain.DailyPercents(grouped, days, domain.EmptyDayZeroFill)
	return domain.RecomputeStreak(percents)
}
