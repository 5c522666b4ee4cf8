package services

import (
	"context"

	"github.com/npandey/habitpulse/internal/core/domain"
	"github.com/npandey/habitpulse/internal/core/workers"
)

// RecordService is the pass-through for logging completions. The only
// derivation it touches is the streak refresh it enqueues after a write.
type RecordService struct {
	recordRepo domain.RecordRepository
	habitRepo  domain.HabitRepository
	clock      domain.Clock
	worker     *workers.StreakWorker
}

func NewRecordService(recordRepo domain.RecordRepository, habitRepo domain.HabitRepository, clock domain.Clock, worker *workers.StreakWorker) *RecordService {
	return &RecordService{
		recordRepo: recordRepo,
		habitRepo:  habitRepo,
		clock:      clock,
		worker:     worker,
	}
}

type UpsertRecordInput struct {
	UserName  string
	Habit     string
	Date      domain.DayKey
	Completed bool
}

// Upsert logs or overwrites one day's completion for a habit the user
// actually owns, then schedules a streak refresh.
func (s *RecordService) Upsert(ctx context.Context, input UpsertRecordInput) (*domain.CompletionRecord, error) {
	record := domain.NewCompletionRecord(input.UserName, input.Habit, input.Date, input.Completed)
	if err := record.Validate(); err != nil {
		return nil, err
	}

	habits, err := s.habitRepo.ListByUser(ctx, input.UserName)
	if err != nil {
		return nil, err
	}
	owned := false
	for _, h := range habits {
		if h.Name == input.Habit {
			owned = true
			break
		}
	}
	if !owned {
		return nil, domain.ErrHabitNotFound
	}

	if err := s.recordRepo.Upsert(ctx, record); err != nil {
		return nil, err
	}

	s.worker.Enqueue(input.UserName)

	return record, nil
}

// ListWindow returns a user's records over the trailing n-day window.
func (s *RecordService) ListWindow(ctx context.Context, userName string, n int) ([]*domain.CompletionRecord, error) {
	days := domain.LastNDays(s.clock, n)
	return s.recordRepo.ListByUserAndDates(ctx, userName, days)
}
