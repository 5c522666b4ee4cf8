package services

import (
	"context"

	"github.com/npandey/habitpulse/internal/core/domain"
)

type HabitService struct {
	habitRepo  domain.HabitRepository
	recordRepo domain.RecordRepository
}

func NewHabitService(habitRepo domain.HabitRepository, recordRepo domain.RecordRepository) *HabitService {
	return &HabitService{
		habitRepo:  habitRepo,
		recordRepo: recordRepo,
	}
}

func (s *HabitService) Create(ctx context.Context, userName, name string) (*domain.Habit, error) {
	habit, err := domain.NewHabit(userName, name)
	if err != nil {
		return nil, err
	}

	if err := s.habitRepo.Create(ctx, habit); err != nil {
		return nil, err
	}

	return habit, nil
}

func (s *HabitService) ListByUser(ctx context.Context, userName string) ([]*domain.Habit, error) {
	return s.habitRepo.ListByUser(ctx, userName)
}

// Delete removes a habit and cascades to its completion records, so a
// deleted habit stops polluting the all-time stats.
func (s *HabitService) Delete(ctx context.Context, userName, habitName string) error {
	if err := s.habitRepo.Delete(ctx, userName, habitName); err != nil {
		return err
	}

	return s.recordRepo.DeleteByHabitName(ctx, userName, habitName)
}
