package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/npandey/habitpulse/internal/core/domain"
)

// In-memory implementations of the record store, used by unit tests and
// as the storage backend when no database is configured.

type InMemoryUserRepository struct {
	store map[string]*domain.User

	mu sync.RWMutex
}

func NewInMemoryUserRepository() *InMemoryUserRepository {
	return &InMemoryUserRepository{
		store: make(map[string]*domain.User),
	}
}

func (r *InMemoryUserRepository) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.store[user.Name]; ok {
		return domain.ErrUserAlreadyExists
	}

	copied := *user
	r.store[user.Name] = &copied
	return nil
}

func (r *InMemoryUserRepository) GetByName(ctx context.Context, name string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.store[name]
	if !ok {
		return nil, domain.ErrUserNotFound
	}

	copied := *user
	return &copied, nil
}

func (r *InMemoryUserRepository) List(ctx context.Context) ([]*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	users := make([]*domain.User, 0, len(r.store))
	for _, u := range r.store {
		copied := *u
		users = append(users, &copied)
	}

	sort.Slice(users, func(i, j int) bool {
		if users[i].CreatedAt.Equal(users[j].CreatedAt) {
			return users[i].Name < users[j].Name
		}
		return users[i].CreatedAt.Before(users[j].CreatedAt)
	})

	return users, nil
}

func (r *InMemoryUserRepository) GetStreakState(ctx context.Context, name string) (*domain.StreakState, error) {
	user, err := r.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}

	return &domain.StreakState{
		Streak:      user.Streak,
		LastUpdated: user.LastUpdated,
	}, nil
}

func (r *InMemoryUserRepository) SetStreakState(ctx context.Context, name string, streak int, lastUpdated domain.DayKey) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.store[name]
	if !ok {
		created, err := domain.NewUser(name)
		if err != nil {
			return err
		}
		user = created
		r.store[name] = user
	}

	day := lastUpdated
	user.Streak = streak
	user.LastUpdated = &day
	return nil
}

type InMemoryHabitRepository struct {
	store map[string]*domain.Habit

	mu sync.RWMutex
}

func NewInMemoryHabitRepository() *InMemoryHabitRepository {
	return &InMemoryHabitRepository{
		store: make(map[string]*domain.Habit),
	}
}

func (r *InMemoryHabitRepository) Create(ctx context.Context, habit *domain.Habit) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, h := range r.store {
		if h.UserName == habit.UserName && h.Name == habit.Name {
			return domain.ErrHabitAlreadyExists
		}
	}

	copied := *habit
	r.store[habit.ID] = &copied
	return nil
}

func (r *InMemoryHabitRepository) ListByUser(ctx context.Context, userName string) ([]*domain.Habit, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var habits []*domain.Habit
	for _, h := range r.store {
		if h.UserName == userName {
			copied := *h
			habits = append(habits, &copied)
		}
	}

	sort.Slice(habits, func(i, j int) bool {
		if habits[i].CreatedAt.Equal(habits[j].CreatedAt) {
			return habits[i].Name < habits[j].Name
		}
		return habits[i].CreatedAt.Before(habits[j].CreatedAt)
	})

	return habits, nil
}

func (r *InMemoryHabitRepository) Delete(ctx context.Context, userName, habitName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, h := range r.store {
		if h.UserName == userName && h.Name == habitName {
			delete(r.store, id)
			return nil
		}
	}

	return domain.ErrHabitNotFound
}

type InMemoryRecordRepository struct {
	store map[string]*domain.CompletionRecord // keyed by user|habit|date

	mu sync.RWMutex
}

func NewInMemoryRecordRepository() *InMemoryRecordRepository {
	return &InMemoryRecordRepository{
		store: make(map[string]*domain.CompletionRecord),
	}
}

func recordKey(userName, habit string, date domain.DayKey) string {
	return fmt.Sprintf("%s|%s|%s", userName, habit, date)
}

func (r *InMemoryRecordRepository) Upsert(ctx context.Context, record *domain.CompletionRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	copied := *record
	r.store[recordKey(record.UserName, record.Habit, record.Date)] = &copied
	return nil
}

func (r *InMemoryRecordRepository) ListByUser(ctx context.Context, userName string) ([]*domain.CompletionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var records []*domain.CompletionRecord
	for _, rec := range r.store {
		if rec.UserName == userName {
			copied := *rec
			records = append(records, &copied)
		}
	}

	sortRecords(records)
	return records, nil
}

func (r *InMemoryRecordRepository) ListByUserAndDates(ctx context.Context, userName string, days []domain.DayKey) ([]*domain.CompletionRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	wanted := make(map[domain.DayKey]bool, len(days))
	for _, d := range days {
		wanted[d] = true
	}

	var records []*domain.CompletionRecord
	for _, rec := range r.store {
		if rec.UserName == userName && wanted[rec.Date] {
			copied := *rec
			records = append(records, &copied)
		}
	}

	sortRecords(records)
	return records, nil
}

func (r *InMemoryRecordRepository) DeleteByHabitName(ctx context.Context, userName, habitName string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for key, rec := range r.store {
		if rec.UserName == userName && rec.Habit == habitName {
			delete(r.store, key)
		}
	}

	return nil
}

func sortRecords(records []*domain.CompletionRecord) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Date != records[j].Date {
			return records[i].Date < records[j].Date
		}
		return records[i].Habit < records[j].Habit
	})
}
