package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/npandey/habitpulse/internal/core/domain"
)

type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepo) GetByName(ctx context.Context, name string) (*domain.User, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepo) List(ctx context.Context) ([]*domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.User), args.Error(1)
}

func (m *MockUserRepo) GetStreakState(ctx context.Context, name string) (*domain.StreakState, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StreakState), args.Error(1)
}

func (m *MockUserRepo) SetStreakState(ctx context.Context, name string, streak int, lastUpdated domain.DayKey) error {
	args := m.Called(ctx, name, streak, lastUpdated)
	return args.Error(0)
}

type MockHabitRepo struct {
	mock.Mock
}

func (m *MockHabitRepo) Create(ctx context.Context, habit *domain.Habit) error {
	args := m.Called(ctx, habit)
	return args.Error(0)
}

func (m *MockHabitRepo) ListByUser(ctx context.Context, userName string) ([]*domain.Habit, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Habit), args.Error(1)
}

func (m *MockHabitRepo) Delete(ctx context.Context, userName, habitName string) error {
	args := m.Called(ctx, userName, habitName)
	return args.Error(0)
}

type MockRecordRepo struct {
	mock.Mock
}

func (m *MockRecordRepo) Upsert(ctx context.Context, record *domain.CompletionRecord) error {
	args := m.Called(ctx, record)
	return args.Error(0)
}

func (m *MockRecordRepo) ListByUser(ctx context.Context, userName string) ([]*domain.CompletionRecord, error) {
	args := m.Called(ctx, userName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CompletionRecord), args.Error(1)
}

func (m *MockRecordRepo) ListByUserAndDates(ctx context.Context, userName string, days []domain.DayKey) ([]*domain.CompletionRecord, error) {
	args := m.Called(ctx, userName, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.CompletionRecord), args.Error(1)
}

func (m *MockRecordRepo) DeleteByHabitName(ctx context.Context, userName, habitName string) error {
	args := m.Called(ctx, userName, habitName)
	return args.Error(0)
}

type fixedClock struct {
	now time.Time
	loc *time.Location
}

func (c *fixedClock) Now() time.Time           { return c.now }
func (c *fixedClock) Location() *time.Location { return c.loc }

// newFixedClock pins "today" to 2024-03-15 in the tracker's zone.
func newFixedClock(t *testing.T) *fixedClock {
	t.Helper()

	loc := time.FixedZone("IST", 5*3600+1800)
	now, err := time.ParseInLocation("2006-01-02 15:04:05", "2024-03-15 10:30:00", loc)
	require.NoError(t, err)

	return &fixedClock{now: now, loc: loc}
}

func rec(user, habit string, date domain.DayKey, completed bool) *domain.CompletionRecord {
	return domain.NewCompletionRecord(user, habit, date, completed)
}
