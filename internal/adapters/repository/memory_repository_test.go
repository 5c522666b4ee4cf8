package repository_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npandey/habitpulse/internal/adapters/repository"
	"github.com/npandey/habitpulse/internal/core/domain"
)

func newRecord(t *testing.T, user, habit string, date domain.DayKey, completed bool) *domain.CompletionRecord {
	t.Helper()
	r := domain.NewCompletionRecord(user, habit, date, completed)
	require.NoError(t, r.Validate())
	return r
}

func TestInMemoryUserRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Create rejects duplicates", func(t *testing.T) {
		repo := repository.NewInMemoryUserRepository()

		u, err := domain.NewUser("alice")
		require.NoError(t, err)

		require.NoError(t, repo.Create(ctx, u))
		assert.ErrorIs(t, repo.Create(ctx, u), domain.ErrUserAlreadyExists)
	})

	t.Run("GetByName returns a copy", func(t *testing.T) {
		repo := repository.NewInMemoryUserRepository()

		u, err := domain.NewUser("alice")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, u))

		got, err := repo.GetByName(ctx, "alice")
		require.NoError(t, err)
		got.Streak = 99

		again, err := repo.GetByName(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 0, again.Streak, "caller mutation must not leak into the store")
	})

	t.Run("GetByName unknown user", func(t *testing.T) {
		repo := repository.NewInMemoryUserRepository()

		_, err := repo.GetByName(ctx, "ghost")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("SetStreakState creates the user when missing", func(t *testing.T) {
		repo := repository.NewInMemoryUserRepository()

		require.NoError(t, repo.SetStreakState(ctx, "alice", 3, "2024-03-15"))

		state, err := repo.GetStreakState(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 3, state.Streak)
		require.NotNil(t, state.LastUpdated)
		assert.Equal(t, domain.DayKey("2024-03-15"), *state.LastUpdated)
	})

	t.Run("Streak state starts unevaluated", func(t *testing.T) {
		repo := repository.NewInMemoryUserRepository()

		u, err := domain.NewUser("alice")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, u))

		state, err := repo.GetStreakState(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 0, state.Streak)
		assert.Nil(t, state.LastUpdated)
	})
}

func TestInMemoryHabitRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Duplicate name per user is rejected", func(t *testing.T) {
		repo := repository.NewInMemoryHabitRepository()

		first, err := domain.NewHabit("alice", "Morning Run")
		require.NoError(t, err)
		require.NoError(t, repo.Create(ctx, first))

		dup, err := domain.NewHabit("alice", "Morning Run")
		require.NoError(t, err)
		assert.ErrorIs(t, repo.Create(ctx, dup), domain.ErrHabitAlreadyExists)

		other, err := domain.NewHabit("bob", "Morning Run")
		require.NoError(t, err)
		assert.NoError(t, repo.Create(ctx, other), "same name under another user is fine")
	})

	t.Run("ListByUser scopes to the user", func(t *testing.T) {
		repo := repository.NewInMemoryHabitRepository()

		for _, tc := range []struct{ user, name string }{
			{"alice", "Run"},
			{"alice", "Read"},
			{"bob", "Meditate"},
		} {
			h, err := domain.NewHabit(tc.user, tc.name)
			require.NoError(t, err)
			require.NoError(t, repo.Create(ctx, h))
		}

		habits, err := repo.ListByUser(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, habits, 2)
		for _, h := range habits {
			assert.Equal(t, "alice", h.UserName)
		}
	})

	t.Run("Delete unknown habit", func(t *testing.T) {
		repo := repository.NewInMemoryHabitRepository()

		err := repo.Delete(ctx, "alice", "ghost")
		assert.ErrorIs(t, err, domain.ErrHabitNotFound)
	})
}

func TestInMemoryRecordRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("Upsert overwrites the same day, same habit", func(t *testing.T) {
		repo := repository.NewInMemoryRecordRepository()

		require.NoError(t, repo.Upsert(ctx, newRecord(t, "alice", "run", "2024-03-15", false)))
		require.NoError(t, repo.Upsert(ctx, newRecord(t, "alice", "run", "2024-03-15", true)))

		records, err := repo.ListByUser(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.True(t, records[0].Completed)
	})

	t.Run("ListByUserAndDates filters to the window", func(t *testing.T) {
		repo := repository.NewInMemoryRecordRepository()

		require.NoError(t, repo.Upsert(ctx, newRecord(t, "alice", "run", "2024-03-13", true)))
		require.NoError(t, repo.Upsert(ctx, newRecord(t, "alice", "run", "2024-03-14", true)))
		require.NoError(t, repo.Upsert(ctx, newRecord(t, "alice", "run", "2024-03-15", true)))

		records, err := repo.ListByUserAndDates(ctx, "alice", []domain.DayKey{"2024-03-14", "2024-03-15"})
		require.NoError(t, err)
		require.Len(t, records, 2)
		assert.Equal(t, domain.DayKey("2024-03-14"), records[0].Date)
		assert.Equal(t, domain.DayKey("2024-03-15"), records[1].Date)
	})

	t.Run("Results sort by date then habit", func(t *testing.T) {
		repo := repository.NewInMemoryRecordRepository()

		require.NoError(t, repo.Upsert(ctx, newRecord(t, "alice", "run", "2024-03-15", true)))
		require.NoError(t, repo.Upsert(ctx, newRecord(t, "alice", "read", "2024-03-15", true)))
		require.NoError(t, repo.Upsert(ctx, newRecord(t, "alice", "run", "2024-03-14", true)))

		records, err := repo.ListByUser(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, records, 3)
		assert.Equal(t, domain.DayKey("2024-03-14"), records[0].Date)
		assert.Equal(t, "read", records[1].Habit)
		assert.Equal(t, "run", records[2].Habit)
	})

	t.Run("DeleteByHabitName removes only that habit's records", func(t *testing.T) {
		repo := repository.NewInMemoryRecordRepository()

		require.NoError(t, repo.Upsert(ctx, newRecord(t, "alice", "run", "2024-03-14", true)))
		require.NoError(t, repo.Upsert(ctx, newRecord(t, "alice", "run", "2024-03-15", true)))
		require.NoError(t, repo.Upsert(ctx, newRecord(t, "alice", "read", "2024-03-15", true)))

		require.NoError(t, repo.DeleteByHabitName(ctx, "alice", "run"))

		records, err := repo.ListByUser(ctx, "alice")
		require.NoError(t, err)
		require.Len(t, records, 1)
		assert.Equal(t, "read", records[0].Habit)
	})
}
