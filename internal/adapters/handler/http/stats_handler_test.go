package http_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/npandey/habitpulse/internal/core/domain"
)

func TestGetWeeklySummary(t *testing.T) {
	t.Run("Success: derives the trailing week", func(t *testing.T) {
		env := setupEnv(t)
		env.seedUser(t, "alice")
		env.seedHabit(t, "alice", "Run")
		env.seedHabit(t, "alice", "Read")

		// yesterday perfect, today half, rest of the week silent
		env.seedRecord(t, "alice", "Run", testYesterday, true)
		env.seedRecord(t, "alice", "Read", testYesterday, true)
		env.seedRecord(t, "alice", "Run", testToday, true)
		env.seedRecord(t, "alice", "Read", testToday, false)

		w := env.do(t, http.MethodGet, "/api/v1/stats/weekly", "alice", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var summary domain.WeeklySummary
		decodeJSON(t, w, &summary)
		require.Len(t, summary.Days, 7)
		assert.Equal(t, domain.DayKey(testToday), summary.Days[6])
		assert.Equal(t, []int{0, 0, 0, 0, 0, 100, 50}, summary.Percents)
		assert.Equal(t, 21, summary.Average)
		assert.Equal(t, 100, summary.BestDay)
		assert.Equal(t, 1, summary.PerfectDays)
	})

	t.Run("Success: empty history is a zero week, not an error", func(t *testing.T) {
		env := setupEnv(t)
		env.seedUser(t, "alice")

		w := env.do(t, http.MethodGet, "/api/v1/stats/weekly", "alice", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var summary domain.WeeklySummary
		decodeJSON(t, w, &summary)
		assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, summary.Percents)
		assert.Equal(t, 0, summary.Average)
	})

	t.Run("Fail: 401 without the user header", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(t, http.MethodGet, "/api/v1/stats/weekly", "", "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestGetHabitStats(t *testing.T) {
	t.Run("Success: one row per habit, zero for the unlogged", func(t *testing.T) {
		env := setupEnv(t)
		env.seedUser(t, "alice")
		env.seedHabit(t, "alice", "Run")
		env.seedHabit(t, "alice", "Read")

		env.seedRecord(t, "alice", "Run", testYesterday, true)
		env.seedRecord(t, "alice", "Run", testToday, false)

		w := env.do(t, http.MethodGet, "/api/v1/stats/habits", "alice", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var stats []domain.HabitStat
		decodeJSON(t, w, &stats)
		require.Len(t, stats, 2)
		assert.Equal(t, domain.HabitStat{HabitName: "Run", Percent: 50}, stats[0])
		assert.Equal(t, domain.HabitStat{HabitName: "Read", Percent: 0}, stats[1])
	})
}

func TestGetComparison(t *testing.T) {
	t.Run("Success: one trend line per user, empty days skipped", func(t *testing.T) {
		env := setupEnv(t)
		env.seedUser(t, "alice")
		env.seedUser(t, "bob")
		env.seedHabit(t, "alice", "Run")

		env.seedRecord(t, "alice", "Run", testYesterday, true)
		env.seedRecord(t, "alice", "Run", testToday, false)

		w := env.do(t, http.MethodGet, "/api/v1/stats/compare", "", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Days  []domain.DayKey          `json:"days"`
			Users []domain.ComparisonEntry `json:"users"`
		}
		decodeJSON(t, w, &resp)
		require.Len(t, resp.Days, 7)
		require.Len(t, resp.Users, 2)

		byName := map[string]domain.ComparisonEntry{}
		for _, e := range resp.Users {
			byName[e.UserName] = e
		}
		assert.Equal(t, []int{100, 75}, byName["alice"].Trend, "cumulative mean over the two logged days")
		assert.Empty(t, byName["bob"].Trend)
	})

	t.Run("Fail: 400 on an out-of-range days parameter", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(t, http.MethodGet, "/api/v1/stats/compare?days=400", "", "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGetLeaderboard(t *testing.T) {
	t.Run("Success: ranked by all-time percent", func(t *testing.T) {
		env := setupEnv(t)
		env.seedUser(t, "alice")
		env.seedUser(t, "bob")
		env.seedHabit(t, "alice", "Run")
		env.seedHabit(t, "bob", "Run")

		env.seedRecord(t, "alice", "Run", testToday, true)
		env.seedRecord(t, "bob", "Run", testToday, false)

		w := env.do(t, http.MethodGet, "/api/v1/leaderboard", "", "")

		assert.Equal(t, http.StatusOK, w.Code)

		var board []domain.RankedEntry
		decodeJSON(t, w, &board)
		require.Len(t, board, 2)
		assert.Equal(t, "alice", board[0].UserName)
		assert.Equal(t, 100, board[0].Percent)
		assert.Equal(t, "bob", board[1].UserName)
		assert.Equal(t, 0, board[1].Percent)
	})

	t.Run("Success: empty deployment ranks nobody", func(t *testing.T) {
		env := setupEnv(t)

		w := env.do(t, http.MethodGet, "/api/v1/leaderboard", "", "")

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[]`, w.Body.String())
	})
}
