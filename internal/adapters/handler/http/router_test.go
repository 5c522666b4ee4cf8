package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	adapterHTTP "github.com/npandey/habitpulse/internal/adapters/handler/http"
	"github.com/npandey/habitpulse/internal/adapters/repository"
	"github.com/npandey/habitpulse/internal/core/domain"
	"github.com/npandey/habitpulse/internal/core/services"
	"github.com/npandey/habitpulse/internal/core/workers"
)

// The handler tests run the full stack against the in-memory repositories,
// with the clock pinned so "today" is 2024-03-15 everywhere.

const (
	testToday     = "2024-03-15"
	testYesterday = "2024-03-14"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time           { return c.now }
func (c *fixedClock) Location() *time.Location { return c.now.Location() }

type testEnv struct {
	router  *gin.Engine
	records *repository.InMemoryRecordRepository
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	userRepo := repository.NewInMemoryUserRepository()
	habitRepo := repository.NewInMemoryHabitRepository()
	recordRepo := repository.NewInMemoryRecordRepository()

	ist := time.FixedZone("IST", 5*3600+1800)
	clock := &fixedClock{now: time.Date(2024, time.March, 15, 10, 30, 0, 0, ist)}

	streakSvc := services.NewStreakService(userRepo, recordRepo, clock)
	worker := workers.NewStreakWorker(streakSvc) // never started: jobs buffer, tests stay deterministic

	userSvc := services.NewUserService(userRepo)
	habitSvc := services.NewHabitService(habitRepo, recordRepo)
	recordSvc := services.NewRecordService(recordRepo, habitRepo, clock, worker)
	statsSvc := services.NewStatsService(habitRepo, recordRepo, clock)
	leaderboardSvc := services.NewLeaderboardService(userRepo, recordRepo, clock)

	r := gin.New()
	api := r.Group("/api/v1")
	adapterHTTP.NewUserHandler(userSvc).RegisterRoutes(api)
	adapterHTTP.NewHabitHandler(habitSvc).RegisterRoutes(api)
	adapterHTTP.NewRecordHandler(recordSvc).RegisterRoutes(api)
	adapterHTTP.NewStatsHandler(statsSvc, leaderboardSvc).RegisterRoutes(api)
	adapterHTTP.NewStreakHandler(streakSvc).RegisterRoutes(api)

	return &testEnv{
		router:  r,
		records: recordRepo,
	}
}

func (e *testEnv) do(t *testing.T, method, path, user, body string) *httptest.ResponseRecorder {
	t.Helper()

	req, err := http.NewRequest(method, path, strings.NewReader(body))
	require.NoError(t, err)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if user != "" {
		req.Header.Set("X-User-Name", user)
	}

	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func (e *testEnv) seedUser(t *testing.T, name string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/users", "", `{"name": "`+name+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)
}

func (e *testEnv) seedHabit(t *testing.T, user, name string) {
	t.Helper()
	w := e.do(t, http.MethodPost, "/api/v1/habits", user, `{"name": "`+name+`"}`)
	require.Equal(t, http.StatusCreated, w.Code)
}

func (e *testEnv) seedRecord(t *testing.T, user, habit string, date domain.DayKey, completed bool) {
	t.Helper()
	rec := domain.NewCompletionRecord(user, habit, date, completed)
	require.NoError(t, e.records.Upsert(context.Background(), rec))
}
