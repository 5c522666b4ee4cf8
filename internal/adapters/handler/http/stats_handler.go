package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/npandey/habitpulse/internal/core/services"
)

type StatsHandler struct {
	stats       *services.StatsService
	leaderboard *services.LeaderboardService
}

func NewStatsHandler(stats *services.StatsService, leaderboard *services.LeaderboardService) *StatsHandler {
	return &StatsHandler{
		stats:       stats,
		leaderboard: leaderboard,
	}
}

func (h *StatsHandler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/stats/weekly", h.GetWeeklySummary)
	r.GET("/stats/habits", h.GetHabitStats)
	r.GET("/stats/compare", h.GetComparison)
	r.GET("/leaderboard", h.GetLeaderboard)
}

// GetWeeklySummary godoc
// @Summary  Trailing-week percents with average, best day and perfect days
// @Tags     stats
// @Param    X-User-Name header string true "user name"
// @Success  200 {object} domain.WeeklySummary
// @Router   /stats/weekly [get]
func (h *StatsHandler) GetWeeklySummary(c *gin.Context) {
	userName := c.GetHeader(userHeader)
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user name header"})
		return
	}

	c.JSON(http.StatusOK, h.stats.GetWeeklySummary(c.Request.Context(), userName))
}

// GetHabitStats godoc
// @Summary  All-time completion rate per habit
// @Tags     stats
// @Param    X-User-Name header string true "user name"
// @Success  200 {array} domain.HabitStat
// @Router   /stats/habits [get]
func (h *StatsHandler) GetHabitStats(c *gin.Context) {
	userName := c.GetHeader(userHeader)
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user name header"})
		return
	}

	c.JSON(http.StatusOK, h.stats.GetHabitStats(c.Request.Context(), userName))
}

// GetComparison godoc
// @Summary  Per-user running-trend lines over the trailing window
// @Tags     stats
// @Param    days query int false "window size in days" default(7)
// @Success  200 {object} map[string]interface{}
// @Router   /stats/compare [get]
func (h *StatsHandler) GetComparison(c *gin.Context) {
	days := defaultWindowDays
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 1 || parsed > 366 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 366"})
			return
		}
		days = parsed
	}

	window, entries := h.leaderboard.GetComparison(c.Request.Context(), days)

	c.JSON(http.StatusOK, gin.H{
		"days":  window,
		"users": entries,
	})
}

// GetLeaderboard godoc
// @Summary  Users ranked by all-time percent, streak tiebreak
// @Tags     stats
// @Success  200 {array} domain.RankedEntry
// @Router   /leaderboard [get]
func (h *StatsHandler) GetLeaderboard(c *gin.Context) {
	c.JSON(http.StatusOK, h.leaderboard.GetLeaderboard(c.Request.Context()))
}
