package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/npandey/habitpulse/internal/core/services"
)

type StreakHandler struct {
	svc *services.StreakService
}

func NewStreakHandler(svc *services.StreakService) *StreakHandler {
	return &StreakHandler{
		svc: svc,
	}
}

func (h *StreakHandler) RegisterRoutes(router *gin.RouterGroup) {
	streaks := router.Group("/streaks")
	{
		streaks.POST("/refresh", h.Refresh)
		streaks.GET("", h.Get)
	}
}

// Refresh godoc
// @Summary  Run the once-per-day streak transition
// @Description Idempotent; the client calls this once at session start.
// @Tags     streaks
// @Param    X-User-Name header string true "user name"
// @Success  200 {object} map[string]int
// @Router   /streaks/refresh [post]
func (h *StreakHandler) Refresh(c *gin.Context) {
	userName := c.GetHeader(userHeader)
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user name header"})
		return
	}

	streak, err := h.svc.UpdateIfNeeded(c.Request.Context(), userName)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak": streak})
}

// Get godoc
// @Summary  Read the persisted streak
// @Tags     streaks
// @Param    X-User-Name header string true "user name"
// @Success  200 {object} map[string]int
// @Router   /streaks [get]
func (h *StreakHandler) Get(c *gin.Context) {
	userName := c.GetHeader(userHeader)
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user name header"})
		return
	}

	streak, err := h.svc.Streak(c.Request.Context(), userName)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"streak": streak})
}
