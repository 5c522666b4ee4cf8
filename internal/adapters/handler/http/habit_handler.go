package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/npandey/habitpulse/internal/core/domain"
	"github.com/npandey/habitpulse/internal/core/services"
)

const userHeader = "X-User-Name"

type HabitHandler struct {
	svc *services.HabitService
}

func NewHabitHandler(svc *services.HabitService) *HabitHandler {
	return &HabitHandler{
		svc: svc,
	}
}

type createHabitRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *HabitHandler) RegisterRoutes(router *gin.RouterGroup) {
	habits := router.Group("/habits")
	{
		habits.POST("", h.Create)
		habits.GET("", h.List)
		habits.DELETE("/:name", h.Delete)
	}
}

// Create godoc
// @Summary  Add a habit
// @Tags     habits
// @Param    X-User-Name header string true "user name"
// @Param    habit body createHabitRequest true "habit"
// @Success  201 {object} domain.Habit
// @Router   /habits [post]
func (h *HabitHandler) Create(c *gin.Context) {
	userName := c.GetHeader(userHeader)
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user name header"})
		return
	}

	var req createHabitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	habit, err := h.svc.Create(c.Request.Context(), userName, req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrHabitNameEmpty) || errors.Is(err, domain.ErrHabitNameTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, habit)
}

// List godoc
// @Summary  List the user's habits
// @Tags     habits
// @Param    X-User-Name header string true "user name"
// @Success  200 {array} domain.Habit
// @Router   /habits [get]
func (h *HabitHandler) List(c *gin.Context) {
	userName := c.GetHeader(userHeader)
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user name header"})
		return
	}

	list, err := h.svc.ListByUser(c.Request.Context(), userName)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, list)
}

// Delete godoc
// @Summary  Remove a habit and its records
// @Tags     habits
// @Param    X-User-Name header string true "user name"
// @Param    name path string true "habit name"
// @Success  204
// @Router   /habits/{name} [delete]
func (h *HabitHandler) Delete(c *gin.Context) {
	userName := c.GetHeader(userHeader)
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user name header"})
		return
	}

	if err := h.svc.Delete(c.Request.Context(), userName, c.Param("name")); err != nil {
		handleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrHabitNotFound) || errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})

	case errors.Is(err, domain.ErrHabitAlreadyExists) || errors.Is(err, domain.ErrUserAlreadyExists) || errors.Is(err, domain.ErrRecordConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})

	case errors.Is(err, domain.ErrInvalidDayKey) || errors.Is(err, domain.ErrInvalidRecord):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})

	default:
		log.Printf("[ERROR] Request %s %s failed: %v", c.Request.Method, c.Request.URL.Path, err)

		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
