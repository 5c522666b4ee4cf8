package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/npandey/habitpulse/internal/core/domain"
	"github.com/npandey/habitpulse/internal/core/services"
)

const defaultWindowDays = 7

type RecordHandler struct {
	svc *services.RecordService
}

func NewRecordHandler(svc *services.RecordService) *RecordHandler {
	return &RecordHandler{
		svc: svc,
	}
}

type upsertRecordRequest struct {
	Habit     string `json:"habit" binding:"required"`
	Date      string `json:"date" binding:"required"`
	Completed bool   `json:"completed"`
}

func (h *RecordHandler) RegisterRoutes(router *gin.RouterGroup) {
	records := router.Group("/records")
	{
		records.PUT("", h.Upsert)
		records.GET("", h.ListWindow)
	}
}

// Upsert godoc
// @Summary  Log or overwrite one day's completion
// @Tags     records
// @Param    X-User-Name header string true "user name"
// @Param    record body upsertRecordRequest true "record"
// @Success  200 {object} domain.CompletionRecord
// @Router   /records [put]
func (h *RecordHandler) Upsert(c *gin.Context) {
	userName := c.GetHeader(userHeader)
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user name header"})
		return
	}

	var req upsertRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	date, err := domain.ParseDayKey(req.Date)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	input := services.UpsertRecordInput{
		UserName:  userName,
		Habit:     req.Habit,
		Date:      date,
		Completed: req.Completed,
	}

	record, err := h.svc.Upsert(c.Request.Context(), input)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, record)
}

// ListWindow godoc
// @Summary  List the user's records over the trailing window
// @Tags     records
// @Param    X-User-Name header string true "user name"
// @Param    days query int false "window size in days" default(7)
// @Success  200 {array} domain.CompletionRecord
// @Router   /records [get]
func (h *RecordHandler) ListWindow(c *gin.Context) {
	userName := c.GetHeader(userHeader)
	if userName == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing user name header"})
		return
	}

	days := defaultWindowDays
	if d := c.Query("days"); d != "" {
		parsed, err := strconv.Atoi(d)
		if err != nil || parsed < 1 || parsed > 366 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 366"})
			return
		}
		days = parsed
	}

	records, err := h.svc.ListWindow(c.Request.Context(), userName, days)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}
