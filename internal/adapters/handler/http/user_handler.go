package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/npandey/habitpulse/internal/core/domain"
	"github.com/npandey/habitpulse/internal/core/services"
)

type UserHandler struct {
	svc *services.UserService
}

func NewUserHandler(svc *services.UserService) *UserHandler {
	return &UserHandler{
		svc: svc,
	}
}

type createUserRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *UserHandler) RegisterRoutes(router *gin.RouterGroup) {
	users := router.Group("/users")
	{
		users.POST("", h.Create)
		users.GET("", h.List)
	}
}

// Create godoc
// @Summary  Register a tracked profile
// @Tags     users
// @Param    user body createUserRequest true "user"
// @Success  201 {object} domain.User
// @Router   /users [post]
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	user, err := h.svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, domain.ErrUserNameEmpty) || errors.Is(err, domain.ErrUserNameTooLong) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// List godoc
// @Summary  List tracked profiles with their streaks
// @Tags     users
// @Success  200 {array} domain.User
// @Router   /users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.svc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}
