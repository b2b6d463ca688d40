package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactmansi/Recipe-Box/internal/middleware"
	"github.com/contactmansi/Recipe-Box/internal/service"
)

type UpdateProfileRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password" binding:"omitempty,min=5"`
}

// ProfileHandler serves the authenticated user's own profile. There is no
// way to address another user's profile through this surface.
type ProfileHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

func NewProfileHandler(userService *service.UserService, authService *service.AuthService) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
		authService: authService,
	}
}

func (h *ProfileHandler) RegisterRoutes(router *gin.RouterGroup) {
	me := router.Group("/users/me")
	me.Use(middleware.AuthMiddleware(h.authService))
	{
		me.GET("", h.GetProfile)
		me.PUT("", h.UpdateProfile)
		me.PATCH("", h.UpdateProfile)
	}
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, exists := middleware.UserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	user, err := h.userService.Get(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile overwrites the provided fields; a new password is
// re-hashed before storage. PUT and PATCH behave identically because name
// is the only other mutable field.
func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	userID, exists := middleware.UserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.userService.Update(userID, service.ProfileUpdate{
		Name:     req.Name,
		Password: req.Password,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update profile"})
		return
	}

	c.JSON(http.StatusOK, user)
}
