package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contactmansi/Recipe-Box/internal/middleware"
	"github.com/contactmansi/Recipe-Box/internal/service"
)

type CreateTagRequest struct {
	Name string `json:"name" binding:"required"`
}

type TagHandler struct {
	tagService  *service.TagService
	authService *service.AuthService
}

func NewTagHandler(tagService *service.TagService, authService *service.AuthService) *TagHandler {
	return &TagHandler{
		tagService:  tagService,
		authService: authService,
	}
}

func (h *TagHandler) RegisterRoutes(router *gin.RouterGroup) {
	tags := router.Group("/tags")
	tags.Use(middleware.AuthMiddleware(h.authService))
	{
		tags.GET("", h.ListTags)
		tags.POST("", h.CreateTag)
	}
}

// ListTags returns the caller's tags ordered by name descending. With
// assigned_only=1 only tags attached to at least one recipe are returned.
func (h *TagHandler) ListTags(c *gin.Context) {
	userID, exists := middleware.UserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	assignedOnly := c.Query("assigned_only") == "1"

	tags, err := h.tagService.List(userID, assignedOnly)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch tags"})
		return
	}

	c.JSON(http.StatusOK, tags)
}

func (h *TagHandler) CreateTag(c *gin.Context) {
	userID, exists := middleware.UserID(c)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tag, err := h.tagService.Create(userID, req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyName) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create tag"})
		return
	}

	c.JSON(http.StatusCreated, tag)
}
