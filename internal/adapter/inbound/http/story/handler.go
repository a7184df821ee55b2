// Package storyhttp maps HTTP requests onto the story service.
package storyhttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentforge/server/internal/module/story"
	"github.com/contentforge/server/internal/shared/response"
)

// Handler handles story HTTP requests.
type Handler struct {
	service *story.Service
}

// NewHandler creates a new story handler.
func NewHandler(service *story.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers story routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/story")
	{
		group.POST("/generate", h.Generate)
	}
}

// Generate handles story generation requests.
func (h *Handler) Generate(c *gin.Context) {
	var req story.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Generate(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
