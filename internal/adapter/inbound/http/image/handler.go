// Package imagehttp maps HTTP requests onto the image service.
package imagehttp

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentforge/server/internal/module/image"
	"github.com/contentforge/server/internal/shared/response"
)

// Handler handles image HTTP requests.
type Handler struct {
	service *image.Service
}

// NewHandler creates a new image handler.
func NewHandler(service *image.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers image routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/image")
	{
		group.POST("/generate", h.Generate)
	}
}

// Generate handles image generation requests.
func (h *Handler) Generate(c *gin.Context) {
	var req image.GenerateRequest
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
