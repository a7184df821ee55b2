// Package ttshttp maps HTTP requests onto the speech service.
package ttshttp

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/contentforge/server/internal/module/speech"
	"github.com/contentforge/server/internal/shared/response"
)

// Handler handles text-to-speech HTTP requests.
type Handler struct {
	service *speech.Service
}

// NewHandler creates a new TTS handler.
func NewHandler(service *speech.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers TTS routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/tts")
	{
		group.POST("/generate", h.Generate)
		group.GET("/voices", h.Voices)
		group.POST("/save", h.Save)
		group.GET("/saved", h.Saved)
		group.DELETE("/:filename", h.Delete)
	}
}

// Generate handles speech synthesis requests.
func (h *Handler) Generate(c *gin.Context) {
	var req speech.GenerateRequest
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

// Voices returns the available synthesis voices.
func (h *Handler) Voices(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Voices())
}

// Save handles synthesize-and-persist requests.
func (h *Handler) Save(c *gin.Context) {
	var req speech.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	saved, err := h.service.Save(c.Request.Context(), &req)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":   "TTS audio saved successfully",
		"filename":  saved.Filename,
		"file_path": saved.Path,
		"voice":     saved.Voice,
		"model":     saved.Model,
	})
}

// Saved lists persisted speech files.
func (h *Handler) Saved(c *gin.Context) {
	files, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

// Delete removes a persisted speech file.
func (h *Handler) Delete(c *gin.Context) {
	filename := c.Param("filename")

	if err := h.service.Delete(c.Request.Context(), filename); err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("File %s deleted successfully", filename),
	})
}
