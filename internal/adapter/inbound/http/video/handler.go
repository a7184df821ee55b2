// Package videohttp maps HTTP requests onto the video service.
package videohttp

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/contentforge/server/internal/module/video"
	"github.com/contentforge/server/internal/shared/response"
)

// Handler handles video HTTP requests.
type Handler struct {
	service *video.Service
}

// NewHandler creates a new video handler.
func NewHandler(service *video.Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers video routes.
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	group := r.Group("/video")
	{
		group.POST("/generate", h.Generate)
		group.POST("/upload", h.Upload)
		group.POST("/youtube-upload", h.YouTubeUpload)
		group.POST("/save", h.Save)
		group.GET("/saved", h.Saved)
		group.GET("/:id/status", h.Status)
		group.DELETE("/:filename", h.Delete)
		group.GET("/formats/supported", h.SupportedFormats)
	}
}

// publishRequest is the request body for external publishing.
type publishRequest struct {
	VideoPath   string   `json:"video_path" binding:"required"`
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// Generate handles placeholder video assembly requests.
func (h *Handler) Generate(c *gin.Context) {
	var req video.GenerateRequest
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

// Upload handles direct multipart video uploads.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "file is required")
		return
	}
	title := c.PostForm("title")
	if title == "" {
		response.BadRequest(c, "title is required")
		return
	}
	description := c.PostForm("description")
	tags := splitTags(c.PostForm("tags"))

	file, err := fileHeader.Open()
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.ProcessUpload(c.Request.Context(), data, fileHeader.Filename)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Video uploaded successfully",
		"filename":    fileHeader.Filename,
		"file_path":   result.Path,
		"title":       title,
		"description": description,
		"tags":        tags,
		"size":        result.Size,
	})
}

// YouTubeUpload handles mocked external publish requests.
func (h *Handler) YouTubeUpload(c *gin.Context) {
	var req publishRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.Publish(c.Request.Context(), req.VideoPath, req.Title, req.Description, req.Tags)
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// Save handles assemble-and-persist requests.
func (h *Handler) Save(c *gin.Context) {
	var req video.GenerateRequest
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
		"message":   "Video saved successfully",
		"filename":  saved.Filename,
		"file_path": saved.Path,
		"duration":  saved.Duration,
	})
}

// Saved lists persisted video files.
func (h *Handler) Saved(c *gin.Context) {
	files, err := h.service.List(c.Request.Context())
	if err != nil {
		response.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"files": files})
}

// Status reports the processing status for a video.
func (h *Handler) Status(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Status(c.Request.Context(), c.Param("id")))
}

// Delete removes a persisted video file.
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

// SupportedFormats returns the accepted video container formats.
func (h *Handler) SupportedFormats(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"formats": h.service.SupportedFormats()})
}

// splitTags parses a comma-separated tag list, dropping empty entries.
func splitTags(raw string) []string {
	tags := []string{}
	for _, tag := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(tag); trimmed != "" {
			tags = append(tags, trimmed)
		}
	}
	return tags
}
