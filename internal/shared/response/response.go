package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/contentforge/server/internal/shared/errors"
)

// ErrorResponse represents a standard error response body.
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// Error sends an error response with the given status code.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, ErrorResponse{Detail: message})
}

// BadRequest sends a 400 Bad Request response.
func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

// NotFound sends a 404 Not Found response.
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "not found"
	}
	Error(c, http.StatusNotFound, message)
}

// InternalError sends a 500 Internal Server Error response.
func InternalError(c *gin.Context, message string) {
	if message == "" {
		message = "internal error"
	}
	Error(c, http.StatusInternalServerError, message)
}

// HandleError translates a domain error into an HTTP error response.
// The status code is derived from the error taxonomy; unknown errors
// map to 500.
func HandleError(c *gin.Context, err error) {
	Error(c, apperrors.GetStatusCode(err), err.Error())
}
