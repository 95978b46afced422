package http

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bhavikm/librarian/internal/entities"
)

// --- Response Types ---

// ErrorResponse is the standard error response format for all API errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// SuccessResponse is a standard success response with optional data.
type SuccessResponse struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

// --- Helpers ---

// parseIDParam parses a positive integer path parameter. On failure it
// writes a 400 response and returns ok=false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name + " parameter"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps a domain error to an HTTP status. Store errors are
// surfaced verbatim in the response body; nothing is retried.
func respondError(c *gin.Context, err error, action string) {
	var vErr *entities.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: vErr.Error()})
	case errors.Is(err, entities.ErrStudentRequired),
		errors.Is(err, entities.ErrBookRequired),
		errors.Is(err, entities.ErrLoanRequired):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, entities.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, entities.ErrAlreadyReturned),
		errors.Is(err, entities.ErrBookUnavailable):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	default:
		log.Printf("Failed to %s: %v", action, err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: err.Error()})
	}
}
