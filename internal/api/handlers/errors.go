package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "continuous-improvement-backend/internal/errors"
	"continuous-improvement-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error   string `json:"error" example:"error message"`
	Details string `json:"details,omitempty"`
}

// MessageResponse is a plain confirmation
type MessageResponse struct {
	Message string `json:"message" example:"Idea deleted successfully"`
}

// parseID reads a positive integer path parameter
func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// respondError maps service errors to status codes. Client errors carry their
// message; anything unexpected is logged and answered with a generic 500.
func respondError(c *gin.Context, err error, notFoundStatus int, internalMessage string) {
	switch {
	case apperrors.IsValidation(err), apperrors.IsInvalidReference(err), errors.Is(err, apperrors.ErrNoAssignments):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case apperrors.IsNotFound(err):
		c.JSON(notFoundStatus, ErrorResponse{Error: err.Error()})
	default:
		logger.WithContext(c.Request.Context()).WithError(err).
			WithField("path", c.FullPath()).Error(internalMessage)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: internalMessage})
	}
}
