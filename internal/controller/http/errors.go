package http

import (
	"errors"
	"net/http"

	"portfolio-backend/internal/usecase"
	"portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// respondError maps usecase errors onto the HTTP taxonomy exactly once, at
// the handler boundary. Unexpected errors are logged and degraded to a
// generic 500 so no storage detail reaches the client.
func respondError(c *gin.Context, log *logger.Logger, err error) {
	switch {
	case errors.Is(err, usecase.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, usecase.ErrDuplicateSlug):
		c.JSON(http.StatusBadRequest, gin.H{"error": usecase.ErrDuplicateSlug.Error()})
	case errors.Is(err, usecase.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, usecase.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": usecase.ErrInvalidCredentials.Error()})
	default:
		log.Error("Unexpected error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
