// Package handler exposes the HTTP surface: public queries, the
// authenticated mutation workflows, the admin moderation routes, and
// the health probes.
package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/PS-gitpro/myblog/internal/logger"
	"github.com/PS-gitpro/myblog/internal/middleware"
	"github.com/PS-gitpro/myblog/internal/service"
	"github.com/PS-gitpro/myblog/internal/validator"
)

// TimeFormat is the standard time format for API responses (RFC3339)
const TimeFormat = time.RFC3339

// respondError translates a service error into the matching HTTP
// response. Validation failures carry the per-field reasons back so
// the form can re-render; everything unexpected becomes an opaque 500.
func respondError(c *gin.Context, err error, what string) {
	switch {
	case service.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"errors": validator.FieldErrors(err)})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": what + " not found"})
	default:
		logger.WithRequestID(middleware.GetRequestID(c)).Error("request failed",
			"what", what,
			"error", err.Error(),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
