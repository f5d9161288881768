package handlers

import (
	"errors"
	"net/http"
	"orderup/internal/middleware"
	"orderup/internal/services"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError writes the JSON error payload for err and picks the status
// from its kind. Unknown errors are treated as storage failures.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	var (
		notFound   *services.NotFoundError
		validation *services.ValidationError
		integrity  *services.IntegrityError
		conflict   *services.ConflictError
	)

	switch {
	case errors.As(err, &notFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error(), "resource": notFound.Resource, "id": notFound.ID})
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "field": validation.Field})
	case errors.As(err, &integrity):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "resource": integrity.Resource, "id": integrity.ID})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "resource": conflict.Resource, "id": conflict.ID})
	default:
		logger.Error("request failed",
			zap.String("request_id", c.GetString(middleware.RequestIDKey)),
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
}

// uintParam parses a positive numeric path parameter, answering 400 itself
// when it is malformed.
func uintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || value == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(value), true
}
