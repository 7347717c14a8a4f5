package health

import (
	"context"
	"net/http"
	"time"

	"github.com/edulearn/platform/internal/cache"
	"github.com/edulearn/platform/internal/errors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Handler handles health check related endpoints
type Handler struct {
	db              *gorm.DB
	cache           cache.Service
	responseHandler ResponseHandler
}

// NewHandler creates a new health check handler
func NewHandler(db *gorm.DB, cacheService cache.Service, responseHandler ResponseHandler) *Handler {
	return &Handler{
		db:              db,
		cache:           cacheService,
		responseHandler: responseHandler,
	}
}

// HandleHealthCheck reports liveness plus database and cache readiness
func (h *Handler) HandleHealthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{
		"database": h.checkDatabase(ctx),
		"cache":    h.checkCache(ctx),
	}

	if status["database"] != "ok" || status["cache"] != "ok" {
		h.responseHandler.ErrorResponse(c, http.StatusServiceUnavailable, errors.CodeNotReady, "One or more dependencies are unavailable", nil)
		return
	}
	h.responseHandler.SuccessResponse(c, status, "Health check successful")
}

func (h *Handler) checkDatabase(ctx context.Context) string {
	sqlDB, err := h.db.DB()
	if err != nil {
		return "unavailable"
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return "unavailable"
	}
	return "ok"
}

func (h *Handler) checkCache(ctx context.Context) string {
	if h.cache == nil {
		return "disabled"
	}
	if _, err := h.cache.Increment(ctx, "health:ping"); err != nil {
		return "unavailable"
	}
	return "ok"
}
