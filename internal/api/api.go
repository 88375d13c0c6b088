package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/tasteit/tasteit/backend/internal/middleware"
	"github.com/tasteit/tasteit/backend/internal/service"
)

// HealthHandler reports whether the recipe store is reachable
type HealthHandler struct {
	recipes service.IRecipeService
	version string
}

func NewHealthHandler(recipes service.IRecipeService, version string) *HealthHandler {
	return &HealthHandler{recipes: recipes, version: version}
}

// HealthCheck godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	if err := h.recipes.Ping(c.Request.Context()); err != nil {
		_ = c.Error(err)
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":  "unhealthy",
			"message": "recipe store unreachable",
			"version": h.version,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "TasteIt API is running",
		"version": h.version,
	})
}

// RegisterRoutes registers the health check and every public recipe route
func RegisterRoutes(router gin.IRouter, recipes service.IRecipeService, version string) {
	health := NewHealthHandler(recipes, version)
	router.GET("/health", health.HealthCheck)

	NewRecipeHandler(recipes).RegisterRoutes(router)
}

// RegisterRateLimitRoutes exposes the caller's remaining request budget
func RegisterRateLimitRoutes(router gin.IRouter, limiter *middleware.RateLimiter, limit int) {
	router.GET("/public/rate-limit", func(c *gin.Context) {
		remaining, resetTime, err := limiter.GetRemainingRequests(c.Request.Context(), c.ClientIP())
		if errors.Is(err, middleware.ErrNoRedis) {
			c.JSON(http.StatusOK, gin.H{"limit": limit, "window": "1m", "backend": "local"})
			return
		}
		if err != nil {
			_ = c.Error(err)
			c.JSON(http.StatusServiceUnavailable, middleware.ErrorResponse{Error: "failed to check rate limit"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"limit":      limit,
			"remaining":  remaining,
			"reset_time": strconv.FormatInt(resetTime.Unix(), 10),
			"window":     "1m",
			"backend":    "redis",
		})
	})
}
