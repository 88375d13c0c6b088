package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"

	"github.com/tasteit/tasteit/backend/docs"
	"github.com/tasteit/tasteit/backend/internal/api"
	"github.com/tasteit/tasteit/backend/internal/middleware"
	"github.com/tasteit/tasteit/backend/internal/service"
)

// Options are the collaborators the HTTP surface is built from
type Options struct {
	Logger         *zap.Logger
	Recipes        service.IRecipeService
	RateLimiter    *middleware.RateLimiter // nil disables rate limiting
	RateLimit      int
	SwaggerEnabled bool
	Version        string
}

// SetupRouter configures the application routes
func SetupRouter(opts Options) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(opts.Logger))
	router.Use(middleware.ErrorHandler(opts.Logger))
	router.Use(middleware.CORS())

	// Operational endpoints are not throttled
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	if opts.SwaggerEnabled {
		docs.SwaggerInfo.Version = opts.Version
		router.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		)))
	}

	public := router.Group("")
	if opts.RateLimiter != nil {
		public.Use(opts.RateLimiter.RateLimitMiddleware())
		api.RegisterRateLimitRoutes(public, opts.RateLimiter, opts.RateLimit)
	}
	api.RegisterRoutes(public, opts.Recipes, opts.Version)

	return router
}
