package router

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/tasteit/tasteit/backend/internal/middleware"
	"github.com/tasteit/tasteit/backend/internal/mocks"
	"github.com/tasteit/tasteit/backend/internal/model"
	"github.com/tasteit/tasteit/backend/internal/testingutils"
)

func TestSetupRouter(t *testing.T) {
	svc := new(mocks.MockRecipeService)
	svc.On("ListRecipes", mock.Anything).Return([]model.MatchResult{{RecipeID: 1, Recipe: model.Recipe{Name: "Flan"}}}, nil)
	svc.On("Ping", mock.Anything).Return(nil)

	router := SetupRouter(Options{
		Logger:         zap.NewNop(),
		Recipes:        svc,
		RateLimiter:    middleware.NewPublicRateLimiter(nil, 2, zap.NewNop()),
		RateLimit:      2,
		SwaggerEnabled: true,
		Version:        "test",
	})

	w := testingutils.PerformRequest(router, http.MethodGet, "/public/recipes/all")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))

	w = testingutils.PerformRequest(router, http.MethodGet, "/public/rate-limit")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"backend":"local"`)

	// third request in the window is throttled
	w = testingutils.PerformRequest(router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	w = testingutils.PerformRequest(router, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "http_request_duration_seconds")

	w = testingutils.PerformRequest(router, http.MethodGet, "/swagger/doc.json")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/public/recipes/all")

	w = testingutils.PerformRequest(router, http.MethodPost, "/public/recipes/all")
	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestSetupRouterWithoutSwagger(t *testing.T) {
	router := SetupRouter(Options{Logger: zap.NewNop(), Recipes: new(mocks.MockRecipeService)})

	w := testingutils.PerformRequest(router, http.MethodGet, "/swagger/index.html")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
