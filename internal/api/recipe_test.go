package api_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tasteit/tasteit/backend/internal/api"
	"github.com/tasteit/tasteit/backend/internal/mocks"
	"github.com/tasteit/tasteit/backend/internal/model"
	"github.com/tasteit/tasteit/backend/internal/service"
	"github.com/tasteit/tasteit/backend/internal/store"
	"github.com/tasteit/tasteit/backend/internal/testingutils"
)

func setupMockRouter() (*gin.Engine, *mocks.MockRecipeService) {
	svc := new(mocks.MockRecipeService)
	router := testingutils.SetupTestRouter()
	api.RegisterRoutes(router, svc, "test")
	return router, svc
}

func setupSQLiteRouter(t *testing.T) *gin.Engine {
	st := testingutils.SetupSQLiteStore(t, testingutils.Fixtures())
	router := testingutils.SetupTestRouter()
	api.RegisterRoutes(router, service.NewRecipeService(st, nil, zap.NewNop()), "test")
	return router
}

var gazpacho = model.MatchResult{RecipeID: 3, Recipe: model.Recipe{
	Name:        "Gazpacho",
	Country:     "Spain",
	Ingredients: model.StringList{"Tomate", "Pepino"},
	Tags:        model.StringList{},
	Steps:       model.StringList{},
}}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"not found", service.ErrNotFound, http.StatusNotFound},
		{"invalid input", &service.InputError{Field: "skip", Message: "must not be negative"}, http.StatusBadRequest},
		{"store unavailable", &store.Error{Op: "fetch", Err: errors.New("dial tcp: refused")}, http.StatusServiceUnavailable},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := setupMockRouter()
			svc.On("ListRecipes", mock.Anything).Return(nil, tt.err)

			w := testingutils.PerformRequest(router, http.MethodGet, "/public/recipes/all")
			msg := testingutils.AssertError(t, w, tt.status)
			if tt.status == http.StatusServiceUnavailable {
				assert.NotContains(t, msg, "dial tcp")
			}
		})
	}
}

func TestRoutesPassParameters(t *testing.T) {
	tests := []struct {
		path   string
		method string
		args   []any
	}{
		{"/public/recipes/all/20", "ListRecipesPage", []any{20}},
		{"/public/recipes/random/3", "RandomRecipes", []any{3}},
		{"/public/recipes/byname/tortilla%20de/10", "RecipesByName", []any{"tortilla de", 10}},
		{"/public/recipes/bycountry/Spain/0", "RecipesByCountry", []any{"Spain", 0}},
		{"/public/recipes/byingredients/sal,aceite/0", "RecipesByIngredients", []any{"sal,aceite", 0}},
		{"/public/recipes/bytags/vegan/5", "RecipesByTags", []any{"vegan", 5}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			router, svc := setupMockRouter()
			svc.On(tt.method, append([]any{mock.Anything}, tt.args...)...).
				Return([]model.MatchResult{gazpacho}, nil)

			w := testingutils.PerformRequest(router, http.MethodGet, tt.path)
			results := testingutils.DecodeResults(t, w)
			assert.Equal(t, []string{"Gazpacho"}, testingutils.Names(results))
			assert.Equal(t, int64(3), results[0].RecipeID)
			svc.AssertExpectations(t)
		})
	}
}

func TestGetRecipe(t *testing.T) {
	router, svc := setupMockRouter()
	svc.On("GetRecipe", mock.Anything, int64(3)).Return(&gazpacho, nil)

	w := testingutils.PerformRequest(router, http.MethodGet, "/public/recipes/3")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"recipeId": 3,
		"recipe": {
			"name": "Gazpacho", "description": "", "difficulty": 0, "image": "",
			"dateCreated": "", "country": "Spain", "rating": 0,
			"ingredients": ["Tomate", "Pepino"], "tags": [], "steps": []
		}
	}`, w.Body.String())
}

func TestBindingRejectsBadParameters(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/public/recipes/all/-1", "skipper must be at least 0"},
		{"/public/recipes/all/abc", "malformed parameter"},
		{"/public/recipes/random/0", "limit must be at least 1"},
		{"/public/recipes/random/101", "limit must be at most 100"},
		{"/public/recipes/abc", "malformed parameter"},
		{"/public/recipes/byname/tortilla/-5", "skipper must be at least 0"},
		{"/public/recipes/search?difficulty=hard", "malformed parameter"},
		{"/public/recipes/search?rating=-1", "rating must be at least 0"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			router, svc := setupMockRouter()

			w := testingutils.PerformRequest(router, http.MethodGet, tt.path)
			msg := testingutils.AssertError(t, w, http.StatusBadRequest)
			assert.Contains(t, msg, tt.want)
			svc.AssertNotCalled(t, "ListRecipesPage", mock.Anything, mock.Anything)
			svc.AssertNotCalled(t, "SearchRecipes", mock.Anything, mock.Anything)
		})
	}
}

func TestSearchBindsOptionalFilters(t *testing.T) {
	router, svc := setupMockRouter()
	svc.On("SearchRecipes", mock.Anything, mock.MatchedBy(func(p service.SearchParams) bool {
		return p.Name == nil &&
			p.Country != nil && *p.Country == "Spain" &&
			p.Difficulty != nil && *p.Difficulty == 2 &&
			p.Rating != nil && *p.Rating == 4.5 &&
			p.Ingredients == "sal,aceite" &&
			p.Tags == ""
	})).Return([]model.MatchResult{gazpacho}, nil)

	w := testingutils.PerformRequest(router, http.MethodGet,
		"/public/recipes/search?country=Spain&difficulty=2&rating=4.5&ingredients=sal,aceite")
	testingutils.DecodeResults(t, w)
	svc.AssertExpectations(t)
}

func TestHealthCheck(t *testing.T) {
	router, svc := setupMockRouter()
	svc.On("Ping", mock.Anything).Return(nil).Once()
	svc.On("Ping", mock.Anything).Return(&store.Error{Op: "ping", Err: errors.New("down")}).Once()

	w := testingutils.PerformRequest(router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")

	w = testingutils.PerformRequest(router, http.MethodGet, "/health")
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "unhealthy")
}

func TestPublicRecipesEndToEnd(t *testing.T) {
	router := setupSQLiteRouter(t)

	t.Run("all", func(t *testing.T) {
		results := testingutils.DecodeResults(t, testingutils.PerformRequest(router, http.MethodGet, "/public/recipes/all"))
		assert.Len(t, results, 5)
		assert.Equal(t, "Flan", results[0].Recipe.Name)
	})

	t.Run("by ingredients", func(t *testing.T) {
		results := testingutils.DecodeResults(t, testingutils.PerformRequest(router, http.MethodGet, "/public/recipes/byingredients/Huevos/0"))
		assert.Equal(t, []string{"Flan", "Tortilla de patatas"}, testingutils.Names(results))
	})

	t.Run("by tags is exact", func(t *testing.T) {
		w := testingutils.PerformRequest(router, http.MethodGet, "/public/recipes/bytags/veg/0")
		testingutils.AssertError(t, w, http.StatusNotFound)
	})

	t.Run("search tags by substring", func(t *testing.T) {
		results := testingutils.DecodeResults(t, testingutils.PerformRequest(router, http.MethodGet, "/public/recipes/search?tags=veg&country=spain"))
		assert.Equal(t, []string{"Gazpacho", "Tortilla de patatas"}, testingutils.Names(results))
	})

	t.Run("empty ingredient list is rejected", func(t *testing.T) {
		w := testingutils.PerformRequest(router, http.MethodGet, "/public/recipes/byingredients/,,/0")
		testingutils.AssertError(t, w, http.StatusBadRequest)
	})

	t.Run("random", func(t *testing.T) {
		results := testingutils.DecodeResults(t, testingutils.PerformRequest(router, http.MethodGet, "/public/recipes/random/2"))
		assert.Len(t, results, 2)
	})

	t.Run("unknown id", func(t *testing.T) {
		w := testingutils.PerformRequest(router, http.MethodGet, "/public/recipes/424242")
		testingutils.AssertError(t, w, http.StatusNotFound)
	})
}
