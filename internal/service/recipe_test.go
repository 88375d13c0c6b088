package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/tasteit/tasteit/backend/internal/mocks"
	"github.com/tasteit/tasteit/backend/internal/model"
	"github.com/tasteit/tasteit/backend/internal/service"
	"github.com/tasteit/tasteit/backend/internal/store"
	"github.com/tasteit/tasteit/backend/internal/testingutils"
)

func ptr[T any](v T) *T { return &v }

func setupService(t *testing.T, recipes []store.SeedRecipe) *service.RecipeService {
	t.Helper()
	return service.NewRecipeService(testingutils.SetupSQLiteStore(t, recipes), nil, zap.NewNop())
}

func TestListRecipes(t *testing.T) {
	svc := setupService(t, testingutils.Fixtures())

	results, err := svc.ListRecipes(context.Background())
	require.NoError(t, err)
	assert.Equal(t,
		[]string{"Flan", "Pan casero", "Gazpacho", "Tacos al pastor", "Tortilla de patatas"},
		testingutils.Names(results),
	)
}

func TestListRecipesEmptyStoreIsNotFound(t *testing.T) {
	svc := setupService(t, nil)

	_, err := svc.ListRecipes(context.Background())
	assert.ErrorIs(t, err, service.ErrNotFound)
	assert.NotErrorIs(t, err, store.ErrUnavailable)
}

func TestListRecipesPage(t *testing.T) {
	svc := setupService(t, testingutils.Numbered(23))
	ctx := context.Background()

	full, err := svc.ListRecipes(ctx)
	require.NoError(t, err)

	for _, skip := range []int{0, 5, 10, 20} {
		page, err := svc.ListRecipesPage(ctx, skip)
		require.NoError(t, err)
		assert.Equal(t, full[skip:min(skip+10, len(full))], page, "skip=%d", skip)
	}

	_, err = svc.ListRecipesPage(ctx, 23)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.ListRecipesPage(ctx, -1)
	assert.True(t, service.IsInputError(err))
}

func TestGetRecipe(t *testing.T) {
	svc := setupService(t, testingutils.Fixtures())
	ctx := context.Background()

	all, err := svc.ListRecipes(ctx)
	require.NoError(t, err)

	got, err := svc.GetRecipe(ctx, all[1].RecipeID)
	require.NoError(t, err)
	assert.Equal(t, all[1], *got)

	_, err = svc.GetRecipe(ctx, 9999)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.GetRecipe(ctx, -1)
	assert.True(t, service.IsInputError(err))
}

func TestRandomRecipes(t *testing.T) {
	svc := setupService(t, testingutils.Fixtures())
	ctx := context.Background()

	for _, k := range []int{1, 4, 5, 100} {
		results, err := svc.RandomRecipes(ctx, k)
		require.NoError(t, err)
		assert.Len(t, results, min(k, 5))
	}

	for _, k := range []int{0, -3, 101} {
		_, err := svc.RandomRecipes(ctx, k)
		var inputErr *service.InputError
		require.ErrorAs(t, err, &inputErr, "limit=%d", k)
		assert.Equal(t, "limit", inputErr.Field)
	}
}

func TestRecipesByName(t *testing.T) {
	svc := setupService(t, testingutils.Fixtures())
	ctx := context.Background()

	results, err := svc.RecipesByName(ctx, "TORTILLA", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tortilla de patatas"}, testingutils.Names(results))

	// "Pan casero" has no creator
	_, err = svc.RecipesByName(ctx, "pan", 0)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.RecipesByName(ctx, "  ", 0)
	assert.True(t, service.IsInputError(err))
}

func TestRecipesByCountry(t *testing.T) {
	svc := setupService(t, testingutils.Fixtures())
	ctx := context.Background()

	results, err := svc.RecipesByCountry(ctx, "mex", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Flan", "Tacos al pastor"}, testingutils.Names(results))

	results, err = svc.RecipesByCountry(ctx, "mex", 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tacos al pastor"}, testingutils.Names(results))

	_, err = svc.RecipesByCountry(ctx, "Peru", 0)
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestRecipesByIngredients(t *testing.T) {
	svc := setupService(t, testingutils.Fixtures())
	ctx := context.Background()

	results, err := svc.RecipesByIngredients(ctx, "aceite", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Gazpacho", "Tortilla de patatas"}, testingutils.Names(results))

	results, err = svc.RecipesByIngredients(ctx, "azucar, cerdo", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Flan", "Tacos al pastor"}, testingutils.Names(results))

	// paging applies to the filtered list
	results, err = svc.RecipesByIngredients(ctx, "sal", 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"Tortilla de patatas"}, testingutils.Names(results))

	_, err = svc.RecipesByIngredients(ctx, "trufa", 0)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.RecipesByIngredients(ctx, " , ,", 0)
	assert.True(t, service.IsInputError(err))
}

func TestRecipesByTagsMatchesExactly(t *testing.T) {
	svc := setupService(t, testingutils.Fixtures())
	ctx := context.Background()

	results, err := svc.RecipesByTags(ctx, "Vegetarian", 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"Pan casero", "Tortilla de patatas"}, testingutils.Names(results))

	_, err = svc.RecipesByTags(ctx, "veg", 0)
	assert.ErrorIs(t, err, service.ErrNotFound)

	_, err = svc.RecipesByTags(ctx, "", 0)
	assert.True(t, service.IsInputError(err))
}

func TestSearchRecipes(t *testing.T) {
	svc := setupService(t, testingutils.Fixtures())
	ctx := context.Background()

	tests := []struct {
		name   string
		params service.SearchParams
		want   []string
	}{
		{
			name:   "no filters returns everything",
			params: service.SearchParams{},
			want:   []string{"Flan", "Pan casero", "Gazpacho", "Tacos al pastor", "Tortilla de patatas"},
		},
		{
			name:   "scalar pushdown",
			params: service.SearchParams{Country: ptr("spain"), Difficulty: ptr(1)},
			want:   []string{"Gazpacho"},
		},
		{
			name:   "empty strings are unconstrained",
			params: service.SearchParams{Name: ptr(""), Country: ptr(""), Ingredients: ",", Tags: ""},
			want:   []string{"Flan", "Pan casero", "Gazpacho", "Tacos al pastor", "Tortilla de patatas"},
		},
		{
			name:   "tags match by substring",
			params: service.SearchParams{Tags: "veg"},
			want:   []string{"Flan", "Pan casero", "Gazpacho", "Tortilla de patatas"},
		},
		{
			name:   "ingredients and tags must both hold",
			params: service.SearchParams{Ingredients: "huevos", Tags: "classic"},
			want:   []string{"Tortilla de patatas"},
		},
		{
			name:   "rating equality",
			params: service.SearchParams{Rating: ptr(4.5)},
			want:   []string{"Flan", "Tortilla de patatas"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := svc.SearchRecipes(ctx, tt.params)
			require.NoError(t, err)
			assert.Equal(t, tt.want, testingutils.Names(results))
		})
	}

	_, err := svc.SearchRecipes(ctx, service.SearchParams{Ingredients: "huevos", Tags: "spicy"})
	assert.ErrorIs(t, err, service.ErrNotFound)
}

func TestSearchRecipesIsIdempotent(t *testing.T) {
	svc := setupService(t, testingutils.Fixtures())
	ctx := context.Background()
	params := service.SearchParams{Ingredients: "sal, aceite"}

	first, err := svc.SearchRecipes(ctx, params)
	require.NoError(t, err)
	second, err := svc.SearchRecipes(ctx, params)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestSearchRecipesOnPlainCandidates(t *testing.T) {
	st := new(mocks.MockStore)
	st.On("Fetch", mock.Anything, mock.AnythingOfType("store.Query")).Return([]model.MatchResult{
		{RecipeID: 1, Recipe: model.Recipe{Name: "A", Ingredients: model.StringList{"sal", "aceite"}}},
		{RecipeID: 2, Recipe: model.Recipe{Name: "B", Ingredients: model.StringList{"azucar"}}},
	}, nil)
	svc := service.NewRecipeService(st, nil, zap.NewNop())

	results, err := svc.SearchRecipes(context.Background(), service.SearchParams{Ingredients: "Sal"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, int64(1), results[0].RecipeID)
}

func TestStoreFailureIsNotNotFound(t *testing.T) {
	storeErr := &store.Error{Op: "fetch", Err: errors.New("connection refused")}
	st := new(mocks.MockStore)
	st.On("Fetch", mock.Anything, mock.Anything).Return(nil, storeErr)
	st.On("Ping", mock.Anything).Return(storeErr)
	svc := service.NewRecipeService(st, nil, zap.NewNop())
	ctx := context.Background()

	calls := map[string]func() error{
		"list":        func() error { _, err := svc.ListRecipes(ctx); return err },
		"page":        func() error { _, err := svc.ListRecipesPage(ctx, 0); return err },
		"id":          func() error { _, err := svc.GetRecipe(ctx, 1); return err },
		"random":      func() error { _, err := svc.RandomRecipes(ctx, 3); return err },
		"name":        func() error { _, err := svc.RecipesByName(ctx, "a", 0); return err },
		"country":     func() error { _, err := svc.RecipesByCountry(ctx, "a", 0); return err },
		"ingredients": func() error { _, err := svc.RecipesByIngredients(ctx, "a", 0); return err },
		"tags":        func() error { _, err := svc.RecipesByTags(ctx, "a", 0); return err },
		"search":      func() error { _, err := svc.SearchRecipes(ctx, service.SearchParams{}); return err },
		"ping":        func() error { return svc.Ping(ctx) },
	}
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := call()
			assert.ErrorIs(t, err, store.ErrUnavailable)
			assert.NotErrorIs(t, err, service.ErrNotFound)
		})
	}
}

func TestSearchPushesDownNullTolerantPredicates(t *testing.T) {
	st := new(mocks.MockStore)
	st.On("Fetch", mock.Anything, mock.MatchedBy(func(q store.Query) bool {
		return len(q.Where) == 4 &&
			q.Where[0].Optional && q.Where[0].Value == "tor" &&
			q.Where[1].Optional && q.Where[1].Value == nil &&
			q.Where[2].Value == int64(2) &&
			q.Where[3].Value == nil &&
			q.Order == store.ByDateCreatedDesc &&
			q.Limit == 0
	})).Return([]model.MatchResult{{RecipeID: 3, Recipe: model.Recipe{Name: "Tortilla"}}}, nil)
	svc := service.NewRecipeService(st, nil, zap.NewNop())

	_, err := svc.SearchRecipes(context.Background(), service.SearchParams{Name: ptr("tor"), Difficulty: ptr(2)})
	require.NoError(t, err)
	st.AssertExpectations(t)
}

func TestImagesAreResolved(t *testing.T) {
	images := new(mocks.MockImageResolver)
	images.On("ResolveImage", mock.Anything, "recipes/tortilla.jpg").Return("https://signed.example.com/tortilla.jpg", nil)
	images.On("ResolveImage", mock.Anything, "https://cdn.example.com/tacos.jpg").Return("", errors.New("presign failed"))

	svc := service.NewRecipeService(
		testingutils.SetupSQLiteStore(t, testingutils.Fixtures()),
		images,
		zap.NewNop(),
	)

	results, err := svc.SearchRecipes(context.Background(), service.SearchParams{Country: ptr("a")})
	require.NoError(t, err)

	byName := map[string]string{}
	for _, r := range results {
		byName[r.Recipe.Name] = r.Recipe.Image
	}
	assert.Equal(t, "https://signed.example.com/tortilla.jpg", byName["Tortilla de patatas"])
	// failed resolution keeps the stored reference
	assert.Equal(t, "https://cdn.example.com/tacos.jpg", byName["Tacos al pastor"])
	assert.Empty(t, byName["Gazpacho"])
	images.AssertExpectations(t)
}
