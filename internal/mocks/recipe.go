package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/tasteit/tasteit/backend/internal/model"
	"github.com/tasteit/tasteit/backend/internal/service"
)

// MockRecipeService is a mock implementation of the recipe service
type MockRecipeService struct {
	mock.Mock
}

func results(args mock.Arguments) ([]model.MatchResult, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.MatchResult), args.Error(1)
}

// ListRecipes mocks the ListRecipes method
func (m *MockRecipeService) ListRecipes(ctx context.Context) ([]model.MatchResult, error) {
	return results(m.Called(ctx))
}

// ListRecipesPage mocks the ListRecipesPage method
func (m *MockRecipeService) ListRecipesPage(ctx context.Context, skip int) ([]model.MatchResult, error) {
	return results(m.Called(ctx, skip))
}

// GetRecipe mocks the GetRecipe method
func (m *MockRecipeService) GetRecipe(ctx context.Context, id int64) (*model.MatchResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.MatchResult), args.Error(1)
}

// RandomRecipes mocks the RandomRecipes method
func (m *MockRecipeService) RandomRecipes(ctx context.Context, limit int) ([]model.MatchResult, error) {
	return results(m.Called(ctx, limit))
}

// RecipesByName mocks the RecipesByName method
func (m *MockRecipeService) RecipesByName(ctx context.Context, name string, skip int) ([]model.MatchResult, error) {
	return results(m.Called(ctx, name, skip))
}

// RecipesByCountry mocks the RecipesByCountry method
func (m *MockRecipeService) RecipesByCountry(ctx context.Context, country string, skip int) ([]model.MatchResult, error) {
	return results(m.Called(ctx, country, skip))
}

// RecipesByIngredients mocks the RecipesByIngredients method
func (m *MockRecipeService) RecipesByIngredients(ctx context.Context, ingredients string, skip int) ([]model.MatchResult, error) {
	return results(m.Called(ctx, ingredients, skip))
}

// RecipesByTags mocks the RecipesByTags method
func (m *MockRecipeService) RecipesByTags(ctx context.Context, tags string, skip int) ([]model.MatchResult, error) {
	return results(m.Called(ctx, tags, skip))
}

// SearchRecipes mocks the SearchRecipes method
func (m *MockRecipeService) SearchRecipes(ctx context.Context, params service.SearchParams) ([]model.MatchResult, error) {
	return results(m.Called(ctx, params))
}

// Ping mocks the Ping method
func (m *MockRecipeService) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

var _ service.IRecipeService = (*MockRecipeService)(nil)
