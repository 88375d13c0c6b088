package service

import (
	"context"

	"github.com/tasteit/tasteit/backend/internal/model"
)

// IRecipeService defines the read-only recipe retrieval operations, one per endpoint intent
type IRecipeService interface {
	ListRecipes(ctx context.Context) ([]model.MatchResult, error)
	ListRecipesPage(ctx context.Context, skip int) ([]model.MatchResult, error)
	GetRecipe(ctx context.Context, id int64) (*model.MatchResult, error)
	RandomRecipes(ctx context.Context, limit int) ([]model.MatchResult, error)
	RecipesByName(ctx context.Context, name string, skip int) ([]model.MatchResult, error)
	RecipesByCountry(ctx context.Context, country string, skip int) ([]model.MatchResult, error)
	RecipesByIngredients(ctx context.Context, ingredients string, skip int) ([]model.MatchResult, error)
	RecipesByTags(ctx context.Context, tags string, skip int) ([]model.MatchResult, error)
	SearchRecipes(ctx context.Context, params SearchParams) ([]model.MatchResult, error)
	Ping(ctx context.Context) error
}

// ImageResolver turns a stored image reference into a URL clients can load
type ImageResolver interface {
	ResolveImage(ctx context.Context, ref string) (string, error)
}
