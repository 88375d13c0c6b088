package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/tasteit/tasteit/backend/internal/metrics"
	"github.com/tasteit/tasteit/backend/internal/model"
	"github.com/tasteit/tasteit/backend/internal/search"
	"github.com/tasteit/tasteit/backend/internal/store"
)

// MaxSampleSize caps the random sample endpoint
const MaxSampleSize = 100

// SearchParams are the raw combined-search inputs. Nil pointers and empty token strings
// mean the dimension is unconstrained.
type SearchParams struct {
	Name        *string
	Country     *string
	Difficulty  *int
	Rating      *float64
	Ingredients string
	Tags        string
}

// RecipeService answers recipe retrieval requests. Each request fetches a fresh snapshot
// from the store, narrows it in memory when needed and pages the survivors.
type RecipeService struct {
	store  store.Store
	images ImageResolver
	logger *zap.Logger
}

// NewRecipeService creates a new RecipeService instance. images may be nil.
func NewRecipeService(st store.Store, images ImageResolver, logger *zap.Logger) *RecipeService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RecipeService{
		store:  st,
		images: images,
		logger: logger,
	}
}

// plan is one retrieval: what to push down, how to narrow, whether to page afterwards
type plan struct {
	intent    string
	query     store.Query
	evaluator search.Evaluator
	spec      search.FilterSpec
	postPage  bool
}

// ListRecipes returns every recipe, newest first
func (s *RecipeService) ListRecipes(ctx context.Context) ([]model.MatchResult, error) {
	return s.retrieve(ctx, plan{
		intent: "list",
		query:  store.Query{Order: store.ByDateCreatedDesc},
	})
}

// ListRecipesPage returns one page of recipes, newest first
func (s *RecipeService) ListRecipesPage(ctx context.Context, skip int) ([]model.MatchResult, error) {
	if err := checkSkip(skip); err != nil {
		return nil, s.rejected("list_page", err)
	}
	return s.retrieve(ctx, plan{
		intent: "list_page",
		query:  store.Query{Order: store.ByDateCreatedDesc, Skip: skip, Limit: search.DefaultPageSize},
	})
}

// GetRecipe returns the recipe with the given store identifier
func (s *RecipeService) GetRecipe(ctx context.Context, id int64) (*model.MatchResult, error) {
	if id < 0 {
		return nil, s.rejected("by_id", invalid("id", "must not be negative"))
	}
	results, err := s.retrieve(ctx, plan{
		intent: "by_id",
		query: store.Query{
			Where: []store.Predicate{{Field: store.FieldID, Op: store.Equals, Value: id}},
			Order: store.Unordered,
			Limit: 1,
		},
	})
	if err != nil {
		return nil, err
	}
	return &results[0], nil
}

// RandomRecipes returns up to limit recipes in random order. Every call draws a new sample.
func (s *RecipeService) RandomRecipes(ctx context.Context, limit int) ([]model.MatchResult, error) {
	if limit < 1 || limit > MaxSampleSize {
		return nil, s.rejected("random", invalid("limit", "must be between 1 and %d", MaxSampleSize))
	}
	return s.retrieve(ctx, plan{
		intent: "random",
		query:  store.Query{Order: store.Random, Limit: limit},
	})
}

// RecipesByName pages recipes whose name contains name, case-insensitively. Only recipes
// attached to a creator are considered.
func (s *RecipeService) RecipesByName(ctx context.Context, name string, skip int) ([]model.MatchResult, error) {
	if strings.TrimSpace(name) == "" {
		return nil, s.rejected("by_name", invalid("name", "must not be empty"))
	}
	if err := checkSkip(skip); err != nil {
		return nil, s.rejected("by_name", err)
	}
	return s.retrieve(ctx, plan{
		intent: "by_name",
		query: store.Query{
			Pattern: store.RecipesWithCreator,
			Where:   []store.Predicate{{Field: store.FieldName, Op: store.Contains, Value: name}},
			Order:   store.ByDateCreatedDesc,
			Skip:    skip,
			Limit:   search.DefaultPageSize,
		},
	})
}

// RecipesByCountry pages recipes whose country contains country, case-insensitively
func (s *RecipeService) RecipesByCountry(ctx context.Context, country string, skip int) ([]model.MatchResult, error) {
	if strings.TrimSpace(country) == "" {
		return nil, s.rejected("by_country", invalid("country", "must not be empty"))
	}
	if err := checkSkip(skip); err != nil {
		return nil, s.rejected("by_country", err)
	}
	return s.retrieve(ctx, plan{
		intent: "by_country",
		query: store.Query{
			Where: []store.Predicate{{Field: store.FieldCountry, Op: store.Contains, Value: country}},
			Order: store.ByDateCreatedDesc,
			Skip:  skip,
			Limit: search.DefaultPageSize,
		},
	})
}

// RecipesByIngredients pages recipes having an ingredient that contains any of the
// comma-separated ingredients. The full set is fetched and paging happens after filtering.
func (s *RecipeService) RecipesByIngredients(ctx context.Context, ingredients string, skip int) ([]model.MatchResult, error) {
	spec := search.FilterSpec{Ingredients: search.ParseTokens(ingredients), Skip: skip}
	if len(spec.Ingredients) == 0 {
		return nil, s.rejected("by_ingredients", invalid("ingredients", "at least one ingredient is required"))
	}
	if err := checkSkip(skip); err != nil {
		return nil, s.rejected("by_ingredients", err)
	}
	return s.retrieve(ctx, plan{
		intent:    "by_ingredients",
		query:     store.Query{Order: store.ByDateCreatedDesc},
		evaluator: search.SearchEvaluator,
		spec:      spec,
		postPage:  true,
	})
}

// RecipesByTags pages recipes carrying any of the comma-separated tags, compared exactly
// (ignoring case). Paging happens after filtering.
func (s *RecipeService) RecipesByTags(ctx context.Context, tags string, skip int) ([]model.MatchResult, error) {
	spec := search.FilterSpec{Tags: search.ParseTokens(tags), Skip: skip}
	if len(spec.Tags) == 0 {
		return nil, s.rejected("by_tags", invalid("tags", "at least one tag is required"))
	}
	if err := checkSkip(skip); err != nil {
		return nil, s.rejected("by_tags", err)
	}
	return s.retrieve(ctx, plan{
		intent:    "by_tags",
		query:     store.Query{Order: store.ByDateCreatedDesc},
		evaluator: search.TagEvaluator,
		spec:      spec,
		postPage:  true,
	})
}

// SearchRecipes combines every filter dimension. Name, country, difficulty and rating are
// pushed down as null-tolerant predicates; ingredients and tags are matched in memory by
// substring and must both hold when both are given. The result is not paged.
func (s *RecipeService) SearchRecipes(ctx context.Context, params SearchParams) ([]model.MatchResult, error) {
	spec := ParseSearch(params)
	return s.retrieve(ctx, plan{
		intent: "search",
		query: store.Query{
			Where: []store.Predicate{
				store.OptionalText(store.FieldName, spec.Name),
				store.OptionalText(store.FieldCountry, spec.Country),
				store.OptionalInt(store.FieldDifficulty, spec.Difficulty),
				store.OptionalFloat(store.FieldRating, spec.Rating),
			},
			Order: store.ByDateCreatedDesc,
		},
		evaluator: search.SearchEvaluator,
		spec:      spec,
	})
}

// ParseSearch builds the FilterSpec for a combined search
func ParseSearch(params SearchParams) search.FilterSpec {
	spec := search.FilterSpec{
		Difficulty:  params.Difficulty,
		Rating:      params.Rating,
		Ingredients: search.ParseTokens(params.Ingredients),
		Tags:        search.ParseTokens(params.Tags),
	}
	if params.Name != nil && *params.Name != "" {
		spec.Name = params.Name
	}
	if params.Country != nil && *params.Country != "" {
		spec.Country = params.Country
	}
	return spec
}

// Ping checks the store
func (s *RecipeService) Ping(ctx context.Context) error {
	return s.store.Ping(ctx)
}

func (s *RecipeService) retrieve(ctx context.Context, p plan) ([]model.MatchResult, error) {
	candidates, err := s.store.Fetch(ctx, p.query)
	if err != nil {
		metrics.RetrievalOutcomes.WithLabelValues(p.intent, "error").Inc()
		s.logger.Error("recipe fetch failed", zap.String("intent", p.intent), zap.Error(err))
		return nil, err
	}
	metrics.RetrievalCandidates.WithLabelValues(p.intent).Observe(float64(len(candidates)))

	results := p.evaluator.Filter(candidates, &p.spec)
	if p.postPage {
		results = search.Page(results, p.spec.Skip, p.spec.PageLimit())
	}

	if len(results) == 0 {
		metrics.RetrievalOutcomes.WithLabelValues(p.intent, "not_found").Inc()
		return nil, ErrNotFound
	}

	s.resolveImages(ctx, results)
	metrics.RetrievalOutcomes.WithLabelValues(p.intent, "found").Inc()
	s.logger.Debug("recipes retrieved",
		zap.String("intent", p.intent),
		zap.Int("candidates", len(candidates)),
		zap.Int("results", len(results)),
	)
	return results, nil
}

func (s *RecipeService) resolveImages(ctx context.Context, results []model.MatchResult) {
	if s.images == nil {
		return
	}
	for i := range results {
		ref := results[i].Recipe.Image
		if ref == "" {
			continue
		}
		url, err := s.images.ResolveImage(ctx, ref)
		if err != nil {
			s.logger.Warn("image reference not resolved", zap.String("image", ref), zap.Error(err))
			continue
		}
		results[i].Recipe.Image = url
	}
}

func (s *RecipeService) rejected(intent string, err error) error {
	metrics.RetrievalOutcomes.WithLabelValues(intent, "invalid").Inc()
	return err
}

func checkSkip(skip int) error {
	if skip < 0 {
		return invalid("skip", "must not be negative")
	}
	return nil
}

// IsInputError reports whether err was caused by a rejected parameter
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
