package search

import "github.com/tasteit/tasteit/backend/internal/model"

// DefaultPageSize is the number of recipes per page on paged endpoints
const DefaultPageSize = 10

// FilterSpec captures the optional constraints of one retrieval request.
// A nil pointer or empty token list means no constraint on that dimension.
type FilterSpec struct {
	Name        *string
	Country     *string
	Difficulty  *int
	Rating      *float64
	Ingredients []string
	Tags        []string
	Skip        int
	Limit       int
}

// HasListFilters reports whether any in-memory dimension is constrained
func (f *FilterSpec) HasListFilters() bool {
	return len(f.Ingredients) > 0 || len(f.Tags) > 0
}

// PageLimit returns the effective page size
func (f *FilterSpec) PageLimit() int {
	if f.Limit <= 0 {
		return DefaultPageSize
	}
	return f.Limit
}

// Evaluator decides whether a fetched recipe passes the in-memory dimensions of a
// FilterSpec. Scalar dimensions are assumed to be satisfied by the store query.
type Evaluator struct {
	IngredientMode MatchMode
	TagMode        MatchMode
}

var (
	// SearchEvaluator is used by the combined search: substring on both lists
	SearchEvaluator = Evaluator{IngredientMode: AnySubstring, TagMode: AnySubstring}
	// TagEvaluator is used by the dedicated tags endpoint: tags must match exactly
	TagEvaluator = Evaluator{IngredientMode: AnySubstring, TagMode: AnyExact}
)

// Passes reports whether recipe satisfies every constrained list dimension of spec
func (e Evaluator) Passes(recipe *model.Recipe, spec *FilterSpec) bool {
	if len(spec.Ingredients) > 0 && !Matches(recipe.Ingredients, spec.Ingredients, e.IngredientMode) {
		return false
	}
	if len(spec.Tags) > 0 && !Matches(recipe.Tags, spec.Tags, e.TagMode) {
		return false
	}
	return true
}

// Filter keeps the candidates that pass, preserving their relative order
func (e Evaluator) Filter(candidates []model.MatchResult, spec *FilterSpec) []model.MatchResult {
	if !spec.HasListFilters() {
		return candidates
	}
	out := make([]model.MatchResult, 0, len(candidates))
	for i := range candidates {
		if e.Passes(&candidates[i].Recipe, spec) {
			out = append(out, candidates[i])
		}
	}
	return out
}

// Page returns results[skip : skip+limit], clipped to the available range
func Page(results []model.MatchResult, skip, limit int) []model.MatchResult {
	if skip < 0 {
		skip = 0
	}
	if skip >= len(results) {
		return []model.MatchResult{}
	}
	end := len(results)
	if limit > 0 && skip+limit < end {
		end = skip + limit
	}
	return results[skip:end]
}
