package store

import (
	"testing"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"github.com/neo4j/neo4j-go-driver/v5/neo4j/dbtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileCypher(t *testing.T) {
	name := "tortilla"
	difficulty := 2

	tests := []struct {
		name       string
		query      Query
		wantCypher string
		wantParams map[string]any
	}{
		{
			name:       "all recipes newest first",
			query:      Query{Order: ByDateCreatedDesc},
			wantCypher: "MATCH (recipe:Recipe) RETURN id(recipe) AS recipeId, recipe ORDER BY recipe.dateCreated DESC",
			wantParams: map[string]any{},
		},
		{
			name:  "paged by name with creator",
			query: Query{Pattern: RecipesWithCreator, Where: []Predicate{{Field: FieldName, Op: Contains, Value: "Tortilla"}}, Skip: 10, Limit: 10},
			wantCypher: "MATCH (recipe:Recipe)-[:Created]-(user:User) WHERE toLower(recipe.name) CONTAINS toLower($p0)" +
				" RETURN id(recipe) AS recipeId, recipe ORDER BY recipe.dateCreated DESC SKIP $skip LIMIT $limit",
			wantParams: map[string]any{"p0": "Tortilla", "skip": int64(10), "limit": int64(10)},
		},
		{
			name: "null tolerant search",
			query: Query{Where: []Predicate{
				OptionalText(FieldName, &name),
				OptionalText(FieldCountry, nil),
				OptionalInt(FieldDifficulty, &difficulty),
				OptionalFloat(FieldRating, nil),
			}},
			wantCypher: "MATCH (recipe:Recipe) WHERE ($p0 IS NULL OR toLower(recipe.name) CONTAINS toLower($p0))" +
				" AND ($p1 IS NULL OR toLower(recipe.country) CONTAINS toLower($p1))" +
				" AND ($p2 IS NULL OR recipe.difficulty = $p2)" +
				" AND ($p3 IS NULL OR recipe.rating = $p3)" +
				" RETURN id(recipe) AS recipeId, recipe ORDER BY recipe.dateCreated DESC",
			wantParams: map[string]any{"p0": "tortilla", "p1": nil, "p2": int64(2), "p3": nil},
		},
		{
			name:       "random sample",
			query:      Query{Order: Random, Limit: 3},
			wantCypher: "MATCH (recipe:Recipe) WITH recipe, rand() AS sampleKey ORDER BY sampleKey LIMIT $limit RETURN id(recipe) AS recipeId, recipe",
			wantParams: map[string]any{"limit": int64(3)},
		},
		{
			name:       "lookup by id",
			query:      Query{Where: []Predicate{{Field: FieldID, Op: Equals, Value: int64(42)}}, Order: Unordered, Limit: 1},
			wantCypher: "MATCH (recipe:Recipe) WHERE id(recipe) = $p0 RETURN id(recipe) AS recipeId, recipe LIMIT $limit",
			wantParams: map[string]any{"p0": int64(42), "limit": int64(1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cypher, params, err := CompileCypher(tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.wantCypher, cypher)
			assert.Equal(t, tt.wantParams, params)
		})
	}
}

func TestCompileCypherRejectsInvalidQueries(t *testing.T) {
	tests := []struct {
		name  string
		query Query
	}{
		{"negative skip", Query{Skip: -1}},
		{"negative limit", Query{Limit: -1}},
		{"skip with random order", Query{Order: Random, Skip: 5}},
		{"contains on number", Query{Where: []Predicate{{Field: FieldRating, Op: Contains, Value: 4.5}}}},
		{"unknown field", Query{Where: []Predicate{{Field: "calories", Op: Equals, Value: 1}}}},
		{"missing required value", Query{Where: []Predicate{{Field: FieldName, Op: Contains}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := CompileCypher(tt.query)
			assert.Error(t, err)
		})
	}
}

func TestDecodeRecord(t *testing.T) {
	record := &neo4j.Record{
		Keys: []string{"recipeId", "recipe"},
		Values: []any{
			int64(7),
			dbtype.Node{Props: map[string]any{
				"name":        "Gazpacho",
				"difficulty":  int64(1),
				"rating":      4.2,
				"country":     "Spain",
				"dateCreated": "2024-03-01T10:00:00Z",
				"ingredients": []any{"Tomate", "Pepino", 3},
			}},
		},
	}

	got := decodeRecord(record)
	assert.Equal(t, int64(7), got.RecipeID)
	assert.Equal(t, "Gazpacho", got.Recipe.Name)
	assert.Equal(t, 1, got.Recipe.Difficulty)
	assert.Equal(t, 4.2, got.Recipe.Rating)
	assert.Equal(t, []string{"Tomate", "Pepino"}, []string(got.Recipe.Ingredients))
	assert.NotNil(t, got.Recipe.Tags)
	assert.Empty(t, got.Recipe.Tags)
	assert.Empty(t, got.Recipe.Image)
}
