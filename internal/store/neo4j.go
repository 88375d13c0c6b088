package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"go.uber.org/zap"

	"github.com/tasteit/tasteit/backend/internal/metrics"
	"github.com/tasteit/tasteit/backend/internal/model"
)

// Neo4jStore fetches recipes from a Neo4j graph
type Neo4jStore struct {
	driver   neo4j.DriverWithContext
	database string
	timeout  time.Duration
	logger   *zap.Logger
}

// NewNeo4jStore wraps an already connected driver. The driver is owned by the caller.
func NewNeo4jStore(driver neo4j.DriverWithContext, database string, timeout time.Duration, logger *zap.Logger) *Neo4jStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Neo4jStore{
		driver:   driver,
		database: database,
		timeout:  timeout,
		logger:   logger,
	}
}

// Fetch implements Store
func (s *Neo4jStore) Fetch(ctx context.Context, q Query) (results []model.MatchResult, err error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreQuery("neo4j", start, err) }()

	cypher, params, err := CompileCypher(q)
	if err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	opts := []neo4j.ExecuteQueryConfigurationOption{neo4j.ExecuteQueryWithReadersRouting()}
	if s.database != "" {
		opts = append(opts, neo4j.ExecuteQueryWithDatabase(s.database))
	}

	res, err := neo4j.ExecuteQuery(ctx, s.driver, cypher, params, neo4j.EagerResultTransformer, opts...)
	if err != nil {
		s.logger.Warn("neo4j query failed", zap.String("cypher", cypher), zap.Error(err))
		return nil, wrapErr("fetch", err)
	}

	results = make([]model.MatchResult, 0, len(res.Records))
	for _, record := range res.Records {
		results = append(results, decodeRecord(record))
	}
	return results, nil
}

// Ping implements Store
func (s *Neo4jStore) Ping(ctx context.Context) error {
	return wrapErr("ping", s.driver.VerifyConnectivity(ctx))
}

var cypherProperties = map[Field]string{
	FieldID:         "id(recipe)",
	FieldName:       "recipe.name",
	FieldCountry:    "recipe.country",
	FieldDifficulty: "recipe.difficulty",
	FieldRating:     "recipe.rating",
}

// CompileCypher renders q as a parametrized Cypher statement
func CompileCypher(q Query) (string, map[string]any, error) {
	if err := q.Validate(); err != nil {
		return "", nil, err
	}

	var b strings.Builder
	params := map[string]any{}

	switch q.Pattern {
	case RecipesWithCreator:
		b.WriteString("MATCH (recipe:Recipe)-[:Created]-(user:User)")
	default:
		b.WriteString("MATCH (recipe:Recipe)")
	}

	if len(q.Where) > 0 {
		clauses := make([]string, 0, len(q.Where))
		for i, p := range q.Where {
			name := fmt.Sprintf("p%d", i)
			params[name] = p.Value

			prop := cypherProperties[p.Field]
			var clause string
			if p.Op == Contains {
				clause = fmt.Sprintf("toLower(%s) CONTAINS toLower($%s)", prop, name)
			} else {
				clause = fmt.Sprintf("%s = $%s", prop, name)
			}
			if p.Optional {
				clause = fmt.Sprintf("($%s IS NULL OR %s)", name, clause)
			}
			clauses = append(clauses, clause)
		}
		b.WriteString(" WHERE ")
		b.WriteString(strings.Join(clauses, " AND "))
	}

	if q.Order == Random {
		b.WriteString(" WITH recipe, rand() AS sampleKey ORDER BY sampleKey")
		if q.Limit > 0 {
			b.WriteString(" LIMIT $limit")
			params["limit"] = int64(q.Limit)
		}
		b.WriteString(" RETURN id(recipe) AS recipeId, recipe")
		return b.String(), params, nil
	}

	b.WriteString(" RETURN id(recipe) AS recipeId, recipe")
	if q.Order == ByDateCreatedDesc {
		b.WriteString(" ORDER BY recipe.dateCreated DESC")
	}
	if q.Skip > 0 {
		b.WriteString(" SKIP $skip")
		params["skip"] = int64(q.Skip)
	}
	if q.Limit > 0 {
		b.WriteString(" LIMIT $limit")
		params["limit"] = int64(q.Limit)
	}
	return b.String(), params, nil
}

// decodeRecord maps a result row onto a MatchResult. Missing or mistyped values decode as
// zero values.
func decodeRecord(record *neo4j.Record) model.MatchResult {
	id, _, _ := neo4j.GetRecordValue[int64](record, "recipeId")
	node, _, _ := neo4j.GetRecordValue[neo4j.Node](record, "recipe")
	return model.MatchResult{RecipeID: id, Recipe: recipeFromProps(node.Props)}
}

func recipeFromProps(props map[string]any) model.Recipe {
	r := model.Recipe{
		Name:        propString(props, "name"),
		Description: propString(props, "description"),
		Difficulty:  int(propInt(props, "difficulty")),
		Image:       propString(props, "image"),
		DateCreated: propString(props, "dateCreated"),
		Country:     propString(props, "country"),
		Rating:      propFloat(props, "rating"),
		Ingredients: propStrings(props, "ingredients"),
		Tags:        propStrings(props, "tags"),
		Steps:       propStrings(props, "steps"),
	}
	r.Normalize()
	return r
}

func propString(props map[string]any, key string) string {
	switch v := props[key].(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return ""
	}
}

func propInt(props map[string]any, key string) int64 {
	switch v := props[key].(type) {
	case int64:
		return v
	case float64:
		return int64(v)
	default:
		return 0
	}
}

func propFloat(props map[string]any, key string) float64 {
	switch v := props[key].(type) {
	case float64:
		return v
	case int64:
		return float64(v)
	default:
		return 0
	}
}

func propStrings(props map[string]any, key string) model.StringList {
	raw, ok := props[key].([]any)
	if !ok {
		return model.StringList{}
	}
	out := make(model.StringList, 0, len(raw))
	for _, item := range raw {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}
