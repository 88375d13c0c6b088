package store

import (
	"context"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/tasteit/tasteit/backend/internal/metrics"
	"github.com/tasteit/tasteit/backend/internal/model"
)

// SQLStore fetches recipes from a relational database through gorm. It serves local
// development and tests with SQLite and deployments that keep recipes in Postgres.
type SQLStore struct {
	db      *gorm.DB
	timeout time.Duration
}

// NewSQLStore creates a store on top of an open gorm connection
func NewSQLStore(db *gorm.DB, timeout time.Duration) *SQLStore {
	return &SQLStore{db: db, timeout: timeout}
}

var sqlColumns = map[Field]string{
	FieldID:         "recipes.id",
	FieldName:       "recipes.name",
	FieldCountry:    "recipes.country",
	FieldDifficulty: "recipes.difficulty",
	FieldRating:     "recipes.rating",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Fetch implements Store
func (s *SQLStore) Fetch(ctx context.Context, q Query) (results []model.MatchResult, err error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreQuery(s.db.Dialector.Name(), start, err) }()

	if err = q.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	tx := s.db.WithContext(ctx).Model(&model.Recipe{}).Select("recipes.*")
	if q.Pattern == RecipesWithCreator {
		tx = tx.Joins("JOIN users ON users.id = recipes.creator_id")
	}

	for _, p := range q.Where {
		if p.Value == nil {
			// optional predicate without a value holds for every row
			continue
		}
		col := sqlColumns[p.Field]
		if p.Op == Contains {
			like := "%" + likeEscaper.Replace(strings.ToLower(fmt.Sprint(p.Value))) + "%"
			tx = tx.Where(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, col), like)
		} else {
			tx = tx.Where(fmt.Sprintf("%s = ?", col), p.Value)
		}
	}

	switch q.Order {
	case ByDateCreatedDesc:
		tx = tx.Order("recipes.date_created DESC").Order("recipes.id DESC")
	case Random:
		tx = tx.Order("RANDOM()")
	}
	if q.Skip > 0 {
		tx = tx.Offset(q.Skip)
	}
	if q.Limit > 0 {
		tx = tx.Limit(q.Limit)
	}

	var recipes []model.Recipe
	if err = tx.Find(&recipes).Error; err != nil {
		return nil, wrapErr("fetch", err)
	}

	results = make([]model.MatchResult, len(recipes))
	for i := range recipes {
		recipes[i].Normalize()
		results[i] = model.MatchResult{RecipeID: recipes[i].ID, Recipe: recipes[i]}
	}
	return results, nil
}

// Ping implements Store
func (s *SQLStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return wrapErr("ping", err)
	}
	return wrapErr("ping", sqlDB.PingContext(ctx))
}

