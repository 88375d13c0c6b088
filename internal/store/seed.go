package store

import (
	"context"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"
	"gorm.io/gorm"

	"github.com/tasteit/tasteit/backend/internal/model"
)

// SeedRecipe is a recipe plus the username of its creator. Used only by the seeding tool,
// the API itself never writes.
type SeedRecipe struct {
	Creator string
	Recipe  model.Recipe
}

// Seeder writes sample recipes into a backend
type Seeder interface {
	Seed(ctx context.Context, recipes []SeedRecipe) (int, error)
}

// Seed implements Seeder
func (s *Neo4jStore) Seed(ctx context.Context, recipes []SeedRecipe) (int, error) {
	const create = `CREATE (recipe:Recipe {
	name: $name, description: $description, difficulty: $difficulty, image: $image,
	dateCreated: $dateCreated, country: $country, rating: $rating,
	ingredients: $ingredients, tags: $tags, steps: $steps
})`
	const withCreator = `MERGE (user:User {username: $creator})
` + create + `
CREATE (user)-[:Created]->(recipe)`

	opts := []neo4j.ExecuteQueryConfigurationOption{neo4j.ExecuteQueryWithWritersRouting()}
	if s.database != "" {
		opts = append(opts, neo4j.ExecuteQueryWithDatabase(s.database))
	}

	created := 0
	for _, sr := range recipes {
		r := sr.Recipe
		r.Normalize()
		params := map[string]any{
			"creator":     sr.Creator,
			"name":        r.Name,
			"description": r.Description,
			"difficulty":  int64(r.Difficulty),
			"image":       r.Image,
			"dateCreated": r.DateCreated,
			"country":     r.Country,
			"rating":      r.Rating,
			"ingredients": []string(r.Ingredients),
			"tags":        []string(r.Tags),
			"steps":       []string(r.Steps),
		}
		cypher := create
		if sr.Creator != "" {
			cypher = withCreator
		}
		if _, err := neo4j.ExecuteQuery(ctx, s.driver, cypher, params, neo4j.EagerResultTransformer, opts...); err != nil {
			return created, wrapErr("seed", err)
		}
		created++
	}
	return created, nil
}

// Seed implements Seeder
func (s *SQLStore) Seed(ctx context.Context, recipes []SeedRecipe) (int, error) {
	created := 0
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, sr := range recipes {
			r := sr.Recipe
			r.ID = 0
			r.Normalize()
			if sr.Creator != "" {
				var user model.User
				if err := tx.Where(model.User{Username: sr.Creator}).FirstOrCreate(&user).Error; err != nil {
					return fmt.Errorf("creating user %s: %w", sr.Creator, err)
				}
				r.CreatorID = &user.ID
			}
			if err := tx.Create(&r).Error; err != nil {
				return fmt.Errorf("creating recipe %s: %w", r.Name, err)
			}
			created++
		}
		return nil
	})
	if err != nil {
		return 0, wrapErr("seed", err)
	}
	return created, nil
}
