package testingutils

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tasteit/tasteit/backend/internal/database"
	"github.com/tasteit/tasteit/backend/internal/model"
	"github.com/tasteit/tasteit/backend/internal/store"
)

// SetupSQLiteDB opens a migrated in-memory SQLite database that lives for the test
func SetupSQLiteDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// every connection to ":memory:" is a different database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.RunMigrations(db, zap.NewNop()))

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})
	return db
}

// SetupSQLiteStore returns a store over a fresh database seeded with recipes
func SetupSQLiteStore(t *testing.T, recipes []store.SeedRecipe) *store.SQLStore {
	t.Helper()

	st := store.NewSQLStore(SetupSQLiteDB(t), 0)
	if len(recipes) > 0 {
		n, err := st.Seed(context.Background(), recipes)
		require.NoError(t, err)
		require.Equal(t, len(recipes), n)
	}
	return st
}

// Fixtures is a small catalogue, listed oldest first. "Pan casero" has no creator.
func Fixtures() []store.SeedRecipe {
	return []store.SeedRecipe{
		{Creator: "ana", Recipe: model.Recipe{
			Name: "Tortilla de patatas", Country: "Spain", Difficulty: 2, Rating: 4.5,
			DateCreated: "2024-01-01T10:00:00Z", Image: "recipes/tortilla.jpg",
			Ingredients: model.StringList{"Huevos", "Patatas", "Aceite de oliva", "Sal"},
			Tags:        model.StringList{"vegetarian", "classic"},
			Steps:       model.StringList{"Pelar", "Freir", "Cuajar"},
		}},
		{Creator: "luis", Recipe: model.Recipe{
			Name: "Tacos al pastor", Country: "Mexico", Difficulty: 3, Rating: 4.8,
			DateCreated: "2024-02-01T10:00:00Z", Image: "https://cdn.example.com/tacos.jpg",
			Ingredients: model.StringList{"Cerdo", "Piña", "Tortillas de maiz"},
			Tags:        model.StringList{"street food", "spicy"},
		}},
		{Creator: "ana", Recipe: model.Recipe{
			Name: "Gazpacho", Country: "Spain", Difficulty: 1, Rating: 4.2,
			DateCreated: "2024-03-01T10:00:00Z",
			Ingredients: model.StringList{"Tomate", "Pepino", "Aceite", "Sal", "Ajo"},
			Tags:        model.StringList{"vegan", "cold"},
		}},
		{Recipe: model.Recipe{
			Name: "Pan casero", Country: "France", Difficulty: 2, Rating: 3.9,
			DateCreated: "2024-04-01T10:00:00Z",
			Ingredients: model.StringList{"Harina", "Agua", "Levadura", "Sal"},
			Tags:        model.StringList{"vegetarian"},
		}},
		{Creator: "luis", Recipe: model.Recipe{
			Name: "Flan", Country: "Mexico", Difficulty: 2, Rating: 4.5,
			DateCreated: "2024-05-01T10:00:00Z",
			Ingredients: model.StringList{"Leche", "Huevos", "Azucar"},
			Tags:        model.StringList{"dessert", "vegetarian-friendly"},
		}},
	}
}

// Numbered returns n recipes named "Recipe 01".."Recipe n", created one day apart
func Numbered(n int) []store.SeedRecipe {
	recipes := make([]store.SeedRecipe, n)
	for i := range recipes {
		recipes[i] = store.SeedRecipe{Creator: "seed", Recipe: model.Recipe{
			Name:        fmt.Sprintf("Recipe %02d", i+1),
			Country:     "Spain",
			DateCreated: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, i).Format(time.RFC3339),
			Ingredients: model.StringList{"Sal"},
		}}
	}
	return recipes
}
