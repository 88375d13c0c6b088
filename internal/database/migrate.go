package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/tasteit/tasteit/backend/internal/model"
)

// RunMigrations creates or updates the recipe and user tables of a relational backend.
// The graph backend is schemaless and needs none.
func RunMigrations(db *gorm.DB, logger *zap.Logger) error {
	logger.Info("running auto-migration", zap.String("dialect", db.Dialector.Name()))
	if err := db.AutoMigrate(&model.User{}, &model.Recipe{}); err != nil {
		return fmt.Errorf("failed to migrate recipe tables: %w", err)
	}
	return nil
}
