package database

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/tasteit/tasteit/backend/config"
	"github.com/tasteit/tasteit/backend/internal/store"
)

// Backend is an opened record store together with the connection that backs it
type Backend struct {
	Store  store.Store
	Seeder store.Seeder
	Close  func() error
}

// OpenBackend connects to the store backend selected by cfg. Relational backends are
// migrated before use.
func OpenBackend(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Backend, error) {
	switch cfg.StoreBackend {
	case config.BackendNeo4j:
		driver, err := NewNeo4jDriver(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		st := store.NewNeo4jStore(driver, cfg.Neo4jDatabase, cfg.QueryTimeout, logger)
		return &Backend{
			Store:  st,
			Seeder: st,
			Close:  func() error { return driver.Close(context.Background()) },
		}, nil

	case config.BackendPostgres, config.BackendSQLite:
		db, err := NewGorm(ctx, cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(db, logger); err != nil {
			return nil, errors.Join(err, CloseGorm(db))
		}
		st := store.NewSQLStore(db, cfg.QueryTimeout)
		return &Backend{
			Store:  st,
			Seeder: st,
			Close:  func() error { return CloseGorm(db) },
		}, nil

	default:
		return nil, errors.New("unknown store backend " + cfg.StoreBackend)
	}
}
