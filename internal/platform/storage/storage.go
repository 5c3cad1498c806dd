// Package storage opens the configured backend and hands out its repositories.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/pos_shift_app/internal/core/ports/repositories"
	"github.com/SscSPs/pos_shift_app/internal/platform/config"
	"github.com/SscSPs/pos_shift_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/pos_shift_app/internal/repositories/database/sqlite"
	"github.com/SscSPs/pos_shift_app/pkg/database"
)

// Store is an open storage backend.
type Store struct {
	Repos portsrepo.RepositoryProvider
	close func()
}

// Close releases the backend's connections.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}

// Open connects to the backend named by cfg.StorageDriver. With migrate set the
// schema is brought up to date first.
func Open(ctx context.Context, cfg *config.Config, migrate bool) (*Store, error) {
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		if migrate {
			if err := database.RunPostgresMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
				return nil, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database pool: %w", err)
		}
		slog.Info("Database connection pool established.")
		return &Store{Repos: pgsql.NewRepositoryProvider(pool), close: func() { database.ClosePgxPool(pool) }}, nil

	case config.DriverSQLite:
		db, err := database.OpenSQLite(ctx, cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if migrate {
			if err := sqlite.ApplySchema(ctx, db); err != nil {
				_ = db.Close()
				return nil, err
			}
			slog.Info("SQLite schema applied.", slog.String("path", cfg.SQLitePath))
		}
		return &Store{Repos: sqlite.NewRepositoryProvider(db), close: func() {
			if err := db.Close(); err != nil {
				slog.Error("Error closing SQLite database", slog.String("error", err.Error()))
			}
		}}, nil

	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.StorageDriver)
	}
}
