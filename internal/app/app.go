// Package app wires repositories, services and the HTTP router.
package app

import (
	"context"
	"fmt"
	"time"

	"movieapi/internal/config"
	"movieapi/internal/movie"
	"movieapi/internal/platform/database"
	"movieapi/internal/profile"

	"github.com/jackc/pgx/v5/pgxpool"
)

// App holds the services shared by the API server and the CLI.
type App struct {
	Movies   *movie.Service
	Profiles *profile.Service

	// Pool is nil for the memory store.
	Pool *pgxpool.Pool
}

// New builds the services for cfg.Store. Close must be called when done.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	switch cfg.Store {
	case config.StoreMemory:
		movieRepo, err := movie.NewMemoryRepo(movie.SampleCatalog())
		if err != nil {
			return nil, fmt.Errorf("sample catalog: %w", err)
		}
		movies := movie.NewService(movieRepo)
		profileRepo := profile.NewMemoryRepo(profile.Sample(time.Now()))
		return &App{
			Movies:   movies,
			Profiles: profile.NewService(profileRepo, movies),
		}, nil

	case config.StorePostgres:
		pool, err := database.Open(ctx, cfg.DatabaseDSN, 2*time.Second)
		if err != nil {
			return nil, err
		}
		movies := movie.NewService(movie.NewPostgresRepo(pool, cfg.DBTimeout))
		return &App{
			Movies:   movies,
			Profiles: profile.NewService(profile.NewPostgresRepo(pool, cfg.DBTimeout), movies),
			Pool:     pool,
		}, nil

	default:
		return nil, fmt.Errorf("unknown store %q", cfg.Store)
	}
}

// Ready reports whether the backing store is reachable.
func (a *App) Ready(ctx context.Context) error {
	if a.Pool == nil {
		return nil
	}
	return a.Pool.Ping(ctx)
}

func (a *App) Close() {
	if a.Pool != nil {
		a.Pool.Close()
	}
}
