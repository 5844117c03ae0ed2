package movie

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=movie

// Repository defines the contract for the saved-movies store.
type Repository interface {
	// List returns the whole library ordered by id.
	List(ctx context.Context) ([]Movie, error)
	GetByID(ctx context.Context, id int) (Movie, error)
	Upsert(ctx context.Context, m *Movie) error
}
