package movie

import (
	"context"
	"fmt"
)

// Service runs library queries against a Repository.
type Service struct {
	repo Repository
}

// NewService creates a new movie library service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Query loads the library and returns the records matching p, ordered by
// p.Sort.
func (s *Service) Query(ctx context.Context, p QueryParams) ([]Movie, error) {
	if !p.Sort.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, string(p.Sort))
	}
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return Query(catalog, p)
}

// Get returns a movie by id.
func (s *Service) Get(ctx context.Context, id int) (Movie, error) {
	return s.repo.GetByID(ctx, id)
}

// Genres returns the genre filter choices for the current library.
func (s *Service) Genres(ctx context.Context) ([]string, error) {
	catalog, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list movies: %w", err)
	}
	return Genres(catalog), nil
}

// SortOptions returns the sort menu.
func (s *Service) SortOptions() []SortOption {
	out := make([]SortOption, len(SortOptions))
	copy(out, SortOptions)
	return out
}

// Save validates and stores m.
func (s *Service) Save(ctx context.Context, m Movie) error {
	if err := Validate(m); err != nil {
		return err
	}
	return s.repo.Upsert(ctx, &m)
}
