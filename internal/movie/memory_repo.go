package movie

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepo keeps the library in process memory.
type MemoryRepo struct {
	mu     sync.RWMutex
	movies []Movie
}

// NewMemoryRepo validates movies and stores a copy sorted by id.
func NewMemoryRepo(movies []Movie) (*MemoryRepo, error) {
	if err := ValidateCatalog(movies); err != nil {
		return nil, err
	}
	cp := make([]Movie, len(movies))
	for i, m := range movies {
		cp[i] = cloneMovie(m)
	}
	slices.SortStableFunc(cp, byID)
	return &MemoryRepo{movies: cp}, nil
}

func (r *MemoryRepo) List(ctx context.Context) ([]Movie, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Movie, len(r.movies))
	for i, m := range r.movies {
		out[i] = cloneMovie(m)
	}
	return out, nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, id int) (Movie, error) {
	if err := ctx.Err(); err != nil {
		return Movie{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := slices.BinarySearchFunc(r.movies, id, func(m Movie, id int) int { return m.ID - id })
	if !ok {
		return Movie{}, ErrNotFound
	}
	return cloneMovie(r.movies[i]), nil
}

func (r *MemoryRepo) Upsert(ctx context.Context, m *Movie) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := Validate(*m); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := slices.BinarySearchFunc(r.movies, m.ID, func(m Movie, id int) int { return m.ID - id })
	if ok {
		r.movies[i] = cloneMovie(*m)
		return nil
	}
	r.movies = slices.Insert(r.movies, i, cloneMovie(*m))
	return nil
}

func byID(a, b Movie) int { return a.ID - b.ID }

func cloneMovie(m Movie) Movie {
	m.Genres = slices.Clone(m.Genres)
	return m
}
