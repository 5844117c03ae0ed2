package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dustin/go-humanize"

	"movieapi/internal/movie"
)

const defaultActivityLimit = 10

type Service struct {
	repo   Repository
	movies MovieLookup
	now    func() time.Time
}

func NewService(repo Repository, movies MovieLookup) *Service {
	return &Service{
		repo:   repo,
		movies: movies,
		now:    time.Now,
	}
}

// WithClock replaces the clock used for relative activity times.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

func (s *Service) Get(ctx context.Context, handle string) (Profile, error) {
	u, err := s.repo.GetUser(ctx, handle)
	if err != nil {
		return Profile{}, err
	}

	stats, err := s.repo.Stats(ctx, handle)
	if err != nil {
		return Profile{}, fmt.Errorf("stats: %w", err)
	}

	watchIDs, err := s.repo.Watchlist(ctx, handle)
	if err != nil {
		return Profile{}, fmt.Errorf("watchlist: %w", err)
	}
	watchlist, err := s.cards(ctx, watchIDs)
	if err != nil {
		return Profile{}, err
	}

	favIDs, err := s.repo.Favorites(ctx, handle)
	if err != nil {
		return Profile{}, fmt.Errorf("favorites: %w", err)
	}
	favorites, err := s.cards(ctx, favIDs)
	if err != nil {
		return Profile{}, err
	}

	entries, err := s.repo.Activity(ctx, handle, defaultActivityLimit)
	if err != nil {
		return Profile{}, fmt.Errorf("activity: %w", err)
	}

	if stats == nil {
		stats = []Stat{}
	}
	return Profile{
		User:      u,
		Stats:     stats,
		Watchlist: watchlist,
		Favorites: favorites,
		Activity:  s.activityViews(entries),
	}, nil
}

// cards resolves ids in order, skipping movies no longer in the library.
func (s *Service) cards(ctx context.Context, ids []int) ([]MovieCard, error) {
	out := make([]MovieCard, 0, len(ids))
	for _, id := range ids {
		m, err := s.movies.Get(ctx, id)
		if err != nil {
			if errors.Is(err, movie.ErrNotFound) {
				continue
			}
			return nil, fmt.Errorf("movie %d: %w", id, err)
		}
		out = append(out, cardFrom(m))
	}
	return out, nil
}

func (s *Service) activityViews(entries []Activity) []ActivityView {
	now := s.now()
	out := make([]ActivityView, 0, len(entries))
	for _, a := range entries {
		out = append(out, ActivityView{
			ID:         a.ID,
			Type:       a.Type,
			Label:      a.Type.Label(),
			Movie:      a.Movie,
			When:       humanize.RelTime(a.OccurredAt, now, "ago", "from now"),
			OccurredAt: a.OccurredAt,
			Content:    a.Content,
			Rating:     a.Rating,
		})
	}
	return out
}
