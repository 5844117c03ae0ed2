package profile

import (
	"context"
	"slices"
	"sync"
	"time"
)

// Data is everything stored for one user.
type Data struct {
	User      User
	Stats     []Stat
	Watchlist []int
	Favorites []int
	Activity  []Activity
}

type MemoryRepo struct {
	mu       sync.RWMutex
	profiles map[string]Data
}

func NewMemoryRepo(profiles ...Data) *MemoryRepo {
	r := &MemoryRepo{profiles: make(map[string]Data, len(profiles))}
	for _, p := range profiles {
		r.Put(p)
	}
	return r
}

// Put stores or replaces the profile of p.User.Handle. Activity is kept
// newest first.
func (r *MemoryRepo) Put(p Data) {
	p.Stats = slices.Clone(p.Stats)
	p.Watchlist = slices.Clone(p.Watchlist)
	p.Favorites = slices.Clone(p.Favorites)
	p.Activity = slices.Clone(p.Activity)
	slices.SortStableFunc(p.Activity, func(a, b Activity) int { return b.OccurredAt.Compare(a.OccurredAt) })

	r.mu.Lock()
	defer r.mu.Unlock()
	r.profiles[p.User.Handle] = p
}

func (r *MemoryRepo) get(ctx context.Context, handle string) (Data, error) {
	if err := ctx.Err(); err != nil {
		return Data{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.profiles[handle]
	if !ok {
		return Data{}, ErrNotFound
	}
	return p, nil
}

func (r *MemoryRepo) GetUser(ctx context.Context, handle string) (User, error) {
	p, err := r.get(ctx, handle)
	return p.User, err
}

func (r *MemoryRepo) Stats(ctx context.Context, handle string) ([]Stat, error) {
	p, err := r.get(ctx, handle)
	if err != nil {
		return nil, err
	}
	return slices.Clone(p.Stats), nil
}

func (r *MemoryRepo) Activity(ctx context.Context, handle string, limit int) ([]Activity, error) {
	p, err := r.get(ctx, handle)
	if err != nil {
		return nil, err
	}
	out := p.Activity
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return slices.Clone(out), nil
}

func (r *MemoryRepo) Watchlist(ctx context.Context, handle string) ([]int, error) {
	p, err := r.get(ctx, handle)
	if err != nil {
		return nil, err
	}
	return slices.Clone(p.Watchlist), nil
}

func (r *MemoryRepo) Favorites(ctx context.Context, handle string) ([]int, error) {
	p, err := r.get(ctx, handle)
	if err != nil {
		return nil, err
	}
	return slices.Clone(p.Favorites), nil
}

// SampleHandle is the handle of the demo profile.
const SampleHandle = "AmericanPsycho"

// Sample returns the demo profile with activity dated relative to now.
func Sample(now time.Time) Data {
	const day = 24 * time.Hour
	halfStars := 4.5
	watchlist := []int{1, 2, 3, 4}
	favorites := slices.Clone(watchlist)
	slices.Reverse(favorites)

	return Data{
		User: User{
			Handle:    SampleHandle,
			Name:      "Patrick Bateman",
			Bio:       "Film enthusiast and critic. Lover of sci-fi and psychological thrillers. Based in Los Angeles, CA.",
			AvatarURL: "/assets/images/patrick.jpeg",
		},
		Stats: []Stat{
			{Label: "Reviews", Value: 42},
			{Label: "Watchlist", Value: 87},
			{Label: "Favorites", Value: 23},
		},
		Watchlist: watchlist,
		Favorites: favorites,
		Activity: []Activity{
			{ID: 1, Type: ActivityReview, Movie: "Dune: Part Two", OccurredAt: now.Add(-2 * day), Content: "A visual masterpiece with incredible world-building."},
			{ID: 2, Type: ActivityRating, Movie: "Poor Things", OccurredAt: now.Add(-7 * day), Rating: &halfStars},
			{ID: 3, Type: ActivityWatchlist, Movie: "Oppenheimer", OccurredAt: now.Add(-14 * day)},
		},
	}
}
