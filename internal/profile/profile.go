package profile

import (
	"context"
	"errors"
	"time"

	"movieapi/internal/movie"
)

// ErrNotFound is returned for an unknown user handle.
var ErrNotFound = errors.New("profile not found")

type User struct {
	Handle    string `json:"handle"`
	Name      string `json:"name"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatar_url,omitempty"`
}

type Stat struct {
	Label string `json:"label"`
	Value int    `json:"value"`
}

type ActivityType string

const (
	ActivityReview    ActivityType = "review"
	ActivityRating    ActivityType = "rating"
	ActivityWatchlist ActivityType = "watchlist"
)

// Label is the headline shown above an activity entry.
func (t ActivityType) Label() string {
	switch t {
	case ActivityReview:
		return "Reviewed"
	case ActivityRating:
		return "Rated"
	case ActivityWatchlist:
		return "Added to Watchlist"
	default:
		return string(t)
	}
}

// Activity is a stored entry of the user's activity log. Content is set for
// reviews, Rating (out of 5) for ratings.
type Activity struct {
	ID         int
	Type       ActivityType
	Movie      string
	OccurredAt time.Time
	Content    string
	Rating     *float64
}

// ActivityView is an Activity prepared for display.
type ActivityView struct {
	ID         int          `json:"id"`
	Type       ActivityType `json:"type"`
	Label      string       `json:"label"`
	Movie      string       `json:"movie"`
	When       string       `json:"when"`
	OccurredAt time.Time    `json:"occurred_at"`
	Content    string       `json:"content,omitempty"`
	Rating     *float64     `json:"rating,omitempty"`
}

// MovieCard is the compact movie shown in the watchlist and favorites rows.
type MovieCard struct {
	ID        int     `json:"id"`
	Title     string  `json:"title"`
	Year      int     `json:"year"`
	Rating    float64 `json:"rating"`
	PosterURL string  `json:"poster_url,omitempty"`
}

func cardFrom(m movie.Movie) MovieCard {
	return MovieCard{
		ID:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		Rating:    m.Rating,
		PosterURL: m.PosterURL,
	}
}

type Profile struct {
	User      User           `json:"user"`
	Stats     []Stat         `json:"stats"`
	Watchlist []MovieCard    `json:"watchlist"`
	Favorites []MovieCard    `json:"favorites"`
	Activity  []ActivityView `json:"activity"`
}

//go:generate mockgen -source=profile.go -destination=mock_repository.go -package=profile

// Repository reads profile data keyed by user handle.
type Repository interface {
	GetUser(ctx context.Context, handle string) (User, error)
	Stats(ctx context.Context, handle string) ([]Stat, error)
	// Activity returns at most limit entries, newest first.
	Activity(ctx context.Context, handle string, limit int) ([]Activity, error)
	// Watchlist and Favorites return movie ids in display order.
	Watchlist(ctx context.Context, handle string) ([]int, error)
	Favorites(ctx context.Context, handle string) ([]int, error)
}

// MovieLookup resolves movie ids against the library.
type MovieLookup interface {
	Get(ctx context.Context, id int) (movie.Movie, error)
}
