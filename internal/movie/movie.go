package movie

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// DateLayout is the wire and storage format of DateSaved.
const DateLayout = "2006-01-02"

// AllGenres is the genre filter value that disables genre filtering.
const AllGenres = "All"

var (
	// ErrNotFound is returned when a movie is not in the library.
	ErrNotFound = errors.New("movie not found")
	// ErrInvalidSortKey is returned for a sort key outside the known set.
	ErrInvalidSortKey = errors.New("invalid sort key")
)

// Movie is a saved movie record.
type Movie struct {
	ID        int       `json:"id" validate:"gt=0"`
	Title     string    `json:"title" validate:"required"`
	Year      int       `json:"year" validate:"gt=0"`
	Rating    float64   `json:"rating" validate:"gte=0,lte=10"`
	Genres    []string  `json:"genres"`
	Director  string    `json:"director" validate:"required"`
	PosterURL string    `json:"poster_url,omitempty"`
	DateSaved time.Time `json:"date_saved" validate:"required"`
}

type movieJSON struct {
	ID        int      `json:"id"`
	Title     string   `json:"title"`
	Year      int      `json:"year"`
	Rating    float64  `json:"rating"`
	Genres    []string `json:"genres"`
	Director  string   `json:"director"`
	PosterURL string   `json:"poster_url,omitempty"`
	DateSaved string   `json:"date_saved"`
}

func (m Movie) MarshalJSON() ([]byte, error) {
	genres := m.Genres
	if genres == nil {
		genres = []string{}
	}
	return json.Marshal(movieJSON{
		ID:        m.ID,
		Title:     m.Title,
		Year:      m.Year,
		Rating:    m.Rating,
		Genres:    genres,
		Director:  m.Director,
		PosterURL: m.PosterURL,
		DateSaved: m.DateSaved.Format(DateLayout),
	})
}

func (m *Movie) UnmarshalJSON(data []byte) error {
	var raw movieJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	saved, err := time.Parse(DateLayout, raw.DateSaved)
	if err != nil {
		return fmt.Errorf("date_saved: %w", err)
	}
	*m = Movie{
		ID:        raw.ID,
		Title:     raw.Title,
		Year:      raw.Year,
		Rating:    raw.Rating,
		Genres:    raw.Genres,
		Director:  raw.Director,
		PosterURL: raw.PosterURL,
		DateSaved: saved,
	}
	return nil
}

// HasGenre reports whether tag is one of the movie's genres. Tags compare
// case-sensitively.
func (m Movie) HasGenre(tag string) bool {
	for _, g := range m.Genres {
		if g == tag {
			return true
		}
	}
	return false
}

// SortKey selects the ordering of a query result.
type SortKey string

const (
	SortRecent SortKey = "recent"
	SortRating SortKey = "rating"
	SortTitle  SortKey = "title"
	SortYear   SortKey = "year"
)

// DefaultSort is the ordering the library screen opens with.
const DefaultSort = SortRecent

// Valid reports whether k is one of the known sort keys.
func (k SortKey) Valid() bool {
	switch k {
	case SortRecent, SortRating, SortTitle, SortYear:
		return true
	default:
		return false
	}
}

// SortOption pairs a sort key with its display label.
type SortOption struct {
	ID    SortKey `json:"id"`
	Label string  `json:"label"`
}

// SortOptions lists the sort keys in menu order.
var SortOptions = []SortOption{
	{ID: SortRecent, Label: "Recently Saved"},
	{ID: SortRating, Label: "Highest Rated"},
	{ID: SortTitle, Label: "Title (A-Z)"},
	{ID: SortYear, Label: "Release Year"},
}

// QueryParams controls one query over the library.
type QueryParams struct {
	SearchText string
	Genre      string
	Sort       SortKey
}
