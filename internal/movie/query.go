package movie

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query filters catalog by p.SearchText and p.Genre and returns the matches
// in a new slice ordered by p.Sort. The sort is stable, so records with equal
// keys keep their catalog order. catalog is never modified.
//
// A genre that no record carries matches nothing; it is not an error.
func Query(catalog []Movie, p QueryParams) ([]Movie, error) {
	less, err := comparator(p.Sort)
	if err != nil {
		return nil, err
	}

	fold := cases.Fold()
	needle := fold.String(p.SearchText)

	out := make([]Movie, 0, len(catalog))
	for _, m := range catalog {
		if !matchesText(fold, needle, m) || !matchesGenre(p.Genre, m) {
			continue
		}
		out = append(out, m)
	}

	slices.SortStableFunc(out, less)
	return out, nil
}

func matchesText(fold cases.Caser, needle string, m Movie) bool {
	if needle == "" {
		return true
	}
	return strings.Contains(fold.String(m.Title), needle) ||
		strings.Contains(fold.String(m.Director), needle)
}

func matchesGenre(genre string, m Movie) bool {
	return genre == AllGenres || m.HasGenre(genre)
}

func comparator(key SortKey) (func(a, b Movie) int, error) {
	switch key {
	case SortRecent:
		return func(a, b Movie) int { return b.DateSaved.Compare(a.DateSaved) }, nil
	case SortRating:
		return func(a, b Movie) int { return cmp.Compare(b.Rating, a.Rating) }, nil
	case SortTitle:
		// Collators keep scratch buffers, so each query gets its own.
		col := collate.New(language.English)
		return func(a, b Movie) int { return col.CompareString(a.Title, b.Title) }, nil
	case SortYear:
		return func(a, b Movie) int { return cmp.Compare(b.Year, a.Year) }, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, string(key))
	}
}

// Genres returns AllGenres followed by the distinct genre tags found in
// catalog, sorted.
func Genres(catalog []Movie) []string {
	seen := make(map[string]bool)
	var tags []string
	for _, m := range catalog {
		for _, g := range m.Genres {
			if g == "" || seen[g] {
				continue
			}
			seen[g] = true
			tags = append(tags, g)
		}
	}
	slices.Sort(tags)
	return append([]string{AllGenres}, tags...)
}
