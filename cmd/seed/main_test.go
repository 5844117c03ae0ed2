package main

import (
	"os"
	"path/filepath"
	"testing"

	"movieapi/internal/movie"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCatalog_Default(t *testing.T) {
	movies, err := loadCatalog("")
	require.NoError(t, err)
	assert.Len(t, movies, 8)
}

func TestLoadCatalog_File(t *testing.T) {
	p := filepath.Join(t.TempDir(), "catalog.json")
	body := `[
		{"id": 1, "title": "Oppenheimer", "year": 2023, "rating": 8.4, "genres": ["Drama"], "director": "Christopher Nolan", "date_saved": "2024-04-01"}
	]`
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))

	movies, err := loadCatalog(p)
	require.NoError(t, err)
	require.Len(t, movies, 1)
	assert.Equal(t, "Oppenheimer", movies[0].Title)
	assert.Equal(t, 2024, movies[0].DateSaved.Year())
}

func TestLoadCatalog_Invalid(t *testing.T) {
	p := filepath.Join(t.TempDir(), "catalog.json")
	body := `[
		{"id": 1, "title": "A", "year": 2000, "rating": 5, "director": "X", "date_saved": "2024-01-01"},
		{"id": 1, "title": "B", "year": 2001, "rating": 6, "director": "Y", "date_saved": "2024-01-02"}
	]`
	require.NoError(t, os.WriteFile(p, []byte(body), 0644))

	_, err := loadCatalog(p)
	assert.ErrorIs(t, err, movie.ErrDuplicateID)

	_, err = loadCatalog(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}
