package profile

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRepo_ActivityNewestFirst(t *testing.T) {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	repo := NewMemoryRepo(Data{
		User: User{Handle: "h"},
		Activity: []Activity{
			{ID: 1, OccurredAt: now.Add(-3 * time.Hour)},
			{ID: 2, OccurredAt: now.Add(-1 * time.Hour)},
			{ID: 3, OccurredAt: now.Add(-2 * time.Hour)},
		},
	})

	got, err := repo.Activity(context.Background(), "h", 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestMemoryRepo_CopiesInput(t *testing.T) {
	watch := []int{1, 2}
	repo := NewMemoryRepo(Data{User: User{Handle: "h"}, Watchlist: watch})
	watch[0] = 42

	got, err := repo.Watchlist(context.Background(), "h")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

func TestMemoryRepo_Unknown(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	_, err := repo.GetUser(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Stats(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = repo.Favorites(ctx, "x")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSample_FavoritesAreReversedWatchlist(t *testing.T) {
	d := Sample(time.Now())
	assert.Equal(t, []int{1, 2, 3, 4}, d.Watchlist)
	assert.Equal(t, []int{4, 3, 2, 1}, d.Favorites)
}
