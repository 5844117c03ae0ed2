package profile

import (
	"context"
	"testing"
	"time"

	"movieapi/internal/testutil"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testHandle = "pgtest-profile"

func setupProfileTestDB(t *testing.T) *pgxpool.Pool {
	db := testutil.PostgresPool(t)
	clean := func() {
		_, err := db.Exec(context.Background(), `DELETE FROM profiles WHERE handle = $1`, testHandle)
		require.NoError(t, err)
	}
	clean()
	t.Cleanup(clean)
	return db
}

func testProfile(now time.Time) Data {
	d := Sample(now)
	d.User.Handle = testHandle
	return d
}

func TestPostgresRepo_PutAndRead(t *testing.T) {
	repo := NewPostgresRepo(setupProfileTestDB(t), 3*time.Second)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	want := testProfile(now)
	require.NoError(t, repo.Put(ctx, want))

	user, err := repo.GetUser(ctx, testHandle)
	require.NoError(t, err)
	assert.Equal(t, want.User, user)

	stats, err := repo.Stats(ctx, testHandle)
	require.NoError(t, err)
	assert.Equal(t, want.Stats, stats)

	watchlist, err := repo.Watchlist(ctx, testHandle)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, watchlist)

	favorites, err := repo.Favorites(ctx, testHandle)
	require.NoError(t, err)
	assert.Equal(t, []int{4, 3, 2, 1}, favorites)

	activity, err := repo.Activity(ctx, testHandle, 10)
	require.NoError(t, err)
	require.Len(t, activity, 3)
	for i, a := range activity {
		w := want.Activity[i]
		assert.Equal(t, w.ID, a.ID)
		assert.Equal(t, w.Type, a.Type)
		assert.Equal(t, w.Movie, a.Movie)
		assert.Equal(t, w.Content, a.Content)
		assert.True(t, w.OccurredAt.Equal(a.OccurredAt), "occurred_at %v != %v", a.OccurredAt, w.OccurredAt)
	}
	assert.Nil(t, activity[0].Rating)
	require.NotNil(t, activity[1].Rating)
	assert.Equal(t, 4.5, *activity[1].Rating)
	assert.Equal(t, ActivityWatchlist, activity[2].Type)
}

func TestPostgresRepo_ActivityLimitAndOrder(t *testing.T) {
	repo := NewPostgresRepo(setupProfileTestDB(t), 3*time.Second)
	ctx := context.Background()
	now := time.Now().UTC().Truncate(time.Microsecond)

	d := testProfile(now)
	d.Activity = []Activity{
		{ID: 1, Type: ActivityWatchlist, Movie: "Dune", OccurredAt: now.Add(-3 * time.Hour)},
		{ID: 2, Type: ActivityWatchlist, Movie: "Parasite", OccurredAt: now.Add(-1 * time.Hour)},
		{ID: 3, Type: ActivityWatchlist, Movie: "Inception", OccurredAt: now.Add(-2 * time.Hour)},
	}
	require.NoError(t, repo.Put(ctx, d))

	got, err := repo.Activity(ctx, testHandle, 2)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[0].ID)
	assert.Equal(t, 3, got[1].ID)
}

func TestPostgresRepo_PutReplaces(t *testing.T) {
	repo := NewPostgresRepo(setupProfileTestDB(t), 3*time.Second)
	ctx := context.Background()

	d := testProfile(time.Now())
	require.NoError(t, repo.Put(ctx, d))

	d.User.Bio = ""
	d.Watchlist = []int{8}
	d.Favorites = nil
	d.Activity = nil
	require.NoError(t, repo.Put(ctx, d))

	user, err := repo.GetUser(ctx, testHandle)
	require.NoError(t, err)
	assert.Empty(t, user.Bio)

	watchlist, err := repo.Watchlist(ctx, testHandle)
	require.NoError(t, err)
	assert.Equal(t, []int{8}, watchlist)

	favorites, err := repo.Favorites(ctx, testHandle)
	require.NoError(t, err)
	assert.Empty(t, favorites)

	activity, err := repo.Activity(ctx, testHandle, 10)
	require.NoError(t, err)
	assert.Empty(t, activity)
}

func TestPostgresRepo_UnknownHandle(t *testing.T) {
	repo := NewPostgresRepo(setupProfileTestDB(t), 3*time.Second)

	_, err := repo.GetUser(context.Background(), testHandle)
	assert.ErrorIs(t, err, ErrNotFound)
}
