package movie

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_Query(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)
	ctx := context.Background()

	t.Run("runs the engine over the repository", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(SampleCatalog(), nil)

		got, err := service.Query(ctx, QueryParams{SearchText: "nolan", Genre: AllGenres, Sort: SortYear})
		require.NoError(t, err)
		assert.Equal(t, []string{"Interstellar", "Inception", "The Dark Knight"}, titles(got))
	})

	t.Run("invalid sort skips the repository", func(t *testing.T) {
		_, err := service.Query(ctx, QueryParams{Genre: AllGenres, Sort: "bogus"})
		assert.ErrorIs(t, err, ErrInvalidSortKey)
	})

	t.Run("repository error", func(t *testing.T) {
		mockRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

		_, err := service.Query(ctx, QueryParams{Genre: AllGenres, Sort: SortRecent})
		assert.ErrorContains(t, err, "db down")
	})
}

func TestService_Genres(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().List(gomock.Any()).Return([]Movie{
		{ID: 1, Genres: []string{"Drama", "Crime"}},
		{ID: 2, Genres: []string{"Drama"}},
	}, nil)

	got, err := service.Genres(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"All", "Crime", "Drama"}, got)
}

func TestService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().GetByID(gomock.Any(), 42).Return(Movie{}, ErrNotFound)

	_, err := service.Get(context.Background(), 42)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestService_Save(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	mockRepo := NewMockRepository(ctrl)
	service := NewService(mockRepo)

	m := SampleCatalog()[0]
	mockRepo.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(nil)
	assert.NoError(t, service.Save(context.Background(), m))

	assert.ErrorIs(t, service.Save(context.Background(), Movie{}), ErrInvalidMovie)
}

func TestService_SortOptionsIsACopy(t *testing.T) {
	service := NewService(nil)
	opts := service.SortOptions()
	require.Len(t, opts, 4)
	opts[0].Label = "changed"
	assert.Equal(t, "Recently Saved", SortOptions[0].Label)
}
