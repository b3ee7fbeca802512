package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/errors"
)

func newTestFileRepo(t *testing.T) *fileGameRepository {
	t.Helper()
	return NewFileGameRepository(filepath.Join(t.TempDir(), "games.json"))
}

func TestFileGameRepositoryEmptyFile(t *testing.T) {
	repo := newTestFileRepo(t)

	games, err := repo.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Empty(t, games)
}

func TestFileGameRepositoryCreateAndGet(t *testing.T) {
	repo := newTestFileRepo(t)
	ctx := context.Background()

	game := &entity.Game{Title: "Hollow Knight", Category: "Metroidvania", Price: 15}
	require.NoError(t, repo.Create(ctx, game))
	assert.NotEmpty(t, game.ID)
	assert.False(t, game.CreatedAt.IsZero())

	got, err := repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "Hollow Knight", got.Title)
}

func TestFileGameRepositoryGetMissing(t *testing.T) {
	repo := newTestFileRepo(t)

	_, err := repo.GetByID(context.Background(), "nope")

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestFileGameRepositoryUpdate(t *testing.T) {
	repo := newTestFileRepo(t)
	ctx := context.Background()

	game := &entity.Game{Title: "Before"}
	require.NoError(t, repo.Create(ctx, game))
	created := game.CreatedAt

	require.NoError(t, repo.Update(ctx, &entity.Game{ID: game.ID, Title: "After"}))

	got, err := repo.GetByID(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
	// Full-row replace still keeps the original creation timestamp.
	assert.WithinDuration(t, created, got.CreatedAt, time.Second)
}

func TestFileGameRepositoryUpdateMissing(t *testing.T) {
	repo := newTestFileRepo(t)

	err := repo.Update(context.Background(), &entity.Game{ID: "nope", Title: "X"})

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestFileGameRepositoryDelete(t *testing.T) {
	repo := newTestFileRepo(t)
	ctx := context.Background()

	game := &entity.Game{Title: "Gone"}
	require.NoError(t, repo.Create(ctx, game))
	require.NoError(t, repo.Delete(ctx, game.ID))

	games, err := repo.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestFileGameRepositoryDeleteMissing(t *testing.T) {
	repo := newTestFileRepo(t)

	err := repo.Delete(context.Background(), "nope")

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func seedCatalog(t *testing.T, repo *fileGameRepository) {
	t.Helper()
	ctx := context.Background()
	now := time.Now()
	rows := []*entity.Game{
		{ID: "1", Title: "Celeste", Category: "Platformer", Gotty: 2018, CreatedAt: now.Add(-3 * time.Hour)},
		{ID: "2", Title: "Hades", Category: "Roguelike", Gotty: 2020, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "3", Title: "Baldur's Gate 3", Category: "RPG", Gotty: 2023, CreatedAt: now.Add(-time.Hour)},
		{ID: "4", Title: "Hades II", Category: "Roguelike", Gotty: 2025, CreatedAt: now},
	}
	for _, g := range rows {
		require.NoError(t, repo.Create(ctx, g))
	}
}

func TestFileGameRepositoryListCategoryFilter(t *testing.T) {
	repo := newTestFileRepo(t)
	seedCatalog(t, repo)

	games, err := repo.List(context.Background(), repository.GameQuery{Category: "Roguelike"})

	assert.NoError(t, err)
	assert.Len(t, games, 2)
}

func TestFileGameRepositoryListSearchCaseInsensitive(t *testing.T) {
	repo := newTestFileRepo(t)
	seedCatalog(t, repo)

	games, err := repo.List(context.Background(), repository.GameQuery{Search: "hAdEs"})

	assert.NoError(t, err)
	assert.Len(t, games, 2)
}

func TestFileGameRepositoryListDefaultSortNewestFirst(t *testing.T) {
	repo := newTestFileRepo(t)
	seedCatalog(t, repo)

	games, err := repo.List(context.Background(), repository.GameQuery{Sort: repository.SortDefault})

	assert.NoError(t, err)
	require.Len(t, games, 4)
	assert.Equal(t, "Hades II", games[0].Title)
	assert.Equal(t, "Celeste", games[3].Title)
}

func TestFileGameRepositoryListAlphabetical(t *testing.T) {
	repo := newTestFileRepo(t)
	seedCatalog(t, repo)

	games, err := repo.List(context.Background(), repository.GameQuery{Sort: repository.SortAlphabetical})

	assert.NoError(t, err)
	require.Len(t, games, 4)
	assert.Equal(t, "Baldur's Gate 3", games[0].Title)
	assert.Equal(t, "Hades II", games[3].Title)
}

func TestFileGameRepositoryListYearDesc(t *testing.T) {
	repo := newTestFileRepo(t)
	seedCatalog(t, repo)

	games, err := repo.List(context.Background(), repository.GameQuery{Sort: repository.SortYearDesc})

	assert.NoError(t, err)
	require.Len(t, games, 4)
	assert.Equal(t, 2025, games[0].Gotty)
	assert.Equal(t, 2018, games[3].Gotty)
}

func TestFileGameRepositoryListPagination(t *testing.T) {
	repo := newTestFileRepo(t)
	seedCatalog(t, repo)
	ctx := context.Background()

	page0, err := repo.List(ctx, repository.GameQuery{Sort: repository.SortAlphabetical, Limit: 3, Offset: 0})
	require.NoError(t, err)
	assert.Len(t, page0, 3)

	page1, err := repo.List(ctx, repository.GameQuery{Sort: repository.SortAlphabetical, Limit: 3, Offset: 3})
	require.NoError(t, err)
	assert.Len(t, page1, 1)

	page2, err := repo.List(ctx, repository.GameQuery{Sort: repository.SortAlphabetical, Limit: 3, Offset: 6})
	require.NoError(t, err)
	assert.Empty(t, page2)
}
