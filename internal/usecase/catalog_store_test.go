package usecase

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/errors"
)

// trackedGameRepo wraps fakeGameRepo with an insertion-ordered list and a
// failure switch, to observe the store's refresh and optimistic-patch paths.
type trackedGameRepo struct {
	games []*entity.Game
	fail  bool
	seq   int
}

func (f *trackedGameRepo) Create(ctx context.Context, g *entity.Game) error {
	if f.fail {
		return errors.Internal("gateway down", nil)
	}
	f.seq++
	g.ID = fmt.Sprintf("srv-%d", f.seq)
	g.CreatedAt = time.Now()
	f.games = append(f.games, g)
	return nil
}

func (f *trackedGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	for _, g := range f.games {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, errors.NotFound("Game", nil)
}

func (f *trackedGameRepo) ListAll(ctx context.Context) ([]*entity.Game, error) {
	if f.fail {
		return nil, errors.Internal("gateway down", nil)
	}
	out := make([]*entity.Game, len(f.games))
	copy(out, f.games)
	return out, nil
}

func (f *trackedGameRepo) List(ctx context.Context, q repository.GameQuery) ([]*entity.Game, error) {
	return f.ListAll(ctx)
}

func (f *trackedGameRepo) Update(ctx context.Context, g *entity.Game) error {
	if f.fail {
		return errors.Internal("gateway down", nil)
	}
	for i, existing := range f.games {
		if existing.ID == g.ID {
			f.games[i] = g
			return nil
		}
	}
	return errors.NotFound("Game", nil)
}

func (f *trackedGameRepo) Delete(ctx context.Context, id string) error {
	if f.fail {
		return errors.Internal("gateway down", nil)
	}
	for i, g := range f.games {
		if g.ID == id {
			f.games = append(f.games[:i], f.games[i+1:]...)
			return nil
		}
	}
	return errors.NotFound("Game", nil)
}

func TestCatalogStoreStartsIdle(t *testing.T) {
	store := NewCatalogStore(&fakeGameRepo{games: map[string]*entity.Game{}})
	assert.Equal(t, StoreIdle, store.Status())
}

func TestCatalogStoreRefresh(t *testing.T) {
	repo := &fakeGameRepo{games: map[string]*entity.Game{
		"g1": {ID: "g1", Title: "One"},
		"g2": {ID: "g2", Title: "Two"},
	}}
	store := NewCatalogStore(repo)

	assert.NoError(t, store.Refresh(context.Background()))
	assert.Equal(t, StoreReady, store.Status())
	assert.Len(t, store.Games(), 2)
}

func TestCatalogStoreRefreshFailureKeepsStaleData(t *testing.T) {
	repo := &trackedGameRepo{games: []*entity.Game{{ID: "g1", Title: "One"}}}
	store := NewCatalogStore(repo)

	assert.NoError(t, store.Refresh(context.Background()))
	repo.fail = true

	err := store.Refresh(context.Background())

	assert.Error(t, err)
	assert.Equal(t, StoreReady, store.Status())
	assert.Len(t, store.Games(), 1)
}

func TestCatalogStoreAddAppendsServerRow(t *testing.T) {
	repo := &trackedGameRepo{}
	store := NewCatalogStore(repo)
	store.Refresh(context.Background())

	notified := false
	store.OnChange(func() { notified = true })

	created, err := store.Add(context.Background(), &entity.Game{Title: "New"})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())
	assert.Len(t, store.Games(), 1)
	assert.True(t, notified)
}

func TestCatalogStoreUpdateIsReadYourWrites(t *testing.T) {
	repo := &trackedGameRepo{games: []*entity.Game{{ID: "g1", Title: "Old", CreatedAt: time.Now()}}}
	store := NewCatalogStore(repo)
	store.Refresh(context.Background())

	_, err := store.Update(context.Background(), &entity.Game{ID: "g1", Title: "Renamed"})

	assert.NoError(t, err)
	// The cache reflects the save immediately, without waiting on the feed.
	games := store.Games()
	assert.Len(t, games, 1)
	assert.Equal(t, "Renamed", games[0].Title)
	assert.False(t, games[0].CreatedAt.IsZero())
}

func TestCatalogStoreUpdateSendsCreatedAtToRepository(t *testing.T) {
	created := time.Now().Add(-48 * time.Hour)
	repo := &trackedGameRepo{games: []*entity.Game{{ID: "g1", Title: "Old", CreatedAt: created}}}
	store := NewCatalogStore(repo)
	store.Refresh(context.Background())

	// Edit forms never carry the creation timestamp; the row written to the
	// repository must keep the original one, not a zero time.
	_, err := store.Update(context.Background(), &entity.Game{ID: "g1", Title: "Renamed"})

	assert.NoError(t, err)
	assert.Equal(t, created, repo.games[0].CreatedAt)
	assert.Equal(t, "Renamed", repo.games[0].Title)
}

func TestCatalogStoreUpdateFailureLeavesCacheUntouched(t *testing.T) {
	repo := &trackedGameRepo{games: []*entity.Game{{ID: "g1", Title: "Old"}}}
	store := NewCatalogStore(repo)
	store.Refresh(context.Background())
	repo.fail = true

	_, err := store.Update(context.Background(), &entity.Game{ID: "g1", Title: "Renamed"})

	assert.Error(t, err)
	assert.Equal(t, "Old", store.Games()[0].Title)
	assert.Equal(t, StoreReady, store.Status())
}

func TestCatalogStoreDeleteSplicesCache(t *testing.T) {
	repo := &trackedGameRepo{games: []*entity.Game{
		{ID: "g1", Title: "One"},
		{ID: "g2", Title: "Two"},
	}}
	store := NewCatalogStore(repo)
	store.Refresh(context.Background())

	assert.NoError(t, store.Delete(context.Background(), "g1"))

	games := store.Games()
	assert.Len(t, games, 1)
	assert.Equal(t, "g2", games[0].ID)
}

func TestCatalogStoreRecentNewestFirst(t *testing.T) {
	now := time.Now()
	repo := &trackedGameRepo{games: []*entity.Game{
		{ID: "old", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "newest", CreatedAt: now},
		{ID: "mid", CreatedAt: now.Add(-time.Hour)},
	}}
	store := NewCatalogStore(repo)
	store.Refresh(context.Background())

	recent := store.Recent(2)

	assert.Len(t, recent, 2)
	assert.Equal(t, "newest", recent[0].ID)
	assert.Equal(t, "mid", recent[1].ID)
}

func TestCatalogStoreCategoriesDistinct(t *testing.T) {
	repo := &trackedGameRepo{games: []*entity.Game{
		{ID: "1", Category: "RPG"},
		{ID: "2", Category: "Shooter"},
		{ID: "3", Category: "RPG"},
		{ID: "4"},
	}}
	store := NewCatalogStore(repo)
	store.Refresh(context.Background())

	assert.Equal(t, []string{"RPG", "Shooter"}, store.Categories())
}
