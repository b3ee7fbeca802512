package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "charlygames/internal/adapter/repository"
	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/internal/usecase"
)

type browseEnvelope struct {
	Success bool `json:"success"`
	Data    struct {
		Items    []*entity.Game `json:"items"`
		Page     int            `json:"page"`
		PageSize int            `json:"pageSize"`
		HasMore  bool           `json:"hasMore"`
	} `json:"data"`
}

func newGameHandler(t *testing.T) (*GameHandler, repository.GameRepository) {
	t.Helper()
	repo := adapterrepo.NewFileGameRepository(filepath.Join(t.TempDir(), "games.json"))
	store := usecase.NewCatalogStore(repo)
	return NewGameHandler(usecase.NewCatalogUseCase(repo, store)), repo
}

func browse(h *GameHandler, query string) browseEnvelope {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/v1/games?"+query, nil)
	rec := httptest.NewRecorder()
	_ = h.Browse(e.NewContext(req, rec))

	var env browseEnvelope
	_ = json.Unmarshal(rec.Body.Bytes(), &env)
	return env
}

func TestBrowseEmptyCatalog(t *testing.T) {
	h, _ := newGameHandler(t)

	env := browse(h, "")

	assert.True(t, env.Success)
	assert.NotNil(t, env.Data.Items)
	assert.Empty(t, env.Data.Items)
	assert.False(t, env.Data.HasMore)
	assert.Equal(t, 50, env.Data.PageSize)
}

func TestBrowseHasMoreOnExactlyFullPage(t *testing.T) {
	h, repo := newGameHandler(t)
	ctx := context.Background()
	for i := 0; i < 50; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Game{Title: fmt.Sprintf("Game %02d", i)}))
	}

	first := browse(h, "page=0")
	assert.Len(t, first.Data.Items, 50)
	// A full page reports more even when the next page turns out empty.
	assert.True(t, first.Data.HasMore)

	second := browse(h, "page=1")
	assert.Empty(t, second.Data.Items)
	assert.False(t, second.Data.HasMore)
}

func TestBrowsePartialPage(t *testing.T) {
	h, repo := newGameHandler(t)
	ctx := context.Background()
	for i := 0; i < 7; i++ {
		require.NoError(t, repo.Create(ctx, &entity.Game{Title: fmt.Sprintf("Game %d", i)}))
	}

	env := browse(h, "")

	assert.Len(t, env.Data.Items, 7)
	assert.False(t, env.Data.HasMore)
}

func TestBrowseFilterAndSort(t *testing.T) {
	h, repo := newGameHandler(t)
	ctx := context.Background()
	require.NoError(t, repo.Create(ctx, &entity.Game{Title: "Zelda", Category: "Adventure"}))
	require.NoError(t, repo.Create(ctx, &entity.Game{Title: "Animal Crossing", Category: "Simulation"}))
	require.NoError(t, repo.Create(ctx, &entity.Game{Title: "Astro Bot", Category: "Platformer"}))

	env := browse(h, "q=a&sort=alphabetical")

	require.Len(t, env.Data.Items, 3)
	assert.Equal(t, "Animal Crossing", env.Data.Items[0].Title)

	env = browse(h, "category=Adventure")
	require.Len(t, env.Data.Items, 1)
	assert.Equal(t, "Zelda", env.Data.Items[0].Title)
}

func TestBrowseUnknownSortFallsBackToDefault(t *testing.T) {
	h, repo := newGameHandler(t)
	require.NoError(t, repo.Create(context.Background(), &entity.Game{Title: "Only"}))

	env := browse(h, "sort=bogus")

	assert.True(t, env.Success)
	assert.Len(t, env.Data.Items, 1)
}
