package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	adapterrepo "charlygames/internal/adapter/repository"
	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
)

func newRestHandler(t *testing.T) (*RestGamesHandler, repository.GameRepository) {
	t.Helper()
	repo := adapterrepo.NewFileGameRepository(filepath.Join(t.TempDir(), "games.json"))
	return NewRestGamesHandler(repo), repo
}

func doRest(h echo.HandlerFunc, method, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(method, "/api/games", strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		e.HTTPErrorHandler(err, e.NewContext(req, rec))
	}
	return rec
}

func TestRestListGamesEmpty(t *testing.T) {
	h, _ := newRestHandler(t)

	rec := doRest(h.ListGames, http.MethodGet, "")

	assert.Equal(t, http.StatusOK, rec.Code)
	// Empty catalog renders as [], never null.
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestRestCreateGame(t *testing.T) {
	h, repo := newRestHandler(t)

	rec := doRest(h.CreateGame, http.MethodPost, `{"id":"client-picked","title":"Tunic","price":30}`)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var created entity.Game
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.ID)
	// Ids are server-assigned; a client-supplied one is discarded.
	assert.NotEqual(t, "client-picked", created.ID)

	games, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestRestUpdateGameMissingID(t *testing.T) {
	h, _ := newRestHandler(t)

	rec := doRest(h.UpdateGame, http.MethodPut, `{"title":"No ID"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestUpdateGameNotFound(t *testing.T) {
	h, _ := newRestHandler(t)

	rec := doRest(h.UpdateGame, http.MethodPut, `{"id":"ghost","title":"X"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRestUpdateGame(t *testing.T) {
	h, repo := newRestHandler(t)
	seed := &entity.Game{Title: "Before"}
	require.NoError(t, repo.Create(context.Background(), seed))

	rec := doRest(h.UpdateGame, http.MethodPut, `{"id":"`+seed.ID+`","title":"After"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	got, err := repo.GetByID(context.Background(), seed.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", got.Title)
}

func TestRestDeleteGameMissingID(t *testing.T) {
	h, _ := newRestHandler(t)

	rec := doRest(h.DeleteGame, http.MethodDelete, `{}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRestDeleteGameNotFound(t *testing.T) {
	h, repo := newRestHandler(t)
	seed := &entity.Game{Title: "Survivor"}
	require.NoError(t, repo.Create(context.Background(), seed))

	rec := doRest(h.DeleteGame, http.MethodDelete, `{"id":"ghost"}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	// A failed delete leaves the collection untouched.
	games, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, games, 1)
}

func TestRestDeleteGame(t *testing.T) {
	h, repo := newRestHandler(t)
	seed := &entity.Game{Title: "Gone"}
	require.NoError(t, repo.Create(context.Background(), seed))

	rec := doRest(h.DeleteGame, http.MethodDelete, `{"id":"`+seed.ID+`"}`)

	assert.Equal(t, http.StatusOK, rec.Code)

	var msg restMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &msg))
	assert.Equal(t, "Game deleted successfully", msg.Message)

	games, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)
}
