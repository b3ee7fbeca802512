package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"charlygames/internal/domain/entity"
	"charlygames/internal/domain/repository"
	"charlygames/pkg/errors"
)

// RestGamesHandler is the alternate flat-REST surface over the catalog: plain
// JSON bodies, ids carried in the body rather than the path, no response
// envelope. It speaks directly to the repository so it works identically over
// the hosted gateway and the local-file fallback.
type RestGamesHandler struct {
	gameRepo repository.GameRepository
}

func NewRestGamesHandler(gameRepo repository.GameRepository) *RestGamesHandler {
	return &RestGamesHandler{
		gameRepo: gameRepo,
	}
}

type restMessage struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func (h *RestGamesHandler) ListGames(c echo.Context) error {
	games, err := h.gameRepo.ListAll(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, restMessage{Message: "Error fetching games", Error: err.Error()})
	}

	if games == nil {
		games = []*entity.Game{}
	}
	return c.JSON(http.StatusOK, games)
}

func (h *RestGamesHandler) CreateGame(c echo.Context) error {
	var game entity.Game
	if err := c.Bind(&game); err != nil {
		return c.JSON(http.StatusInternalServerError, restMessage{Message: "Error adding game", Error: err.Error()})
	}

	game.ID = ""
	if err := h.gameRepo.Create(c.Request().Context(), &game); err != nil {
		return c.JSON(http.StatusInternalServerError, restMessage{Message: "Error adding game", Error: err.Error()})
	}

	return c.JSON(http.StatusCreated, game)
}

func (h *RestGamesHandler) UpdateGame(c echo.Context) error {
	var game entity.Game
	if err := c.Bind(&game); err != nil {
		return c.JSON(http.StatusInternalServerError, restMessage{Message: "Error updating game", Error: err.Error()})
	}

	if game.ID == "" {
		return c.JSON(http.StatusBadRequest, restMessage{Message: "Game ID is required"})
	}

	if err := h.gameRepo.Update(c.Request().Context(), &game); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return c.JSON(http.StatusNotFound, restMessage{Message: "Game not found"})
		}
		return c.JSON(http.StatusInternalServerError, restMessage{Message: "Error updating game", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, game)
}

func (h *RestGamesHandler) DeleteGame(c echo.Context) error {
	var body struct {
		ID string `json:"id"`
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusInternalServerError, restMessage{Message: "Error deleting game", Error: err.Error()})
	}

	if body.ID == "" {
		return c.JSON(http.StatusBadRequest, restMessage{Message: "Game ID is required"})
	}

	if err := h.gameRepo.Delete(c.Request().Context(), body.ID); err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return c.JSON(http.StatusNotFound, restMessage{Message: "Game not found"})
		}
		return c.JSON(http.StatusInternalServerError, restMessage{Message: "Error deleting game", Error: err.Error()})
	}

	return c.JSON(http.StatusOK, restMessage{Message: "Game deleted successfully"})
}
