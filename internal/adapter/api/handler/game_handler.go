package handler

import (
	"github.com/labstack/echo/v4"

	"charlygames/internal/domain/entity"
	"charlygames/internal/usecase"
	"charlygames/pkg/response"
	"charlygames/pkg/utils"
)

type GameHandler struct {
	catalogUseCase *usecase.CatalogUseCase
}

func NewGameHandler(catalogUseCase *usecase.CatalogUseCase) *GameHandler {
	return &GameHandler{
		catalogUseCase: catalogUseCase,
	}
}

type gameRequest struct {
	Title       string  `json:"title" validate:"required,min=2"`
	Description string  `json:"description" validate:"required,min=10"`
	Category    string  `json:"category" validate:"required,min=2"`
	Price       float64 `json:"price" validate:"gte=0"`
	ImageURL    string  `json:"imageUrl" validate:"required,url"`
	OS          string  `json:"os"`
	Processor   string  `json:"processor"`
	Memory      string  `json:"memory"`
	Graphics    string  `json:"graphics"`
	Storage     string  `json:"storage"`
	Weight      float64 `json:"weight" validate:"gte=0"`
	Gotty       int     `json:"gotty"`
}

func (r *gameRequest) toEntity() *entity.Game {
	return &entity.Game{
		Title:       r.Title,
		Description: r.Description,
		Category:    r.Category,
		Price:       r.Price,
		ImageURL:    r.ImageURL,
		OS:          r.OS,
		Processor:   r.Processor,
		Memory:      r.Memory,
		Graphics:    r.Graphics,
		Storage:     r.Storage,
		Weight:      r.Weight,
		Gotty:       r.Gotty,
	}
}

// Browse serves the public explore list with server-side filter, search, sort
// and offset pagination.
func (h *GameHandler) Browse(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	games, err := h.catalogUseCase.Browse(c.Request().Context(), usecase.BrowseInput{
		Category: c.QueryParam("category"),
		Search:   c.QueryParam("q"),
		Sort:     c.QueryParam("sort"),
		Limit:    pagination.PageSize,
		Offset:   pagination.Offset,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paged(c, games, pagination.Page, pagination.PageSize, len(games))
}

func (h *GameHandler) GetGame(c echo.Context) error {
	game, err := h.catalogUseCase.GetGame(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, game)
}

// Catalog returns the store's full cached list along with its load state, the
// backing for the admin table and other non-paginated views.
func (h *GameHandler) Catalog(c echo.Context) error {
	store := h.catalogUseCase.Store()

	return response.Success(c, map[string]interface{}{
		"games":  store.Games(),
		"status": store.Status(),
	})
}

func (h *GameHandler) Recent(c echo.Context) error {
	return response.Success(c, h.catalogUseCase.Store().Recent(15))
}

func (h *GameHandler) Categories(c echo.Context) error {
	return response.Success(c, h.catalogUseCase.Store().Categories())
}

func (h *GameHandler) CreateGame(c echo.Context) error {
	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	game, err := h.catalogUseCase.Store().Add(c.Request().Context(), req.toEntity())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, game)
}

func (h *GameHandler) UpdateGame(c echo.Context) error {
	var req gameRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	game := req.toEntity()
	game.ID = c.Param("id")

	game, err := h.catalogUseCase.Store().Update(c.Request().Context(), game)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, game)
}

func (h *GameHandler) DeleteGame(c echo.Context) error {
	if err := h.catalogUseCase.Store().Delete(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Game deleted successfully",
	})
}
