package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"charlygames/internal/usecase"
	"charlygames/pkg/response"
)

type RatingHandler struct {
	ratingUseCase *usecase.RatingUseCase
}

func NewRatingHandler(ratingUseCase *usecase.RatingUseCase) *RatingHandler {
	return &RatingHandler{
		ratingUseCase: ratingUseCase,
	}
}

type submitRatingRequest struct {
	Rating int `json:"rating" validate:"required,min=1,max=5"`
}

func (h *RatingHandler) SubmitRating(c echo.Context) error {
	var req submitRatingRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	if err := h.ratingUseCase.SubmitRating(c.Request().Context(), c.Param("id"), req.Rating); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, map[string]string{
		"message": "Rating submitted",
	})
}

func (h *RatingHandler) GameAverage(c echo.Context) error {
	average, count, err := h.ratingUseCase.GameAverage(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"average": average,
		"count":   count,
	})
}

func (h *RatingHandler) TopRated(c echo.Context) error {
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	ranked, err := h.ratingUseCase.TopRated(c.Request().Context(), limit)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, ranked)
}
