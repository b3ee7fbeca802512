package handler

import (
	"math"
	"strconv"

	"github.com/labstack/echo/v4"

	"charlygames/internal/usecase"
	"charlygames/pkg/response"
)

type PriceBandHandler struct {
	pricingUseCase *usecase.PricingUseCase
}

func NewPriceBandHandler(pricingUseCase *usecase.PricingUseCase) *PriceBandHandler {
	return &PriceBandHandler{
		pricingUseCase: pricingUseCase,
	}
}

func (h *PriceBandHandler) ListBands(c echo.Context) error {
	bands, err := h.pricingUseCase.ListBands(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, bands)
}

func (h *PriceBandHandler) CreateBand(c echo.Context) error {
	band, err := h.pricingUseCase.CreateBand(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, band)
}

type updateBandRequest struct {
	Min   *float64 `json:"min"`
	Max   *float64 `json:"max"`
	Price *float64 `json:"price" validate:"omitempty,gte=0"`
}

func (h *PriceBandHandler) UpdateBand(c echo.Context) error {
	var req updateBandRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	band, err := h.pricingUseCase.UpdateBand(c.Request().Context(), c.Param("id"), usecase.UpdateBandInput{
		Min:   req.Min,
		Max:   req.Max,
		Price: req.Price,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, band)
}

func (h *PriceBandHandler) DeleteBand(c echo.Context) error {
	if err := h.pricingUseCase.DeleteBand(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]string{
		"message": "Price band deleted successfully",
	})
}

// Suggest evaluates the rule table for the admin form. A missing or malformed
// weight is not an error: it evaluates like any non-numeric weight, to a
// suggestion of 0.
func (h *PriceBandHandler) Suggest(c echo.Context) error {
	weight := math.NaN()
	if raw := c.QueryParam("weight"); raw != "" {
		if parsed, err := strconv.ParseFloat(raw, 64); err == nil {
			weight = parsed
		}
	}

	price, err := h.pricingUseCase.Suggest(c.Request().Context(), weight)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]float64{
		"price": price,
	})
}
