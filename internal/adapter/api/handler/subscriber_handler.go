package handler

import (
	"github.com/labstack/echo/v4"

	"charlygames/internal/usecase"
	"charlygames/pkg/response"
)

type SubscriberHandler struct {
	subscriberUseCase *usecase.SubscriberUseCase
}

func NewSubscriberHandler(subscriberUseCase *usecase.SubscriberUseCase) *SubscriberHandler {
	return &SubscriberHandler{
		subscriberUseCase: subscriberUseCase,
	}
}

type subscribeRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email" validate:"required,email"`
	Whatsapp string `json:"whatsapp" validate:"required"`
}

func (h *SubscriberHandler) Subscribe(c echo.Context) error {
	var req subscribeRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	sub, err := h.subscriberUseCase.Subscribe(c.Request().Context(), usecase.SubscribeInput{
		Name:     req.Name,
		Email:    req.Email,
		Whatsapp: req.Whatsapp,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, sub)
}

func (h *SubscriberHandler) ListSubscribers(c echo.Context) error {
	sortBy := c.QueryParam("sort")
	ascending := c.QueryParam("direction") != "desc"

	subs, err := h.subscriberUseCase.List(c.Request().Context(), sortBy, ascending)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, subs)
}
