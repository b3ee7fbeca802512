package handler

import (
	"github.com/labstack/echo/v4"

	"charlygames/internal/domain/entity"
	"charlygames/internal/usecase"
	"charlygames/pkg/response"
)

type ContactHandler struct {
	contactUseCase *usecase.ContactUseCase
}

func NewContactHandler(contactUseCase *usecase.ContactUseCase) *ContactHandler {
	return &ContactHandler{
		contactUseCase: contactUseCase,
	}
}

func (h *ContactHandler) GetContact(c echo.Context) error {
	contact, err := h.contactUseCase.Get(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contact)
}

type contactRequest struct {
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone"`
	Whatsapp  string `json:"whatsapp"`
	Email     string `json:"email" validate:"omitempty,email"`
	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
}

func (h *ContactHandler) UpdateContact(c echo.Context) error {
	var req contactRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	contact, err := h.contactUseCase.Update(c.Request().Context(), &entity.Contact{
		Name:      req.Name,
		Phone:     req.Phone,
		Whatsapp:  req.Whatsapp,
		Email:     req.Email,
		Facebook:  req.Facebook,
		Instagram: req.Instagram,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, contact)
}
