package handlers

import (
	"github.com/gofiber/fiber/v2"

	"nutriby-backend/domain"
	"nutriby-backend/internal/api/presenters"
	"nutriby-backend/pkg/ingredient"
)

type (
	IngredientHandler interface {
		GetIngredients(c *fiber.Ctx) error
	}

	ingredientHandler struct {
		ingredientService ingredient.IngredientService
	}
)

func NewIngredientHandler(ingredientService ingredient.IngredientService) IngredientHandler {
	return &ingredientHandler{ingredientService: ingredientService}
}

func (h *ingredientHandler) GetIngredients(c *fiber.Ctx) error {
	page, limit := pagination(c)

	ingredients, count, err := h.ingredientService.GetIngredients(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetIngredients, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"ingredients": ingredients,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetIngredients)
}
