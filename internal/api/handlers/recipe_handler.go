package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nutriby-backend/domain"
	"nutriby-backend/internal/api/presenters"
	"nutriby-backend/pkg/recipe"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeDetail(c *fiber.Ctx) error
		SearchRecipes(c *fiber.Ctx) error
		FilterRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	page, limit := pagination(c)

	recipes, count, err := h.recipeService.GetRecipes(c.Context(), page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeDetail(c *fiber.Ctx) error {
	recipeID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, domain.ErrRecipeNotFound)
	}

	res, err := h.recipeService.GetRecipeDetail(c.Context(), uint(recipeID))
	if err != nil {
		if errors.Is(err, domain.ErrRecipeNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetRecipeDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) SearchRecipes(c *fiber.Ctx) error {
	req := domain.SearchRecipesRequest{Query: c.Query("q")}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	page, limit := pagination(c)

	recipes, count, err := h.recipeService.SearchRecipes(c.Context(), req, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessSearchRecipes)
}

func (h *recipeHandler) FilterRecipes(c *fiber.Ctx) error {
	req := new(domain.FilterRecipesRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFilterRecipes, err)
	}

	page, limit := pagination(c)

	recipes, count, err := h.recipeService.FilterRecipes(c.Context(), *req, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedFilterRecipes, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessFilterRecipes)
}

func pagination(c *fiber.Ctx) (int, int) {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	return page, limit
}
