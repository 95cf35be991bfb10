package handlers

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nutriby-backend/domain"
	"nutriby-backend/internal/api/presenters"
	"nutriby-backend/pkg/allergy"
)

type (
	AllergyHandler interface {
		GetAllergies(c *fiber.Ctx) error
		GetAllergyDetail(c *fiber.Ctx) error
		SearchAllergies(c *fiber.Ctx) error
	}

	allergyHandler struct {
		allergyService allergy.AllergyService
		validator      *validator.Validate
	}
)

func NewAllergyHandler(allergyService allergy.AllergyService, validator *validator.Validate) AllergyHandler {
	return &allergyHandler{
		allergyService: allergyService,
		validator:      validator,
	}
}

func (h *allergyHandler) GetAllergies(c *fiber.Ctx) error {
	res, err := h.allergyService.GetAllergies(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAllergies, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAllergies)
}

func (h *allergyHandler) GetAllergyDetail(c *fiber.Ctx) error {
	allergyID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetAllergyDetail, domain.ErrAllergyNotFound)
	}

	res, err := h.allergyService.GetAllergyDetail(c.Context(), uint(allergyID))
	if err != nil {
		if errors.Is(err, domain.ErrAllergyNotFound) {
			return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetAllergyDetail, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetAllergyDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetAllergyDetail)
}

func (h *allergyHandler) SearchAllergies(c *fiber.Ctx) error {
	req := domain.SearchAllergiesRequest{Query: c.Query("q")}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchAllergies, err)
	}

	res, err := h.allergyService.SearchAllergies(c.Context(), req)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSearchAllergies, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessSearchAllergies)
}
