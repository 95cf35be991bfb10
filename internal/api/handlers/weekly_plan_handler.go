package handlers

import (
	"errors"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"nutriby-backend/domain"
	"nutriby-backend/internal/api/presenters"
	"nutriby-backend/pkg/child"
	"nutriby-backend/pkg/weeklyplan"
)

type (
	WeeklyPlanHandler interface {
		GeneratePlan(c *fiber.Ctx) error
		GetActivePlan(c *fiber.Ctx) error
	}

	weeklyPlanHandler struct {
		weeklyPlanService weeklyplan.WeeklyPlanService
		childService      child.ChildService
		validator         *validator.Validate
	}
)

func NewWeeklyPlanHandler(weeklyPlanService weeklyplan.WeeklyPlanService, childService child.ChildService, validator *validator.Validate) WeeklyPlanHandler {
	return &weeklyPlanHandler{
		weeklyPlanService: weeklyPlanService,
		childService:      childService,
		validator:         validator,
	}
}

func (h *weeklyPlanHandler) GeneratePlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	childID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGeneratePlan, domain.ErrChildNotFound)
	}

	req := new(domain.GeneratePlanRequest)
	// An empty body means "use the child's stored budget".
	if len(c.Body()) > 0 {
		if err := c.BodyParser(req); err != nil {
			return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
		}
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGeneratePlan, err)
	}

	childEntity, err := h.childService.GetChildDetail(c.Context(), uint(childID), userID)
	if err != nil {
		return presenters.ErrorResponse(c, childErrorStatus(err), domain.MessageFailedGeneratePlan, err)
	}

	plan, err := h.weeklyPlanService.GenerateForChild(c.Context(), childEntity, *req, time.Now())
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientRecipes) {
			return presenters.ErrorResponse(c, fiber.StatusUnprocessableEntity, domain.MessageFailedGeneratePlan, err)
		}
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGeneratePlan, err)
	}

	return presenters.SuccessResponse(c, plan, fiber.StatusCreated, domain.MessageSuccessGeneratePlan)
}

func (h *weeklyPlanHandler) GetActivePlan(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	childID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetActivePlan, domain.ErrChildNotFound)
	}

	if _, err := h.childService.GetChildDetail(c.Context(), uint(childID), userID); err != nil {
		return presenters.ErrorResponse(c, childErrorStatus(err), domain.MessageFailedGetActivePlan, err)
	}

	plan, err := h.weeklyPlanService.GetActivePlan(c.Context(), uint(childID), time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetActivePlan, err)
	}
	if plan == nil {
		return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageNoActivePlan)
	}

	return presenters.SuccessResponse(c, plan, fiber.StatusOK, domain.MessageSuccessGetActivePlan)
}
