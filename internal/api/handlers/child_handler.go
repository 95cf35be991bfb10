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
)

type (
	ChildHandler interface {
		CreateChild(c *fiber.Ctx) error
		UpdateChild(c *fiber.Ctx) error
		GetChildren(c *fiber.Ctx) error
		GetChildDetail(c *fiber.Ctx) error
		UploadChildPhoto(c *fiber.Ctx) error
	}

	childHandler struct {
		childService child.ChildService
		validator    *validator.Validate
	}
)

func NewChildHandler(childService child.ChildService, validator *validator.Validate) ChildHandler {
	return &childHandler{
		childService: childService,
		validator:    validator,
	}
}

func (h *childHandler) CreateChild(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateChildRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateChild, err)
	}

	res, err := h.childService.CreateChild(c.Context(), *req, userID, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateChild, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateChild)
}

func (h *childHandler) UpdateChild(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	childID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUpdateChild, domain.ErrChildNotFound)
	}

	req := new(domain.UpdateChildRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateChild, err)
	}

	res, err := h.childService.UpdateChild(c.Context(), uint(childID), *req, userID, time.Now())
	if err != nil {
		return presenters.ErrorResponse(c, childErrorStatus(err), domain.MessageFailedUpdateChild, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateChild)
}

func (h *childHandler) GetChildren(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.childService.GetChildren(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetChildren, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChildren)
}

func (h *childHandler) GetChildDetail(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	childID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedGetChildDetail, domain.ErrChildNotFound)
	}

	res, err := h.childService.GetChildDetail(c.Context(), uint(childID), userID)
	if err != nil {
		return presenters.ErrorResponse(c, childErrorStatus(err), domain.MessageFailedGetChildDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetChildDetail)
}

func (h *childHandler) UploadChildPhoto(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	childID, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedUploadChildPhoto, domain.ErrChildNotFound)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	req := domain.UploadChildPhotoRequest{
		ChildID: uint(childID),
		Image:   file,
	}
	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadChildPhoto, err)
	}

	url, err := h.childService.UploadChildPhoto(c.Context(), req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, childErrorStatus(err), domain.MessageFailedUploadChildPhoto, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": url}, fiber.StatusOK, domain.MessageSuccessUploadChildPhoto)
}

func childErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrChildNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	default:
		return fiber.StatusBadRequest
	}
}
