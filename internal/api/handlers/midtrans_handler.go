package handlers

import (
	"pantry-tracker-api/domain"
	"pantry-tracker-api/internal/api/presenters"
	"pantry-tracker-api/pkg/midtrans"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	MidtransHandler interface {
		CreateTransaction(c *fiber.Ctx) error
		MidtransWebhookHandler(c *fiber.Ctx) error
	}

	midtransHandler struct {
		midtransService midtrans.MidtransService
		validator       *validator.Validate
	}
)

func NewMidtransHandler(midtransService midtrans.MidtransService, validator *validator.Validate) MidtransHandler {
	return &midtransHandler{
		midtransService: midtransService,
		validator:       validator,
	}
}

func (h *midtransHandler) CreateTransaction(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreatePaymentRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePayment, err)
	}

	res, err := h.midtransService.CreateTransaction(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreatePayment, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreatePayment)
}

func (h *midtransHandler) MidtransWebhookHandler(c *fiber.Ctx) error {
	notification := new(domain.MidtransNotification)

	if err := c.BodyParser(notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.midtransService.HandleNotification(c.Context(), *notification); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedWebhook, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessWebhook)
}
