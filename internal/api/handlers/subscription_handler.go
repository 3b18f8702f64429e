package handlers

import (
	"errors"

	"pantry-tracker-api/domain"
	"pantry-tracker-api/internal/api/presenters"
	"pantry-tracker-api/pkg/subscription"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	SubscriptionHandler interface {
		StartFreeTrial(c *fiber.Ctx) error
		GetSubscription(c *fiber.Ctx) error
		Cancel(c *fiber.Ctx) error
	}

	subscriptionHandler struct {
		subscriptionService subscription.SubscriptionService
		validator           *validator.Validate
	}
)

func NewSubscriptionHandler(subscriptionService subscription.SubscriptionService, validator *validator.Validate) SubscriptionHandler {
	return &subscriptionHandler{
		subscriptionService: subscriptionService,
		validator:           validator,
	}
}

func (h *subscriptionHandler) StartFreeTrial(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.subscriptionService.StartFreeTrial(c.Context(), userID)
	if err != nil {
		code := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrTrialAlreadyUsed) {
			code = fiber.StatusConflict
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedStartTrial, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessStartTrial)
}

func (h *subscriptionHandler) GetSubscription(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.subscriptionService.GetSubscription(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetSubscription, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetSubscription)
}

func (h *subscriptionHandler) Cancel(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	if err := h.subscriptionService.Cancel(c.Context(), userID); err != nil {
		code := fiber.StatusBadRequest
		if errors.Is(err, domain.ErrSubscriptionNotFound) {
			code = fiber.StatusNotFound
		}
		return presenters.ErrorResponse(c, code, domain.MessageFailedCancel, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessCancel)
}
