package handlers

import (
	"strconv"

	"pantry-tracker-api/domain"
	"pantry-tracker-api/internal/api/presenters"
	"pantry-tracker-api/pkg/calorie"
	"pantry-tracker-api/pkg/category"
	"pantry-tracker-api/pkg/shelflife"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	EstimationHandler interface {
		EstimateExpiry(c *fiber.Ctx) error
		CategorizeItem(c *fiber.Ctx) error
		LookupCalories(c *fiber.Ctx) error
	}

	estimationHandler struct {
		estimator shelflife.Estimator
		validator *validator.Validate
	}
)

func NewEstimationHandler(estimator shelflife.Estimator, validator *validator.Validate) EstimationHandler {
	return &estimationHandler{
		estimator: estimator,
		validator: validator,
	}
}

func (h *estimationHandler) EstimateExpiry(c *fiber.Ctx) error {
	req := new(domain.EstimateExpiryRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedEstimateExpiry, err)
	}

	itemCategory := req.Category
	if itemCategory == "" {
		itemCategory = category.Categorize(req.ItemName)
	}

	isRefrigerated := true
	if req.IsRefrigerated != nil {
		isRefrigerated = *req.IsRefrigerated
	}

	res := h.estimator.Estimate(c.Context(), req.ItemName, itemCategory, isRefrigerated)
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessEstimateExpiry)
}

func (h *estimationHandler) CategorizeItem(c *fiber.Ctx) error {
	name := c.Query("name")
	res := domain.CategorizeResponse{
		ItemName: name,
		Category: category.Categorize(name),
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessCategorize)
}

func (h *estimationHandler) LookupCalories(c *fiber.Ctx) error {
	name := c.Query("name")
	unit := c.Query("unit")

	quantity, err := strconv.ParseFloat(c.Query("quantity", "1"), 64)
	if err != nil || quantity <= 0 {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCalorieLookup, domain.ErrInvalidQuantity)
	}

	result := calorie.Lookup(name, quantity, unit)
	if result == nil {
		return presenters.ErrorResponse(c, fiber.StatusNotFound, domain.MessageFailedCalorieLookup, nil)
	}

	return presenters.SuccessResponse(c, domain.CalorieLookupResponse{
		ItemName:        name,
		Quantity:        quantity,
		Unit:            unit,
		Calories:        result.Calories,
		CaloriesPerUnit: result.CaloriesPerUnit,
		Source:          result.Source,
	}, fiber.StatusOK, domain.MessageSuccessCalorieLookup)
}
