package handlers

import (
	"strconv"

	"pantry-tracker-api/domain"
	"pantry-tracker-api/internal/api/presenters"
	"pantry-tracker-api/pkg/pantry"
	"pantry-tracker-api/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	PantryHandler interface {
		AddPantryItem(c *fiber.Ctx) error
		UpdatePantryItem(c *fiber.Ctx) error
		DeletePantryItem(c *fiber.Ctx) error
		GetPantryItems(c *fiber.Ctx) error
		GetPantryItemDetails(c *fiber.Ctx) error
		UploadItemImage(c *fiber.Ctx) error
		UploadReceipt(c *fiber.Ctx) error
		GetReceiptScanResult(c *fiber.Ctx) error
		SaveScannedItems(c *fiber.Ctx) error
		GetDashboardStats(c *fiber.Ctx) error
		GetShoppingList(c *fiber.Ctx) error
		AddShoppingItem(c *fiber.Ctx) error
		TogglePurchased(c *fiber.Ctx) error
		DeleteShoppingItem(c *fiber.Ctx) error
		SendExpiryDigest(c *fiber.Ctx) error
	}

	pantryHandler struct {
		pantryService pantry.PantryService
		userService   user.UserService
		validator     *validator.Validate
	}
)

func NewPantryHandler(pantryService pantry.PantryService, userService user.UserService, validator *validator.Validate) PantryHandler {
	return &pantryHandler{
		pantryService: pantryService,
		userService:   userService,
		validator:     validator,
	}
}

func (h *pantryHandler) AddPantryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddPantryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItem, err)
	}

	res, err := h.pantryService.AddPantryItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedAddPantryItem, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessAddPantryItem)
}

func (h *pantryHandler) UpdatePantryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")
	req := new(domain.UpdatePantryItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, err)
	}

	if err := h.pantryService.UpdatePantryItem(c.Context(), itemID, *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdatePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessUpdatePantryItem)
}

func (h *pantryHandler) DeletePantryItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.pantryService.DeletePantryItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeletePantryItem, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeletePantryItem)
}

func (h *pantryHandler) GetPantryItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	status := c.Query("status", "all")

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	items, count, err := h.pantryService.GetPantryItems(c.Context(), userID, status, page, limit)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPantryItems, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"items": items,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) GetPantryItemDetails(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	item, err := h.pantryService.GetPantryItemByID(c.Context(), itemID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetPantryItems, err)
	}

	return presenters.SuccessResponse(c, item, fiber.StatusOK, domain.MessageSuccessGetPantryItems)
}

func (h *pantryHandler) UploadItemImage(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadItemImageRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.Image = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	imageURL, err := h.pantryService.UploadItemImage(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"image_url": imageURL}, fiber.StatusOK, domain.MessageSuccessUpdatePantryItem)
}

func (h *pantryHandler) UploadReceipt(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.UploadReceiptRequest)

	file, err := c.FormFile("receipt_image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}
	req.ReceiptImage = file

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	res, err := h.pantryService.UploadReceipt(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadReceipt)
}

func (h *pantryHandler) GetReceiptScanResult(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	scanID := c.Params("id")

	res, err := h.pantryService.GetReceiptScan(c.Context(), scanID, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUploadReceipt, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUploadReceipt)
}

func (h *pantryHandler) SaveScannedItems(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.SaveScannedItemsRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	if err := h.pantryService.SaveScannedItems(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedSaveScannedItems, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessSaveScannedItems)
}

func (h *pantryHandler) GetDashboardStats(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	stats, err := h.pantryService.GetDashboardStats(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetDashboardStats, err)
	}

	return presenters.SuccessResponse(c, stats, fiber.StatusOK, domain.MessageSuccessGetDashboardStats)
}

func (h *pantryHandler) GetShoppingList(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	list, err := h.pantryService.GenerateShoppingList(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShoppingList, err)
	}

	return presenters.SuccessResponse(c, list, fiber.StatusOK, domain.MessageSuccessShoppingList)
}

func (h *pantryHandler) AddShoppingItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.AddShoppingItemRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShoppingList, err)
	}

	res, err := h.pantryService.AddShoppingItem(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShoppingList, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessShoppingList)
}

func (h *pantryHandler) TogglePurchased(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.pantryService.TogglePurchased(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShoppingList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessShoppingList)
}

func (h *pantryHandler) SendExpiryDigest(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	me, err := h.userService.Me(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExpiryDigest, err)
	}

	if err := h.pantryService.SendExpiryDigest(c.Context(), userID, me.Email); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedExpiryDigest, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessExpiryDigest)
}

func (h *pantryHandler) DeleteShoppingItem(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	itemID := c.Params("id")

	if err := h.pantryService.DeleteShoppingItem(c.Context(), itemID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedShoppingList, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessShoppingList)
}
