package handlers

import (
	"strconv"

	"pantry-tracker-api/domain"
	"pantry-tracker-api/internal/api/presenters"
	"pantry-tracker-api/pkg/recipe"
	"pantry-tracker-api/pkg/subscription"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipeRecommendations(c *fiber.Ctx) error
		BookmarkRecipe(c *fiber.Ctx) error
		RemoveBookmark(c *fiber.Ctx) error
		GetBookmarkedRecipes(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService       recipe.RecipeService
		subscriptionService subscription.SubscriptionService
		validator           *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, subscriptionService subscription.SubscriptionService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService:       recipeService,
		subscriptionService: subscriptionService,
		validator:           validator,
	}
}

// GetRecipeRecommendations is a premium feature; access is checked against
// the cached subscription state.
func (h *recipeHandler) GetRecipeRecommendations(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	hasAccess, err := h.subscriptionService.HasPremiumAccess(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}
	if !hasAccess {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MessageFailedGetRecipes, domain.ErrPremiumRequired)
	}

	req := new(domain.RecipeRecommendationRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	res, err := h.recipeService.GetRecipeRecommendations(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) BookmarkRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BookmarkRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBookmarkRecipe, err)
	}

	if err := h.recipeService.BookmarkRecipe(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBookmarkRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusCreated, domain.MessageSuccessBookmarkRecipe)
}

func (h *recipeHandler) RemoveBookmark(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.BookmarkRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveBookmark, err)
	}

	if err := h.recipeService.RemoveBookmark(c.Context(), *req, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedRemoveBookmark, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessRemoveBookmark)
}

func (h *recipeHandler) GetBookmarkedRecipes(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	limit, err := strconv.Atoi(c.Query("limit", "20"))
	if err != nil || limit < 1 {
		limit = 20
	}

	recipes, count, err := h.recipeService.GetBookmarkedRecipes(c.Context(), page, limit, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetBookmarks, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{
		"recipes": recipes,
		"pagination": fiber.Map{
			"page":        page,
			"limit":       limit,
			"total":       count,
			"total_pages": (count + int64(limit) - 1) / int64(limit),
		},
	}, fiber.StatusOK, domain.MessageSuccessGetBookmarks)
}
