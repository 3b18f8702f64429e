package domain

import (
	"errors"
	"time"
)

var (
	MessageSuccessGetRecipes     = "recipe recommendations retrieved successfully"
	MessageSuccessBookmarkRecipe = "recipe bookmarked successfully"
	MessageSuccessRemoveBookmark = "bookmark removed successfully"
	MessageSuccessGetBookmarks   = "bookmarked recipes retrieved successfully"

	MessageFailedGetRecipes     = "failed to retrieve recipe recommendations"
	MessageFailedBookmarkRecipe = "failed to bookmark recipe"
	MessageFailedRemoveBookmark = "failed to remove bookmark"
	MessageFailedGetBookmarks   = "failed to retrieve bookmarked recipes"

	ErrRecipeNotFound  = errors.New("recipe not found")
	ErrNoIngredients   = errors.New("no ingredients available for recommendations")
	ErrGeminiAPIFailed = errors.New("gemini API failed")
)

type (
	RecipeRecommendationRequest struct {
		CuisineType         string `json:"cuisine_type" validate:"omitempty"`
		DifficultyLevel     string `json:"difficulty_level" validate:"omitempty"`
		PreparationTime     int    `json:"preparation_time" validate:"omitempty,min=0"`
		IncludeExpiringOnly bool   `json:"include_expiring_only"`
	}

	Recipe struct {
		ID              string    `json:"id"`
		Title           string    `json:"title"`
		Description     string    `json:"description"`
		ImageURL        string    `json:"image_url,omitempty"`
		PrepTimeMinutes int       `json:"prep_time_minutes"`
		CookTimeMinutes int       `json:"cook_time_minutes"`
		Servings        int       `json:"servings"`
		DifficultyLevel string    `json:"difficulty_level"`
		CuisineType     string    `json:"cuisine_type"`
		CreatedAt       time.Time `json:"created_at"`
		IsBookmarked    bool      `json:"is_bookmarked"`
	}

	RecipeRecommendationResponse struct {
		Recipes       []Recipe `json:"recipes"`
		TotalRecipes  int      `json:"total_recipes"`
		ExpiringItems int      `json:"expiring_items"`
	}

	BookmarkRecipeRequest struct {
		RecipeID string `json:"recipe_id" validate:"required,uuid"`
	}
)
