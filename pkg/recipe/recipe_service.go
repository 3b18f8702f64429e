package recipe

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pantry-tracker-api/domain"
	"pantry-tracker-api/entities"
	"pantry-tracker-api/internal/utils"
	"pantry-tracker-api/pkg/pantry"
	"pantry-tracker-api/pkg/shelflife"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	RecipeService interface {
		GetRecipeRecommendations(ctx context.Context, req domain.RecipeRecommendationRequest, userID string) (domain.RecipeRecommendationResponse, error)
		BookmarkRecipe(ctx context.Context, req domain.BookmarkRecipeRequest, userID string) error
		RemoveBookmark(ctx context.Context, req domain.BookmarkRecipeRequest, userID string) error
		GetBookmarkedRecipes(ctx context.Context, page, limit int, userID string) ([]domain.Recipe, int64, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		pantryRepository pantry.PantryRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository, pantryRepository pantry.PantryRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		pantryRepository: pantryRepository,
	}
}

func (s *recipeService) GetRecipeRecommendations(ctx context.Context, req domain.RecipeRecommendationRequest, userID string) (domain.RecipeRecommendationResponse, error) {
	items, err := s.pantryRepository.GetAllByUser(ctx, userID)
	if err != nil {
		return domain.RecipeRecommendationResponse{}, err
	}

	now := time.Now()
	expiringItems := 0
	ingredients := make([]map[string]interface{}, 0, len(items))
	for _, item := range items {
		status := shelflife.ExpiryStatusAt(now, item.ExpiryDate)
		if status == shelflife.StatusExpired {
			continue
		}

		expiring := status == shelflife.StatusExpiringSoon || status == shelflife.StatusWarning
		if expiring {
			expiringItems++
		}
		if req.IncludeExpiringOnly && !expiring {
			continue
		}

		ingredients = append(ingredients, map[string]interface{}{
			"name":            item.Name,
			"quantity":        item.Quantity,
			"unit":            item.UnitMeasure,
			"expiryDate":      item.ExpiryDate.Format("2006-01-02"),
			"daysUntilExpiry": shelflife.DaysBetween(now, item.ExpiryDate),
		})
	}

	if len(ingredients) == 0 {
		return domain.RecipeRecommendationResponse{Recipes: []domain.Recipe{}}, domain.ErrNoIngredients
	}

	recipes, err := s.generateRecipeRecommendations(ctx, ingredients, req)
	if err != nil {
		return domain.RecipeRecommendationResponse{}, err
	}

	for i := range recipes {
		isBookmarked, err := s.recipeRepository.IsRecipeBookmarked(ctx, userID, recipes[i].ID)
		if err != nil {
			continue
		}
		recipes[i].IsBookmarked = isBookmarked
	}

	return domain.RecipeRecommendationResponse{
		Recipes:       recipes,
		TotalRecipes:  len(recipes),
		ExpiringItems: expiringItems,
	}, nil
}

func (s *recipeService) generateRecipeRecommendations(ctx context.Context, ingredients []map[string]interface{}, req domain.RecipeRecommendationRequest) ([]domain.Recipe, error) {
	geminiAPIKey := utils.GetConfig("GEMINI_API_KEY")
	if geminiAPIKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable not set")
	}

	geminiModel := utils.GetConfig("GEMINI_MODEL")
	if geminiModel == "" {
		return nil, fmt.Errorf("GEMINI_MODEL environment variable not set")
	}

	filters := map[string]interface{}{}
	if req.CuisineType != "" {
		filters["cuisineType"] = req.CuisineType
	}
	if req.DifficultyLevel != "" {
		filters["difficultyLevel"] = req.DifficultyLevel
	}
	if req.PreparationTime > 0 {
		filters["maxPrepTimeMinutes"] = req.PreparationTime
	}

	ingredientsJSON, _ := json.Marshal(ingredients)
	filtersJSON, _ := json.Marshal(filters)

	prompt := fmt.Sprintf(
		"You are a professional chef specializing in recipe recommendations based on available ingredients. "+
			"Given the following pantry ingredients (with quantities, units, and expiry dates): %s, "+
			"and these preferences/filters: %s, "+
			"generate 5 unique recipe recommendations. "+
			"Prioritize using ingredients that are closest to expiry. "+
			"Generate the response as a valid JSON array containing 5 recipe objects with these fields: "+
			"title, description, prepTimeMinutes, cookTimeMinutes, servings, difficultyLevel, cuisineType. "+
			"Make sure the recipes are realistic and can actually be prepared with the given ingredients. "+
			"Do not include any explanations or text outside of the JSON array.",
		string(ingredientsJSON),
		string(filtersJSON),
	)

	geminiURL := fmt.Sprintf("https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s", geminiModel, geminiAPIKey)

	requestBody := map[string]interface{}{
		"contents": []map[string]interface{}{
			{
				"parts": []map[string]interface{}{
					{"text": prompt},
				},
			},
		},
		"generationConfig": map[string]interface{}{
			"temperature": 0.7,
			"topP":        0.8,
			"topK":        40,
		},
	}

	requestJSON, err := json.Marshal(requestBody)
	if err != nil {
		return nil, err
	}

	httpClient := &http.Client{Timeout: 30 * time.Second}
	geminiReq, err := http.NewRequestWithContext(ctx, "POST", geminiURL, bytes.NewBuffer(requestJSON))
	if err != nil {
		return nil, err
	}
	geminiReq.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(geminiReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("gemini API error: %s - %s", resp.Status, string(bodyBytes))
	}

	var geminiResp struct {
		Candidates []struct {
			Content struct {
				Parts []struct {
					Text string `json:"text"`
				} `json:"parts"`
			} `json:"content"`
		} `json:"candidates"`
	}

	if err := json.NewDecoder(resp.Body).Decode(&geminiResp); err != nil {
		return nil, err
	}

	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return nil, domain.ErrGeminiAPIFailed
	}

	responseText := strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text)

	// Models sometimes wrap the JSON in markdown fences or prose.
	startIdx := strings.Index(responseText, "[")
	endIdx := strings.LastIndex(responseText, "]")
	if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
		startIdx = strings.Index(responseText, "{")
		endIdx = strings.LastIndex(responseText, "}")
		if startIdx == -1 || endIdx == -1 || startIdx > endIdx {
			return nil, fmt.Errorf("invalid response format: %s", responseText)
		}
		responseText = "[" + responseText[startIdx:endIdx+1] + "]"
	} else {
		responseText = responseText[startIdx : endIdx+1]
	}

	var rawRecipes []struct {
		Title           string  `json:"title"`
		Description     string  `json:"description"`
		PrepTimeMinutes float64 `json:"prepTimeMinutes"`
		CookTimeMinutes float64 `json:"cookTimeMinutes"`
		Servings        float64 `json:"servings"`
		DifficultyLevel string  `json:"difficultyLevel"`
		CuisineType     string  `json:"cuisineType"`
	}
	if err := json.Unmarshal([]byte(responseText), &rawRecipes); err != nil {
		return nil, err
	}

	recipes := make([]domain.Recipe, 0, len(rawRecipes))
	for _, raw := range rawRecipes {
		if raw.PrepTimeMinutes == 0 {
			raw.PrepTimeMinutes = 15
		}
		if raw.CookTimeMinutes == 0 {
			raw.CookTimeMinutes = 30
		}
		if raw.Servings == 0 {
			raw.Servings = 4
		}
		if raw.DifficultyLevel == "" {
			raw.DifficultyLevel = "Medium"
		}
		if raw.CuisineType == "" {
			raw.CuisineType = "International"
		}

		recipeID := uuid.New()
		recipe := domain.Recipe{
			ID:              recipeID.String(),
			Title:           raw.Title,
			Description:     raw.Description,
			PrepTimeMinutes: int(raw.PrepTimeMinutes),
			CookTimeMinutes: int(raw.CookTimeMinutes),
			Servings:        int(raw.Servings),
			DifficultyLevel: raw.DifficultyLevel,
			CuisineType:     raw.CuisineType,
			CreatedAt:       time.Now(),
		}

		rawJSON, _ := json.Marshal(raw)
		dbRecipe := entities.Recipe{
			ID:              recipeID,
			Title:           recipe.Title,
			Description:     recipe.Description,
			PrepTimeMinutes: recipe.PrepTimeMinutes,
			CookTimeMinutes: recipe.CookTimeMinutes,
			Servings:        recipe.Servings,
			DifficultyLevel: recipe.DifficultyLevel,
			CuisineType:     recipe.CuisineType,
			Ingredients:     string(rawJSON),
			IsGenerated:     true,
		}

		// Persisted so bookmarks can reference it later; a failure here
		// doesn't block the recommendation.
		_ = s.recipeRepository.CreateRecipe(ctx, &dbRecipe)

		recipes = append(recipes, recipe)
	}

	return recipes, nil
}

func (s *recipeService) BookmarkRecipe(ctx context.Context, req domain.BookmarkRecipeRequest, userID string) error {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.ErrParseUUID
	}
	recipeUUID, err := uuid.Parse(req.RecipeID)
	if err != nil {
		return domain.ErrParseUUID
	}

	if _, err := s.recipeRepository.GetRecipeByID(ctx, req.RecipeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrRecipeNotFound
		}
		return err
	}

	exists, err := s.recipeRepository.IsRecipeBookmarked(ctx, userID, req.RecipeID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	return s.recipeRepository.CreateBookmark(ctx, &entities.RecipeBookmark{
		ID:        uuid.New(),
		UserID:    userUUID,
		RecipeID:  recipeUUID,
		CreatedAt: time.Now(),
	})
}

func (s *recipeService) RemoveBookmark(ctx context.Context, req domain.BookmarkRecipeRequest, userID string) error {
	exists, err := s.recipeRepository.IsRecipeBookmarked(ctx, userID, req.RecipeID)
	if err != nil {
		return err
	}
	if !exists {
		return domain.ErrRecipeNotFound
	}
	return s.recipeRepository.DeleteBookmark(ctx, userID, req.RecipeID)
}

func (s *recipeService) GetBookmarkedRecipes(ctx context.Context, page, limit int, userID string) ([]domain.Recipe, int64, error) {
	recipes, count, err := s.recipeRepository.GetBookmarkedRecipes(ctx, userID, page, limit)
	if err != nil {
		return nil, 0, err
	}

	result := make([]domain.Recipe, 0, len(recipes))
	for _, recipe := range recipes {
		result = append(result, domain.Recipe{
			ID:              recipe.ID.String(),
			Title:           recipe.Title,
			Description:     recipe.Description,
			ImageURL:        recipe.ImageURL,
			PrepTimeMinutes: recipe.PrepTimeMinutes,
			CookTimeMinutes: recipe.CookTimeMinutes,
			Servings:        recipe.Servings,
			DifficultyLevel: recipe.DifficultyLevel,
			CuisineType:     recipe.CuisineType,
			CreatedAt:       recipe.CreatedAt,
			IsBookmarked:    true,
		})
	}

	return result, count, nil
}
