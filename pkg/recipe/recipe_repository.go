package recipe

import (
	"context"

	"pantry-tracker-api/entities"

	"gorm.io/gorm"
)

type (
	RecipeRepository interface {
		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error)
		IsRecipeBookmarked(ctx context.Context, userID string, recipeID string) (bool, error)
		CreateBookmark(ctx context.Context, bookmark *entities.RecipeBookmark) error
		DeleteBookmark(ctx context.Context, userID string, recipeID string) error
		GetBookmarkedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.Recipe, int64, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Create(recipe).Error
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id string) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) IsRecipeBookmarked(ctx context.Context, userID string, recipeID string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&entities.RecipeBookmark{}).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *recipeRepository) CreateBookmark(ctx context.Context, bookmark *entities.RecipeBookmark) error {
	return r.db.WithContext(ctx).Create(bookmark).Error
}

func (r *recipeRepository) DeleteBookmark(ctx context.Context, userID string, recipeID string) error {
	return r.db.WithContext(ctx).
		Where("user_id = ? AND recipe_id = ?", userID, recipeID).
		Delete(&entities.RecipeBookmark{}).Error
}

func (r *recipeRepository) GetBookmarkedRecipes(ctx context.Context, userID string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64

	offset := (page - 1) * limit

	base := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Joins("JOIN recipe_bookmarks ON recipe_bookmarks.recipe_id = recipes.id").
		Where("recipe_bookmarks.user_id = ?", userID)

	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := base.Order("recipe_bookmarks.created_at desc").
		Offset(offset).Limit(limit).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}
