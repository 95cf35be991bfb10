package recipe

import (
	"context"

	"gorm.io/gorm"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
)

type (
	RecipeRepository interface {
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		SearchRecipes(ctx context.Context, query string, page, limit int) ([]*entities.Recipe, int64, error)
		FilterRecipes(ctx context.Context, req domain.FilterRecipesRequest, page, limit int) ([]*entities.Recipe, int64, error)
		GetEligibleRecipes(ctx context.Context, ageInMonths int, maxCost float64, excludedIngredientIDs []uint) ([]*entities.Recipe, error)
	}

	recipeRepository struct {
		db *gorm.DB
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{db: db}
}

func (r *recipeRepository) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Offset(offset).
		Limit(limit).
		Order("title asc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("id = ?", id).
		First(&recipe).Error; err != nil {
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) SearchRecipes(ctx context.Context, query string, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit
	pattern := "%" + query + "%"

	matchingIngredients := r.db.Table("recipe_ingredients").
		Select("recipe_ingredients.recipe_id").
		Joins("JOIN ingredients ON ingredients.id = recipe_ingredients.ingredient_id").
		Where("ingredients.name LIKE ?", pattern)

	base := r.db.WithContext(ctx).Model(&entities.Recipe{}).
		Where("title LIKE ? OR id IN (?)", pattern, matchingIngredients)

	if err := base.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := base.
		Preload("Ingredients").
		Offset(offset).
		Limit(limit).
		Order("title asc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

func (r *recipeRepository) FilterRecipes(ctx context.Context, req domain.FilterRecipesRequest, page, limit int) ([]*entities.Recipe, int64, error) {
	var recipes []*entities.Recipe
	var count int64
	offset := (page - 1) * limit

	query := r.db.WithContext(ctx).Model(&entities.Recipe{})

	if req.AgeInMonths > 0 {
		query = query.
			Where("min_age_months <= ?", req.AgeInMonths).
			Where("max_age_months IS NULL OR max_age_months >= ?", req.AgeInMonths)
	}
	if req.MaxCost > 0 {
		query = query.Where("estimated_cost <= ?", req.MaxCost)
	}
	if req.NutritionFocus != "" {
		query = query.Where("nutrition_focus = ?", req.NutritionFocus)
	}
	if len(req.AllergyIDs) > 0 {
		triggerIngredients := r.db.Table("allergy_ingredients").
			Select("ingredient_id").
			Where("allergy_id IN ?", req.AllergyIDs)
		excluded := r.db.Table("recipe_ingredients").
			Select("recipe_id").
			Where("ingredient_id IN (?)", triggerIngredients)
		query = query.Where("id NOT IN (?)", excluded)
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := query.
		Preload("Ingredients").
		Offset(offset).
		Limit(limit).
		Order("estimated_cost asc").
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// GetEligibleRecipes returns the pool passing the hard constraints: the age
// window includes ageInMonths, cost is within maxCost (ignored when maxCost
// is negative) and none of the excluded ingredients appear. Results come back
// in stable primary-key order with ingredients preloaded for scoring.
func (r *recipeRepository) GetEligibleRecipes(ctx context.Context, ageInMonths int, maxCost float64, excludedIngredientIDs []uint) ([]*entities.Recipe, error) {
	var recipes []*entities.Recipe

	query := r.db.WithContext(ctx).
		Where("min_age_months <= ?", ageInMonths).
		Where("max_age_months IS NULL OR max_age_months >= ?", ageInMonths)

	if maxCost >= 0 {
		query = query.Where("estimated_cost <= ?", maxCost)
	}
	if len(excludedIngredientIDs) > 0 {
		excluded := r.db.Table("recipe_ingredients").
			Select("recipe_id").
			Where("ingredient_id IN ?", excludedIngredientIDs)
		query = query.Where("id NOT IN (?)", excluded)
	}

	if err := query.
		Preload("Ingredients").
		Order("id asc").
		Find(&recipes).Error; err != nil {
		return nil, err
	}

	return recipes, nil
}
