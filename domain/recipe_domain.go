package domain

import (
	"errors"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessSearchRecipes   = "success search recipes"
	MessageSuccessFilterRecipes   = "success filter recipes"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedSearchRecipes   = "failed to search recipes"
	MessageFailedFilterRecipes   = "failed to filter recipes"

	ErrRecipeNotFound = errors.New("recipe not found")
)

type (
	SearchRecipesRequest struct {
		Query string `json:"q" validate:"required,min=3"`
	}

	// FilterRecipesRequest narrows the catalog for the daily-search feature.
	// Zero values mean "no constraint" for that field.
	FilterRecipesRequest struct {
		AgeInMonths    int    `json:"age_in_months" validate:"omitempty,min=0"`
		MaxCost        int64  `json:"max_cost" validate:"omitempty,min=0"`
		NutritionFocus string `json:"nutrition_focus" validate:"omitempty,oneof=general weight_booster height_booster immune_booster"`
		AllergyIDs     []uint `json:"allergy_ids"`
	}
)
