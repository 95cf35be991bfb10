package ingredient

import (
	"context"

	"nutriby-backend/entities"
)

type (
	IngredientService interface {
		GetIngredients(ctx context.Context, page, limit int) ([]*entities.Ingredient, int64, error)
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
	}
)

func NewIngredientService(ingredientRepository IngredientRepository) IngredientService {
	return &ingredientService{ingredientRepository: ingredientRepository}
}

func (s *ingredientService) GetIngredients(ctx context.Context, page, limit int) ([]*entities.Ingredient, int64, error) {
	return s.ingredientRepository.GetIngredients(ctx, page, limit)
}
