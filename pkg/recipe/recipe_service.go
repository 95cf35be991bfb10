package recipe

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
)

type (
	RecipeService interface {
		GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error)
		GetRecipeDetail(ctx context.Context, recipeID uint) (*entities.Recipe, error)
		SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest, page, limit int) ([]*entities.Recipe, int64, error)
		FilterRecipes(ctx context.Context, req domain.FilterRecipesRequest, page, limit int) ([]*entities.Recipe, int64, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{recipeRepository: recipeRepository}
}

func (s *recipeService) GetRecipes(ctx context.Context, page, limit int) ([]*entities.Recipe, int64, error) {
	return s.recipeRepository.GetRecipes(ctx, page, limit)
}

func (s *recipeService) GetRecipeDetail(ctx context.Context, recipeID uint) (*entities.Recipe, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, recipeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipe, nil
}

func (s *recipeService) SearchRecipes(ctx context.Context, req domain.SearchRecipesRequest, page, limit int) ([]*entities.Recipe, int64, error) {
	return s.recipeRepository.SearchRecipes(ctx, req.Query, page, limit)
}

func (s *recipeService) FilterRecipes(ctx context.Context, req domain.FilterRecipesRequest, page, limit int) ([]*entities.Recipe, int64, error) {
	return s.recipeRepository.FilterRecipes(ctx, req, page, limit)
}
