package ingredient

import (
	"context"

	"gorm.io/gorm"

	"nutriby-backend/entities"
)

type (
	IngredientRepository interface {
		GetIngredients(ctx context.Context, page, limit int) ([]*entities.Ingredient, int64, error)
	}

	ingredientRepository struct {
		db *gorm.DB
	}
)

func NewIngredientRepository(db *gorm.DB) IngredientRepository {
	return &ingredientRepository{db: db}
}

func (r *ingredientRepository) GetIngredients(ctx context.Context, page, limit int) ([]*entities.Ingredient, int64, error) {
	var ingredients []*entities.Ingredient
	var count int64
	offset := (page - 1) * limit

	if err := r.db.WithContext(ctx).Model(&entities.Ingredient{}).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.db.WithContext(ctx).
		Offset(offset).
		Limit(limit).
		Order("name asc").
		Find(&ingredients).Error; err != nil {
		return nil, 0, err
	}

	return ingredients, count, nil
}
