package allergy

import (
	"context"

	"gorm.io/gorm"

	"nutriby-backend/entities"
)

type (
	AllergyRepository interface {
		GetAllergies(ctx context.Context) ([]*entities.Allergy, error)
		GetAllergyByID(ctx context.Context, id uint) (*entities.Allergy, error)
		SearchAllergies(ctx context.Context, query string) ([]*entities.Allergy, error)
	}

	allergyRepository struct {
		db *gorm.DB
	}
)

func NewAllergyRepository(db *gorm.DB) AllergyRepository {
	return &allergyRepository{db: db}
}

func (r *allergyRepository) GetAllergies(ctx context.Context) ([]*entities.Allergy, error) {
	var allergies []*entities.Allergy
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Order("name asc").
		Find(&allergies).Error; err != nil {
		return nil, err
	}
	return allergies, nil
}

func (r *allergyRepository) GetAllergyByID(ctx context.Context, id uint) (*entities.Allergy, error) {
	var allergy entities.Allergy
	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("id = ?", id).
		First(&allergy).Error; err != nil {
		return nil, err
	}
	return &allergy, nil
}

// SearchAllergies matches the allergy name, the symptoms text or the name of
// any trigger ingredient.
func (r *allergyRepository) SearchAllergies(ctx context.Context, query string) ([]*entities.Allergy, error) {
	var allergies []*entities.Allergy
	pattern := "%" + query + "%"

	matchingIngredients := r.db.Table("allergy_ingredients").
		Select("allergy_ingredients.allergy_id").
		Joins("JOIN ingredients ON ingredients.id = allergy_ingredients.ingredient_id").
		Where("ingredients.name LIKE ?", pattern)

	if err := r.db.WithContext(ctx).
		Preload("Ingredients").
		Where("name LIKE ? OR symptoms LIKE ? OR id IN (?)", pattern, pattern, matchingIngredients).
		Order("name asc").
		Find(&allergies).Error; err != nil {
		return nil, err
	}
	return allergies, nil
}
