package child

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutriby-backend/entities"
)

type (
	ChildRepository interface {
		CreateChild(ctx context.Context, child *entities.Child) error
		GetChildByID(ctx context.Context, id uint) (*entities.Child, error)
		GetChildrenByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Child, error)
		UpdateChild(ctx context.Context, child *entities.Child) error
		UpdateChildWithHistory(ctx context.Context, child *entities.Child, history *entities.ChildGrowthHistory) error
		ReplaceAllergies(ctx context.Context, child *entities.Child, allergyIDs []uint) error
		ReplaceFavorites(ctx context.Context, child *entities.Child, ingredientIDs []uint) error
	}

	childRepository struct {
		db *gorm.DB
	}
)

func NewChildRepository(db *gorm.DB) ChildRepository {
	return &childRepository{db: db}
}

func (r *childRepository) CreateChild(ctx context.Context, child *entities.Child) error {
	return r.db.WithContext(ctx).Create(child).Error
}

func (r *childRepository) GetChildByID(ctx context.Context, id uint) (*entities.Child, error) {
	var child entities.Child
	if err := r.db.WithContext(ctx).
		Preload("Allergies.Ingredients").
		Preload("FavoriteIngredients").
		Preload("GrowthHistories", func(db *gorm.DB) *gorm.DB {
			return db.Order("record_date asc")
		}).
		Where("id = ?", id).
		First(&child).Error; err != nil {
		return nil, err
	}
	return &child, nil
}

func (r *childRepository) GetChildrenByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Child, error) {
	var children []*entities.Child
	if err := r.db.WithContext(ctx).
		Preload("Allergies.Ingredients").
		Preload("FavoriteIngredients").
		Preload("GrowthHistories", func(db *gorm.DB) *gorm.DB {
			return db.Order("record_date asc")
		}).
		Where("user_id = ?", userID).
		Order("created_at asc").
		Find(&children).Error; err != nil {
		return nil, err
	}
	return children, nil
}

func (r *childRepository) UpdateChild(ctx context.Context, child *entities.Child) error {
	return r.db.WithContext(ctx).Save(child).Error
}

// UpdateChildWithHistory persists the re-derived status and budget fields
// together with the growth-history snapshot for that derivation. One
// transaction, so the snapshot count always matches the derivation count.
func (r *childRepository) UpdateChildWithHistory(ctx context.Context, child *entities.Child, history *entities.ChildGrowthHistory) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(child).Error; err != nil {
			return err
		}
		history.ChildID = child.ID
		return tx.Create(history).Error
	})
}

func (r *childRepository) ReplaceAllergies(ctx context.Context, child *entities.Child, allergyIDs []uint) error {
	var allergies []*entities.Allergy
	if len(allergyIDs) > 0 {
		if err := r.db.WithContext(ctx).Find(&allergies, allergyIDs).Error; err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Model(child).Association("Allergies").Replace(allergies)
}

func (r *childRepository) ReplaceFavorites(ctx context.Context, child *entities.Child, ingredientIDs []uint) error {
	var ingredients []*entities.Ingredient
	if len(ingredientIDs) > 0 {
		if err := r.db.WithContext(ctx).Find(&ingredients, ingredientIDs).Error; err != nil {
			return err
		}
	}
	return r.db.WithContext(ctx).Model(child).Association("FavoriteIngredients").Replace(ingredients)
}
