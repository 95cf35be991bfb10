package entities

import (
	"time"

	"github.com/google/uuid"

	"nutriby-backend/domain"
)

type Child struct {
	ID                  uint      `gorm:"primarykey" json:"id"`
	UserID              uuid.UUID `json:"user_id"`
	Name                string    `json:"name"`
	BirthDate           time.Time `gorm:"type:date" json:"birth_date"`
	Gender              string    `json:"gender"` // "male" or "female"
	CurrentWeight       float64   `json:"current_weight"` // kg
	CurrentHeight       float64   `json:"current_height"` // cm
	ParentMonthlyIncome int64     `json:"parent_monthly_income"`
	ImageURL            string    `json:"image_url,omitempty"`

	NutritionalStatusHFA   domain.NutritionalStatus `json:"nutritional_status_hfa"`
	NutritionalStatusWFA   domain.NutritionalStatus `json:"nutritional_status_wfa"`
	NutritionalStatusWFH   domain.NutritionalStatus `json:"nutritional_status_wfh"`
	NutritionalStatusNotes string                   `gorm:"type:text" json:"nutritional_status_notes"`

	// Nullable until the first budget derivation runs.
	BudgetMin *int64 `json:"budget_min"`
	BudgetMax *int64 `json:"budget_max"`

	User                *User                 `gorm:"foreignKey:UserID" json:"-"`
	GrowthHistories     []*ChildGrowthHistory `gorm:"foreignKey:ChildID;constraint:OnDelete:CASCADE" json:"growth_histories,omitempty"`
	Allergies           []*Allergy            `gorm:"many2many:child_allergies;constraint:OnDelete:CASCADE" json:"allergies,omitempty"`
	FavoriteIngredients []*Ingredient         `gorm:"many2many:child_favorite_ingredients;constraint:OnDelete:CASCADE" json:"favorite_ingredients,omitempty"`
	WeeklyPlans         []*WeeklyPlan         `gorm:"foreignKey:ChildID;constraint:OnDelete:CASCADE" json:"-"`
	Timestamp
}

// AllergenIngredientIDs flattens the child's allergy groups into the union of
// their trigger ingredient IDs. Requires Allergies.Ingredients to be loaded.
func (c *Child) AllergenIngredientIDs() []uint {
	seen := make(map[uint]bool)
	var ids []uint
	for _, allergy := range c.Allergies {
		for _, ingredient := range allergy.Ingredients {
			if !seen[ingredient.ID] {
				seen[ingredient.ID] = true
				ids = append(ids, ingredient.ID)
			}
		}
	}
	return ids
}

// FavoriteIngredientIDSet returns the child's favorite ingredient IDs as a
// set for membership checks during recipe scoring.
func (c *Child) FavoriteIngredientIDSet() map[uint]bool {
	set := make(map[uint]bool, len(c.FavoriteIngredients))
	for _, ingredient := range c.FavoriteIngredients {
		set[ingredient.ID] = true
	}
	return set
}

// ChildGrowthHistory is an append-only snapshot taken every time the child's
// status and budget are re-derived. Rows are never updated.
type ChildGrowthHistory struct {
	ID                         uint                     `gorm:"primarykey" json:"id"`
	ChildID                    uint                     `json:"child_id"`
	RecordDate                 time.Time                `gorm:"type:date" json:"record_date"`
	Weight                     float64                  `json:"weight"`
	Height                     float64                  `json:"height"`
	NutritionalStatusHFA       domain.NutritionalStatus `json:"nutritional_status_hfa"`
	ZScoreHFA                  *float64                 `json:"z_score_hfa"`
	ZScoreWFA                  *float64                 `json:"z_score_wfa"`
	ZScoreWFH                  *float64                 `json:"z_score_wfh"`
	RecommendedBudgetAtTheTime *int64                   `json:"recommended_budget_at_the_time"`

	Child *Child `gorm:"foreignKey:ChildID" json:"-"`
	Timestamp
}
