package entities

type Recipe struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Title        string `json:"title"`
	Description  string `gorm:"type:text" json:"description"`
	Instructions string `gorm:"type:text" json:"instructions"`
	ImageURL     string `json:"image_url,omitempty"`

	MinAgeMonths int    `json:"min_age_months"`
	MaxAgeMonths *int   `json:"max_age_months"` // null means no upper bound
	Texture      string `json:"texture"`

	EstimatedCost int64   `json:"estimated_cost"` // per serving
	ServingSize   int     `json:"serving_size"`
	Calories      float64 `json:"calories"`
	ProteinGrams  float64 `json:"protein_grams"`
	FatGrams      float64 `json:"fat_grams"`

	NutritionFocus string  `json:"nutrition_focus"` // general, weight_booster, height_booster, immune_booster
	IronTotalMg    float64 `json:"iron_total_mg"`
	ZincTotalMg    float64 `json:"zinc_total_mg"`

	Ingredients []*Ingredient `gorm:"many2many:recipe_ingredients" json:"ingredients,omitempty"`
	Timestamp
}

// RecipeIngredient is the join row between recipes and ingredients, carrying
// the per-pairing quantity annotation (e.g. "2 tbsp").
type RecipeIngredient struct {
	RecipeID     uint   `gorm:"primaryKey" json:"recipe_id"`
	IngredientID uint   `gorm:"primaryKey" json:"ingredient_id"`
	Quantity     string `json:"quantity"`
}
