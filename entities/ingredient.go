package entities

type Ingredient struct {
	ID                 uint     `gorm:"primarykey" json:"id"`
	Name               string   `json:"name"`
	Category           string   `json:"category"`
	Description        string   `gorm:"type:text" json:"description,omitempty"`
	Unit               string   `json:"unit,omitempty"`
	IronMg             *float64 `json:"iron_mg"`
	ZincMg             *float64 `json:"zinc_mg"`
	IsAllergenHighRisk bool     `json:"is_allergen_high_risk"`
	ImageURL           string   `json:"image_url,omitempty"`

	Recipes   []*Recipe  `gorm:"many2many:recipe_ingredients" json:"-"`
	Allergies []*Allergy `gorm:"many2many:allergy_ingredients" json:"-"`
	Timestamp
}

// Allergy is a named allergen group (e.g. "Egg Allergy"); its Ingredients are
// the trigger ingredients for that group.
type Allergy struct {
	ID                    uint   `gorm:"primarykey" json:"id"`
	Name                  string `json:"name"`
	Symptoms              string `gorm:"type:text" json:"symptoms"`
	HandlingAndPrevention string `gorm:"type:text" json:"handling_and_prevention"`

	Ingredients []*Ingredient `gorm:"many2many:allergy_ingredients" json:"ingredients,omitempty"`
	Timestamp
}
