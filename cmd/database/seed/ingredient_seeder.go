package seed

import (
	"gorm.io/gorm"

	"nutriby-backend/entities"
)

func ptr(v float64) *float64 { return &v }

func SeedIngredients(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Ingredient{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	ingredients := []*entities.Ingredient{
		{Name: "Beras Putih", Category: "grain", Unit: "g", IronMg: ptr(0.2), ZincMg: ptr(0.5)},
		{Name: "Hati Ayam", Category: "protein", Unit: "g", IronMg: ptr(9.0), ZincMg: ptr(2.7)},
		{Name: "Wortel", Category: "vegetable", Unit: "g", IronMg: ptr(0.3), ZincMg: ptr(0.2)},
		{Name: "Minyak Kelapa", Category: "fat", Unit: "ml"},
		{Name: "Minyak Zaitun", Category: "fat", Unit: "ml"},
		{Name: "Ikan Kembung", Category: "protein", Unit: "g", IronMg: ptr(1.6), ZincMg: ptr(0.6)},
		{Name: "Tomat", Category: "vegetable", Unit: "g", IronMg: ptr(0.3), ZincMg: ptr(0.2)},
		{Name: "Bawang Putih", Category: "seasoning", Unit: "clove"},
		{Name: "Daging Sapi", Category: "protein", Unit: "g", IronMg: ptr(2.6), ZincMg: ptr(4.8)},
		{Name: "Daging Ayam", Category: "protein", Unit: "g", IronMg: ptr(0.9), ZincMg: ptr(1.3)},
		{Name: "Brokoli", Category: "vegetable", Unit: "g", IronMg: ptr(0.7), ZincMg: ptr(0.4)},
		{Name: "Susu UHT", Category: "dairy", Unit: "ml", ZincMg: ptr(0.4), IsAllergenHighRisk: true},
		{Name: "Tahu Putih", Category: "protein", Unit: "g", IronMg: ptr(5.4), ZincMg: ptr(0.8)},
		{Name: "Tempe", Category: "protein", Unit: "g", IronMg: ptr(2.7), ZincMg: ptr(1.1)},
		{Name: "Telur Ayam", Category: "protein", Unit: "pc", IronMg: ptr(1.8), ZincMg: ptr(1.3), IsAllergenHighRisk: true},
		{Name: "Kentang", Category: "carb", Unit: "g", IronMg: ptr(0.8), ZincMg: ptr(0.3)},
		{Name: "Ubi Jalar", Category: "carb", Unit: "g", IronMg: ptr(0.6), ZincMg: ptr(0.3)},
		{Name: "Bayam", Category: "vegetable", Unit: "g", IronMg: ptr(2.7), ZincMg: ptr(0.5)},
		{Name: "Udang", Category: "protein", Unit: "g", IronMg: ptr(0.5), ZincMg: ptr(1.6), IsAllergenHighRisk: true},
		{Name: "Cumi", Category: "protein", Unit: "g", IronMg: ptr(0.7), ZincMg: ptr(1.5), IsAllergenHighRisk: true},
		{Name: "Ikan Salmon", Category: "protein", Unit: "g", IronMg: ptr(0.8), ZincMg: ptr(0.6)},
		{Name: "Kacang Hijau", Category: "legume", Unit: "g", IronMg: ptr(6.7), ZincMg: ptr(2.7), IsAllergenHighRisk: true},
		{Name: "Kacang Merah", Category: "legume", Unit: "g", IronMg: ptr(6.7), ZincMg: ptr(2.8)},
		{Name: "Edamame", Category: "legume", Unit: "g", IronMg: ptr(2.3), ZincMg: ptr(1.4)},
		{Name: "Santan", Category: "fat", Unit: "ml", IronMg: ptr(1.6)},
		{Name: "Pisang Ambon", Category: "fruit", Unit: "pc", IronMg: ptr(0.3), ZincMg: ptr(0.2)},
		{Name: "Alpukat", Category: "fruit", Unit: "g", IronMg: ptr(0.6), ZincMg: ptr(0.6)},
		{Name: "Keju", Category: "dairy", Unit: "g", ZincMg: ptr(3.1), IsAllergenHighRisk: true},
		{Name: "Jagung Manis", Category: "vegetable", Unit: "g", IronMg: ptr(0.5), ZincMg: ptr(0.5)},
		{Name: "Roti Tawar", Category: "grain", Unit: "slice", IronMg: ptr(3.6), ZincMg: ptr(0.7)},
	}

	return db.Create(&ingredients).Error
}
