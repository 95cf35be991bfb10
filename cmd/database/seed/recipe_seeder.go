package seed

import (
	"gorm.io/gorm"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
)

type seedRecipe struct {
	title       string
	minAge      int
	maxAge      *int
	texture     string
	cost        int64
	calories    float64
	protein     float64
	fat         float64
	focus       string
	ingredients map[string]string
}

func intPtr(v int) *int { return &v }

func SeedRecipes(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Recipe{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	recipes := []seedRecipe{
		{"Bubur Hati Ayam Wortel", 6, intPtr(8), "puree", 7000, 130, 12, 5, domain.FocusImmuneBooster,
			map[string]string{"Beras Putih": "20g", "Hati Ayam": "25g", "Wortel": "10g", "Minyak Zaitun": "1 sdt"}},
		{"Tim Ikan Kembung Tomat", 8, intPtr(12), "mashed", 9000, 150, 11, 7, domain.FocusGeneral,
			map[string]string{"Beras Putih": "30g", "Ikan Kembung": "30g", "Tomat": "10g", "Bawang Putih": "1 siung"}},
		{"Nasi Lembek Daging Sapi Brokoli", 9, intPtr(18), "soft_chunks", 15000, 180, 15, 8, domain.FocusHeightBooster,
			map[string]string{"Beras Putih": "40g", "Daging Sapi": "30g", "Brokoli": "15g", "Keju": "1 sdm"}},
		{"Puree Kentang Bayam & Telur", 7, intPtr(10), "puree", 6000, 140, 8, 6, domain.FocusGeneral,
			map[string]string{"Kentang": "50g", "Bayam": "10g", "Telur Ayam": "1/2 butir", "Susu UHT": "30ml"}},
		{"Bubur Sumsum Kacang Hijau", 6, nil, "puree", 5000, 160, 5, 7, domain.FocusWeightBooster,
			map[string]string{"Kacang Hijau": "20g", "Santan": "50ml"}},
		{"Risotto Tahu Udang", 10, intPtr(24), "soft_chunks", 12000, 170, 13, 6, domain.FocusHeightBooster,
			map[string]string{"Beras Putih": "40g", "Tahu Putih": "20g", "Udang": "25g", "Keju": "1 sdm"}},
		{"Pancake Pisang Sederhana", 9, nil, "finger_food", 4000, 110, 4, 4, domain.FocusGeneral,
			map[string]string{"Pisang Ambon": "1/2 buah", "Telur Ayam": "1/2 butir"}},
		{"Puding Alpukat Santan", 7, nil, "puree", 8000, 190, 3, 15, domain.FocusWeightBooster,
			map[string]string{"Alpukat": "50g", "Santan": "40ml"}},
		{"Bola Nasi Ikan Isi Keju", 12, nil, "finger_food", 11000, 160, 10, 6, domain.FocusGeneral,
			map[string]string{"Beras Putih": "50g", "Ikan Kembung": "20g", "Keju": "10g", "Wortel": "5g"}},
		{"Omelet Sayur Mini", 10, intPtr(24), "finger_food", 7000, 130, 9, 8, domain.FocusGeneral,
			map[string]string{"Telur Ayam": "1 butir", "Wortel": "5g", "Bayam": "5g", "Keju": "1 sdt"}},
		{"Sup Jagung Manis & Daging Ayam", 8, nil, "mashed", 8500, 145, 10, 5, domain.FocusGeneral,
			map[string]string{"Jagung Manis": "30g", "Daging Ayam": "25g", "Wortel": "10g"}},
		{"Bubur Salmon & Brokoli", 7, intPtr(10), "puree", 18000, 200, 14, 11, domain.FocusWeightBooster,
			map[string]string{"Beras Putih": "20g", "Ikan Salmon": "30g", "Brokoli": "15g"}},
		{"Nasi Tim Tempe Hati Ayam", 9, intPtr(18), "soft_chunks", 6500, 165, 13, 6, domain.FocusImmuneBooster,
			map[string]string{"Beras Putih": "35g", "Tempe": "20g", "Hati Ayam": "20g"}},
		{"Ubi Jalar Kukus Lumat", 6, nil, "puree", 3000, 90, 2, 1, domain.FocusGeneral,
			map[string]string{"Ubi Jalar": "80g"}},
		{"Stick Kentang & Keju Panggang", 10, nil, "finger_food", 5500, 120, 5, 7, domain.FocusGeneral,
			map[string]string{"Kentang": "60g", "Keju": "15g", "Minyak Zaitun": "1/2 sdt"}},
		{"Bubur Kacang Merah & Daging Sapi", 8, intPtr(12), "mashed", 14000, 190, 16, 9, domain.FocusHeightBooster,
			map[string]string{"Kacang Merah": "25g", "Daging Sapi": "25g", "Beras Putih": "20g"}},
		{"Mashed Potato & Salmon", 8, nil, "mashed", 17000, 210, 13, 12, domain.FocusWeightBooster,
			map[string]string{"Kentang": "60g", "Ikan Salmon": "25g", "Susu UHT": "20ml"}},
		{"Nasi Goreng Bayi (Tanpa Garam)", 12, nil, "soft_chunks", 9500, 175, 11, 8, domain.FocusGeneral,
			map[string]string{"Beras Putih": "40g", "Telur Ayam": "1/2 butir", "Daging Ayam": "20g", "Bawang Putih": "1/2 siung"}},
		{"Sup Krim Tomat & Roti Tawar", 9, nil, "mashed", 6000, 115, 4, 5, domain.FocusGeneral,
			map[string]string{"Tomat": "1 buah", "Roti Tawar": "1/2 lembar", "Susu UHT": "50ml"}},
		{"Tumis Cumi & Jagung Manis", 11, intPtr(24), "soft_chunks", 13000, 160, 12, 7, domain.FocusGeneral,
			map[string]string{"Cumi": "30g", "Jagung Manis": "20g", "Bawang Putih": "1/2 siung"}},
		{"Bubur Edamame & Ayam", 7, intPtr(10), "puree", 9000, 155, 14, 6, domain.FocusHeightBooster,
			map[string]string{"Edamame": "30g", "Daging Ayam": "25g", "Beras Putih": "15g"}},
		{"Perkedel Tahu & Wortel", 10, nil, "finger_food", 4500, 100, 8, 5, domain.FocusGeneral,
			map[string]string{"Tahu Putih": "40g", "Wortel": "10g", "Telur Ayam": "1/4 butir"}},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		for _, r := range recipes {
			if err := createRecipe(tx, r); err != nil {
				return err
			}
		}
		return nil
	})
}

func createRecipe(tx *gorm.DB, r seedRecipe) error {
	recipe := &entities.Recipe{
		Title:          r.title,
		Description:    "Menu lezat dan bergizi untuk si kecil.",
		Instructions:   "Campurkan semua bahan dan masak hingga matang dan empuk. Sesuaikan tekstur dengan kemampuan bayi.",
		MinAgeMonths:   r.minAge,
		MaxAgeMonths:   r.maxAge,
		Texture:        r.texture,
		EstimatedCost:  r.cost,
		ServingSize:    1,
		Calories:       r.calories,
		ProteinGrams:   r.protein,
		FatGrams:       r.fat,
		NutritionFocus: r.focus,
	}
	if err := tx.Create(recipe).Error; err != nil {
		return err
	}

	ironTotal, zincTotal := 0.0, 0.0
	for name, quantity := range r.ingredients {
		var ingredient entities.Ingredient
		if err := tx.Where("name = ?", name).First(&ingredient).Error; err != nil {
			// Seed data may reference an ingredient that is not stocked.
			continue
		}
		join := entities.RecipeIngredient{
			RecipeID:     recipe.ID,
			IngredientID: ingredient.ID,
			Quantity:     quantity,
		}
		if err := tx.Create(&join).Error; err != nil {
			return err
		}
		if ingredient.IronMg != nil {
			ironTotal += *ingredient.IronMg
		}
		if ingredient.ZincMg != nil {
			zincTotal += *ingredient.ZincMg
		}
	}

	return tx.Model(recipe).Updates(map[string]interface{}{
		"iron_total_mg": ironTotal,
		"zinc_total_mg": zincTotal,
	}).Error
}
