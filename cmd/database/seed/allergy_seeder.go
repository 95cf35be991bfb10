package seed

import (
	"gorm.io/gorm"

	"nutriby-backend/entities"
)

func SeedAllergies(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.Allergy{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	allergies := []struct {
		allergy     entities.Allergy
		ingredients []string
	}{
		{
			allergy: entities.Allergy{
				Name:                  "Alergi Telur",
				Symptoms:              "Ruam kulit atau gatal-gatal, bengkak di sekitar mulut, gangguan pencernaan seperti muntah atau diare, hingga reaksi anafilaksis pada kasus berat.",
				HandlingAndPrevention: "Hindari semua produk yang mengandung telur. Perhatikan label makanan dengan cermat. Konsultasikan dengan dokter untuk diagnosis dan penanganan yang tepat. Pengenalan telur dapat dimulai sejak usia 6 bulan secara bertahap.",
			},
			ingredients: []string{"Telur Ayam"},
		},
		{
			allergy: entities.Allergy{
				Name:                  "Alergi Seafood",
				Symptoms:              "Gatal di mulut, ruam kulit (biduran), pembengkakan pada wajah, bibir, atau lidah, sakit perut, dan kesulitan bernapas.",
				HandlingAndPrevention: "Hindari udang dan jenis seafood bercangkang lainnya. Selalu informasikan riwayat alergi saat makan di luar. Siapkan obat anti-alergi sesuai anjuran dokter.",
			},
			ingredients: []string{"Udang", "Cumi"},
		},
		{
			allergy: entities.Allergy{
				Name:                  "Alergi Susu Sapi",
				Symptoms:              "Masalah pencernaan (diare, muntah, sembelit), ruam kulit (eksim), hingga gejala pernapasan seperti mengi. Jangan samakan dengan intoleransi laktosa.",
				HandlingAndPrevention: "Hindari susu sapi dan produk turunannya seperti keju dan yogurt. Gunakan formula hipoalergenik atau alternatif susu lain sesuai rekomendasi dokter anak.",
			},
			ingredients: []string{"Susu UHT", "Keju"},
		},
		{
			allergy: entities.Allergy{
				Name:                  "Alergi Kacang",
				Symptoms:              "Reaksi bisa sangat berat dan cepat, termasuk anafilaksis. Gejala ringan meliputi gatal-gatal, ruam, dan sakit perut.",
				HandlingAndPrevention: "Hindari semua jenis kacang dan produk yang mungkin terkontaminasi kacang. Baca label makanan dengan sangat teliti. Bawa selalu epinefrin auto-injector jika diresepkan oleh dokter.",
			},
			ingredients: []string{"Kacang Hijau", "Kacang Merah", "Edamame"},
		},
	}

	for _, item := range allergies {
		var triggers []*entities.Ingredient
		if err := db.Where("name IN ?", item.ingredients).Find(&triggers).Error; err != nil {
			return err
		}
		item.allergy.Ingredients = triggers
		if err := db.Create(&item.allergy).Error; err != nil {
			return err
		}
	}
	return nil
}
