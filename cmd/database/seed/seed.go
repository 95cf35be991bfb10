package seed

import (
	"fmt"
	"log"

	"gorm.io/gorm"
)

// Seed fills the reference tables the service reads but never writes. Each
// seeder is idempotent and skips tables that already have rows.
func Seed(db *gorm.DB) error {
	if err := SeedGrowthStandards(db); err != nil {
		log.Printf("Error seeding growth standards: %v", err)
		return err
	}
	if err := SeedIngredients(db); err != nil {
		log.Printf("Error seeding ingredients: %v", err)
		return err
	}
	if err := SeedAllergies(db); err != nil {
		log.Printf("Error seeding allergies: %v", err)
		return err
	}
	if err := SeedRecipes(db); err != nil {
		log.Printf("Error seeding recipes: %v", err)
		return err
	}

	fmt.Println("Database seeding complete")
	return nil
}
