package migration

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"nutriby-backend/entities"
)

func Migrate(db *gorm.DB) error {
	db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")

	// The recipe-ingredient join row carries a quantity, so GORM needs the
	// custom join table registered before migrating either side.
	if err := db.SetupJoinTable(&entities.Recipe{}, "Ingredients", &entities.RecipeIngredient{}); err != nil {
		log.Fatalf("Error setting up recipe ingredients join table: %v", err)
		return err
	}

	if err := db.AutoMigrate(&entities.User{}); err != nil {
		log.Fatalf("Error migrating user database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.GrowthStandard{}); err != nil {
		log.Fatalf("Error migrating growth standard database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Ingredient{}); err != nil {
		log.Fatalf("Error migrating ingredient database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Allergy{}); err != nil {
		log.Fatalf("Error migrating allergy database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Recipe{}); err != nil {
		log.Fatalf("Error migrating recipe database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.Child{}); err != nil {
		log.Fatalf("Error migrating child database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.ChildGrowthHistory{}); err != nil {
		log.Fatalf("Error migrating child growth history database: %v", err)
		return err
	}
	if err := db.AutoMigrate(&entities.WeeklyPlan{}, &entities.WeeklyPlanDetail{}); err != nil {
		log.Fatalf("Error migrating weekly plan database: %v", err)
		return err
	}

	fmt.Println("Database migration complete")
	return nil
}
