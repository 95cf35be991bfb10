package recipe

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.SetupJoinTable(&entities.Recipe{}, "Ingredients", &entities.RecipeIngredient{})
	assert.NoError(t, err)
	err = db.AutoMigrate(&entities.Ingredient{}, &entities.Allergy{}, &entities.Recipe{})
	assert.NoError(t, err)

	return db
}

func intPtr(v int) *int { return &v }

func seedCatalog(t *testing.T, db *gorm.DB) (egg *entities.Ingredient, eggAllergy *entities.Allergy) {
	egg = &entities.Ingredient{Name: "Telur Ayam", IsAllergenHighRisk: true}
	carrot := &entities.Ingredient{Name: "Wortel"}
	assert.NoError(t, db.Create(egg).Error)
	assert.NoError(t, db.Create(carrot).Error)

	eggAllergy = &entities.Allergy{Name: "Alergi Telur", Ingredients: []*entities.Ingredient{egg}}
	assert.NoError(t, db.Create(eggAllergy).Error)

	recipes := []*entities.Recipe{
		{Title: "Bubur Wortel", MinAgeMonths: 6, MaxAgeMonths: intPtr(9), EstimatedCost: 5000,
			NutritionFocus: domain.FocusGeneral, Ingredients: []*entities.Ingredient{carrot}},
		{Title: "Omelet Sayur", MinAgeMonths: 10, EstimatedCost: 7000,
			NutritionFocus: domain.FocusWeightBooster, Ingredients: []*entities.Ingredient{egg, carrot}},
		{Title: "Nasi Tim Ayam", MinAgeMonths: 9, MaxAgeMonths: intPtr(18), EstimatedCost: 12000,
			NutritionFocus: domain.FocusHeightBooster},
	}
	for _, r := range recipes {
		assert.NoError(t, db.Create(r).Error)
	}
	return egg, eggAllergy
}

func TestSearchRecipesMatchesTitleAndIngredient(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := NewRecipeRepository(db)

	byTitle, count, err := repo.SearchRecipes(context.Background(), "Nasi", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(1), count)
	assert.Len(t, byTitle, 1)
	assert.Equal(t, "Nasi Tim Ayam", byTitle[0].Title)

	byIngredient, count, err := repo.SearchRecipes(context.Background(), "Wortel", 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	assert.Len(t, byIngredient, 2)
}

func TestFilterRecipesByAgeWindow(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := NewRecipeRepository(db)

	recipes, count, err := repo.FilterRecipes(context.Background(), domain.FilterRecipesRequest{
		AgeInMonths: 12,
	}, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	for _, r := range recipes {
		assert.LessOrEqual(t, r.MinAgeMonths, 12)
	}
}

func TestFilterRecipesExcludesAllergyTriggers(t *testing.T) {
	db := setupTestDB(t)
	_, eggAllergy := seedCatalog(t, db)
	repo := NewRecipeRepository(db)

	recipes, count, err := repo.FilterRecipes(context.Background(), domain.FilterRecipesRequest{
		AllergyIDs: []uint{eggAllergy.ID},
	}, 1, 20)
	assert.NoError(t, err)
	assert.Equal(t, int64(2), count)
	for _, r := range recipes {
		assert.NotEqual(t, "Omelet Sayur", r.Title)
	}
}

func TestGetEligibleRecipesHardConstraints(t *testing.T) {
	db := setupTestDB(t)
	egg, _ := seedCatalog(t, db)
	repo := NewRecipeRepository(db)

	// Age 12 excludes Bubur Wortel (max age 9). Unlimited cost.
	eligible, err := repo.GetEligibleRecipes(context.Background(), 12, -1, nil)
	assert.NoError(t, err)
	assert.Len(t, eligible, 2)

	// Cost cap excludes Nasi Tim Ayam.
	eligible, err = repo.GetEligibleRecipes(context.Background(), 12, 8000, nil)
	assert.NoError(t, err)
	assert.Len(t, eligible, 1)
	assert.Equal(t, "Omelet Sayur", eligible[0].Title)

	// Excluding egg leaves only the egg-free recipe.
	eligible, err = repo.GetEligibleRecipes(context.Background(), 12, -1, []uint{egg.ID})
	assert.NoError(t, err)
	assert.Len(t, eligible, 1)
	assert.Equal(t, "Nasi Tim Ayam", eligible[0].Title)
}

func TestGetRecipeByIDPreloadsIngredients(t *testing.T) {
	db := setupTestDB(t)
	seedCatalog(t, db)
	repo := NewRecipeRepository(db)

	var omelet entities.Recipe
	assert.NoError(t, db.Where("title = ?", "Omelet Sayur").First(&omelet).Error)

	got, err := repo.GetRecipeByID(context.Background(), omelet.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Ingredients, 2)

	_, err = repo.GetRecipeByID(context.Background(), omelet.ID+999)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}
