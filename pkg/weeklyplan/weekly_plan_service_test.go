package weeklyplan

import (
	"context"
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
	"nutriby-backend/pkg/recipe"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.SetupJoinTable(&entities.Recipe{}, "Ingredients", &entities.RecipeIngredient{})
	assert.NoError(t, err)
	err = db.AutoMigrate(
		&entities.Ingredient{},
		&entities.Allergy{},
		&entities.Recipe{},
		&entities.Child{},
		&entities.WeeklyPlan{},
		&entities.WeeklyPlanDetail{},
	)
	assert.NoError(t, err)

	return db
}

func newService(db *gorm.DB, seed int64) WeeklyPlanService {
	return NewWeeklyPlanService(
		NewWeeklyPlanRepository(db),
		recipe.NewRecipeRepository(db),
		rand.New(rand.NewSource(seed)),
	)
}

func seedEligibleRecipes(t *testing.T, db *gorm.DB, n int) {
	for i := 0; i < n; i++ {
		r := &entities.Recipe{
			Title:         fmt.Sprintf("Recipe %d", i+1),
			MinAgeMonths:  6,
			EstimatedCost: 8000,
			Calories:      140,
			ProteinGrams:  9,
		}
		assert.NoError(t, db.Create(r).Error)
	}
}

func planChild(t *testing.T, db *gorm.DB, at time.Time) *entities.Child {
	child := &entities.Child{
		Name:                "Test Child",
		Gender:              domain.GenderMale,
		BirthDate:           at.AddDate(0, -12, 0),
		CurrentWeight:       9.6,
		CurrentHeight:       75.7,
		ParentMonthlyIncome: 3000000,
	}
	assert.NoError(t, db.Create(child).Error)
	return child
}

func TestGenerateForChildFillsEverySlot(t *testing.T) {
	db := setupTestDB(t)
	seedEligibleRecipes(t, db, 30)
	service := newService(db, 1)

	at := time.Date(2025, 6, 18, 10, 0, 0, 0, time.UTC) // a Wednesday
	child := planChild(t, db, at)

	plan, err := service.GenerateForChild(context.Background(), child, domain.GeneratePlanRequest{}, at)
	assert.NoError(t, err)
	assert.True(t, plan.IsActive)
	assert.Equal(t, child.ID, plan.ChildID)
	assert.Len(t, plan.Details, 21)

	// Monday of that week, spanning seven days.
	assert.Equal(t, time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC), plan.StartDate)
	assert.Equal(t, time.Date(2025, 6, 22, 0, 0, 0, 0, time.UTC), plan.EndDate)

	slots := make(map[string]bool)
	for _, detail := range plan.Details {
		assert.GreaterOrEqual(t, detail.DayOfWeek, 1)
		assert.LessOrEqual(t, detail.DayOfWeek, 7)
		assert.Contains(t, domain.MealTypes, detail.MealType)
		slots[fmt.Sprintf("%d-%s", detail.DayOfWeek, detail.MealType)] = true
	}
	assert.Len(t, slots, 21)
}

func TestGenerateForChildRefusesThinPool(t *testing.T) {
	db := setupTestDB(t)
	seedEligibleRecipes(t, db, 20)
	service := newService(db, 1)

	at := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	child := planChild(t, db, at)

	_, err := service.GenerateForChild(context.Background(), child, domain.GeneratePlanRequest{}, at)
	assert.ErrorIs(t, err, domain.ErrInsufficientRecipes)

	// Nothing may be persisted on refusal.
	var count int64
	assert.NoError(t, db.Model(&entities.WeeklyPlan{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestGenerateForChildBudgetLimitsPool(t *testing.T) {
	db := setupTestDB(t)
	// 25 affordable recipes plus 5 that blow the daily budget.
	seedEligibleRecipes(t, db, 25)
	for i := 0; i < 5; i++ {
		r := &entities.Recipe{
			Title:         fmt.Sprintf("Premium %d", i+1),
			MinAgeMonths:  6,
			EstimatedCost: 500000,
		}
		assert.NoError(t, db.Create(r).Error)
	}
	service := newService(db, 1)

	at := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	child := planChild(t, db, at)

	// 900,000 a month is roughly 30,600 a day.
	plan, err := service.GenerateForChild(context.Background(), child, domain.GeneratePlanRequest{Budget: 900000}, at)
	assert.NoError(t, err)

	for _, detail := range plan.Details {
		var r entities.Recipe
		assert.NoError(t, db.First(&r, detail.RecipeID).Error)
		assert.LessOrEqual(t, r.EstimatedCost, int64(8000))
	}
}

func TestGenerateForChildExcludesAllergens(t *testing.T) {
	db := setupTestDB(t)
	seedEligibleRecipes(t, db, 25)

	egg := &entities.Ingredient{Name: "Telur Ayam", IsAllergenHighRisk: true}
	assert.NoError(t, db.Create(egg).Error)
	eggAllergy := &entities.Allergy{Name: "Alergi Telur", Ingredients: []*entities.Ingredient{egg}}
	assert.NoError(t, db.Create(eggAllergy).Error)
	eggRecipe := &entities.Recipe{
		Title:        "Omelet",
		MinAgeMonths: 6,
		// High-protein so scoring would otherwise favor it.
		ProteinGrams: 20,
		Calories:     300,
		Ingredients:  []*entities.Ingredient{egg},
	}
	assert.NoError(t, db.Create(eggRecipe).Error)

	service := newService(db, 1)

	at := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	child := planChild(t, db, at)
	assert.NoError(t, db.Model(child).Association("Allergies").Append(eggAllergy))
	child.Allergies = []*entities.Allergy{eggAllergy}

	plan, err := service.GenerateForChild(context.Background(), child, domain.GeneratePlanRequest{}, at)
	assert.NoError(t, err)

	for _, detail := range plan.Details {
		assert.NotEqual(t, eggRecipe.ID, detail.RecipeID)
	}
}

func TestGenerateForChildIsDeterministicPerSeed(t *testing.T) {
	db := setupTestDB(t)
	seedEligibleRecipes(t, db, 30)

	at := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	child := planChild(t, db, at)

	first, err := newService(db, 42).GenerateForChild(context.Background(), child, domain.GeneratePlanRequest{}, at)
	assert.NoError(t, err)
	second, err := newService(db, 42).GenerateForChild(context.Background(), child, domain.GeneratePlanRequest{}, at)
	assert.NoError(t, err)

	assert.Len(t, second.Details, 21)
	for i := range first.Details {
		assert.Equal(t, first.Details[i].RecipeID, second.Details[i].RecipeID)
		assert.Equal(t, first.Details[i].DayOfWeek, second.Details[i].DayOfWeek)
		assert.Equal(t, first.Details[i].MealType, second.Details[i].MealType)
	}
}

func TestRegenerationKeepsOneActivePlan(t *testing.T) {
	db := setupTestDB(t)
	seedEligibleRecipes(t, db, 30)
	service := newService(db, 7)

	at := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	child := planChild(t, db, at)

	_, err := service.GenerateForChild(context.Background(), child, domain.GeneratePlanRequest{}, at)
	assert.NoError(t, err)
	second, err := service.GenerateForChild(context.Background(), child, domain.GeneratePlanRequest{}, at)
	assert.NoError(t, err)

	var active int64
	assert.NoError(t, db.Model(&entities.WeeklyPlan{}).
		Where("child_id = ? AND is_active = ?", child.ID, true).
		Count(&active).Error)
	assert.Equal(t, int64(1), active)

	current, err := service.GetActivePlan(context.Background(), child.ID, at)
	assert.NoError(t, err)
	assert.Equal(t, second.ID, current.ID)
	assert.Len(t, current.Details, 21)
}

func TestGetActivePlanAbsenceIsNotAnError(t *testing.T) {
	db := setupTestDB(t)
	service := newService(db, 1)

	at := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	child := planChild(t, db, at)

	plan, err := service.GetActivePlan(context.Background(), child.ID, at)
	assert.NoError(t, err)
	assert.Nil(t, plan)
}

func TestGetActivePlanIgnoresEndedWeeks(t *testing.T) {
	db := setupTestDB(t)
	seedEligibleRecipes(t, db, 30)
	service := newService(db, 1)

	at := time.Date(2025, 6, 18, 0, 0, 0, 0, time.UTC)
	child := planChild(t, db, at)

	_, err := service.GenerateForChild(context.Background(), child, domain.GeneratePlanRequest{}, at)
	assert.NoError(t, err)

	// The plan ends Sunday the 22nd; the following Monday it is stale.
	plan, err := service.GetActivePlan(context.Background(), child.ID, at.AddDate(0, 0, 7))
	assert.NoError(t, err)
	assert.Nil(t, plan)
}
