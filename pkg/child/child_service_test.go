package child

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
	"nutriby-backend/pkg/budget"
	"nutriby-backend/pkg/nutrition"
	"nutriby-backend/pkg/recipe"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	assert.NoError(t, err)

	err = db.SetupJoinTable(&entities.Recipe{}, "Ingredients", &entities.RecipeIngredient{})
	assert.NoError(t, err)
	err = db.AutoMigrate(
		&entities.User{},
		&entities.GrowthStandard{},
		&entities.Ingredient{},
		&entities.Allergy{},
		&entities.Recipe{},
		&entities.Child{},
		&entities.ChildGrowthHistory{},
	)
	assert.NoError(t, err)

	return db
}

func newService(db *gorm.DB) ChildService {
	recipeRepository := recipe.NewRecipeRepository(db)
	return NewChildService(
		NewChildRepository(db),
		nutrition.NewStatusService(nutrition.NewGrowthStandardRepository(db)),
		budget.NewBudgetService(recipeRepository),
		nil, // no photo uploads in these tests
	)
}

func seedReferenceData(t *testing.T, db *gorm.DB) {
	age := 12
	height := 75.7
	standards := []*entities.GrowthStandard{
		{Gender: domain.GenderMale, AgeInMonths: &age, Metric: domain.MetricHFA,
			SD3Neg: 68.6, SD2Neg: 71.0, SD1Neg: 73.4, Median: 75.7, SD1Pos: 78.1, SD2Pos: 80.5, SD3Pos: 82.9},
		{Gender: domain.GenderMale, AgeInMonths: &age, Metric: domain.MetricWFA,
			SD3Neg: 6.9, SD2Neg: 7.7, SD1Neg: 8.6, Median: 9.6, SD1Pos: 10.8, SD2Pos: 12.0, SD3Pos: 13.3},
		{Gender: domain.GenderMale, ReferenceHeightCM: &height, Metric: domain.MetricWFH,
			SD3Neg: 7.8, SD2Neg: 8.4, SD1Neg: 9.0, Median: 9.7, SD1Pos: 10.5, SD2Pos: 11.4, SD3Pos: 12.4},
	}
	assert.NoError(t, db.Create(&standards).Error)

	for i := 0; i < 12; i++ {
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

func seedUser(t *testing.T, db *gorm.DB) *entities.User {
	user := &entities.User{
		ID:       uuid.New(),
		Name:     "Parent",
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()),
		Password: "hashed",
	}
	assert.NoError(t, db.Create(user).Error)
	return user
}

func TestCreateChildDerivesStatusAndBudget(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	user := seedUser(t, db)
	service := newService(db)

	at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	req := domain.CreateChildRequest{
		Name:                "Raka",
		BirthDate:           "2024-06-15",
		Gender:              domain.GenderMale,
		CurrentWeight:       9.6,
		CurrentHeight:       75.7,
		ParentMonthlyIncome: 3000000,
	}

	child, err := service.CreateChild(context.Background(), req, user.ID.String(), at)
	assert.NoError(t, err)

	assert.Equal(t, domain.StatusNormal, child.NutritionalStatusHFA)
	assert.Equal(t, domain.StatusNormal, child.NutritionalStatusWFA)
	assert.Equal(t, domain.StatusNormal, child.NutritionalStatusWFH)
	assert.Contains(t, child.NutritionalStatusNotes, "Congratulations")

	assert.NotNil(t, child.BudgetMin)
	assert.NotNil(t, child.BudgetMax)
	assert.LessOrEqual(t, *child.BudgetMin, *child.BudgetMax)
	assert.Zero(t, *child.BudgetMin%10000)

	assert.Len(t, child.GrowthHistories, 1)
	history := child.GrowthHistories[0]
	assert.Equal(t, 9.6, history.Weight)
	assert.Equal(t, 75.7, history.Height)
	assert.NotNil(t, history.ZScoreHFA)
	assert.InDelta(t, 0, *history.ZScoreHFA, 0.001)
	assert.Equal(t, child.BudgetMax, history.RecommendedBudgetAtTheTime)
}

func TestCreateChildUnparseableBirthDateDegrades(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	user := seedUser(t, db)
	service := newService(db)

	at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	req := domain.CreateChildRequest{
		Name:                "Raka",
		BirthDate:           "not-a-date",
		Gender:              domain.GenderMale,
		CurrentWeight:       9.6,
		CurrentHeight:       75.7,
		ParentMonthlyIncome: 3000000,
	}

	child, err := service.CreateChild(context.Background(), req, user.ID.String(), at)
	assert.NoError(t, err)

	assert.Equal(t, domain.StatusInsufficientData, child.NutritionalStatusHFA)
	assert.Equal(t, domain.StatusInsufficientData, child.NutritionalStatusWFA)
	// Age-independent fallback budget.
	assert.Equal(t, int64(250000), *child.BudgetMin)
	assert.Equal(t, int64(400000), *child.BudgetMax)
}

func TestUpdateChildMeasurementsAppendsHistory(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	user := seedUser(t, db)
	service := newService(db)

	at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	created, err := service.CreateChild(context.Background(), domain.CreateChildRequest{
		Name:                "Raka",
		BirthDate:           "2024-06-15",
		Gender:              domain.GenderMale,
		CurrentWeight:       9.6,
		CurrentHeight:       75.7,
		ParentMonthlyIncome: 3000000,
	}, user.ID.String(), at)
	assert.NoError(t, err)

	newWeight := 8.2
	later := at.AddDate(0, 0, 14)
	updated, err := service.UpdateChild(context.Background(), created.ID, domain.UpdateChildRequest{
		CurrentWeight: &newWeight,
	}, user.ID.String(), later)
	assert.NoError(t, err)

	assert.Equal(t, 8.2, updated.CurrentWeight)
	// 8.2 kg at 75.7 cm sits just below -2SD on weight-for-height.
	assert.Equal(t, domain.StatusWasting, updated.NutritionalStatusWFH)
	assert.Len(t, updated.GrowthHistories, 2)
	assert.Equal(t, 8.2, updated.GrowthHistories[1].Weight)
}

func TestUpdateChildNameOnlySkipsDerivation(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	user := seedUser(t, db)
	service := newService(db)

	at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	created, err := service.CreateChild(context.Background(), domain.CreateChildRequest{
		Name:                "Raka",
		BirthDate:           "2024-06-15",
		Gender:              domain.GenderMale,
		CurrentWeight:       9.6,
		CurrentHeight:       75.7,
		ParentMonthlyIncome: 3000000,
	}, user.ID.String(), at)
	assert.NoError(t, err)

	newName := "Raka Pratama"
	updated, err := service.UpdateChild(context.Background(), created.ID, domain.UpdateChildRequest{
		Name: &newName,
	}, user.ID.String(), at.AddDate(0, 0, 1))
	assert.NoError(t, err)

	assert.Equal(t, "Raka Pratama", updated.Name)
	assert.Len(t, updated.GrowthHistories, 1)
}

func TestChildOwnershipIsEnforced(t *testing.T) {
	db := setupTestDB(t)
	seedReferenceData(t, db)
	owner := seedUser(t, db)
	intruder := seedUser(t, db)
	service := newService(db)

	at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	created, err := service.CreateChild(context.Background(), domain.CreateChildRequest{
		Name:                "Raka",
		BirthDate:           "2024-06-15",
		Gender:              domain.GenderMale,
		CurrentWeight:       9.6,
		CurrentHeight:       75.7,
		ParentMonthlyIncome: 3000000,
	}, owner.ID.String(), at)
	assert.NoError(t, err)

	_, err = service.GetChildDetail(context.Background(), created.ID, intruder.ID.String())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	_, err = service.GetChildDetail(context.Background(), created.ID+999, owner.ID.String())
	assert.ErrorIs(t, err, domain.ErrChildNotFound)
}
