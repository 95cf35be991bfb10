package nutrition

import (
	"context"
	"fmt"
	"testing"
	"time"

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

	err = db.AutoMigrate(&entities.GrowthStandard{})
	assert.NoError(t, err)

	return db
}

func ageStandard(gender, metric string, age int, sd3n, sd2n, sd1n, median, sd1p, sd2p, sd3p float64) *entities.GrowthStandard {
	return &entities.GrowthStandard{
		Gender:      gender,
		AgeInMonths: &age,
		Metric:      metric,
		SD3Neg:      sd3n,
		SD2Neg:      sd2n,
		SD1Neg:      sd1n,
		Median:      median,
		SD1Pos:      sd1p,
		SD2Pos:      sd2p,
		SD3Pos:      sd3p,
	}
}

func heightStandard(gender string, height, sd3n, sd2n, sd1n, median, sd1p, sd2p, sd3p float64) *entities.GrowthStandard {
	return &entities.GrowthStandard{
		Gender:            gender,
		ReferenceHeightCM: &height,
		Metric:            domain.MetricWFH,
		SD3Neg:            sd3n,
		SD2Neg:            sd2n,
		SD1Neg:            sd1n,
		Median:            median,
		SD1Pos:            sd1p,
		SD2Pos:            sd2p,
		SD3Pos:            sd3p,
	}
}

func seedSevenMonthStandards(t *testing.T, db *gorm.DB) {
	standards := []*entities.GrowthStandard{
		ageStandard(domain.GenderMale, domain.MetricHFA, 7, 59, 62, 65, 68, 71, 74, 77),
		ageStandard(domain.GenderMale, domain.MetricWFA, 7, 5.9, 6.7, 7.4, 8.3, 9.2, 10.3, 11.4),
		heightStandard(domain.GenderMale, 68, 6.4, 6.9, 7.5, 8.1, 8.8, 9.6, 10.5),
	}
	assert.NoError(t, db.Create(&standards).Error)
}

func TestCalculateMedianMeasurementsAreNormal(t *testing.T) {
	db := setupTestDB(t)
	seedSevenMonthStandards(t, db)
	service := NewStatusService(NewGrowthStandardRepository(db))

	at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	child := &entities.Child{
		Gender:        domain.GenderMale,
		BirthDate:     at.AddDate(0, -7, 0),
		CurrentHeight: 68,
		CurrentWeight: 8.1,
	}

	assessment := service.Calculate(context.Background(), child, at)

	assert.NotNil(t, assessment.ZScoreHFA)
	assert.InDelta(t, 0, *assessment.ZScoreHFA, 0.001)
	assert.NotNil(t, assessment.ZScoreWFH)
	assert.InDelta(t, 0, *assessment.ZScoreWFH, 0.001)
	assert.Equal(t, domain.StatusNormal, assessment.StatusHFA)
	assert.Equal(t, domain.StatusNormal, assessment.StatusWFA)
	assert.Equal(t, domain.StatusNormal, assessment.StatusWFH)
	assert.Contains(t, assessment.Notes, "Congratulations")
}

func TestCalculateStatusThresholds(t *testing.T) {
	db := setupTestDB(t)
	seedSevenMonthStandards(t, db)
	service := NewStatusService(NewGrowthStandardRepository(db))

	at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	base := entities.Child{
		Gender:    domain.GenderMale,
		BirthDate: at.AddDate(0, -7, 0),
	}

	tests := []struct {
		name     string
		height   float64
		wantHFAZ float64
		wantHFA  domain.NutritionalStatus
	}{
		// Below the median the SD is median - sd1_neg = 3.
		{"severe stunting below -3", 58.9, -3.03, domain.StatusSevereStunting},
		{"stunting at -2.5", 60.5, -2.5, domain.StatusStunting},
		{"boundary -2 is not stunting", 62, -2, domain.StatusNormal},
		{"tall above +2", 74.3, 2.1, domain.StatusTallForAge},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := base
			child.CurrentHeight = tt.height
			child.CurrentWeight = 8.3

			assessment := service.Calculate(context.Background(), &child, at)

			assert.NotNil(t, assessment.ZScoreHFA)
			assert.InDelta(t, tt.wantHFAZ, *assessment.ZScoreHFA, 0.05)
			assert.Equal(t, tt.wantHFA, assessment.StatusHFA)
		})
	}
}

func TestCalculateRiskOfOverweightOnlyForWFH(t *testing.T) {
	db := setupTestDB(t)
	standards := []*entities.GrowthStandard{
		ageStandard(domain.GenderFemale, domain.MetricHFA, 12, 66.3, 68.9, 71.4, 74, 76.6, 79.2, 81.7),
		ageStandard(domain.GenderFemale, domain.MetricWFA, 12, 6.3, 7.0, 7.9, 8.9, 10.1, 11.5, 13.1),
		heightStandard(domain.GenderFemale, 75.5, 7.5, 8.1, 8.7, 9.5, 10.3, 11.3, 12.5),
	}
	assert.NoError(t, db.Create(&standards).Error)
	service := NewStatusService(NewGrowthStandardRepository(db))

	at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	child := &entities.Child{
		Gender:        domain.GenderFemale,
		BirthDate:     at.AddDate(-1, 0, 0),
		CurrentHeight: 75.5,
		// Weight between +1SD and +2SD on both WFA and WFH.
		CurrentWeight: 10.7,
	}

	assessment := service.Calculate(context.Background(), child, at)

	assert.Equal(t, domain.StatusNormal, assessment.StatusWFA)
	assert.Equal(t, domain.StatusRiskOfOverweight, assessment.StatusWFH)
}

func TestCalculateMissingStandardDegradesGracefully(t *testing.T) {
	db := setupTestDB(t)
	service := NewStatusService(NewGrowthStandardRepository(db))

	at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	child := &entities.Child{
		Gender:        domain.GenderMale,
		BirthDate:     at.AddDate(0, -7, 0),
		CurrentHeight: 68,
		CurrentWeight: 8.1,
	}

	assessment := service.Calculate(context.Background(), child, at)

	assert.Nil(t, assessment.ZScoreHFA)
	assert.Nil(t, assessment.ZScoreWFA)
	assert.Nil(t, assessment.ZScoreWFH)
	assert.Equal(t, domain.StatusInsufficientData, assessment.StatusHFA)
	assert.Equal(t, domain.StatusInsufficientData, assessment.StatusWFA)
	assert.Equal(t, domain.StatusInsufficientData, assessment.StatusWFH)
	assert.NotEmpty(t, assessment.Notes)
}

func TestCalculateUnknownBirthDateSkipsAgeMetrics(t *testing.T) {
	db := setupTestDB(t)
	seedSevenMonthStandards(t, db)
	service := NewStatusService(NewGrowthStandardRepository(db))

	at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	child := &entities.Child{
		Gender:        domain.GenderMale,
		CurrentHeight: 68,
		CurrentWeight: 8.1,
	}

	assessment := service.Calculate(context.Background(), child, at)

	assert.Equal(t, domain.StatusInsufficientData, assessment.StatusHFA)
	assert.Equal(t, domain.StatusInsufficientData, assessment.StatusWFA)
	// WFH is height-keyed, so it still resolves.
	assert.Equal(t, domain.StatusNormal, assessment.StatusWFH)
}

func TestNotesPriorityOrder(t *testing.T) {
	assert.Contains(t, generateNotes(domain.StatusStunting, domain.StatusUnderweight, domain.StatusSevereWasting), "ATTENTION")
	assert.Contains(t, generateNotes(domain.StatusStunting, domain.StatusUnderweight, domain.StatusWasting), "stunting")
	assert.Contains(t, generateNotes(domain.StatusNormal, domain.StatusUnderweight, domain.StatusWasting), "wasted")
	assert.Contains(t, generateNotes(domain.StatusNormal, domain.StatusUnderweight, domain.StatusNormal), "low for their age")
	assert.Contains(t, generateNotes(domain.StatusNormal, domain.StatusNormal, domain.StatusNormal), "Congratulations")
	assert.Contains(t, generateNotes(domain.StatusTallForAge, domain.StatusNormal, domain.StatusNormal), "balanced nutrition")
}

func TestAgeInMonthsFloorsByDay(t *testing.T) {
	at := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	exact := AgeInMonths(time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC), at)
	assert.NotNil(t, exact)
	assert.Equal(t, 12, *exact)

	dayShort := AgeInMonths(time.Date(2024, 6, 16, 0, 0, 0, 0, time.UTC), at)
	assert.NotNil(t, dayShort)
	assert.Equal(t, 11, *dayShort)

	assert.Nil(t, AgeInMonths(time.Time{}, at))
	assert.Nil(t, AgeInMonths(at.AddDate(0, 0, 1), at))
}

func TestGetNearestByHeightPrefersLowerReference(t *testing.T) {
	db := setupTestDB(t)
	standards := []*entities.GrowthStandard{
		heightStandard(domain.GenderMale, 70, 6.8, 7.4, 8.0, 8.6, 9.3, 10.2, 11.1),
		heightStandard(domain.GenderMale, 72, 7.2, 7.7, 8.3, 9.0, 9.8, 10.6, 11.6),
	}
	assert.NoError(t, db.Create(&standards).Error)
	repo := NewGrowthStandardRepository(db)

	// 71 is equidistant from 70 and 72; the lower reference wins.
	standard, err := repo.GetNearestByHeight(context.Background(), domain.GenderMale, 71)
	assert.NoError(t, err)
	assert.NotNil(t, standard.ReferenceHeightCM)
	assert.Equal(t, 70.0, *standard.ReferenceHeightCM)

	standard, err = repo.GetNearestByHeight(context.Background(), domain.GenderMale, 71.5)
	assert.NoError(t, err)
	assert.Equal(t, 72.0, *standard.ReferenceHeightCM)
}
