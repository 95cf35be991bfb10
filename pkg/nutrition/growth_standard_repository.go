package nutrition

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
)

type (
	GrowthStandardRepository interface {
		GetByAge(ctx context.Context, gender string, ageInMonths int, metric string) (*entities.GrowthStandard, error)
		GetNearestByHeight(ctx context.Context, gender string, height float64) (*entities.GrowthStandard, error)
	}

	growthStandardRepository struct {
		db *gorm.DB
	}
)

func NewGrowthStandardRepository(db *gorm.DB) GrowthStandardRepository {
	return &growthStandardRepository{db: db}
}

func (r *growthStandardRepository) GetByAge(ctx context.Context, gender string, ageInMonths int, metric string) (*entities.GrowthStandard, error) {
	var standard entities.GrowthStandard
	if err := r.db.WithContext(ctx).
		Where("gender = ? AND age_in_months = ? AND metric = ?", gender, ageInMonths, metric).
		First(&standard).Error; err != nil {
		return nil, err
	}
	return &standard, nil
}

// GetNearestByHeight finds the WFH row whose reference height is closest to
// the given height. On an exact distance tie the lower reference height wins.
func (r *growthStandardRepository) GetNearestByHeight(ctx context.Context, gender string, height float64) (*entities.GrowthStandard, error) {
	var standard entities.GrowthStandard
	if err := r.db.WithContext(ctx).
		Where("gender = ? AND metric = ?", gender, domain.MetricWFH).
		Clauses(clause.OrderBy{Expression: clause.Expr{
			SQL:  "ABS(reference_height_cm - ?), reference_height_cm",
			Vars: []interface{}{height},
		}}).
		Take(&standard).Error; err != nil {
		return nil, err
	}
	return &standard, nil
}
