package weeklyplan

import (
	"context"
	"time"

	"gorm.io/gorm"

	"nutriby-backend/entities"
)

type (
	WeeklyPlanRepository interface {
		CreatePlanWithDetails(ctx context.Context, plan *entities.WeeklyPlan, details []*entities.WeeklyPlanDetail) error
		GetActivePlan(ctx context.Context, childID uint, today time.Time) (*entities.WeeklyPlan, error)
	}

	weeklyPlanRepository struct {
		db *gorm.DB
	}
)

func NewWeeklyPlanRepository(db *gorm.DB) WeeklyPlanRepository {
	return &weeklyPlanRepository{db: db}
}

// CreatePlanWithDetails commits a freshly generated plan in one transaction:
// every prior plan of the child is deactivated, then the new plan and its 21
// detail rows are inserted. Either all rows commit or none do, so no partial
// plan and no second active plan can ever be observed.
func (r *weeklyPlanRepository) CreatePlanWithDetails(ctx context.Context, plan *entities.WeeklyPlan, details []*entities.WeeklyPlanDetail) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.WeeklyPlan{}).
			Where("child_id = ? AND is_active = ?", plan.ChildID, true).
			Update("is_active", false).Error; err != nil {
			return err
		}

		if err := tx.Create(plan).Error; err != nil {
			return err
		}

		for _, detail := range details {
			detail.WeeklyPlanID = plan.ID
		}
		if err := tx.Create(&details).Error; err != nil {
			return err
		}

		plan.Details = details
		return nil
	})
}

func (r *weeklyPlanRepository) GetActivePlan(ctx context.Context, childID uint, today time.Time) (*entities.WeeklyPlan, error) {
	var plan entities.WeeklyPlan
	if err := r.db.WithContext(ctx).
		Preload("Details", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_of_week asc")
		}).
		Preload("Details.Recipe").
		Where("child_id = ? AND is_active = ? AND end_date >= ?", childID, true, today.Format("2006-01-02")).
		Order("created_at desc").
		First(&plan).Error; err != nil {
		return nil, err
	}
	return &plan, nil
}
