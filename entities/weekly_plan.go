package entities

import (
	"time"
)

// WeeklyPlan is the master record of one generated 7-day plan. At most one
// plan per child is active at any time; activation is enforced by the plan
// repository, which deactivates all prior plans in the same transaction that
// inserts a new one.
type WeeklyPlan struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	ChildID   uint      `json:"child_id"`
	Name      string    `json:"name"`
	StartDate time.Time `gorm:"type:date" json:"start_date"`
	EndDate   time.Time `gorm:"type:date" json:"end_date"`
	IsActive  bool      `json:"is_active"`

	Child   *Child              `gorm:"foreignKey:ChildID" json:"-"`
	Details []*WeeklyPlanDetail `gorm:"foreignKey:WeeklyPlanID;constraint:OnDelete:CASCADE" json:"details,omitempty"`
	Timestamp
}

// WeeklyPlanDetail assigns one recipe to one day x meal slot. Created in a
// batch of exactly 21 per plan, never updated.
type WeeklyPlanDetail struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	WeeklyPlanID uint   `gorm:"uniqueIndex:idx_plan_slot" json:"weekly_plan_id"`
	RecipeID     uint   `json:"recipe_id"`
	DayOfWeek    int    `gorm:"uniqueIndex:idx_plan_slot" json:"day_of_week"` // 1..7
	MealType     string `gorm:"uniqueIndex:idx_plan_slot" json:"meal_type"`   // morning, midday, evening

	WeeklyPlan *WeeklyPlan `gorm:"foreignKey:WeeklyPlanID" json:"-"`
	Recipe     *Recipe     `gorm:"foreignKey:RecipeID" json:"recipe,omitempty"`
	Timestamp
}
