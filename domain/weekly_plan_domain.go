package domain

import (
	"errors"
)

var (
	MessageSuccessGeneratePlan  = "weekly plan generated successfully"
	MessageSuccessGetActivePlan = "success get active weekly plan"
	MessageNoActivePlan         = "no active weekly plan"

	MessageFailedGeneratePlan  = "failed to generate weekly plan"
	MessageFailedGetActivePlan = "failed to get active weekly plan"

	// ErrInsufficientRecipes is returned when fewer than 21 recipes survive
	// the hard filters. A partial week is never persisted.
	ErrInsufficientRecipes = errors.New("not enough eligible recipes for a full week plan")
)

type (
	GeneratePlanRequest struct {
		// Budget overrides the child's stored budget_max for this generation
		// only. Zero means "use the stored budget".
		Budget int64 `json:"budget" validate:"omitempty,min=0"`
	}
)
