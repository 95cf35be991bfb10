package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessCreateChild      = "child created successfully"
	MessageSuccessUpdateChild      = "child updated successfully"
	MessageSuccessDeleteChild      = "child deleted successfully"
	MessageSuccessGetChildren      = "success get children"
	MessageSuccessGetChildDetail   = "success get child detail"
	MessageSuccessUploadChildPhoto = "child photo uploaded successfully"

	MessageFailedCreateChild      = "failed to create child"
	MessageFailedUpdateChild      = "failed to update child"
	MessageFailedDeleteChild      = "failed to delete child"
	MessageFailedGetChildren      = "failed to get children"
	MessageFailedGetChildDetail   = "failed to get child detail"
	MessageFailedUploadChildPhoto = "failed to upload child photo"

	ErrChildNotFound = errors.New("child not found")
	ErrInvalidGender = errors.New("gender must be male or female")
)

type (
	CreateChildRequest struct {
		Name                string  `json:"name" validate:"required,max=255"`
		BirthDate           string  `json:"birth_date" validate:"required"`
		Gender              string  `json:"gender" validate:"required,oneof=male female"`
		CurrentWeight       float64 `json:"current_weight" validate:"required,gt=0"`
		CurrentHeight       float64 `json:"current_height" validate:"required,gt=0"`
		ParentMonthlyIncome int64   `json:"parent_monthly_income" validate:"min=0"`
		AllergyIDs          []uint  `json:"allergy_ids" validate:"omitempty,dive,min=1"`
		FavoriteIDs         []uint  `json:"favorite_ids" validate:"omitempty,dive,min=1"`
	}

	UpdateChildRequest struct {
		Name                *string  `json:"name" validate:"omitempty,max=255"`
		BirthDate           *string  `json:"birth_date"`
		Gender              *string  `json:"gender" validate:"omitempty,oneof=male female"`
		CurrentWeight       *float64 `json:"current_weight" validate:"omitempty,gt=0"`
		CurrentHeight       *float64 `json:"current_height" validate:"omitempty,gt=0"`
		ParentMonthlyIncome *int64   `json:"parent_monthly_income" validate:"omitempty,min=0"`
		AllergyIDs          *[]uint  `json:"allergy_ids"`
		FavoriteIDs         *[]uint  `json:"favorite_ids"`
	}

	UploadChildPhotoRequest struct {
		ChildID uint                  `json:"child_id" form:"child_id" validate:"required"`
		Image   *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	// NutritionalAssessment is the complete result of one status calculation.
	// The Z-score pointers are nil when the matching growth standard is
	// missing or the child's age cannot be determined.
	NutritionalAssessment struct {
		StatusHFA NutritionalStatus `json:"status_hfa"`
		StatusWFA NutritionalStatus `json:"status_wfa"`
		StatusWFH NutritionalStatus `json:"status_wfh"`
		ZScoreHFA *float64          `json:"z_score_hfa"`
		ZScoreWFA *float64          `json:"z_score_wfa"`
		ZScoreWFH *float64          `json:"z_score_wfh"`
		Notes     string            `json:"notes"`
	}

	// BudgetRange is the recommended monthly food budget. Min <= Max always
	// holds and both are multiples of 10,000.
	BudgetRange struct {
		Min int64 `json:"min"`
		Max int64 `json:"max"`
	}
)
