package domain

import (
	"errors"
)

var (
	MessageSuccessGetAllergies     = "success get allergies"
	MessageSuccessGetAllergyDetail = "success get allergy detail"
	MessageSuccessSearchAllergies  = "success search allergies"
	MessageSuccessGetIngredients   = "success get ingredients"

	MessageFailedGetAllergies     = "failed to get allergies"
	MessageFailedGetAllergyDetail = "failed to get allergy detail"
	MessageFailedSearchAllergies  = "failed to search allergies"
	MessageFailedGetIngredients   = "failed to get ingredients"

	ErrAllergyNotFound = errors.New("allergy not found")
)

type (
	SearchAllergiesRequest struct {
		Query string `json:"q" validate:"required,min=2"`
	}
)
