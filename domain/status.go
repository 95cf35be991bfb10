package domain

// NutritionalStatus is the closed set of status categories a Z-score can map
// to. Services switch on these values; free-text matching on status strings
// is deliberately not used anywhere.
type NutritionalStatus string

const (
	StatusInsufficientData NutritionalStatus = "insufficient_data"
	StatusNormal           NutritionalStatus = "normal"

	// Height-for-Age
	StatusSevereStunting NutritionalStatus = "severe_stunting"
	StatusStunting       NutritionalStatus = "stunting"
	StatusTallForAge     NutritionalStatus = "tall_for_age"

	// Weight-for-Age
	StatusSeverelyUnderweight NutritionalStatus = "severely_underweight"
	StatusUnderweight         NutritionalStatus = "underweight"
	StatusOverweightForAge    NutritionalStatus = "overweight_for_age"

	// Weight-for-Height
	StatusSevereWasting    NutritionalStatus = "severe_wasting"
	StatusWasting          NutritionalStatus = "wasting"
	StatusRiskOfOverweight NutritionalStatus = "risk_of_overweight"
	StatusOverweightObese  NutritionalStatus = "overweight_obese"
)

// IsStunted reports whether an HFA status indicates a height deficit.
func (s NutritionalStatus) IsStunted() bool {
	return s == StatusStunting || s == StatusSevereStunting
}

// IsUnderweight reports whether a WFA status indicates a weight deficit.
func (s NutritionalStatus) IsUnderweight() bool {
	return s == StatusUnderweight || s == StatusSeverelyUnderweight
}

// IsWasted reports whether a WFH status indicates an acute weight deficit.
func (s NutritionalStatus) IsWasted() bool {
	return s == StatusWasting || s == StatusSevereWasting
}

const (
	MetricHFA = "hfa"
	MetricWFA = "wfa"
	MetricWFH = "wfh"

	GenderMale   = "male"
	GenderFemale = "female"

	MealMorning = "morning"
	MealMidday  = "midday"
	MealEvening = "evening"

	FocusGeneral       = "general"
	FocusWeightBooster = "weight_booster"
	FocusHeightBooster = "height_booster"
	FocusImmuneBooster = "immune_booster"
)

// MealTypes lists the three meal slots in serving order within a day.
var MealTypes = []string{MealMorning, MealMidday, MealEvening}
