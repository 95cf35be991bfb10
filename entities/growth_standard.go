package entities

// GrowthStandard is one reference row of the growth-standard tables. HFA and
// WFA rows are keyed by (gender, age_in_months); WFH rows by
// (gender, reference_height_cm) with age left null. The table is static and
// read-only at runtime, so it carries no timestamps.
type GrowthStandard struct {
	ID                uint     `gorm:"primarykey" json:"id"`
	Gender            string   `gorm:"index:idx_standard_lookup" json:"gender"`
	AgeInMonths       *int     `gorm:"index:idx_standard_lookup" json:"age_in_months"`
	ReferenceHeightCM *float64 `json:"reference_height_cm"`
	Metric            string   `gorm:"index:idx_standard_lookup" json:"metric"` // "hfa", "wfa" or "wfh"

	SD3Neg float64 `json:"sd3_neg"`
	SD2Neg float64 `json:"sd2_neg"`
	SD1Neg float64 `json:"sd1_neg"`
	Median float64 `json:"median"`
	SD1Pos float64 `json:"sd1_pos"`
	SD2Pos float64 `json:"sd2_pos"`
	SD3Pos float64 `json:"sd3_pos"`
}
