package seed

import (
	"gorm.io/gorm"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
)

// ageRow holds the seven SD columns for one (gender, age) pair of an
// age-keyed metric.
type ageRow struct {
	age int
	sd  [7]float64
}

// heightRow holds the seven SD columns for one (gender, height) pair of the
// weight-for-height table.
type heightRow struct {
	height float64
	sd     [7]float64
}

// WHO child growth standard excerpts for the 6 to 24 month window the app
// serves. Columns run -3SD, -2SD, -1SD, median, +1SD, +2SD, +3SD.
var (
	hfaBoys = []ageRow{
		{6, [7]float64{61.2, 63.3, 65.5, 67.6, 69.8, 71.9, 74.0}},
		{7, [7]float64{62.7, 64.8, 67.0, 69.2, 71.3, 73.5, 75.7}},
		{8, [7]float64{64.0, 66.2, 68.4, 70.6, 72.8, 75.0, 77.2}},
		{9, [7]float64{65.2, 67.5, 69.7, 72.0, 74.2, 76.5, 78.7}},
		{10, [7]float64{66.4, 68.7, 71.0, 73.3, 75.6, 77.9, 80.1}},
		{11, [7]float64{67.6, 69.9, 72.2, 74.5, 76.9, 79.2, 81.5}},
		{12, [7]float64{68.6, 71.0, 73.4, 75.7, 78.1, 80.5, 82.9}},
		{18, [7]float64{74.2, 76.9, 79.6, 82.3, 85.0, 87.7, 90.4}},
		{24, [7]float64{78.0, 81.0, 84.1, 87.1, 90.2, 93.2, 96.3}},
	}
	hfaGirls = []ageRow{
		{6, [7]float64{58.9, 61.2, 63.5, 65.7, 68.0, 70.3, 72.5}},
		{7, [7]float64{60.3, 62.7, 65.0, 67.3, 69.6, 71.9, 74.2}},
		{8, [7]float64{61.7, 64.0, 66.4, 68.7, 71.1, 73.5, 75.8}},
		{9, [7]float64{62.9, 65.3, 67.7, 70.1, 72.6, 75.0, 77.4}},
		{10, [7]float64{64.1, 66.5, 69.0, 71.5, 73.9, 76.4, 78.9}},
		{11, [7]float64{65.2, 67.7, 70.3, 72.8, 75.3, 77.8, 80.3}},
		{12, [7]float64{66.3, 68.9, 71.4, 74.0, 76.6, 79.2, 81.7}},
		{18, [7]float64{72.8, 75.6, 78.4, 81.2, 84.0, 86.8, 89.6}},
		{24, [7]float64{76.0, 79.3, 82.5, 85.7, 88.9, 92.2, 95.4}},
	}

	wfaBoys = []ageRow{
		{6, [7]float64{5.7, 6.4, 7.1, 7.9, 8.8, 9.8, 10.9}},
		{7, [7]float64{5.9, 6.7, 7.4, 8.3, 9.2, 10.3, 11.4}},
		{8, [7]float64{6.2, 6.9, 7.7, 8.6, 9.6, 10.7, 11.9}},
		{9, [7]float64{6.4, 7.1, 8.0, 8.9, 9.9, 11.0, 12.3}},
		{10, [7]float64{6.6, 7.4, 8.2, 9.2, 10.2, 11.4, 12.7}},
		{11, [7]float64{6.8, 7.6, 8.4, 9.4, 10.5, 11.7, 13.0}},
		{12, [7]float64{6.9, 7.7, 8.6, 9.6, 10.8, 12.0, 13.3}},
		{18, [7]float64{7.8, 8.8, 9.8, 10.9, 12.2, 13.7, 15.3}},
		{24, [7]float64{8.6, 9.7, 10.8, 12.2, 13.6, 15.3, 17.1}},
	}
	wfaGirls = []ageRow{
		{6, [7]float64{5.1, 5.7, 6.5, 7.3, 8.2, 9.3, 10.6}},
		{7, [7]float64{5.3, 6.0, 6.8, 7.6, 8.6, 9.8, 11.1}},
		{8, [7]float64{5.6, 6.3, 7.0, 7.9, 9.0, 10.2, 11.6}},
		{9, [7]float64{5.8, 6.5, 7.3, 8.2, 9.3, 10.5, 12.0}},
		{10, [7]float64{5.9, 6.7, 7.5, 8.5, 9.6, 10.9, 12.4}},
		{11, [7]float64{6.1, 6.9, 7.7, 8.7, 9.9, 11.2, 12.8}},
		{12, [7]float64{6.3, 7.0, 7.9, 8.9, 10.1, 11.5, 13.1}},
		{18, [7]float64{7.2, 8.1, 9.1, 10.2, 11.6, 13.2, 15.1}},
		{24, [7]float64{8.1, 9.0, 10.2, 11.5, 13.0, 14.8, 17.0}},
	}

	wfhBoys = []heightRow{
		{65, [7]float64{5.9, 6.3, 6.9, 7.4, 8.1, 8.8, 9.6}},
		{68, [7]float64{6.4, 6.9, 7.5, 8.1, 8.8, 9.6, 10.5}},
		{70, [7]float64{6.8, 7.4, 8.0, 8.6, 9.3, 10.2, 11.1}},
		{72, [7]float64{7.2, 7.7, 8.3, 9.0, 9.8, 10.6, 11.6}},
		{75, [7]float64{7.7, 8.3, 8.9, 9.7, 10.5, 11.4, 12.4}},
		{80, [7]float64{8.6, 9.2, 9.9, 10.7, 11.6, 12.6, 13.7}},
		{85, [7]float64{9.4, 10.1, 10.8, 11.7, 12.7, 13.8, 15.0}},
	}
	wfhGirls = []heightRow{
		{65, [7]float64{5.6, 6.1, 6.6, 7.2, 7.9, 8.7, 9.7}},
		{68, [7]float64{6.1, 6.7, 7.3, 7.9, 8.7, 9.5, 10.5}},
		{70, [7]float64{6.5, 7.1, 7.7, 8.4, 9.2, 10.0, 11.1}},
		{72, [7]float64{6.9, 7.5, 8.1, 8.8, 9.6, 10.5, 11.6}},
		{75, [7]float64{7.5, 8.1, 8.7, 9.5, 10.3, 11.3, 12.5}},
		{80, [7]float64{8.3, 8.9, 9.6, 10.4, 11.3, 12.4, 13.6}},
		{85, [7]float64{9.2, 9.9, 10.7, 11.6, 12.7, 13.9, 15.2}},
	}
)

func SeedGrowthStandards(db *gorm.DB) error {
	var count int64
	if err := db.Model(&entities.GrowthStandard{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var standards []*entities.GrowthStandard
	appendAge := func(gender, metric string, rows []ageRow) {
		for _, row := range rows {
			age := row.age
			standards = append(standards, &entities.GrowthStandard{
				Gender:      gender,
				AgeInMonths: &age,
				Metric:      metric,
				SD3Neg:      row.sd[0],
				SD2Neg:      row.sd[1],
				SD1Neg:      row.sd[2],
				Median:      row.sd[3],
				SD1Pos:      row.sd[4],
				SD2Pos:      row.sd[5],
				SD3Pos:      row.sd[6],
			})
		}
	}
	appendHeight := func(gender string, rows []heightRow) {
		for _, row := range rows {
			height := row.height
			standards = append(standards, &entities.GrowthStandard{
				Gender:            gender,
				ReferenceHeightCM: &height,
				Metric:            domain.MetricWFH,
				SD3Neg:            row.sd[0],
				SD2Neg:            row.sd[1],
				SD1Neg:            row.sd[2],
				Median:            row.sd[3],
				SD1Pos:            row.sd[4],
				SD2Pos:            row.sd[5],
				SD3Pos:            row.sd[6],
			})
		}
	}

	appendAge(domain.GenderMale, domain.MetricHFA, hfaBoys)
	appendAge(domain.GenderFemale, domain.MetricHFA, hfaGirls)
	appendAge(domain.GenderMale, domain.MetricWFA, wfaBoys)
	appendAge(domain.GenderFemale, domain.MetricWFA, wfaGirls)
	appendHeight(domain.GenderMale, wfhBoys)
	appendHeight(domain.GenderFemale, wfhGirls)

	return db.Create(&standards).Error
}
