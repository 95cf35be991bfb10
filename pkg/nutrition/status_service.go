package nutrition

import (
	"context"
	"time"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
)

type (
	// StatusService converts a child's raw measurements into Z-scores and
	// status categories against the growth-standard tables. Calculate never
	// fails: a missing standard or unknown age degrades the affected metric
	// to StatusInsufficientData and the rest of the assessment proceeds.
	StatusService interface {
		Calculate(ctx context.Context, child *entities.Child, at time.Time) domain.NutritionalAssessment
	}

	statusService struct {
		standardRepository GrowthStandardRepository
	}
)

func NewStatusService(standardRepository GrowthStandardRepository) StatusService {
	return &statusService{standardRepository: standardRepository}
}

func (s *statusService) Calculate(ctx context.Context, child *entities.Child, at time.Time) domain.NutritionalAssessment {
	ageInMonths := AgeInMonths(child.BirthDate, at)

	var standardHFA, standardWFA *entities.GrowthStandard
	if ageInMonths != nil {
		standardHFA = s.getStandardByAge(ctx, child.Gender, *ageInMonths, domain.MetricHFA)
		standardWFA = s.getStandardByAge(ctx, child.Gender, *ageInMonths, domain.MetricWFA)
	}
	standardWFH, err := s.standardRepository.GetNearestByHeight(ctx, child.Gender, child.CurrentHeight)
	if err != nil {
		standardWFH = nil
	}

	zScoreHFA := calculateZScore(child.CurrentHeight, standardHFA)
	zScoreWFA := calculateZScore(child.CurrentWeight, standardWFA)
	zScoreWFH := calculateZScore(child.CurrentWeight, standardWFH)

	statusHFA := determineStatus(zScoreHFA, domain.MetricHFA)
	statusWFA := determineStatus(zScoreWFA, domain.MetricWFA)
	statusWFH := determineStatus(zScoreWFH, domain.MetricWFH)

	return domain.NutritionalAssessment{
		StatusHFA: statusHFA,
		StatusWFA: statusWFA,
		StatusWFH: statusWFH,
		ZScoreHFA: zScoreHFA,
		ZScoreWFA: zScoreWFA,
		ZScoreWFH: zScoreWFH,
		Notes:     generateNotes(statusHFA, statusWFA, statusWFH),
	}
}

func (s *statusService) getStandardByAge(ctx context.Context, gender string, ageInMonths int, metric string) *entities.GrowthStandard {
	standard, err := s.standardRepository.GetByAge(ctx, gender, ageInMonths, metric)
	if err != nil {
		return nil
	}
	return standard
}

// AgeInMonths returns the number of whole months between birth and at,
// floored. It returns nil when the birth date is unset or lies after the
// evaluation date, in which case age-keyed metrics cannot be assessed.
func AgeInMonths(birth, at time.Time) *int {
	if birth.IsZero() || birth.After(at) {
		return nil
	}
	months := (at.Year()-birth.Year())*12 + int(at.Month()) - int(birth.Month())
	if at.Day() < birth.Day() {
		months--
	}
	if months < 0 {
		return nil
	}
	return &months
}

// calculateZScore is the simplified approximation used throughout this
// engine, not the clinical LMS method: the reference SD is the distance from
// the median to sd1_pos (at or above the median) or to sd1_neg (below it).
// A non-positive reference SD falls back to 1 for every metric.
func calculateZScore(measurement float64, standard *entities.GrowthStandard) *float64 {
	if standard == nil {
		return nil
	}

	median := standard.Median
	sd := standard.SD1Pos - median
	if measurement < median {
		sd = median - standard.SD1Neg
	}
	if sd <= 0 {
		sd = 1
	}

	z := (measurement - median) / sd
	return &z
}

func determineStatus(zScore *float64, metric string) domain.NutritionalStatus {
	if zScore == nil {
		return domain.StatusInsufficientData
	}

	z := *zScore
	switch {
	case z < -3:
		switch metric {
		case domain.MetricHFA:
			return domain.StatusSevereStunting
		case domain.MetricWFA:
			return domain.StatusSeverelyUnderweight
		default:
			return domain.StatusSevereWasting
		}
	case z < -2:
		switch metric {
		case domain.MetricHFA:
			return domain.StatusStunting
		case domain.MetricWFA:
			return domain.StatusUnderweight
		default:
			return domain.StatusWasting
		}
	case z <= 1:
		return domain.StatusNormal
	case z <= 2:
		if metric == domain.MetricWFH {
			return domain.StatusRiskOfOverweight
		}
		return domain.StatusNormal
	default:
		switch metric {
		case domain.MetricHFA:
			return domain.StatusTallForAge
		case domain.MetricWFA:
			return domain.StatusOverweightForAge
		default:
			return domain.StatusOverweightObese
		}
	}
}

// generateNotes picks the single highest-priority advisory message for the
// parent. Exactly one message is always returned.
func generateNotes(statusHFA, statusWFA, statusWFH domain.NutritionalStatus) string {
	if statusWFH == domain.StatusSevereWasting {
		return "ATTENTION: your child shows signs of severe acute malnutrition (severely wasted). " +
			"This condition needs immediate medical care. Please consult a pediatrician or the nearest health center right away."
	}
	if statusHFA.IsStunted() {
		return "Your child shows signs of stunting (short for their age). Focus on animal protein " +
			"(chicken liver, eggs, fish) and zinc-rich foods to support height growth, and consult a health worker for further guidance."
	}
	if statusWFH == domain.StatusWasting {
		return "Your child is wasted (underweight for their height). Make sure every meal carries enough " +
			"calories and healthy fats (coconut milk, oil, avocado) to help them gain weight for their height."
	}
	if statusWFA.IsUnderweight() {
		return "Your child's weight is low for their age. Increase meal frequency and keep meals nutrient-dense to help them catch up."
	}
	if statusHFA == domain.StatusNormal && statusWFA == domain.StatusNormal && statusWFH == domain.StatusNormal {
		return "Congratulations! Your child's nutritional status looks great for their height and weight. " +
			"Keep up the balanced diet to maintain optimal growth."
	}

	return "Keep an eye on your child's balanced nutrition. For a more accurate result and proper follow-up, " +
		"discuss this assessment with a doctor or nutritionist."
}
