package budget

import (
	"context"
	"math"
	"sort"
	"time"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
	"nutriby-backend/pkg/nutrition"
	"nutriby-backend/pkg/recipe"
)

const (
	// Fallback range returned when the eligible pool is too thin to derive
	// anything meaningful from recipe costs.
	defaultBudgetMin = 250000
	defaultBudgetMax = 400000

	minPoolSize = 10
	topPoolSize = 30

	incomeFloorRate   = 0.15
	incomeCeilingRate = 0.30

	mealsPerDay  = 3
	daysPerMonth = 30

	roundingUnit = 10000
)

type (
	// BudgetService derives a recommended monthly food budget range from the
	// costs of the recipes the child can actually eat, clamped against the
	// parent's income.
	BudgetService interface {
		Recommend(ctx context.Context, child *entities.Child, at time.Time) domain.BudgetRange
	}

	budgetService struct {
		recipeRepository recipe.RecipeRepository
	}
)

func NewBudgetService(recipeRepository recipe.RecipeRepository) BudgetService {
	return &budgetService{recipeRepository: recipeRepository}
}

func (s *budgetService) Recommend(ctx context.Context, child *entities.Child, at time.Time) domain.BudgetRange {
	ageInMonths := nutrition.AgeInMonths(child.BirthDate, at)
	if ageInMonths == nil {
		return domain.BudgetRange{Min: defaultBudgetMin, Max: defaultBudgetMax}
	}

	// Age and allergen constraints only; cost is what we are deriving here.
	eligible, err := s.recipeRepository.GetEligibleRecipes(ctx, *ageInMonths, -1, child.AllergenIngredientIDs())
	if err != nil || len(eligible) < minPoolSize {
		return domain.BudgetRange{Min: defaultBudgetMin, Max: defaultBudgetMax}
	}

	pool := s.topScoredRecipes(child, eligible)

	sort.SliceStable(pool, func(i, j int) bool {
		return pool[i].EstimatedCost < pool[j].EstimatedCost
	})

	half := len(pool) / 2
	idealMin := monthlyBudgetFromDailyCost(averageCost(pool[:half]))
	idealMax := monthlyBudgetFromDailyCost(averageCost(pool[half:]))

	incomeFloor := float64(child.ParentMonthlyIncome) * incomeFloorRate
	incomeCeiling := float64(child.ParentMonthlyIncome) * incomeCeilingRate

	finalMax := math.Min(float64(idealMax), incomeCeiling)
	finalMin := math.Max(math.Min(float64(idealMin), finalMax), incomeFloor)

	result := domain.BudgetRange{
		Min: roundToNearest(finalMin, roundingUnit),
		Max: roundToNearest(finalMax, roundingUnit),
	}
	// The clamp order above keeps min <= max except when the whole ideal
	// range sits below 15% of income; flatten the range in that case.
	if result.Min > result.Max {
		result.Min = result.Max
	}
	return result
}

// topScoredRecipes scores the eligible pool against the child's preferences
// and nutritional need and keeps the best topPoolSize entries. Ties keep the
// repository's stable order.
func (s *budgetService) topScoredRecipes(child *entities.Child, eligible []*entities.Recipe) []*entities.Recipe {
	favorites := child.FavoriteIngredientIDSet()

	scores := make(map[uint]int, len(eligible))
	for _, r := range eligible {
		score := 0
		for _, ingredient := range r.Ingredients {
			if favorites[ingredient.ID] {
				score += 10
				break
			}
		}
		if child.NutritionalStatusHFA.IsStunted() && r.ProteinGrams > 10 {
			score += 15
		}
		if child.NutritionalStatusWFH.IsWasted() && r.Calories > 150 {
			score += 12
		}
		scores[r.ID] = score
	}

	pool := make([]*entities.Recipe, len(eligible))
	copy(pool, eligible)
	sort.SliceStable(pool, func(i, j int) bool {
		return scores[pool[i].ID] > scores[pool[j].ID]
	})

	if len(pool) > topPoolSize {
		pool = pool[:topPoolSize]
	}
	return pool
}

func averageCost(recipes []*entities.Recipe) float64 {
	if len(recipes) == 0 {
		return 0
	}
	var total int64
	for _, r := range recipes {
		total += r.EstimatedCost
	}
	return float64(total) / float64(len(recipes))
}

// monthlyBudgetFromDailyCost extrapolates a per-serving cost to a full month
// of three meals a day, rounded to the nearest 10,000.
func monthlyBudgetFromDailyCost(costPerServing float64) int64 {
	return roundToNearest(costPerServing*mealsPerDay*daysPerMonth, roundingUnit)
}

func roundToNearest(value float64, unit int64) int64 {
	return int64(math.Round(value/float64(unit))) * unit
}
