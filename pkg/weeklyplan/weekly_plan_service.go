package weeklyplan

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"time"

	"gorm.io/gorm"

	"nutriby-backend/domain"
	"nutriby-backend/entities"
	"nutriby-backend/pkg/nutrition"
	"nutriby-backend/pkg/recipe"
)

const (
	mealsPerWeek = 21

	// The scored pool is cut to the best 40 before shuffling. Selecting then
	// shuffling keeps the plan nutritionally biased while still varying from
	// week to week even when the catalog is stable.
	shufflePoolSize = 40

	// A month spans about 4.2 weeks of 7 days each.
	weeksPerMonth = 4.2
	daysPerWeek   = 7
)

type (
	WeeklyPlanService interface {
		GenerateForChild(ctx context.Context, child *entities.Child, req domain.GeneratePlanRequest, at time.Time) (*entities.WeeklyPlan, error)
		GetActivePlan(ctx context.Context, childID uint, at time.Time) (*entities.WeeklyPlan, error)
	}

	weeklyPlanService struct {
		planRepository   WeeklyPlanRepository
		recipeRepository recipe.RecipeRepository
		rng              *rand.Rand
	}
)

// NewWeeklyPlanService builds the generator. The random source drives the
// variety shuffle; tests pass a fixed seed, production passes an
// entropy-seeded one.
func NewWeeklyPlanService(planRepository WeeklyPlanRepository, recipeRepository recipe.RecipeRepository, rng *rand.Rand) WeeklyPlanService {
	return &weeklyPlanService{
		planRepository:   planRepository,
		recipeRepository: recipeRepository,
		rng:              rng,
	}
}

func (s *weeklyPlanService) GenerateForChild(ctx context.Context, child *entities.Child, req domain.GeneratePlanRequest, at time.Time) (*entities.WeeklyPlan, error) {
	ageInMonths := nutrition.AgeInMonths(child.BirthDate, at)
	if ageInMonths == nil {
		return nil, domain.ErrInsufficientRecipes
	}

	monthlyBudget := req.Budget
	if monthlyBudget <= 0 && child.BudgetMax != nil {
		monthlyBudget = *child.BudgetMax
	}
	dailyBudget := -1.0 // unlimited
	if monthlyBudget > 0 {
		dailyBudget = float64(monthlyBudget) / weeksPerMonth / daysPerWeek
	}

	eligible, err := s.recipeRepository.GetEligibleRecipes(ctx, *ageInMonths, dailyBudget, child.AllergenIngredientIDs())
	if err != nil {
		return nil, err
	}
	if len(eligible) < mealsPerWeek {
		return nil, domain.ErrInsufficientRecipes
	}

	selected := s.selectRecipes(child, eligible)

	plan := &entities.WeeklyPlan{
		ChildID:   child.ID,
		Name:      planName(at),
		StartDate: startOfWeek(at),
		EndDate:   startOfWeek(at).AddDate(0, 0, daysPerWeek-1),
		IsActive:  true,
	}

	// Day-major slot assignment: day1-morning, day1-midday, day1-evening,
	// day2-morning, and so on.
	details := make([]*entities.WeeklyPlanDetail, 0, mealsPerWeek)
	for i, r := range selected {
		details = append(details, &entities.WeeklyPlanDetail{
			RecipeID:  r.ID,
			DayOfWeek: i/len(domain.MealTypes) + 1,
			MealType:  domain.MealTypes[i%len(domain.MealTypes)],
		})
	}

	if err := s.planRepository.CreatePlanWithDetails(ctx, plan, details); err != nil {
		return nil, err
	}
	return plan, nil
}

// selectRecipes scores the eligible pool, keeps the top 40, shuffles them and
// takes the first 21.
func (s *weeklyPlanService) selectRecipes(child *entities.Child, eligible []*entities.Recipe) []*entities.Recipe {
	favorites := child.FavoriteIngredientIDSet()

	scores := make(map[uint]int, len(eligible))
	for _, r := range eligible {
		scores[r.ID] = scoreRecipe(r, favorites, child.NutritionalStatusHFA, child.NutritionalStatusWFA, child.NutritionalStatusWFH)
	}

	pool := make([]*entities.Recipe, len(eligible))
	copy(pool, eligible)
	sort.SliceStable(pool, func(i, j int) bool {
		return scores[pool[i].ID] > scores[pool[j].ID]
	})

	if len(pool) > shufflePoolSize {
		pool = pool[:shufflePoolSize]
	}
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	return pool[:mealsPerWeek]
}

// scoreRecipe applies the soft preferences: +5 per favorite ingredient, one
// stunting-bonus tier and one weight-bonus tier. A recipe can earn both a
// stunting and a weight bonus, but only the first matching tier of each.
func scoreRecipe(r *entities.Recipe, favorites map[uint]bool, statusHFA, statusWFA, statusWFH domain.NutritionalStatus) int {
	score := 0
	for _, ingredient := range r.Ingredients {
		if favorites[ingredient.ID] {
			score += 5
		}
	}

	if statusHFA.IsStunted() {
		switch {
		case r.NutritionFocus == domain.FocusHeightBooster:
			score += 25
		case r.ZincTotalMg >= 2:
			score += 20
		case r.ProteinGrams > 10:
			score += 10
		}
	}

	if statusWFA.IsUnderweight() || statusWFH.IsWasted() {
		switch {
		case r.NutritionFocus == domain.FocusWeightBooster:
			score += 25
		case r.Calories > 150:
			score += 12
		}
	}

	return score
}

// GetActivePlan returns the newest active plan whose week has not ended yet.
// Absence is a normal outcome reported as (nil, nil).
func (s *weeklyPlanService) GetActivePlan(ctx context.Context, childID uint, at time.Time) (*entities.WeeklyPlan, error) {
	plan, err := s.planRepository.GetActivePlan(ctx, childID, at)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return plan, nil
}

func planName(at time.Time) string {
	year, week := at.ISOWeek()
	return fmt.Sprintf("Week %d Plan, %d", week, year)
}

// startOfWeek returns the Monday of the week containing at, date-truncated.
func startOfWeek(at time.Time) time.Time {
	weekday := int(at.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	day := at.AddDate(0, 0, 1-weekday)
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, at.Location())
}
