package config

import (
	"math/rand"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"

	"nutriby-backend/internal/api/handlers"
	"nutriby-backend/internal/api/routes"
	"nutriby-backend/internal/middleware"
	"nutriby-backend/internal/utils"
	"nutriby-backend/internal/utils/storage"
	"nutriby-backend/pkg/allergy"
	"nutriby-backend/pkg/budget"
	"nutriby-backend/pkg/child"
	"nutriby-backend/pkg/ingredient"
	"nutriby-backend/pkg/jwt"
	"nutriby-backend/pkg/nutrition"
	"nutriby-backend/pkg/recipe"
	"nutriby-backend/pkg/user"
	"nutriby-backend/pkg/weeklyplan"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "Asia/Jakarta",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	childRepository := child.NewChildRepository(db)
	standardRepository := nutrition.NewGrowthStandardRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)
	allergyRepository := allergy.NewAllergyRepository(db)
	weeklyPlanRepository := weeklyplan.NewWeeklyPlanRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	statusService := nutrition.NewStatusService(standardRepository)
	budgetService := budget.NewBudgetService(recipeRepository)
	childService := child.NewChildService(childRepository, statusService, budgetService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository)
	ingredientService := ingredient.NewIngredientService(ingredientRepository)
	allergyService := allergy.NewAllergyService(allergyRepository)
	weeklyPlanService := weeklyplan.NewWeeklyPlanService(
		weeklyPlanRepository,
		recipeRepository,
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	childHandler := handlers.NewChildHandler(childService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService)
	allergyHandler := handlers.NewAllergyHandler(allergyService, validator)
	weeklyPlanHandler := handlers.NewWeeklyPlanHandler(weeklyPlanService, childService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		ChildHandler:      childHandler,
		RecipeHandler:     recipeHandler,
		IngredientHandler: ingredientHandler,
		AllergyHandler:    allergyHandler,
		WeeklyPlanHandler: weeklyPlanHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
