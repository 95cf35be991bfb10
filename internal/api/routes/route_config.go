package routes

import (
	"github.com/gofiber/fiber/v2"

	"nutriby-backend/internal/api/handlers"
	"nutriby-backend/internal/middleware"
	"nutriby-backend/pkg/jwt"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	ChildHandler      handlers.ChildHandler
	RecipeHandler     handlers.RecipeHandler
	IngredientHandler handlers.IngredientHandler
	AllergyHandler    handlers.AllergyHandler
	WeeklyPlanHandler handlers.WeeklyPlanHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Children()
	c.Recipes()
	c.Ingredients()
	c.Allergies()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/send_verify", c.UserHandler.SendVerificationEmail)
		user.Get("/verify", c.UserHandler.VerifyEmail)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
	}
}

func (c *Config) Children() {
	children := c.App.Group("/api/v1/children", c.Middleware.AuthMiddleware(c.JWTService))

	children.Post("", c.ChildHandler.CreateChild)
	children.Get("", c.ChildHandler.GetChildren)
	children.Get("/:id", c.ChildHandler.GetChildDetail)
	children.Patch("/:id", c.ChildHandler.UpdateChild)
	children.Post("/:id/photo", c.ChildHandler.UploadChildPhoto)

	children.Post("/:id/weekly-plan/generate", c.WeeklyPlanHandler.GeneratePlan)
	children.Get("/:id/weekly-plan/active", c.WeeklyPlanHandler.GetActivePlan)
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes", c.Middleware.AuthMiddleware(c.JWTService))

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/search", c.RecipeHandler.SearchRecipes)
	recipes.Post("/filter", c.RecipeHandler.FilterRecipes)
	recipes.Get("/:id", c.RecipeHandler.GetRecipeDetail)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients", c.Middleware.AuthMiddleware(c.JWTService))
	ingredients.Get("", c.IngredientHandler.GetIngredients)
}

func (c *Config) Allergies() {
	allergies := c.App.Group("/api/v1/allergies", c.Middleware.AuthMiddleware(c.JWTService))

	allergies.Get("", c.AllergyHandler.GetAllergies)
	allergies.Get("/search", c.AllergyHandler.SearchAllergies)
	allergies.Get("/:id", c.AllergyHandler.GetAllergyDetail)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
