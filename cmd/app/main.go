package main

import (
	"log"

	"nutriby-backend/cmd/config"
	migration "nutriby-backend/cmd/database/migrate"
	"nutriby-backend/cmd/database/seed"
	"nutriby-backend/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}
	if err := seed.Seed(db); err != nil {
		log.Fatalf("failed to seed database: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to setup app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
