package main

import (
	"Recipe-App-API/cmd/config"
	migration "Recipe-App-API/cmd/database/migrate"
	"Recipe-App-API/internal/utils"
	"log"
)

func main() {
	utils.LoadConfig()

	db, err := config.WaitForDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("Failed to setup app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8000"
	}

	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
