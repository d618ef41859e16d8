package main

import (
	"fmt"
	"log"

	"github.com/AlexLimaDev-IA/estoque-da-casa/cmd/config"
	migration "github.com/AlexLimaDev-IA/estoque-da-casa/cmd/database/migrate"
	"github.com/AlexLimaDev-IA/estoque-da-casa/internal/utils"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("Database migration failed: %v", err)
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	port := utils.GetConfig("APP_PORT")
	if port == "" {
		port = "8080"
	}

	if err := app.Listen(fmt.Sprintf(":%s", port)); err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
