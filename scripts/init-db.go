package main

import (
	"fmt"

	"canteen/internal/config"
	"canteen/internal/database"
	"canteen/internal/logger"
	"canteen/internal/migrations"
	"canteen/internal/models"

	"go.uber.org/zap"
)

func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	logger.Init(cfg.AppEnv)
	defer logger.Sync()
	log := logger.L()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	// Migrate and seed bootstrap data
	if err := migrations.Run(db, cfg); err != nil {
		log.Fatal("failed to migrate database", zap.Error(err))
	}

	var items []models.MenuItem
	if err := db.Order("name").Find(&items).Error; err != nil {
		log.Fatal("failed to read menu", zap.Error(err))
	}

	fmt.Println("Current menu:")
	for _, item := range items {
		window := "always"
		if item.AvailableFrom != nil && item.AvailableTo != nil {
			window = *item.AvailableFrom + "-" + *item.AvailableTo
		}
		fmt.Printf("  #%d %-20s %8.2f  %s\n", item.ID, item.Name, item.Price, window)
	}

	fmt.Println("Database initialization completed successfully!")
}
