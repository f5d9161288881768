package main

import (
	"fmt"
	"log"
	"orderup/internal/config"
	"orderup/internal/database"
	"orderup/internal/logging"
	"orderup/internal/migrations"
)

// Drops and recreates the schema, then seeds the demo menu and cart.
func main() {
	fmt.Println("Initializing database...")

	// Load configuration
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel, "console")
	if err != nil {
		log.Fatal("Failed to build logger:", err)
	}
	defer logger.Sync()

	db, err := database.Initialize(cfg.DBDriver, cfg.DatabaseURL, cfg.DBLogSQL, logger)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := migrations.Reset(db, logger); err != nil {
		log.Fatal("Failed to reset schema:", err)
	}

	fmt.Println("Seeding demo data...")
	if err := migrations.SeedDemoData(db, logger); err != nil {
		log.Fatal("Failed to seed demo data:", err)
	}

	fmt.Printf("Database initialization completed successfully! Demo cart: %s\n", migrations.DemoCartID)
}
