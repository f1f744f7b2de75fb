package main

import (
	"bet_wallet/internal/config" // Custom import path (Config)
	"bet_wallet/internal/db"     // Custom import path (Database)

	"github.com/sirupsen/logrus" // Logging library
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	database, err := db.Open(cfg.DBDriver, cfg.DSN())
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err)
	}
	if err := db.Migrate(database); err != nil {
		logrus.Fatalf("migration failed: %v", err)
	}
	logrus.Info("Migration completed.")
}
