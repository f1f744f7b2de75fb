package db

import (
	"bet_wallet/internal/domain" // Importing domain models

	"gorm.io/gorm" // GORM ORM library
)

// Migrate creates tables, missing foreign keys, constraints, columns and indexes
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&domain.User{}, &domain.Wallet{}, &domain.Transaction{})
}
