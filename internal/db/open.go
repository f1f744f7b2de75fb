package db

import (
	"fmt" // Error formatting

	"github.com/glebarez/sqlite" // Pure Go SQLite driver for GORM
	"gorm.io/driver/mysql"       // MySQL driver for GORM
	"gorm.io/gorm"               // GORM ORM library
	"gorm.io/gorm/logger"        // GORM logger levels
)

// Open connects to the database for driver ("mysql" or "sqlite")
func Open(driver, dsn string) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch driver {
	case "mysql":
		dialector = mysql.Open(dsn)
	case "sqlite":
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,                                // Map duplicate keys to gorm.ErrDuplicatedKey
		Logger:         logger.Default.LogMode(logger.Warn), // Only slow queries and errors
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if driver == "sqlite" {
		// SQLite has no row locks; a single connection serializes every unit.
		sqlDB.SetMaxOpenConns(1)
	} else {
		sqlDB.SetMaxOpenConns(25)
		sqlDB.SetMaxIdleConns(10)
	}
	return db, nil
}
