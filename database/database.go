package database

import (
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"pagemirror/models"
)

// Open connects to the SQLite database at path and auto-migrates the
// schema. The returned handle is passed explicitly to every component
// that needs it; there is no package-level connection.
//
// TranslateError is enabled so that unique-index violations surface as
// gorm.ErrDuplicatedKey, which the page store maps to ErrDuplicateURL.
func Open(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database at %s: %w", path, err)
	}

	if err := db.AutoMigrate(&models.PageRecord{}); err != nil {
		return nil, fmt.Errorf("failed to auto-migrate database schema: %w", err)
	}
	return db, nil
}
