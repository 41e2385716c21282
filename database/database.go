package database

import (
	"fmt"

	"artwork-app/internal/domain/artworks"
	"artwork-app/internal/domain/relations"
	"artwork-app/internal/domain/users"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to Postgres and migrates the schema. The returned handle is
// passed to services explicitly; there is no package-level connection.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates or updates the four application tables. Exported so tests
// can run the same migration against an in-memory database.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&artworks.Artwork{},
		&relations.Like{},
		&relations.SavedArtwork{},
	); err != nil {
		return fmt.Errorf("auto-migrate error: %w", err)
	}
	return nil
}
