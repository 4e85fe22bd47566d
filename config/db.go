package config

import (
	"fmt"
	"os"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"takabet-api/logger"
	"takabet-api/models"
)

// InitDB opens the Postgres connection and runs schema migrations.
func InitDB() *gorm.DB {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		getEnv("DB_HOST", "localhost"),
		getEnv("DB_PORT", "5432"),
		getEnv("DB_USER", "postgres"),
		getEnv("DB_PASSWORD", "postgres"),
		getEnv("DB_NAME", "takabet"),
		getEnv("DB_SSLMODE", "disable"),
	)

	// Category deletes do not cascade to posts; dangling references are
	// tolerated, so no FK constraints at the schema level.
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}

	if err := Migrate(db); err != nil {
		logger.Fatal("Failed to migrate database", "error", err)
	}

	return db
}

// Migrate applies the schema plus the indexes GORM tags cannot express:
// the full-text index over title/content/tags used by post search.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.User{}, &models.Category{}, &models.Post{}); err != nil {
		return err
	}

	return db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_posts_search ON posts
		USING GIN (to_tsvector('english',
			coalesce(title, '') || ' ' || coalesce(content, '') || ' ' ||
			coalesce(array_to_string(tags, ' '), '')))
	`).Error
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
