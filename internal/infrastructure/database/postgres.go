package database

import (
	"fmt"
	"os"

	"shop_manager/internal/domain/entities"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the Postgres connection from DATABASE_URL and migrates the
// schema. Local default targets the docker-compose database.
func Connect() (*gorm.DB, error) {
	dsn := getenvDefault("DATABASE_URL", "host=localhost user=shop password=shop dbname=shop_manager port=5432 sslmode=disable")

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return db, nil
}

// Migrate creates/updates every table the service owns.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&entities.Client{},
		&entities.Vehicle{},
		&entities.Vendor{},
		&entities.Category{},
		&entities.Service{},
		&entities.Labor{},
		&entities.Tag{},
		&entities.Document{},
		&entities.LineItem{},
		&entities.Material{},
		&entities.ItemTag{},
		&entities.DocumentPhoto{},
		&entities.InventoryProduct{},
		&entities.InventoryProductHistory{},
		&entities.Task{},
		&entities.Payment{},
	)
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
