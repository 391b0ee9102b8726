package database

import (
	"log"

	"github.com/devboardhq/devboard/internal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		// Unique-index violations must surface as gorm.ErrDuplicatedKey so
		// the services can turn them into "already applied"/"already saved".
		TranslateError: true,
		// saved_jobs keep dangling references to hard-deleted jobs; listings
		// filter them out instead of the schema forbidding them.
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	log.Println("Database connection established")

	log.Println("Running Migrations...")
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}, &models.SavedJob{}); err != nil {
		log.Fatal("Migration failed:", err)
	}
	return db
}
