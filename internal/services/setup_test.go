package services

import (
	"testing"
	"time"

	"github.com/devboardhq/devboard/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Job{}, &models.Application{}, &models.SavedJob{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	user := models.User{Name: "Test User", Email: email, PasswordHash: "x", Role: role}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return &user
}

func seedJob(t *testing.T, db *gorm.DB, ownerID uint, status string) *models.Job {
	t.Helper()
	job := models.Job{
		Title:       "Backend Engineer",
		Company:     "Acme Corp",
		Description: "Build and maintain APIs",
		Location:    "Austin, TX",
		Type:        "Full-time",
		PostedByID:  ownerID,
		PostedAt:    time.Now(),
		Status:      status,
	}
	if err := db.Create(&job).Error; err != nil {
		t.Fatalf("seed job: %v", err)
	}
	return &job
}
