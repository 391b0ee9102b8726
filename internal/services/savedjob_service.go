package services

import (
	"errors"
	"time"

	"github.com/devboardhq/devboard/internal/models"
	"gorm.io/gorm"
)

type SavedJobService struct {
	DB *gorm.DB
}

func NewSavedJobService(db *gorm.DB) *SavedJobService {
	return &SavedJobService{DB: db}
}

func (s *SavedJobService) Save(jobID, userID uint) error {
	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFound("Job not found")
		}
		return err
	}

	var count int64
	if err := s.DB.Model(&models.SavedJob{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return conflict("Job already saved")
	}

	saved := models.SavedJob{JobID: jobID, UserID: userID, SavedAt: time.Now()}
	if err := s.DB.Create(&saved).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return conflict("Job already saved")
		}
		return err
	}
	return nil
}

func (s *SavedJobService) Unsave(jobID, userID uint) error {
	result := s.DB.Where("job_id = ? AND user_id = ?", jobID, userID).Delete(&models.SavedJob{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return notFound("Saved job not found")
	}
	return nil
}

// ListForUser returns the caller's saved jobs, newest-saved-first.
// Entries whose job has since been hard-deleted are dropped.
func (s *SavedJobService) ListForUser(userID uint) ([]models.SavedJob, error) {
	saved := []models.SavedJob{}
	err := s.DB.
		Preload("Job").
		Preload("Job.PostedBy").
		Where("user_id = ?", userID).
		Order("saved_at DESC").
		Find(&saved).Error
	if err != nil {
		return nil, err
	}

	valid := saved[:0]
	for _, sj := range saved {
		if sj.Job.ID != 0 {
			valid = append(valid, sj)
		}
	}
	return valid, nil
}

func (s *SavedJobService) IsSaved(jobID, userID uint) (bool, error) {
	var count int64
	err := s.DB.Model(&models.SavedJob{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}
