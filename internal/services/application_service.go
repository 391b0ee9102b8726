package services

import (
	"errors"
	"strings"
	"time"

	"github.com/devboardhq/devboard/internal/models"
	"gorm.io/gorm"
)

const maxCoverLetterLen = 2000

type ApplicationService struct {
	DB *gorm.DB
}

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{DB: db}
}

// Apply records an application for an active job. The caller has already
// stored the resume; on any failure here the caller must roll that file
// back.
func (s *ApplicationService) Apply(jobID, userID uint, resumePath, coverLetter string) (*models.Application, error) {
	coverLetter = strings.TrimSpace(coverLetter)
	if len(coverLetter) > maxCoverLetterLen {
		return nil, invalid("Cover letter must be at most 2000 characters long")
	}

	var job models.Job
	if err := s.DB.First(&job, jobID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Job not found")
		}
		return nil, err
	}
	if job.Status != models.JobStatusActive {
		return nil, invalid("This job is no longer accepting applications")
	}

	var count int64
	if err := s.DB.Model(&models.Application{}).
		Where("job_id = ? AND user_id = ?", jobID, userID).
		Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, conflict("You have already applied for this job")
	}

	application := models.Application{
		JobID:          jobID,
		UserID:         userID,
		ResumeFilePath: resumePath,
		CoverLetter:    coverLetter,
		Status:         "pending",
		AppliedAt:      time.Now(),
	}
	if err := s.DB.Create(&application).Error; err != nil {
		// Two concurrent applies race past the count check; the unique
		// index decides, and the loser gets the same message.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, conflict("You have already applied for this job")
		}
		return nil, err
	}

	if err := s.DB.Preload("User").Preload("Job").First(&application, application.ID).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// ListForJob returns a job's applications for its owning admin.
func (s *ApplicationService) ListForJob(jobID, adminID uint) ([]models.Application, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND posted_by_id = ?", jobID, adminID).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Job not found or you don't have permission to view its applications")
		}
		return nil, err
	}

	applications := []models.Application{}
	err = s.DB.
		Preload("User").
		Preload("Job").
		Where("job_id = ?", jobID).
		Order("applied_at DESC").
		Find(&applications).Error
	if err != nil {
		return nil, err
	}
	return applications, nil
}

// ListForCaller scopes the listing by role: admins see applications for
// their own jobs only, users see their own applications.
func (s *ApplicationService) ListForCaller(userID uint, role string) ([]models.Application, error) {
	query := s.DB.Preload("User").Preload("Job").Order("applied_at DESC")

	if role == models.RoleAdmin {
		jobIDs := []uint{}
		if err := s.DB.Model(&models.Job{}).Where("posted_by_id = ?", userID).Pluck("id", &jobIDs).Error; err != nil {
			return nil, err
		}
		if len(jobIDs) == 0 {
			return []models.Application{}, nil
		}
		query = query.Where("job_id IN ?", jobIDs)
	} else {
		query = query.Where("user_id = ?", userID)
	}

	applications := []models.Application{}
	if err := query.Find(&applications).Error; err != nil {
		return nil, err
	}
	return applications, nil
}

// UpdateStatus moves an application to any of the four states; there is
// no enforced ordering between them.
func (s *ApplicationService) UpdateStatus(id uint, status string, adminID uint) (*models.Application, error) {
	if !models.ValidApplicationStatus(status) {
		return nil, invalid("Invalid status. Must be: pending, reviewed, shortlisted, or rejected")
	}

	var application models.Application
	if err := s.DB.Preload("Job").First(&application, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Application not found")
		}
		return nil, err
	}

	if application.Job.PostedByID != adminID {
		return nil, forbidden("You don't have permission to update this application")
	}

	if err := s.DB.Model(&application).Update("status", status).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Preload("User").Preload("Job").First(&application, application.ID).Error; err != nil {
		return nil, err
	}
	return &application, nil
}

// CheckApplied reports whether the user already applied, with the record
// when present.
func (s *ApplicationService) CheckApplied(jobID, userID uint) (*models.Application, error) {
	var application models.Application
	err := s.DB.Where("job_id = ? AND user_id = ?", jobID, userID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &application, nil
}

// AuthorizeResume allows access to a stored resume only for the admin
// that owns the job it was submitted to.
func (s *ApplicationService) AuthorizeResume(storedName string, adminID uint) error {
	var application models.Application
	err := s.DB.Preload("Job").Where("resume_file_path = ?", storedName).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return forbidden("You don't have permission to access this file")
		}
		return err
	}
	if application.Job.PostedByID != adminID {
		return forbidden("You don't have permission to access this file")
	}
	return nil
}
