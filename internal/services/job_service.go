package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/devboardhq/devboard/internal/dtos"
	"github.com/devboardhq/devboard/internal/models"
	"gorm.io/gorm"
)

const maxJobsPerPage = 50

type JobService struct {
	DB *gorm.DB
}

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{DB: db}
}

// ParseID converts a route/body id into a primary key. Malformed ids map
// to 0, which no record has, so lookups report NotFound.
func ParseID(raw string) uint {
	id, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 32)
	if err != nil {
		return 0
	}
	return uint(id)
}

func (s *JobService) Create(ownerID uint, req *dtos.JobCreationRequest) (*models.Job, error) {
	title := strings.TrimSpace(req.Title)
	company := strings.TrimSpace(req.Company)
	description := strings.TrimSpace(req.Description)
	location := strings.TrimSpace(req.Location)

	if len(title) < 3 {
		return nil, invalid("Job title must be at least 3 characters long")
	}
	if len(company) < 2 {
		return nil, invalid("Company name must be at least 2 characters long")
	}
	if len(description) < 10 {
		return nil, invalid("Job description must be at least 10 characters long")
	}
	if !models.ValidJobType(req.Type) {
		return nil, invalid("Invalid job type")
	}

	job := models.Job{
		Title:        title,
		Company:      company,
		Description:  description,
		Requirements: splitRequirements(req.Requirements),
		Location:     location,
		Type:         req.Type,
		Salary:       strings.TrimSpace(req.Salary),
		PostedByID:   ownerID,
		PostedAt:     time.Now(),
		Status:       models.JobStatusActive,
	}
	if err := s.DB.Create(&job).Error; err != nil {
		return nil, err
	}

	if err := s.DB.Preload("PostedBy").First(&job, job.ID).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

// splitRequirements turns a newline-delimited block into trimmed,
// non-empty lines.
func splitRequirements(block string) []string {
	reqs := []string{}
	for _, line := range strings.Split(block, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			reqs = append(reqs, trimmed)
		}
	}
	return reqs
}

func (s *JobService) List(q *dtos.JobListQuery) (*dtos.JobListResponse, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 1
	}
	if limit > maxJobsPerPage {
		limit = maxJobsPerPage
	}

	query := s.DB.Model(&models.Job{}).Where("status = ?", models.JobStatusActive)

	if search := strings.TrimSpace(q.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		query = query.Where(
			"LOWER(title) LIKE ? OR LOWER(company) LIKE ? OR LOWER(description) LIKE ?",
			pattern, pattern, pattern,
		)
	}
	if location := strings.TrimSpace(q.Location); location != "" {
		query = query.Where("LOWER(location) LIKE ?", "%"+strings.ToLower(location)+"%")
	}
	if q.Type != "" && q.Type != "all" && models.ValidJobType(q.Type) {
		query = query.Where("type = ?", q.Type)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, err
	}

	jobs := []models.Job{}
	err := query.
		Preload("PostedBy").
		Order("posted_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	return &dtos.JobListResponse{
		Jobs:        jobs,
		TotalPages:  (total + int64(limit) - 1) / int64(limit),
		CurrentPage: page,
		Total:       total,
	}, nil
}

func (s *JobService) GetByID(id uint) (*models.Job, error) {
	var job models.Job
	if err := s.DB.Preload("PostedBy").First(&job, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Job not found")
		}
		return nil, err
	}
	return &job, nil
}

// ListMine returns all of an admin's jobs (any status), newest-first,
// each with its application count.
func (s *JobService) ListMine(ownerID uint) ([]dtos.JobWithCount, error) {
	jobs := []models.Job{}
	err := s.DB.
		Preload("PostedBy").
		Where("posted_by_id = ?", ownerID).
		Order("posted_at DESC").
		Find(&jobs).Error
	if err != nil {
		return nil, err
	}

	result := make([]dtos.JobWithCount, 0, len(jobs))
	for _, job := range jobs {
		var count int64
		if err := s.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&count).Error; err != nil {
			return nil, err
		}
		result = append(result, dtos.JobWithCount{Job: job, ApplicationCount: count})
	}
	return result, nil
}

// CloseOrDelete removes a job without applications, or marks it closed
// when applications exist so their job references stay intact. The
// returned job is nil when the job was deleted.
func (s *JobService) CloseOrDelete(id, ownerID uint) (*models.Job, error) {
	var job models.Job
	err := s.DB.Where("id = ? AND posted_by_id = ?", id, ownerID).First(&job).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("Job not found or you don't have permission to delete it")
		}
		return nil, err
	}

	var applicationCount int64
	if err := s.DB.Model(&models.Application{}).Where("job_id = ?", job.ID).Count(&applicationCount).Error; err != nil {
		return nil, err
	}

	if applicationCount > 0 {
		job.Status = models.JobStatusClosed
		if err := s.DB.Model(&job).Update("status", models.JobStatusClosed).Error; err != nil {
			return nil, err
		}
		return &job, nil
	}

	if err := s.DB.Delete(&models.Job{}, job.ID).Error; err != nil {
		return nil, err
	}
	return nil, nil
}
