package services

import (
	"sort"
	"time"

	"github.com/devboardhq/devboard/internal/dtos"
	"github.com/devboardhq/devboard/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	DB *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{DB: db}
}

// Data aggregates job and application figures scoped to the calling
// admin's own postings.
func (s *DashboardService) Data(adminID uint) (*dtos.DashboardData, error) {
	var stats dtos.DashboardStats

	if err := s.DB.Model(&models.Job{}).Where("posted_by_id = ?", adminID).Count(&stats.TotalJobs).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Model(&models.Job{}).
		Where("posted_by_id = ? AND status = ?", adminID, models.JobStatusActive).
		Count(&stats.ActiveJobs).Error; err != nil {
		return nil, err
	}

	jobIDs := []uint{}
	if err := s.DB.Model(&models.Job{}).Where("posted_by_id = ?", adminID).Pluck("id", &jobIDs).Error; err != nil {
		return nil, err
	}

	charts := dtos.DashboardCharts{
		ApplicationsByMonth:  []dtos.MonthCount{},
		ApplicationsByStatus: []dtos.StatusCount{},
	}

	if len(jobIDs) > 0 {
		if err := s.DB.Model(&models.Application{}).
			Where("job_id IN ?", jobIDs).
			Count(&stats.TotalApplications).Error; err != nil {
			return nil, err
		}
		if err := s.DB.Model(&models.Application{}).
			Where("job_id IN ? AND status = ?", jobIDs, "pending").
			Count(&stats.PendingApplications).Error; err != nil {
			return nil, err
		}

		byMonth, err := s.applicationsByMonth(jobIDs)
		if err != nil {
			return nil, err
		}
		charts.ApplicationsByMonth = byMonth

		byStatus, err := s.applicationsByStatus(jobIDs)
		if err != nil {
			return nil, err
		}
		charts.ApplicationsByStatus = byStatus
	}

	recentJobs, err := s.recentJobs(adminID)
	if err != nil {
		return nil, err
	}

	return &dtos.DashboardData{Stats: stats, Charts: charts, RecentJobs: recentJobs}, nil
}

// applicationsByMonth buckets the last six months of applications.
// Bucketing happens in Go so the same query runs on Postgres and the
// sqlite test databases alike.
func (s *DashboardService) applicationsByMonth(jobIDs []uint) ([]dtos.MonthCount, error) {
	sixMonthsAgo := time.Now().AddDate(0, -6, 0)

	appliedTimes := []time.Time{}
	err := s.DB.Model(&models.Application{}).
		Where("job_id IN ? AND applied_at >= ?", jobIDs, sixMonthsAgo).
		Pluck("applied_at", &appliedTimes).Error
	if err != nil {
		return nil, err
	}

	type bucket struct{ year, month int }
	counts := map[bucket]int64{}
	for _, at := range appliedTimes {
		counts[bucket{at.Year(), int(at.Month())}]++
	}

	result := make([]dtos.MonthCount, 0, len(counts))
	for b, n := range counts {
		result = append(result, dtos.MonthCount{Year: b.year, Month: b.month, Count: n})
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Year != result[j].Year {
			return result[i].Year < result[j].Year
		}
		return result[i].Month < result[j].Month
	})
	return result, nil
}

func (s *DashboardService) applicationsByStatus(jobIDs []uint) ([]dtos.StatusCount, error) {
	result := []dtos.StatusCount{}
	err := s.DB.Model(&models.Application{}).
		Select("status, COUNT(*) AS count").
		Where("job_id IN ?", jobIDs).
		Group("status").
		Scan(&result).Error
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (s *DashboardService) recentJobs(adminID uint) ([]dtos.JobWithCount, error) {
	jobs := []models.Job{}
	err := s.DB.
		Where("posted_by_id = ?", adminID).
		Order("posted_at DESC").
		Limit(10).
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
