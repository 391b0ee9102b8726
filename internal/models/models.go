package models

import (
	"time"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

const (
	JobStatusActive = "active"
	JobStatusClosed = "closed"
)

// JobTypes is the closed set of accepted employment types.
var JobTypes = []string{"Full-time", "Part-time", "Contract", "Internship"}

// ApplicationStatuses is the closed set of application states. Transitions
// between them are unrestricted.
var ApplicationStatuses = []string{"pending", "reviewed", "shortlisted", "rejected"}

func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

func ValidJobType(t string) bool {
	for _, jt := range JobTypes {
		if jt == t {
			return true
		}
	}
	return false
}

func ValidApplicationStatus(s string) bool {
	for _, st := range ApplicationStatuses {
		if st == s {
			return true
		}
	}
	return false
}

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name string `gorm:"not null" json:"name"`
	// Stored lowercased; lookups always lowercase first.
	Email        string `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         string `gorm:"not null;default:'user'" json:"role"`
}

type Job struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Title       string `gorm:"not null" json:"title"`
	Company     string `gorm:"not null" json:"company"`
	Description string `gorm:"type:text;not null" json:"description"`
	// One entry per requirement line; stored as a JSON column.
	Requirements []string `gorm:"serializer:json;type:text" json:"requirements"`
	Location     string   `gorm:"not null" json:"location"`
	Type         string   `gorm:"not null" json:"type"`
	Salary       string   `json:"salary"`

	PostedByID uint      `gorm:"not null;index" json:"posted_by_id"`
	PostedBy   User      `json:"posted_by,omitempty"`
	PostedAt   time.Time `json:"posted_at"`
	Status     string    `gorm:"not null;default:'active'" json:"status"`
}

type Application struct {
	ID uint `gorm:"primaryKey" json:"id"`

	// One application per (job, user); the composite unique index is the
	// race-safety net behind the pre-insert check.
	JobID  uint `gorm:"not null;uniqueIndex:idx_applications_job_user" json:"job_id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_applications_job_user" json:"user_id"`
	Job    Job  `json:"job,omitempty"`
	User   User `json:"applicant,omitempty"`

	// Server-assigned stored filename inside the upload directory.
	ResumeFilePath string    `gorm:"not null" json:"resume_file_path"`
	CoverLetter    string    `gorm:"type:text" json:"cover_letter"`
	Status         string    `gorm:"not null;default:'pending'" json:"status"`
	AppliedAt      time.Time `json:"applied_at"`
}

type SavedJob struct {
	ID uint `gorm:"primaryKey" json:"id"`

	JobID   uint      `gorm:"not null;uniqueIndex:idx_saved_jobs_job_user" json:"job_id"`
	UserID  uint      `gorm:"not null;uniqueIndex:idx_saved_jobs_job_user" json:"user_id"`
	Job     Job       `json:"job,omitempty"`
	SavedAt time.Time `json:"saved_at"`
}
