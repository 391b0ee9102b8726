package dtos

import "github.com/devboardhq/devboard/internal/models"

type JobCreationRequest struct {
	Title       string `json:"title" binding:"required"`
	Company     string `json:"company" binding:"required"`
	Description string `json:"description" binding:"required"`
	Location    string `json:"location" binding:"required"`
	Type        string `json:"type" binding:"required"`

	// Optional fields
	// Requirements arrive as one newline-delimited block from the posting form.
	Requirements string `json:"requirements"`
	Salary       string `json:"salary"`
}

type JobListQuery struct {
	Search   string `form:"search"`
	Location string `form:"location"`
	Type     string `form:"type"`
	Page     int    `form:"page,default=1"`
	Limit    int    `form:"limit,default=10"`
}

type JobListResponse struct {
	Jobs        []models.Job `json:"jobs"`
	TotalPages  int64        `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
	Total       int64        `json:"total"`
}

// JobWithCount annotates a job with how many applications it has received.
type JobWithCount struct {
	models.Job
	ApplicationCount int64 `json:"applicationCount"`
}
