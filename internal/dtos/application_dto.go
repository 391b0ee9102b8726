package dtos

import "github.com/devboardhq/devboard/internal/models"

type StatusUpdateRequest struct {
	Status string `json:"status" binding:"required"`
}

type SaveJobRequest struct {
	JobID string `json:"jobId" binding:"required"`
}

type CheckApplicationResponse struct {
	HasApplied  bool                `json:"hasApplied"`
	Application *models.Application `json:"application"`
}

type CheckSavedResponse struct {
	IsSaved bool `json:"isSaved"`
}
