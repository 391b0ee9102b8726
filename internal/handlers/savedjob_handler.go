package handlers

import (
	"net/http"

	"github.com/devboardhq/devboard/internal/auth"
	"github.com/devboardhq/devboard/internal/dtos"
	"github.com/devboardhq/devboard/internal/services"
	"github.com/gin-gonic/gin"
)

type SavedJobHandler struct {
	SavedJobs *services.SavedJobService
}

func NewSavedJobHandler(savedJobs *services.SavedJobService) *SavedJobHandler {
	return &SavedJobHandler{SavedJobs: savedJobs}
}

// Save is POST /save-job.
func (h *SavedJobHandler) Save(c *gin.Context) {
	var req dtos.SaveJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Job ID is required"})
		return
	}
	jobID := services.ParseID(req.JobID)
	if jobID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	claims := auth.CurrentClaims(c)
	if err := h.SavedJobs.Save(jobID, claims.UserID); err != nil {
		fail(c, err, "Server error while saving job")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Job saved successfully"})
}

// Unsave is DELETE /save-job/:jobId.
func (h *SavedJobHandler) Unsave(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	if err := h.SavedJobs.Unsave(services.ParseID(c.Param("jobId")), claims.UserID); err != nil {
		fail(c, err, "Server error while unsaving job")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job unsaved successfully"})
}

// List is GET /saved-jobs.
func (h *SavedJobHandler) List(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	saved, err := h.SavedJobs.ListForUser(claims.UserID)
	if err != nil {
		fail(c, err, "Server error while fetching saved jobs")
		return
	}
	c.JSON(http.StatusOK, saved)
}

// CheckSaved is GET /check-saved/:jobId.
func (h *SavedJobHandler) CheckSaved(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	isSaved, err := h.SavedJobs.IsSaved(services.ParseID(c.Param("jobId")), claims.UserID)
	if err != nil {
		fail(c, err, "Server error while checking saved job")
		return
	}
	c.JSON(http.StatusOK, dtos.CheckSavedResponse{IsSaved: isSaved})
}
