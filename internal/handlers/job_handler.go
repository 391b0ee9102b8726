package handlers

import (
	"net/http"

	"github.com/devboardhq/devboard/internal/auth"
	"github.com/devboardhq/devboard/internal/dtos"
	"github.com/devboardhq/devboard/internal/services"
	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	Jobs *services.JobService
}

func NewJobHandler(jobs *services.JobService) *JobHandler {
	return &JobHandler{Jobs: jobs}
}

// List is the public GET /jobs endpoint: filtered, paginated, active
// jobs only.
func (h *JobHandler) List(c *gin.Context) {
	var q dtos.JobListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters"})
		return
	}

	resp, err := h.Jobs.List(&q)
	if err != nil {
		fail(c, err, "Server error while fetching jobs")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Get is GET /jobs/:id.
func (h *JobHandler) Get(c *gin.Context) {
	job, err := h.Jobs.GetByID(services.ParseID(c.Param("id")))
	if err != nil {
		fail(c, err, "Server error while fetching job details")
		return
	}
	c.JSON(http.StatusOK, job)
}

// Create is the admin POST /jobs endpoint.
func (h *JobHandler) Create(c *gin.Context) {
	var req dtos.JobCreationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Title, company, description, location, and type are required"})
		return
	}

	claims := auth.CurrentClaims(c)
	job, err := h.Jobs.Create(claims.UserID, &req)
	if err != nil {
		fail(c, err, "Server error while creating job")
		return
	}
	c.JSON(http.StatusCreated, job)
}

// Delete is DELETE /jobs/:id; a job with applications is closed instead
// of removed.
func (h *JobHandler) Delete(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	job, err := h.Jobs.CloseOrDelete(services.ParseID(c.Param("id")), claims.UserID)
	if err != nil {
		fail(c, err, "Server error while deleting job")
		return
	}

	if job != nil {
		c.JSON(http.StatusOK, gin.H{
			"message": "Job marked as closed due to existing applications",
			"job":     job,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Job deleted successfully"})
}

// MyJobs is the admin GET /my-jobs endpoint.
func (h *JobHandler) MyJobs(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	jobs, err := h.Jobs.ListMine(claims.UserID)
	if err != nil {
		fail(c, err, "Server error while fetching your jobs")
		return
	}
	c.JSON(http.StatusOK, jobs)
}
