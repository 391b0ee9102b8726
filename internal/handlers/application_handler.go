package handlers

import (
	"net/http"

	"github.com/devboardhq/devboard/internal/auth"
	"github.com/devboardhq/devboard/internal/dtos"
	"github.com/devboardhq/devboard/internal/services"
	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	Applications *services.ApplicationService
	Uploads      *services.UploadService
}

func NewApplicationHandler(applications *services.ApplicationService, uploads *services.UploadService) *ApplicationHandler {
	return &ApplicationHandler{Applications: applications, Uploads: uploads}
}

// Apply is POST /apply: multipart form with jobId, optional coverLetter
// and exactly one resume file. The stored file is rolled back on every
// failure after the write.
func (h *ApplicationHandler) Apply(c *gin.Context) {
	jobIDRaw := c.PostForm("jobId")
	if jobIDRaw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Job ID is required"})
		return
	}
	jobID := services.ParseID(jobIDRaw)
	if jobID == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid job ID"})
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume file is required"})
		return
	}
	files := form.File["resume"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Resume file is required"})
		return
	}
	if len(files) > 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only one resume file is allowed"})
		return
	}

	storedName, err := h.Uploads.SaveResume(files[0])
	if err != nil {
		fail(c, err, "Server error while submitting application")
		return
	}

	claims := auth.CurrentClaims(c)
	application, err := h.Applications.Apply(jobID, claims.UserID, storedName, c.PostForm("coverLetter"))
	if err != nil {
		h.Uploads.Remove(storedName)
		fail(c, err, "Server error while submitting application")
		return
	}
	c.JSON(http.StatusCreated, application)
}

// ListForJob is the admin GET /applications/:jobId endpoint.
func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	applications, err := h.Applications.ListForJob(services.ParseID(c.Param("jobId")), claims.UserID)
	if err != nil {
		fail(c, err, "Server error while fetching applications")
		return
	}
	c.JSON(http.StatusOK, applications)
}

// List is GET /applications; scope depends on the caller's role.
func (h *ApplicationHandler) List(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	applications, err := h.Applications.ListForCaller(claims.UserID, claims.Role)
	if err != nil {
		fail(c, err, "Server error while fetching applications")
		return
	}
	c.JSON(http.StatusOK, applications)
}

// UpdateStatus is the admin PUT /applications/:id endpoint.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dtos.StatusUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Status is required"})
		return
	}

	claims := auth.CurrentClaims(c)
	application, err := h.Applications.UpdateStatus(services.ParseID(c.Param("id")), req.Status, claims.UserID)
	if err != nil {
		fail(c, err, "Server error while updating application")
		return
	}
	c.JSON(http.StatusOK, application)
}

// CheckApplied is GET /check-application/:jobId.
func (h *ApplicationHandler) CheckApplied(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	application, err := h.Applications.CheckApplied(services.ParseID(c.Param("jobId")), claims.UserID)
	if err != nil {
		fail(c, err, "Server error while checking application status")
		return
	}
	c.JSON(http.StatusOK, dtos.CheckApplicationResponse{
		HasApplied:  application != nil,
		Application: application,
	})
}

// DownloadResume is the admin GET /resume/:filename endpoint. The
// traversal check runs before any filesystem or database access.
func (h *ApplicationHandler) DownloadResume(c *gin.Context) {
	filename := c.Param("filename")
	if !services.SafeResumeName(filename) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid filename"})
		return
	}

	if !h.Uploads.Exists(filename) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resume file not found"})
		return
	}

	claims := auth.CurrentClaims(c)
	if err := h.Applications.AuthorizeResume(filename, claims.UserID); err != nil {
		fail(c, err, "Server error while downloading resume")
		return
	}

	c.Header("Content-Type", "application/octet-stream")
	c.FileAttachment(h.Uploads.ResumePath(filename), filename)
}
