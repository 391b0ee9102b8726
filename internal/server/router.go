package server

import (
	"net/http"

	"github.com/devboardhq/devboard/internal/auth"
	"github.com/devboardhq/devboard/internal/config"
	"github.com/devboardhq/devboard/internal/handlers"
	"github.com/devboardhq/devboard/internal/services"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires services, handlers and middleware into the gin engine.
func New(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	tokens := auth.NewTokenManager(cfg.JWTSecret)

	uploads, err := services.NewUploadService(cfg.UploadDir)
	if err != nil {
		return nil, err
	}

	userService := services.NewUserService(db, tokens)
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	savedJobService := services.NewSavedJobService(db)
	dashboardService := services.NewDashboardService(db)

	authHandler := handlers.NewAuthHandler(userService)
	jobHandler := handlers.NewJobHandler(jobService)
	applicationHandler := handlers.NewApplicationHandler(applicationService, uploads)
	savedJobHandler := handlers.NewSavedJobHandler(savedJobService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	authenticated := auth.Authenticate(tokens)
	adminOnly := auth.RequireAdmin()

	r.GET("/health", handlers.HealthCheck)

	// Public
	r.POST("/register", authHandler.Register)
	r.POST("/login", authHandler.Login)
	r.GET("/jobs", jobHandler.List)
	r.GET("/jobs/:id", jobHandler.Get)

	// Authenticated
	r.POST("/apply", authenticated, applicationHandler.Apply)
	r.GET("/applications", authenticated, applicationHandler.List)
	r.GET("/check-application/:jobId", authenticated, applicationHandler.CheckApplied)
	r.POST("/save-job", authenticated, savedJobHandler.Save)
	r.DELETE("/save-job/:jobId", authenticated, savedJobHandler.Unsave)
	r.GET("/saved-jobs", authenticated, savedJobHandler.List)
	r.GET("/check-saved/:jobId", authenticated, savedJobHandler.CheckSaved)

	// Admin
	r.POST("/jobs", authenticated, adminOnly, jobHandler.Create)
	r.DELETE("/jobs/:id", authenticated, adminOnly, jobHandler.Delete)
	r.GET("/my-jobs", authenticated, adminOnly, jobHandler.MyJobs)
	r.GET("/applications/:jobId", authenticated, adminOnly, applicationHandler.ListForJob)
	r.PUT("/applications/:id", authenticated, adminOnly, applicationHandler.UpdateStatus)
	r.GET("/dashboard-data", authenticated, adminOnly, dashboardHandler.Data)
	r.GET("/resume/:filename", authenticated, adminOnly, applicationHandler.DownloadResume)

	return r, nil
}
