package handlers

import (
	"net/http"

	"github.com/devboardhq/devboard/internal/auth"
	"github.com/devboardhq/devboard/internal/services"
	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	Dashboard *services.DashboardService
}

func NewDashboardHandler(dashboard *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{Dashboard: dashboard}
}

// Data is the admin GET /dashboard-data endpoint.
func (h *DashboardHandler) Data(c *gin.Context) {
	claims := auth.CurrentClaims(c)
	data, err := h.Dashboard.Data(claims.UserID)
	if err != nil {
		fail(c, err, "Server error while fetching dashboard data")
		return
	}
	c.JSON(http.StatusOK, data)
}
