package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/services"
)

type DashboardController struct {
	dashboard *services.DashboardService
}

func NewDashboardController(dashboard *services.DashboardService) *DashboardController {
	return &DashboardController{dashboard: dashboard}
}

// GetDashboard (GET /api/dashboard) recomputes today's stats on every
// request.
func (dc *DashboardController) GetDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, dc.dashboard.Stats())
}
