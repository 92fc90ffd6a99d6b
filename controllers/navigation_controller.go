package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/services"
)

type NavigationController struct {
	nav *services.NavigationService
}

func NewNavigationController(nav *services.NavigationService) *NavigationController {
	return &NavigationController{nav: nav}
}

type navigateRequest struct {
	Screen string `json:"screen" binding:"required"`
}

// GetNavigation (GET /api/navigation)
func (nc *NavigationController) GetNavigation(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"screen": nc.nav.Active()})
}

// Navigate (POST /api/navigation) switches the active screen; unknown
// screen names land on the dashboard rather than erroring.
func (nc *NavigationController) Navigate(c *gin.Context) {
	var req navigateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request payload",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"screen": nc.nav.Navigate(req.Screen)})
}
