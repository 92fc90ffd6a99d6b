package routes

import (
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-ops-backend/controllers"
	"hotel-ops-backend/middleware"
)

func parseCorsOrigins() []string {
	raw := strings.TrimSpace(os.Getenv("CORS_ORIGINS"))
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

func SetupRouter(
	dc *controllers.DashboardController,
	rc *controllers.RoomController,
	bc *controllers.BookingController,
	nc *controllers.NavigationController,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger())

	origins := parseCorsOrigins()
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		api.GET("/dashboard", dc.GetDashboard)

		rooms := api.Group("/rooms")
		{
			rooms.GET("", rc.GetRooms)
			rooms.POST("", rc.CreateRoom)
			rooms.DELETE("/:id", rc.DeleteRoom)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.DELETE("/:id", bc.CancelBooking)
		}

		api.GET("/navigation", nc.GetNavigation)
		api.POST("/navigation", nc.Navigate)
	}

	return r
}
