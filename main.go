package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hotel-ops-backend/config"
	"hotel-ops-backend/controllers"
	"hotel-ops-backend/routes"
	"hotel-ops-backend/services"
	"hotel-ops-backend/store"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Config error: %v", err)
	}

	st, err := store.Open(cfg)
	if err != nil {
		log.Fatalf("❌ Store init failed (%s driver): %v", cfg.StoreDriver, err)
	}
	log.Printf("✅ Store ready (%s driver)", cfg.StoreDriver)

	cols := store.NewCollections(st)

	// Initialize services
	roomService := services.NewRoomService(cols)
	bookingService := services.NewBookingService(cols)
	dashboardService := services.NewDashboardService(cols)
	navigationService := services.NewNavigationService()

	// Initialize controllers
	roomController := controllers.NewRoomController(roomService)
	bookingController := controllers.NewBookingController(bookingService)
	dashboardController := controllers.NewDashboardController(dashboardService)
	navigationController := controllers.NewNavigationController(navigationService)

	// Build router
	router := routes.SetupRouter(dashboardController, roomController, bookingController, navigationController)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:    addr,
		Handler: router,
		// useful timeouts
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with timeout
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
