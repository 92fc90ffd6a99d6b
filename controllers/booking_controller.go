package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-ops-backend/services"
	"hotel-ops-backend/utils"
)

type BookingController struct {
	bookings *services.BookingService
}

func NewBookingController(bookings *services.BookingService) *BookingController {
	return &BookingController{bookings: bookings}
}

type createBookingRequest struct {
	GuestName string `json:"guestName" binding:"required"`
	RoomID    string `json:"roomId" binding:"required"`
	CheckIn   string `json:"checkIn" binding:"required"`
	CheckOut  string `json:"checkOut" binding:"required"`
}

// ----------------------------------------------------
// 1. Get Bookings (GET /api/bookings)
// ----------------------------------------------------

func (bc *BookingController) GetBookings(c *gin.Context) {
	c.JSON(http.StatusOK, bc.bookings.List())
}

// ----------------------------------------------------
// 2. Create Booking (POST /api/bookings)
// ----------------------------------------------------

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req createBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	booking, err := bc.bookings.Create(req.GuestName, req.RoomID, req.CheckIn, req.CheckOut)
	switch {
	case errors.Is(err, services.ErrRoomNotFound):
		utils.JSONError(c, http.StatusNotFound, "Selected room does not exist")
		return
	case errors.Is(err, services.ErrInvalidStay):
		utils.JSONError(c, http.StatusBadRequest, "Check-out date must be after check-in date")
		return
	case err != nil:
		utils.JSONError(c, http.StatusBadRequest, err.Error())
		return
	}

	utils.JSONSuccess(c, http.StatusCreated, booking)
}

// ----------------------------------------------------
// 3. Cancel Booking (DELETE /api/bookings/:id?confirm=true)
// ----------------------------------------------------

func (bc *BookingController) CancelBooking(c *gin.Context) {
	id := c.Param("id")

	removed, err := bc.bookings.Cancel(id, confirmerFromQuery(c))
	if errors.Is(err, services.ErrConfirmationRequired) {
		utils.JSONError(c, http.StatusConflict, "Cancellation requires confirm=true")
		return
	}

	if !removed {
		log.Printf("⚠️ No booking found with ID: %s", id)
		utils.JSONError(c, http.StatusNotFound, "Booking not found")
		return
	}

	utils.JSONMessage(c, http.StatusOK, "Booking cancelled successfully")
}

// confirmerFromQuery turns the confirm query parameter into the
// confirmation capability the registries expect. Omitting it is the same
// as declining the prompt.
func confirmerFromQuery(c *gin.Context) services.Confirmer {
	confirmed := c.Query("confirm") == "true"
	return func(string) bool { return confirmed }
}
