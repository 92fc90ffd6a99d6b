package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"hotel-ops-backend/models"
	"hotel-ops-backend/store"
	"hotel-ops-backend/utils"
)

var (
	ErrGuestNameRequired = errors.New("guest name is required")
	ErrRoomNotFound      = errors.New("room not found")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidStay       = errors.New("check-out date must be after check-in date")
)

// BookingService is the registry for Booking records.
type BookingService struct {
	cols *store.Collections

	// now is swappable so tests can pin createdAt ordering.
	now func() time.Time
}

func NewBookingService(cols *store.Collections) *BookingService {
	return &BookingService{cols: cols, now: time.Now}
}

func (s *BookingService) List() []models.Booking {
	return s.cols.Bookings()
}

// Create books a stay against an existing room. The total price and the
// room number are frozen at creation; deleting the room later leaves the
// booking dangling by design. A rejected request leaves the collection
// untouched.
func (s *BookingService) Create(guestName, roomID, checkIn, checkOut string) (models.Booking, error) {
	guestName = strings.TrimSpace(guestName)
	if guestName == "" {
		return models.Booking{}, ErrGuestNameRequired
	}

	room, ok := s.findRoom(roomID)
	if !ok {
		return models.Booking{}, ErrRoomNotFound
	}

	start, err := utils.ParseDate(checkIn)
	if err != nil {
		return models.Booking{}, ErrInvalidDate
	}
	end, err := utils.ParseDate(checkOut)
	if err != nil {
		return models.Booking{}, ErrInvalidDate
	}

	nights := utils.NightsBetween(start, end)
	if nights <= 0 {
		return models.Booking{}, ErrInvalidStay
	}

	booking := models.Booking{
		ID:         uuid.NewString(),
		GuestName:  guestName,
		RoomID:     room.ID,
		RoomNumber: room.Number,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		TotalPrice: float64(nights) * room.Price,
		Status:     models.BookingStatusConfirmed,
		CreatedAt:  s.now(),
	}

	s.cols.UpdateBookings(func(bookings []models.Booking) []models.Booking {
		return append(bookings, booking)
	})
	return booking, nil
}

// Cancel removes the booking with the given id after confirmation.
// Returns whether a booking was removed; an unknown id is a no-op.
func (s *BookingService) Cancel(id string, confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm("cancel booking") {
		return false, ErrConfirmationRequired
	}

	removed := false
	s.cols.UpdateBookings(func(bookings []models.Booking) []models.Booking {
		kept := make([]models.Booking, 0, len(bookings))
		for _, booking := range bookings {
			if booking.ID != id {
				kept = append(kept, booking)
			}
		}
		removed = len(kept) != len(bookings)
		return kept
	})
	return removed, nil
}

func (s *BookingService) findRoom(id string) (models.Room, bool) {
	for _, room := range s.cols.Rooms() {
		if room.ID == id {
			return room, true
		}
	}
	return models.Room{}, false
}
