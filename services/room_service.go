package services

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"hotel-ops-backend/models"
	"hotel-ops-backend/store"
)

var (
	ErrRoomNumberRequired   = errors.New("room number is required")
	ErrConfirmationRequired = errors.New("confirmation required")
)

// RoomService is the registry for Room records. Rooms are created and
// deleted; there is no update path, status is set once at creation.
type RoomService struct {
	cols *store.Collections
}

func NewRoomService(cols *store.Collections) *RoomService {
	return &RoomService{cols: cols}
}

func (s *RoomService) List() []models.Room {
	return s.cols.Rooms()
}

// Add validates the submitted fields and appends a new room. A price that
// does not parse to a finite non-negative number silently becomes 0, and an
// unknown type or status falls back to the form defaults.
func (s *RoomService) Add(number, roomType, status, price string) (models.Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return models.Room{}, ErrRoomNumberRequired
	}

	if !models.ValidRoomType(roomType) {
		roomType = models.RoomTypeStandard
	}
	if !models.ValidRoomStatus(status) {
		status = models.RoomStatusClean
	}

	// ParseFloat accepts "NaN" and "Inf" without error; neither is a
	// price, and NaN would break JSON marshaling of the collection.
	parsedPrice, err := strconv.ParseFloat(strings.TrimSpace(price), 64)
	if err != nil || math.IsNaN(parsedPrice) || math.IsInf(parsedPrice, 0) || parsedPrice < 0 {
		parsedPrice = 0
	}

	room := models.Room{
		ID:     uuid.NewString(),
		Number: number,
		Type:   roomType,
		Price:  parsedPrice,
		Status: status,
	}

	s.cols.UpdateRooms(func(rooms []models.Room) []models.Room {
		return append(rooms, room)
	})
	return room, nil
}

// Delete removes the room with the given id after confirmation. Returns
// whether a room was removed; an unknown id is a no-op. Bookings that
// reference the room are left untouched.
func (s *RoomService) Delete(id string, confirm Confirmer) (bool, error) {
	if confirm == nil || !confirm("delete room") {
		return false, ErrConfirmationRequired
	}

	removed := false
	s.cols.UpdateRooms(func(rooms []models.Room) []models.Room {
		kept := make([]models.Room, 0, len(rooms))
		for _, room := range rooms {
			if room.ID != id {
				kept = append(kept, room)
			}
		}
		removed = len(kept) != len(rooms)
		return kept
	})
	return removed, nil
}
