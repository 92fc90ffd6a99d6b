package models

import "time"

// BookingStatusConfirmed is the only booking status in use; bookings are
// either confirmed or cancelled outright (removed).
const BookingStatusConfirmed = "Confirmed"

// Booking references its Room by id only. RoomNumber and TotalPrice are
// snapshots taken at creation time and are never resynced if the room
// later changes or is deleted.
type Booking struct {
	ID         string    `json:"id"`
	GuestName  string    `json:"guestName"`
	RoomID     string    `json:"roomId"`
	RoomNumber string    `json:"roomNumber"`
	CheckIn    string    `json:"checkIn"`
	CheckOut   string    `json:"checkOut"`
	TotalPrice float64   `json:"totalPrice"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}
