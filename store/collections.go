package store

import (
	"encoding/json"
	"log"
	"sync"

	"hotel-ops-backend/models"
)

// Storage keys
const (
	RoomsKey    = "rooms"
	BookingsKey = "bookings"
)

// Collections owns the in-memory room and booking collections and mirrors
// every replacement back to the underlying store. Registries hold a
// Collections reference and work on copies; they never cache a private
// slice across requests.
//
// A stored value that fails to parse falls back to an empty collection
// with a log line, and a failed save is logged while the in-memory value
// stays authoritative. Mutations go through the Update methods, which
// hold the lock across the whole read-modify-write-persist cycle so
// concurrent handlers cannot lose each other's records.
type Collections struct {
	mu    sync.Mutex
	store Store

	rooms    []models.Room
	bookings []models.Booking
}

func NewCollections(s Store) *Collections {
	c := &Collections{store: s}
	c.rooms = loadRooms(s)
	c.bookings = loadBookings(s)
	return c
}

func loadRooms(s Store) []models.Room {
	raw := s.Load(RoomsKey, []byte("[]"))
	var rooms []models.Room
	if err := json.Unmarshal(raw, &rooms); err != nil {
		log.Printf("⚠️ store: %q holds invalid JSON, starting empty: %v", RoomsKey, err)
		return []models.Room{}
	}
	if rooms == nil {
		rooms = []models.Room{}
	}
	return rooms
}

func loadBookings(s Store) []models.Booking {
	raw := s.Load(BookingsKey, []byte("[]"))
	var bookings []models.Booking
	if err := json.Unmarshal(raw, &bookings); err != nil {
		log.Printf("⚠️ store: %q holds invalid JSON, starting empty: %v", BookingsKey, err)
		return []models.Booking{}
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings
}

// Rooms returns a copy of the room collection in insertion order.
func (c *Collections) Rooms() []models.Room {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

// ReplaceRooms swaps the room collection and persists it.
func (c *Collections) ReplaceRooms(rooms []models.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.rooms = make([]models.Room, len(rooms))
	copy(c.rooms, rooms)
	c.persist(RoomsKey, c.rooms)
}

// UpdateRooms runs a read-modify-write of the room collection under one
// lock, so concurrent mutations cannot lose each other's records. fn
// receives a copy and returns the next collection.
func (c *Collections) UpdateRooms(fn func([]models.Room) []models.Room) {
	c.mu.Lock()
	defer c.mu.Unlock()
	view := make([]models.Room, len(c.rooms))
	copy(view, c.rooms)
	next := fn(view)
	c.rooms = make([]models.Room, len(next))
	copy(c.rooms, next)
	c.persist(RoomsKey, c.rooms)
}

// Bookings returns a copy of the booking collection in insertion order.
func (c *Collections) Bookings() []models.Booking {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.Booking, len(c.bookings))
	copy(out, c.bookings)
	return out
}

// ReplaceBookings swaps the booking collection and persists it.
func (c *Collections) ReplaceBookings(bookings []models.Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.bookings = make([]models.Booking, len(bookings))
	copy(c.bookings, bookings)
	c.persist(BookingsKey, c.bookings)
}

// UpdateBookings is the booking counterpart of UpdateRooms.
func (c *Collections) UpdateBookings(fn func([]models.Booking) []models.Booking) {
	c.mu.Lock()
	defer c.mu.Unlock()
	view := make([]models.Booking, len(c.bookings))
	copy(view, c.bookings)
	next := fn(view)
	c.bookings = make([]models.Booking, len(next))
	copy(c.bookings, next)
	c.persist(BookingsKey, c.bookings)
}

func (c *Collections) persist(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.Printf("⚠️ store: marshal %q failed: %v", key, err)
		return
	}
	if err := c.store.Save(key, raw); err != nil {
		log.Printf("⚠️ store: save %q failed: %v", key, err)
	}
}
