package services

import (
	"sort"
	"time"

	"hotel-ops-backend/models"
	"hotel-ops-backend/store"
	"hotel-ops-backend/utils"
)

// recentActivityLimit caps the dashboard activity feed.
const recentActivityLimit = 5

type DashboardStats struct {
	TotalRooms     int              `json:"totalRooms"`
	AvailableCount int              `json:"availableCount"`
	OccupiedCount  int              `json:"occupiedCount"`
	RevenueToday   float64          `json:"revenueToday"`
	RecentActivity []models.Booking `json:"recentActivity"`
}

// DashboardService derives today's occupancy and revenue figures from the
// current collections. Everything is recomputed on each call; nothing is
// cached.
type DashboardService struct {
	cols *store.Collections
}

func NewDashboardService(cols *store.Collections) *DashboardService {
	return &DashboardService{cols: cols}
}

func (s *DashboardService) Stats() DashboardStats {
	rooms := s.cols.Rooms()
	bookings := s.cols.Bookings()
	today := utils.Today()

	priceByRoomID := make(map[string]float64, len(rooms))
	for _, room := range rooms {
		priceByRoomID[room.ID] = room.Price
	}

	occupied := 0
	revenue := 0.0
	for _, booking := range bookings {
		if !activeOn(booking, today) {
			continue
		}
		occupied++
		// Dangling room reference contributes nothing.
		revenue += priceByRoomID[booking.RoomID]
	}

	return DashboardStats{
		TotalRooms:     len(rooms),
		AvailableCount: len(rooms) - occupied, // may go negative when double-booked
		OccupiedCount:  occupied,
		RevenueToday:   revenue,
		RecentActivity: recentActivity(bookings),
	}
}

// activeOn reports whether the stay covers the given date, check-in
// inclusive, check-out exclusive. Bookings with unparseable dates are
// never active.
func activeOn(booking models.Booking, date time.Time) bool {
	start, err := utils.ParseDate(booking.CheckIn)
	if err != nil {
		return false
	}
	end, err := utils.ParseDate(booking.CheckOut)
	if err != nil {
		return false
	}
	return !date.Before(start) && date.Before(end)
}

func recentActivity(bookings []models.Booking) []models.Booking {
	recent := append([]models.Booking(nil), bookings...)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].CreatedAt.After(recent[j].CreatedAt)
	})
	if len(recent) > recentActivityLimit {
		recent = recent[:recentActivityLimit]
	}
	if recent == nil {
		recent = []models.Booking{}
	}
	return recent
}
