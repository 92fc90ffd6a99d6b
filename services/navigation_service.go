package services

import "sync"

// Screens
const (
	ScreenDashboard = "dashboard"
	ScreenRooms     = "rooms"
	ScreenBookings  = "bookings"
)

// NavigationService tracks which screen the operator is on. It owns no
// domain data; it only mirrors the shell's active-screen state.
type NavigationService struct {
	mu     sync.Mutex
	active string
}

func NewNavigationService() *NavigationService {
	return &NavigationService{active: ScreenDashboard}
}

func (s *NavigationService) Active() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.active
}

// Navigate switches the active screen and returns it. Unknown names fall
// back to the dashboard.
func (s *NavigationService) Navigate(screen string) string {
	switch screen {
	case ScreenDashboard, ScreenRooms, ScreenBookings:
	default:
		screen = ScreenDashboard
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.active = screen
	return s.active
}
