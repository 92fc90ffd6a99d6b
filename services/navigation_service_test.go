package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigationDefaultsToDashboard(t *testing.T) {
	nav := NewNavigationService()
	assert.Equal(t, ScreenDashboard, nav.Active())
}

func TestNavigationSwitchesScreens(t *testing.T) {
	nav := NewNavigationService()

	assert.Equal(t, ScreenRooms, nav.Navigate(ScreenRooms))
	assert.Equal(t, ScreenRooms, nav.Active())

	assert.Equal(t, ScreenBookings, nav.Navigate(ScreenBookings))
	assert.Equal(t, ScreenBookings, nav.Active())
}

func TestNavigationUnknownScreenFallsBack(t *testing.T) {
	nav := NewNavigationService()
	nav.Navigate(ScreenBookings)

	assert.Equal(t, ScreenDashboard, nav.Navigate("reports"))
	assert.Equal(t, ScreenDashboard, nav.Active())
}
