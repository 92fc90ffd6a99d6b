package utils

import (
	"math"
	"time"
)

// DateLayout is the wire format for check-in/check-out dates.
const DateLayout = "2006-01-02"

// ParseDate parses a calendar date as local midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateLayout, s, time.Local)
}

// Today returns the current date at local midnight.
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
}

// NightsBetween counts the nights of a stay as the ceiling of the elapsed
// time divided by a fixed 24-hour day. Calendar-naive on purpose: a stay
// spanning a daylight-saving transition can round a partial day up, same
// as the dashboard always computed it.
func NightsBetween(checkIn, checkOut time.Time) int {
	diff := checkOut.Sub(checkIn)
	return int(math.Ceil(float64(diff) / float64(24*time.Hour)))
}
