package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateLocalMidnight(t *testing.T) {
	parsed, err := ParseDate("2026-03-15")
	require.NoError(t, err)

	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.March, parsed.Month())
	assert.Equal(t, 15, parsed.Day())
	assert.Equal(t, 0, parsed.Hour())
	assert.Equal(t, time.Local, parsed.Location())
}

func TestParseDateRejectsGarbage(t *testing.T) {
	_, err := ParseDate("not-a-date")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestNightsBetween(t *testing.T) {
	date := func(s string) time.Time {
		parsed, err := ParseDate(s)
		require.NoError(t, err)
		return parsed
	}

	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		want     int
	}{
		{"one night", "2026-01-10", "2026-01-11", 1},
		{"week", "2026-01-10", "2026-01-17", 7},
		{"same day", "2026-01-10", "2026-01-10", 0},
		{"reversed", "2026-01-12", "2026-01-10", -2},
		{"across month end", "2026-01-31", "2026-02-02", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NightsBetween(date(tt.checkIn), date(tt.checkOut)))
		})
	}
}

func TestTodayIsMidnight(t *testing.T) {
	today := Today()
	assert.Equal(t, 0, today.Hour())
	assert.Equal(t, 0, today.Minute())
	assert.Equal(t, 0, today.Second())
}
