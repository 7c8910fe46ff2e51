package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 8, 28, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, "2026-08-28", FormatDate(ts))
}

func TestWeekStart(t *testing.T) {
	tests := []struct {
		name string
		day  time.Time
		want string
	}{
		{"sunday maps to itself", time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC), "2026-08-23"},
		{"monday maps back one day", time.Date(2026, 8, 24, 10, 0, 0, 0, time.UTC), "2026-08-23"},
		{"saturday maps back six days", time.Date(2026, 8, 29, 10, 0, 0, 0, time.UTC), "2026-08-23"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WeekStart(tt.day))
		})
	}
}

func TestNextMidnight(t *testing.T) {
	ts := time.Date(2026, 8, 28, 23, 30, 0, 0, time.UTC)
	next := NextMidnight(ts)

	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), next)
	assert.Equal(t, 30*time.Minute, next.Sub(ts))

	// Exactly at midnight the boundary is the following day
	midnight := time.Date(2026, 8, 28, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC), NextMidnight(midnight))
}
