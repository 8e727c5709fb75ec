package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDayWindow(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Kolkata")
	assert.NoError(t, err)

	at := time.Date(2026, time.September, 14, 15, 30, 45, 0, loc)
	start, end := DayWindow(at)

	assert.Equal(t, time.Date(2026, time.September, 14, 0, 0, 0, 0, loc), start)
	assert.Equal(t, time.Date(2026, time.September, 14, 23, 59, 59, 999_000_000, loc), end)
	assert.Equal(t, loc, start.Location())

	// Midnight itself is inside its own window.
	s2, e2 := DayWindow(start)
	assert.Equal(t, start, s2)
	assert.Equal(t, end, e2)
}

func TestIsValid(t *testing.T) {
	for _, s := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
		assert.True(t, IsValid(s), string(s))
	}
	assert.False(t, IsValid(Status("archived")))
	assert.False(t, IsValid(Status("")))
}

func TestInitialStatus(t *testing.T) {
	assert.Equal(t, StatusPending, InitialStatus())
}
