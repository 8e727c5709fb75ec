package booking

import "time"

// DailyCap is the maximum number of consultations accepted per calendar
// date, regardless of slot distribution or status.
const DailyCap = 4

// DayWindow returns the inclusive window [00:00:00.000, 23:59:59.999]
// around t, in t's own location. Both the slot collision check and the
// capacity check must query the same window.
func DayWindow(t time.Time) (start, end time.Time) {
	start = time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	end = time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, int(999*time.Millisecond), t.Location())
	return start, end
}
