package timezone

import "time"

// Location resolves the configured studio timezone, falling back to the
// server's local zone when unset or invalid. Booking day windows must be
// computed in one consistent zone for both availability checks.
func Location(tz string) *time.Location {
	if tz != "" {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}
	return time.Local
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}
