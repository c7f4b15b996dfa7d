package services

import "time"

// Window selects a calendar range anchored to a point in time.
type Window string

const (
	WindowToday     Window = "Today"
	WindowThisWeek  Window = "This Week"
	WindowThisMonth Window = "This Month"
)

// WindowBounds returns the inclusive [start, end] range for the window
// containing anchor, computed in anchor's location. Weeks run Sunday
// through Saturday.
func WindowBounds(anchor time.Time, w Window) (time.Time, time.Time, error) {
	loc := anchor.Location()
	day := time.Date(anchor.Year(), anchor.Month(), anchor.Day(), 0, 0, 0, 0, loc)

	var start time.Time
	var end time.Time
	switch w {
	case WindowToday:
		start = day
		end = day.AddDate(0, 0, 1).Add(-time.Nanosecond)
	case WindowThisWeek:
		start = day.AddDate(0, 0, -int(day.Weekday()))
		end = start.AddDate(0, 0, 7).Add(-time.Nanosecond)
	case WindowThisMonth:
		start = time.Date(anchor.Year(), anchor.Month(), 1, 0, 0, 0, 0, loc)
		end = start.AddDate(0, 1, 0).Add(-time.Nanosecond)
	default:
		return time.Time{}, time.Time{}, invalidInput("invalid filter window")
	}
	return start, end, nil
}
