package utils

import (
	"fmt"
	"time"
)

// To24Hour normalizes a 12-hour clock reading into the canonical "HH:MM"
// form stored on bookings. Hour must already be validated to 1-12.
func To24Hour(hour, minute int, ampm string) string {
	h := hour
	if ampm == "PM" && h != 12 {
		h += 12
	}
	if ampm == "AM" && h == 12 {
		h = 0
	}
	return fmt.Sprintf("%02d:%02d", h, minute)
}

// DisplayTime keeps the 12-hour form the user typed, e.g. "05:30 PM".
func DisplayTime(hour, minute int, ampm string) string {
	return fmt.Sprintf("%02d:%02d %s", hour, minute, ampm)
}

// IST returns the marketplace timezone. Falls back to UTC if tzdata is
// missing.
func IST() *time.Location {
	ist, err := time.LoadLocation("Asia/Kolkata")
	if err != nil {
		return time.UTC
	}
	return ist
}

// CombineDateTime resolves a booking's calendar date and its "HH:MM"
// canonical time into one instant in the marketplace timezone.
func CombineDateTime(date time.Time, hhmm string) (time.Time, error) {
	clock, err := time.Parse("15:04", hhmm)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time %q: %w", hhmm, err)
	}
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, IST()), nil
}
