// Minute-of-day arithmetic and display formatting for schedule times.
// Everything here is pure; callers inject the instant they care about.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// DayName returns the local weekday name for t ("Sunday" .. "Saturday"),
// matching the day strings stored on routine rows.
func DayName(t time.Time) string {
	return t.Weekday().String()
}

// TimeToMinutes parses "HH:MM" into minutes since midnight.
func TimeToMinutes(s string) (int, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time %q: expected HH:MM", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad hour: %w", s, err)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid time %q: bad minute: %w", s, err)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("invalid time %q: out of range", s)
	}
	return hour*60 + minute, nil
}

// MinutesToTime formats minutes since midnight as zero-padded "HH:MM".
// The caller keeps the value in [0, 1439]; no wrap-around is applied.
func MinutesToTime(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}

// NowMinutes returns minutes since local midnight for the given instant.
func NowMinutes(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}

// DateString formats t as the "YYYY-MM-DD" form used by event rows.
func DateString(t time.Time) string {
	return t.Format("2006-01-02")
}

// DaysUntil returns whole days from now's date to the given "YYYY-MM-DD"
// date, both at midnight. Negative for past dates.
func DaysUntil(date string, now time.Time) (int, error) {
	target, err := time.ParseInLocation("2006-01-02", date, now.Location())
	if err != nil {
		return 0, fmt.Errorf("invalid date %q: %w", date, err)
	}
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return int(target.Sub(midnight).Hours() / 24), nil
}

// FormatMinutes renders a duration in minutes as "1h 5m", "2h" or "30m".
func FormatMinutes(minutes int) string {
	if minutes < 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	switch {
	case hours == 0:
		return fmt.Sprintf("%dm", mins)
	case mins == 0:
		return fmt.Sprintf("%dh", hours)
	default:
		return fmt.Sprintf("%dh %dm", hours, mins)
	}
}

// Format12Hour converts "14:30" to "02:30 PM" for notification bodies.
// Malformed input is returned unchanged.
func Format12Hour(s string) string {
	total, err := TimeToMinutes(s)
	if err != nil {
		return s
	}
	hour := total / 60
	minute := total % 60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%02d:%02d %s", display, minute, period)
}

// FormatCountdown renders a day distance as dashboard copy:
// "Today", "Tomorrow", "3 days", "2 weeks", "4 days ago".
func FormatCountdown(daysUntil int) string {
	switch {
	case daysUntil == 0:
		return "Today"
	case daysUntil == 1:
		return "Tomorrow"
	case daysUntil == -1:
		return "Yesterday"
	case daysUntil < 0:
		return fmt.Sprintf("%d days ago", -daysUntil)
	case daysUntil <= 7:
		return fmt.Sprintf("%d days", daysUntil)
	}
	weeks := daysUntil / 7
	if weeks == 1 {
		return "1 week"
	}
	return fmt.Sprintf("%d weeks", weeks)
}
