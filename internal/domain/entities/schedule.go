package entities

import (
	"strconv"
	"strings"
	"time"
)

const (
	// DateLayout is the wire format of all date-only fields.
	DateLayout = "2006-01-02"
	// ClockLayout is the wire format of scheduled times and durations.
	ClockLayout = "15:04"
)

// ParseDate parses a date-only field. ok is false for empty or unparseable
// values; callers treat both as "no date".
func ParseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// ParseClock parses an HH:MM field into hours and minutes.
func ParseClock(s string) (hours, minutes int, ok bool) {
	parts := strings.SplitN(strings.TrimSpace(s), ":", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 {
		return 0, 0, false
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, 0, false
	}
	return h, m, true
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsOverdue reports whether the request's scheduled date has passed while
// the request is still unresolved.
//
// A request with no scheduled date is never overdue, nor is one in a
// terminal stage regardless of its date. Otherwise the comparison is
// date-only: strictly earlier than today's start of day.
func IsOverdue(req MaintenanceRequest, today time.Time) bool {
	if req.Stage.Terminal() {
		return false
	}
	scheduled, ok := ParseDate(req.ScheduledDate)
	if !ok {
		return false
	}
	return scheduled.Before(StartOfDay(today))
}
