// Package dates implements due-date parsing and presentation shared by
// pacli and patui.
//
// Input dates are interpreted in the user's local timezone and stored as
// Unix seconds (UTC). Exactly two input formats are accepted:
//
//	YYYY-MM-DD HH:MM:SS
//	YYYY-MM-DD            (implicit midnight)
package dates

import (
	"errors"
	"time"
)

const (
	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// ErrInvalidFormat is returned when a due-date string matches neither
// accepted format.
var ErrInvalidFormat = errors.New("invalid date format, use YYYY-MM-DD or YYYY-MM-DD HH:MM:SS")

// ParseInput parses a user-entered due date into Unix seconds.
//
// An empty string is valid and means "no due date" (ok is false). The
// input is interpreted in local time and converted to UTC.
func ParseInput(s string) (ts int64, ok bool, err error) {
	if s == "" {
		return 0, false, nil
	}

	if t, perr := time.ParseInLocation(layoutDateTime, s, time.Local); perr == nil {
		return t.Unix(), true, nil
	}

	if t, perr := time.ParseInLocation(layoutDate, s, time.Local); perr == nil {
		return t.Unix(), true, nil
	}

	return 0, false, ErrInvalidFormat
}

// Urgency classifies a due date relative to now, for display purposes.
type Urgency int

const (
	// Upcoming is a due date later than tomorrow.
	Upcoming Urgency = iota
	// Today means the due date falls on the current local day.
	Today
	// Tomorrow means the due date falls on the next local day.
	Tomorrow
	// Overdue means the due time is in the past (and not today).
	Overdue
)

// Relative renders a due timestamp as a short label ("Today", "Tomorrow",
// or a plain date) with its urgency classification. The comparison uses
// local calendar days, matching what the user sees.
func Relative(ts int64, now time.Time) (string, Urgency) {
	due := time.Unix(ts, 0).In(now.Location())

	ny, nm, nd := now.Date()
	dy, dm, dd := due.Date()

	today := time.Date(ny, nm, nd, 0, 0, 0, 0, now.Location())
	dueDay := time.Date(dy, dm, dd, 0, 0, 0, 0, now.Location())

	switch {
	case dueDay.Equal(today):
		return "Today", Today
	case dueDay.Equal(today.AddDate(0, 0, 1)):
		return "Tomorrow", Tomorrow
	case due.Before(now):
		return due.Format(layoutDate), Overdue
	default:
		return due.Format(layoutDate), Upcoming
	}
}

// Timestamp formats a Unix timestamp as a full local date-time string.
func Timestamp(ts int64) string {
	return time.Unix(ts, 0).Local().Format(layoutDateTime)
}
