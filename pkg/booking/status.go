package booking

import (
	"strings"
	"time"
)

// Status is the human-facing lifecycle label of a booking. It is derived at
// render time from the date range against the clock, never stored, so it
// tracks wall-clock time without transition or timer logic.
type Status string

const (
	StatusIncomplete Status = "Incomplete"
	StatusUpcoming   Status = "Upcoming"
	StatusActive     Status = "Active"
	StatusCompleted  Status = "Completed"
)

var knownStatuses = []Status{StatusIncomplete, StatusUpcoming, StatusActive, StatusCompleted}

// Classify maps a booking's date range, and an optional explicit status, to a
// lifecycle label.
//
// An explicit status is authoritative and returned verbatim; matching against
// known labels is case-insensitive so badge styling still resolves. With no
// explicit status: missing dates classify as Incomplete, a future check-in as
// Upcoming, a range containing now as Active, and a past check-out as
// Completed. Total over every input combination.
func Classify(explicit string, checkIn, checkOut *time.Time, now time.Time) Status {
	if explicit != "" {
		for _, s := range knownStatuses {
			if strings.EqualFold(explicit, string(s)) {
				return s
			}
		}
		return Status(explicit)
	}

	if checkIn == nil || checkOut == nil || checkIn.IsZero() || checkOut.IsZero() {
		return StatusIncomplete
	}
	if now.Before(*checkIn) {
		return StatusUpcoming
	}
	if !now.After(*checkOut) {
		return StatusActive
	}
	return StatusCompleted
}

// BadgeClass maps a label to its fixed badge color classes. Unrecognized
// explicit statuses fall back to the neutral gray style.
func (s Status) BadgeClass() string {
	switch s {
	case StatusUpcoming:
		return "bg-blue-100 text-blue-800"
	case StatusActive:
		return "bg-green-100 text-green-800"
	case StatusCompleted:
		return "bg-purple-100 text-purple-800"
	case StatusIncomplete:
		return "bg-gray-200 text-gray-800"
	default:
		return "bg-gray-100 text-gray-800"
	}
}
