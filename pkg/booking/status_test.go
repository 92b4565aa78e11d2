package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kasmi00/yatrimap-frontend/pkg/booking"
)

func TestClassify_DerivedFromDates(t *testing.T) {
	now := date("2025-06-10")
	yesterday := date("2025-06-09")
	tomorrow := date("2025-06-11")
	lastWeek := date("2025-06-03")
	nextWeek := date("2025-06-17")

	cases := []struct {
		name     string
		checkIn  *time.Time
		checkOut *time.Time
		want     booking.Status
	}{
		{"active spanning now", &yesterday, &tomorrow, booking.StatusActive},
		{"active starting now", &now, &tomorrow, booking.StatusActive},
		{"active ending now", &yesterday, &now, booking.StatusActive},
		{"upcoming", &tomorrow, &nextWeek, booking.StatusUpcoming},
		{"completed", &lastWeek, &yesterday, booking.StatusCompleted},
		{"missing checkin", nil, &tomorrow, booking.StatusIncomplete},
		{"missing checkout", &yesterday, nil, booking.StatusIncomplete},
		{"both missing", nil, nil, booking.StatusIncomplete},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := booking.Classify("", tc.checkIn, tc.checkOut, now)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestClassify_ZeroDatesAreIncomplete(t *testing.T) {
	var zero time.Time
	tomorrow := date("2025-06-11")

	got := booking.Classify("", &zero, &tomorrow, date("2025-06-10"))
	assert.Equal(t, booking.StatusIncomplete, got)
}

func TestClassify_ExplicitStatusWins(t *testing.T) {
	now := date("2025-06-10")
	lastWeek := date("2025-06-03")
	yesterday := date("2025-06-09")

	// Dates alone would say Completed, but the stored status is authoritative.
	got := booking.Classify("Upcoming", &lastWeek, &yesterday, now)
	assert.Equal(t, booking.StatusUpcoming, got)
}

func TestClassify_ExplicitStatusCaseInsensitive(t *testing.T) {
	got := booking.Classify("completed", nil, nil, date("2025-06-10"))
	assert.Equal(t, booking.StatusCompleted, got)
}

func TestClassify_UnknownExplicitStatusVerbatim(t *testing.T) {
	got := booking.Classify("On Hold", nil, nil, date("2025-06-10"))
	assert.Equal(t, booking.Status("On Hold"), got)
	assert.Equal(t, "bg-gray-100 text-gray-800", got.BadgeClass())
}

func TestClassify_Idempotent(t *testing.T) {
	now := date("2025-06-10")
	yesterday := date("2025-06-09")
	tomorrow := date("2025-06-11")

	first := booking.Classify("", &yesterday, &tomorrow, now)
	second := booking.Classify("", &yesterday, &tomorrow, now)
	assert.Equal(t, first, second)
}

func TestBadgeClass_EveryLabelStyled(t *testing.T) {
	labels := []booking.Status{
		booking.StatusIncomplete,
		booking.StatusUpcoming,
		booking.StatusActive,
		booking.StatusCompleted,
	}

	seen := make(map[string]booking.Status, len(labels))
	for _, label := range labels {
		class := label.BadgeClass()
		assert.NotEmpty(t, class)
		if prev, dup := seen[class]; dup {
			t.Errorf("labels %s and %s share badge class %q", prev, label, class)
		}
		seen[class] = label
	}
}
