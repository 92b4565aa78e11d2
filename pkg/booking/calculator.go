// Package booking holds the pricing and lifecycle rules for reservations.
// Everything here is pure computation; persistence and transport live elsewhere.
package booking

import (
	"errors"
	"math"
	"time"
)

// DateLayout is the wire format for calendar dates. Dates carry no trusted
// time component; parsing normalizes to midnight UTC.
const DateLayout = "2006-01-02"

var (
	// ErrInvalidDateRange is returned when either date is absent, unparseable,
	// or the check-out does not fall strictly after the check-in.
	ErrInvalidDateRange = errors.New("invalid date range: check-out must be after check-in")

	// ErrNegativeRate is returned for a nightly rate below zero.
	ErrNegativeRate = errors.New("nightly rate must not be negative")
)

// Quote is a validated nights count and total price for a booking draft,
// carrying the input dates for display.
type Quote struct {
	CheckIn    time.Time `json:"checkInDate"`
	CheckOut   time.Time `json:"checkOutDate"`
	Nights     int       `json:"nights"`
	TotalPrice float64   `json:"totalPrice"`
}

// ParseDate parses a calendar date in the wire format.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, ErrInvalidDateRange
	}
	t, err := time.ParseInLocation(DateLayout, s, time.UTC)
	if err != nil {
		return time.Time{}, ErrInvalidDateRange
	}
	return t, nil
}

// Calculate derives the nights count and total price for a proposed stay.
//
// nights = max(1, ceil((checkOut - checkIn) / 24h)); the total is the nightly
// rate times nights, rounded to two decimal places. The total is therefore at
// least one night's rate whenever the rate is positive.
func Calculate(checkIn, checkOut time.Time, nightlyRate float64) (Quote, error) {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return Quote{}, ErrInvalidDateRange
	}
	if nightlyRate < 0 {
		return Quote{}, ErrNegativeRate
	}

	nights := int(math.Ceil(checkOut.Sub(checkIn).Hours() / 24))
	if nights < 1 {
		nights = 1
	}

	return Quote{
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Nights:     nights,
		TotalPrice: round2(float64(nights) * nightlyRate),
	}, nil
}

// CalculateStrings is Calculate over wire-format dates.
func CalculateStrings(checkIn, checkOut string, nightlyRate float64) (Quote, error) {
	start, err := ParseDate(checkIn)
	if err != nil {
		return Quote{}, err
	}
	end, err := ParseDate(checkOut)
	if err != nil {
		return Quote{}, err
	}
	return Calculate(start, end, nightlyRate)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
