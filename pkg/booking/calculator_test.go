package booking_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kasmi00/yatrimap-frontend/pkg/booking"
)

func date(s string) time.Time {
	t, err := time.ParseInLocation(booking.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCalculate_ThreeNights(t *testing.T) {
	quote, err := booking.Calculate(date("2025-06-01"), date("2025-06-04"), 100.00)

	require.NoError(t, err)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 300.00, quote.TotalPrice)
	assert.Equal(t, date("2025-06-01"), quote.CheckIn)
	assert.Equal(t, date("2025-06-04"), quote.CheckOut)
}

func TestCalculate_SingleNightMinimum(t *testing.T) {
	// A partial-day range still bills one night.
	checkIn := date("2025-06-01")
	checkOut := checkIn.Add(6 * time.Hour)

	quote, err := booking.Calculate(checkIn, checkOut, 80)

	require.NoError(t, err)
	assert.Equal(t, 1, quote.Nights)
	assert.Equal(t, 80.00, quote.TotalPrice)
}

func TestCalculate_RoundsToTwoDecimals(t *testing.T) {
	quote, err := booking.Calculate(date("2025-06-01"), date("2025-06-04"), 33.335)

	require.NoError(t, err)
	assert.Equal(t, 100.01, quote.TotalPrice)
}

func TestCalculate_ZeroRate(t *testing.T) {
	quote, err := booking.Calculate(date("2025-06-01"), date("2025-06-03"), 0)

	require.NoError(t, err)
	assert.Equal(t, 2, quote.Nights)
	assert.Equal(t, 0.00, quote.TotalPrice)
}

func TestCalculate_TotalAtLeastRate(t *testing.T) {
	rates := []float64{0.01, 1, 49.99, 100, 2500}
	for _, rate := range rates {
		quote, err := booking.Calculate(date("2025-06-01"), date("2025-06-02"), rate)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, quote.TotalPrice, rate)
		assert.Positive(t, quote.TotalPrice)
	}
}

func TestCalculate_InvalidRanges(t *testing.T) {
	cases := []struct {
		name     string
		checkIn  time.Time
		checkOut time.Time
	}{
		{"checkout equals checkin", date("2025-06-01"), date("2025-06-01")},
		{"checkout before checkin", date("2025-06-04"), date("2025-06-01")},
		{"zero checkin", time.Time{}, date("2025-06-04")},
		{"zero checkout", date("2025-06-01"), time.Time{}},
		{"both zero", time.Time{}, time.Time{}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := booking.Calculate(tc.checkIn, tc.checkOut, 100)
			assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
		})
	}
}

func TestCalculate_NegativeRate(t *testing.T) {
	_, err := booking.Calculate(date("2025-06-01"), date("2025-06-04"), -1)
	assert.ErrorIs(t, err, booking.ErrNegativeRate)
}

func TestCalculateStrings(t *testing.T) {
	quote, err := booking.CalculateStrings("2025-06-01", "2025-06-04", 100)

	require.NoError(t, err)
	assert.Equal(t, 3, quote.Nights)
	assert.Equal(t, 300.00, quote.TotalPrice)
}

func TestCalculateStrings_Unparseable(t *testing.T) {
	_, err := booking.CalculateStrings("junk", "2025-06-04", 100)
	assert.ErrorIs(t, err, booking.ErrInvalidDateRange)

	_, err = booking.CalculateStrings("2025-06-01", "", 100)
	assert.ErrorIs(t, err, booking.ErrInvalidDateRange)
}
