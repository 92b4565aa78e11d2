package client

import (
	"context"
	"fmt"
	"time"

	"github.com/kasmi00/yatrimap-frontend/pkg/booking"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
)

// BookingRequest is the checkout payload. TotalPrice carries the quote shown
// to the user; the server recomputes it and rejects a mismatch.
type BookingRequest struct {
	UserID          uint    `json:"userId"`
	DestinationID   uint    `json:"destinationId"`
	AccommodationID uint    `json:"accommodationId"`
	GuideID         uint    `json:"guideId,omitempty"`
	CheckInDate     string  `json:"checkInDate"`
	CheckOutDate    string  `json:"checkOutDate"`
	TotalPrice      float64 `json:"totalPrice"`
}

// NewBookingRequest builds a checkout payload from a stay window and the
// accommodation's nightly rate, pricing it locally first.
func NewBookingRequest(userID, destinationID, accommodationID uint, checkIn, checkOut time.Time, nightlyRate float64) (BookingRequest, booking.Quote, error) {
	quote, err := booking.Calculate(checkIn, checkOut, nightlyRate)
	if err != nil {
		return BookingRequest{}, booking.Quote{}, err
	}
	return BookingRequest{
		UserID:          userID,
		DestinationID:   destinationID,
		AccommodationID: accommodationID,
		CheckInDate:     checkIn.Format(booking.DateLayout),
		CheckOutDate:    checkOut.Format(booking.DateLayout),
		TotalPrice:      quote.TotalPrice,
	}, quote, nil
}

// CreateBooking submits a checkout
func (c *Client) CreateBooking(ctx context.Context, req BookingRequest) (*models.Booking, error) {
	var out models.Booking
	err := c.postJSON(ctx, "/api/booking/create", req, &out)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Bookings lists every booking (admin)
func (c *Client) Bookings(ctx context.Context) ([]models.Booking, error) {
	var out []models.Booking
	err := c.getJSON(ctx, "/api/booking", &out)
	return out, err
}

// BookingsByUser lists one user's bookings, soonest stay first
func (c *Client) BookingsByUser(ctx context.Context, userID uint) ([]models.Booking, error) {
	var out []models.Booking
	err := c.getJSON(ctx, fmt.Sprintf("/api/booking/user/%d", userID), &out)
	return out, err
}

// MyBookings lists the signed-in user's bookings
func (c *Client) MyBookings(ctx context.Context) ([]models.Booking, error) {
	return c.BookingsByUser(ctx, c.session.UserID())
}

// DeleteBooking cancels a booking
func (c *Client) DeleteBooking(ctx context.Context, id uint) error {
	return c.delete(ctx, fmt.Sprintf("/api/booking/%d", id))
}
