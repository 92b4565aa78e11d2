package webserver

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kasmi00/yatrimap-frontend/pkg/booking"
	"github.com/kasmi00/yatrimap-frontend/pkg/db"
	"github.com/kasmi00/yatrimap-frontend/pkg/mail"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
	"github.com/kasmi00/yatrimap-frontend/pkg/utils"
)

// CreateBookingRequest represents the checkout payload. The client sends the
// quote it showed the user; the server reprices the stay and rejects a
// mismatch.
type CreateBookingRequest struct {
	DestinationID   uint    `json:"destinationId" binding:"required"`
	AccommodationID uint    `json:"accommodationId" binding:"required"`
	GuideID         uint    `json:"guideId"`
	CheckInDate     string  `json:"checkInDate" binding:"required"`
	CheckOutDate    string  `json:"checkOutDate" binding:"required"`
	TotalPrice      float64 `json:"totalPrice" binding:"required"`
}

// BookingResponse wraps a booking with its derived lifecycle label and badge
// styling
type BookingResponse struct {
	models.Booking
	DerivedStatus booking.Status `json:"derivedStatus"`
	BadgeClass    string         `json:"badgeClass"`
}

func newBookingResponse(b models.Booking, now time.Time) BookingResponse {
	status := booking.Classify(b.Status, b.CheckInDate, b.CheckOutDate, now)
	return BookingResponse{
		Booking:       b,
		DerivedStatus: status,
		BadgeClass:    status.BadgeClass(),
	}
}

func newBookingResponses(bookings []models.Booking) []BookingResponse {
	now := time.Now()
	out := make([]BookingResponse, 0, len(bookings))
	for _, b := range bookings {
		out = append(out, newBookingResponse(b, now))
	}
	return out
}

// getBookings returns bookings with full relations, newest stay first,
// paginated for the back-office table
func (s *Server) getBookings(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))

	repo := db.NewRepository(s.db)
	bookings, err := repo.GetBookings()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get bookings")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get bookings"))
		return
	}

	pagination := utils.NewPagination(page, limit, len(bookings))
	start := pagination.GetOffset()
	if start > len(bookings) {
		start = len(bookings)
	}
	end := start + pagination.Limit
	if end > len(bookings) {
		end = len(bookings)
	}

	c.JSON(http.StatusOK, utils.NewPaginatedResponse(newBookingResponses(bookings[start:end]), pagination, "Bookings retrieved successfully"))
}

// getBookingsByUser returns one user's bookings. Users read their own
// history; admins read anyone's.
func (s *Server) getBookingsByUser(c *gin.Context) {
	user, err := s.getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid user ID"))
		return
	}

	if uint(id) != user.ID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, utils.NewErrorResponse("Access denied"))
		return
	}

	repo := db.NewRepository(s.db)
	bookings, err := repo.GetBookingsByUserID(uint(id))
	if err != nil {
		s.logger.WithError(err).Error("Failed to get bookings")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get bookings"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(newBookingResponses(bookings), "Bookings retrieved successfully"))
}

// createBooking checks out a stay. The stay is repriced server-side from the
// accommodation's nightly rate; a client total that disagrees by more than a
// cent is rejected.
func (s *Server) createBooking(c *gin.Context) {
	user, err := s.getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized"))
		return
	}

	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	checkIn, err := booking.ParseDate(req.CheckInDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid check-in date"))
		return
	}
	checkOut, err := booking.ParseDate(req.CheckOutDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid check-out date"))
		return
	}

	repo := db.NewRepository(s.db)

	if _, err := repo.GetDestinationByID(req.DestinationID); err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Destination not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get destination")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create booking"))
		return
	}

	accommodation, err := repo.GetAccommodationByID(req.AccommodationID)
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Accommodation not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get accommodation")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create booking"))
		return
	}

	if accommodation.DestinationID != req.DestinationID {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Accommodation does not belong to the destination"))
		return
	}

	if req.GuideID != 0 {
		guide, err := repo.GetGuideByID(req.GuideID)
		if err != nil {
			if repo.IsRecordNotFound(err) {
				c.JSON(http.StatusNotFound, utils.NewErrorResponse("Guide not found"))
				return
			}
			s.logger.WithError(err).Error("Failed to get guide")
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create booking"))
			return
		}
		if !guide.Availability {
			c.JSON(http.StatusConflict, utils.NewErrorResponse("Guide is not available"))
			return
		}
	}

	quote, err := booking.Calculate(checkIn, checkOut, accommodation.Price)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid date range"))
		return
	}

	if math.Abs(quote.TotalPrice-req.TotalPrice) > 0.01 {
		s.logger.LogSecurity("booking_price_mismatch", user.ID, c.ClientIP(), map[string]interface{}{
			"quoted":   quote.TotalPrice,
			"supplied": req.TotalPrice,
		})
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Total price does not match the quoted amount"))
		return
	}

	newBooking := &models.Booking{
		UserID:          user.ID,
		DestinationID:   req.DestinationID,
		AccommodationID: req.AccommodationID,
		GuideID:         req.GuideID,
		CheckInDate:     &checkIn,
		CheckOutDate:    &checkOut,
		TotalPrice:      quote.TotalPrice,
	}

	if err := repo.CreateBooking(newBooking); err != nil {
		s.logger.WithError(err).Error("Failed to create booking")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create booking"))
		return
	}

	s.logger.LogBooking(newBooking.ID, user.ID, "create", true)

	// Confirmation mail goes through the queue; a mail failure never fails
	// the booking.
	body := mail.BookingConfirmationBody(user.Username, "your destination", checkIn, checkOut, quote.Nights, quote.TotalPrice)
	if created, err := repo.GetBookingByID(newBooking.ID); err == nil {
		body = mail.BookingConfirmationBody(user.Username, created.Destination.Title, checkIn, checkOut, quote.Nights, quote.TotalPrice)
	}
	if err := s.mail.Enqueue(user.Email, "Your YatriMap booking is confirmed", body, models.MailKindBookingConfirmation); err != nil {
		s.logger.WithError(err).Error("Failed to enqueue booking confirmation")
	}

	c.JSON(http.StatusCreated, utils.NewSuccessResponse(newBookingResponse(*newBooking, time.Now()), "Booking created successfully"))
}

// deleteBooking cancels a booking. Users cancel their own; admins cancel
// anyone's.
func (s *Server) deleteBooking(c *gin.Context) {
	user, err := s.getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid booking ID"))
		return
	}

	repo := db.NewRepository(s.db)
	existing, err := repo.GetBookingByID(uint(id))
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Booking not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get booking")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete booking"))
		return
	}

	if existing.UserID != user.ID && !user.IsAdmin() {
		c.JSON(http.StatusForbidden, utils.NewErrorResponse("Access denied"))
		return
	}

	if err := repo.DeleteBooking(uint(id)); err != nil {
		s.logger.WithError(err).Error("Failed to delete booking")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete booking"))
		return
	}

	s.logger.LogBooking(uint(id), user.ID, "delete", true)

	c.JSON(http.StatusOK, utils.NewSuccessResponse(nil, "Booking deleted successfully"))
}
