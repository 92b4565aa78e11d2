package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasmi00/yatrimap-frontend/pkg/db"
	"github.com/kasmi00/yatrimap-frontend/pkg/utils"
)

// getDashboardStats returns the back-office overview: entity counts and total
// booking revenue
func (s *Server) getDashboardStats(c *gin.Context) {
	repo := db.NewRepository(s.db)

	counts, err := repo.CountEntities()
	if err != nil {
		s.logger.WithError(err).Error("Failed to count entities")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get dashboard stats"))
		return
	}

	revenue, err := repo.GetTotalRevenue()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get total revenue")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get dashboard stats"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(map[string]interface{}{
		"counts":       counts,
		"totalRevenue": revenue,
	}, "Dashboard stats retrieved successfully"))
}

// getBookingsOverTime returns daily booking counts for the trend chart.
// Defaults to the last 30 days; capped at a year.
func (s *Server) getBookingsOverTime(c *gin.Context) {
	days := 30
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid days parameter"))
			return
		}
		days = parsed
	}
	if days > 365 {
		days = 365
	}

	repo := db.NewRepository(s.db)
	series, err := repo.GetBookingsOverTime(days)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get bookings over time")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get booking trends"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(series, "Booking trends retrieved successfully"))
}

// getCategoryUsage returns how many destinations sit in each category
func (s *Server) getCategoryUsage(c *gin.Context) {
	repo := db.NewRepository(s.db)
	usage, err := repo.GetDestinationCategoryUsage()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get category usage")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get category usage"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(usage, "Category usage retrieved successfully"))
}
