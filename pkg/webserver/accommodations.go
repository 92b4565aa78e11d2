package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasmi00/yatrimap-frontend/pkg/db"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
	"github.com/kasmi00/yatrimap-frontend/pkg/utils"
)

// getAccommodationsByDestination returns the lodging options of a destination
func (s *Server) getAccommodationsByDestination(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid destination ID"))
		return
	}

	repo := db.NewRepository(s.db)
	accommodations, err := repo.GetAccommodationsByDestinationID(uint(id))
	if err != nil {
		s.logger.WithError(err).Error("Failed to get accommodations")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get accommodations"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(accommodations, "Accommodations retrieved successfully"))
}

// getAccommodation returns one accommodation with its destination, the
// payload the checkout page prices against
func (s *Server) getAccommodation(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid accommodation ID"))
		return
	}

	repo := db.NewRepository(s.db)
	accommodation, err := repo.GetAccommodationByID(uint(id))
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Accommodation not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get accommodation")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get accommodation"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(accommodation, "Accommodation retrieved successfully"))
}

// createAccommodation creates an accommodation from a multipart form with an
// optional image
func (s *Server) createAccommodation(c *gin.Context) {
	destinationID, err := strconv.ParseUint(c.PostForm("destinationId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid destination ID"))
		return
	}

	title := s.validator.SanitizeInput(c.PostForm("title"))
	if title == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Title is required"))
		return
	}

	price, err := strconv.ParseFloat(c.PostForm("price"), 64)
	if err != nil || price < 0 {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid price"))
		return
	}

	repo := db.NewRepository(s.db)
	if _, err := repo.GetDestinationByID(uint(destinationID)); err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Destination not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get destination")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create accommodation"))
		return
	}

	accommodation := &models.Accommodation{
		DestinationID: uint(destinationID),
		Title:         title,
		Description:   s.validator.SanitizeInput(c.PostForm("description")),
		Price:         price,
	}

	if file, err := c.FormFile("image"); err == nil {
		name, err := s.saveImage(c, file, s.config.Uploads.AccommodationDir)
		if err != nil {
			s.logger.WithError(err).Error("Failed to store accommodation image")
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Failed to store image"))
			return
		}
		accommodation.Image = name
	}

	if err := repo.CreateAccommodation(accommodation); err != nil {
		s.logger.WithError(err).Error("Failed to create accommodation")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create accommodation"))
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"accommodation_id": accommodation.ID,
		"destination_id":   accommodation.DestinationID,
		"title":            accommodation.Title,
	}).Info("Accommodation created")

	c.JSON(http.StatusCreated, utils.NewSuccessResponse(accommodation, "Accommodation created successfully"))
}
