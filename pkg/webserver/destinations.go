package webserver

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasmi00/yatrimap-frontend/pkg/category"
	"github.com/kasmi00/yatrimap-frontend/pkg/db"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
	"github.com/kasmi00/yatrimap-frontend/pkg/utils"
)

// UpdateDestinationRequest represents the request to edit a destination
type UpdateDestinationRequest struct {
	Title           string `json:"title" binding:"required,min=1,max=120"`
	Description     string `json:"description"`
	Location        string `json:"location" binding:"required"`
	Category        string `json:"category" binding:"required"`
	BestTimeToVisit string `json:"bestTimeToVisit"`
	Section         string `json:"section"`
}

// saveImage stores one uploaded file under dir and returns the generated
// file name
func (s *Server) saveImage(c *gin.Context, file *multipart.FileHeader, dir string) (string, error) {
	if max := int64(s.config.Uploads.MaxSizeMB) * 1024 * 1024; max > 0 && file.Size > max {
		return "", fmt.Errorf("image exceeds %dMB limit", s.config.Uploads.MaxSizeMB)
	}
	name, err := utils.ImageFileName(file.Filename)
	if err != nil {
		return "", err
	}
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}

// getDestinations returns every destination
func (s *Server) getDestinations(c *gin.Context) {
	repo := db.NewRepository(s.db)
	destinations, err := repo.GetDestinations()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get destinations")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get destinations"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(destinations, "Destinations retrieved successfully"))
}

// getDestination returns a specific destination with its accommodations
func (s *Server) getDestination(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid destination ID"))
		return
	}

	repo := db.NewRepository(s.db)
	destination, err := repo.GetDestinationByID(uint(id))
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Destination not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get destination")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get destination"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(destination, "Destination retrieved successfully"))
}

// getDestinationsBySection returns the destinations curated into a homepage
// section
func (s *Server) getDestinationsBySection(c *gin.Context) {
	section := c.Param("name")

	repo := db.NewRepository(s.db)
	destinations, err := repo.GetDestinationsBySection(section)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get destinations by section")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get destinations"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(destinations, "Destinations retrieved successfully"))
}

// getDestinationsByCategory returns the destinations in one category. An
// empty category answers 404 so the caller can distinguish "nothing here"
// from an empty page.
func (s *Server) getDestinationsByCategory(c *gin.Context) {
	name := c.Param("name")
	if !category.Valid(name) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Unknown category"))
		return
	}

	repo := db.NewRepository(s.db)
	destinations, err := repo.GetDestinationsByCategory(name)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get destinations by category")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get destinations"))
		return
	}

	if len(destinations) == 0 {
		c.JSON(http.StatusNotFound, utils.NewErrorResponse("no destinations available"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(destinations, "Destinations retrieved successfully"))
}

// createDestination creates a destination from a multipart form with up to
// three images
func (s *Server) createDestination(c *gin.Context) {
	title := s.validator.SanitizeInput(c.PostForm("title"))
	location := s.validator.SanitizeInput(c.PostForm("location"))
	categoryName := c.PostForm("category")

	if title == "" || location == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Title and location are required"))
		return
	}
	if !category.Valid(categoryName) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Unknown category"))
		return
	}

	destination := &models.Destination{
		Title:           title,
		Description:     s.validator.SanitizeInput(c.PostForm("description")),
		Location:        location,
		Category:        categoryName,
		BestTimeToVisit: s.validator.SanitizeInput(c.PostForm("bestTimeToVisit")),
		Section:         c.PostForm("section"),
	}

	// Image parts are optional, stored under the destination image path
	images := []struct {
		field  string
		target *string
	}{
		{"image", &destination.Image},
		{"image1", &destination.Image1},
		{"image2", &destination.Image2},
	}
	for _, img := range images {
		file, err := c.FormFile(img.field)
		if err != nil {
			continue
		}
		name, err := s.saveImage(c, file, s.config.Uploads.DestinationImageDir)
		if err != nil {
			s.logger.WithError(err).Error("Failed to store destination image")
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Failed to store image"))
			return
		}
		*img.target = name
	}

	repo := db.NewRepository(s.db)
	if err := repo.CreateDestination(destination); err != nil {
		s.logger.WithError(err).Error("Failed to create destination")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create destination"))
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"destination_id": destination.ID,
		"title":          destination.Title,
		"category":       destination.Category,
	}).Info("Destination created")

	c.JSON(http.StatusCreated, utils.NewSuccessResponse(destination, "Destination created successfully"))
}

// updateDestination edits a destination's metadata
func (s *Server) updateDestination(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid destination ID"))
		return
	}

	var req UpdateDestinationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}
	if !category.Valid(req.Category) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Unknown category"))
		return
	}

	repo := db.NewRepository(s.db)
	destination, err := repo.GetDestinationByID(uint(id))
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Destination not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get destination")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get destination"))
		return
	}

	destination.Title = s.validator.SanitizeInput(req.Title)
	destination.Description = s.validator.SanitizeInput(req.Description)
	destination.Location = s.validator.SanitizeInput(req.Location)
	destination.Category = req.Category
	destination.BestTimeToVisit = s.validator.SanitizeInput(req.BestTimeToVisit)
	destination.Section = req.Section

	if err := repo.UpdateDestination(destination); err != nil {
		s.logger.WithError(err).Error("Failed to update destination")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update destination"))
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"destination_id": destination.ID,
		"title":          destination.Title,
	}).Info("Destination updated")

	c.JSON(http.StatusOK, utils.NewSuccessResponse(destination, "Destination updated successfully"))
}

// deleteDestination removes a destination
func (s *Server) deleteDestination(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid destination ID"))
		return
	}

	repo := db.NewRepository(s.db)
	destination, err := repo.GetDestinationByID(uint(id))
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Destination not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get destination")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get destination"))
		return
	}

	if err := repo.DeleteDestination(uint(id)); err != nil {
		s.logger.WithError(err).Error("Failed to delete destination")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete destination"))
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"destination_id": id,
		"title":          destination.Title,
	}).Info("Destination deleted")

	c.JSON(http.StatusOK, utils.NewSuccessResponse(nil, "Destination deleted successfully"))
}
