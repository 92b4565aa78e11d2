package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasmi00/yatrimap-frontend/pkg/db"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
	"github.com/kasmi00/yatrimap-frontend/pkg/utils"
)

// TourPackageRequest represents the payload for creating or editing a tour
// package
type TourPackageRequest struct {
	Title       string            `json:"title" binding:"required,min=1,max=120"`
	Price       float64           `json:"price" binding:"required,gt=0"`
	Duration    string            `json:"duration"`
	Description string            `json:"description"`
	Highlights  models.DayEntries `json:"highlights"`
	Itinerary   models.DayEntries `json:"itinerary"`
	Image       string            `json:"image"`
	Image1      string            `json:"image1"`
}

// getTourPackages returns every tour package
func (s *Server) getTourPackages(c *gin.Context) {
	repo := db.NewRepository(s.db)
	packages, err := repo.GetTourPackages()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get tour packages")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get tour packages"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(packages, "Tour packages retrieved successfully"))
}

// getTourPackage returns one tour package with its day-by-day plans
func (s *Server) getTourPackage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid package ID"))
		return
	}

	repo := db.NewRepository(s.db)
	pkg, err := repo.GetTourPackageByID(uint(id))
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Tour package not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get tour package")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get tour package"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(pkg, "Tour package retrieved successfully"))
}

// createTourPackage creates a tour package
func (s *Server) createTourPackage(c *gin.Context) {
	var req TourPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	pkg := &models.TourPackage{
		Title:       s.validator.SanitizeInput(req.Title),
		Price:       req.Price,
		Duration:    s.validator.SanitizeInput(req.Duration),
		Description: s.validator.SanitizeInput(req.Description),
		Highlights:  req.Highlights,
		Itinerary:   req.Itinerary,
		Image:       req.Image,
		Image1:      req.Image1,
	}

	repo := db.NewRepository(s.db)
	if err := repo.CreateTourPackage(pkg); err != nil {
		s.logger.WithError(err).Error("Failed to create tour package")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create tour package"))
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"package_id": pkg.ID,
		"title":      pkg.Title,
		"price":      pkg.Price,
	}).Info("Tour package created")

	c.JSON(http.StatusCreated, utils.NewSuccessResponse(pkg, "Tour package created successfully"))
}

// updateTourPackage edits a tour package
func (s *Server) updateTourPackage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid package ID"))
		return
	}

	var req TourPackageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	repo := db.NewRepository(s.db)
	pkg, err := repo.GetTourPackageByID(uint(id))
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Tour package not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get tour package")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get tour package"))
		return
	}

	pkg.Title = s.validator.SanitizeInput(req.Title)
	pkg.Price = req.Price
	pkg.Duration = s.validator.SanitizeInput(req.Duration)
	pkg.Description = s.validator.SanitizeInput(req.Description)
	pkg.Highlights = req.Highlights
	pkg.Itinerary = req.Itinerary
	if req.Image != "" {
		pkg.Image = req.Image
	}
	if req.Image1 != "" {
		pkg.Image1 = req.Image1
	}

	if err := repo.UpdateTourPackage(pkg); err != nil {
		s.logger.WithError(err).Error("Failed to update tour package")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update tour package"))
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"package_id": pkg.ID,
		"title":      pkg.Title,
	}).Info("Tour package updated")

	c.JSON(http.StatusOK, utils.NewSuccessResponse(pkg, "Tour package updated successfully"))
}

// deleteTourPackage removes a tour package
func (s *Server) deleteTourPackage(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid package ID"))
		return
	}

	repo := db.NewRepository(s.db)
	if _, err := repo.GetTourPackageByID(uint(id)); err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Tour package not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get tour package")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get tour package"))
		return
	}

	if err := repo.DeleteTourPackage(uint(id)); err != nil {
		s.logger.WithError(err).Error("Failed to delete tour package")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete tour package"))
		return
	}

	s.logger.WithField("package_id", id).Info("Tour package deleted")

	c.JSON(http.StatusOK, utils.NewSuccessResponse(nil, "Tour package deleted successfully"))
}
