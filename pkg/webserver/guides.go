package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasmi00/yatrimap-frontend/pkg/db"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
	"github.com/kasmi00/yatrimap-frontend/pkg/utils"
)

// GuideRequest represents the payload for registering or editing a guide
type GuideRequest struct {
	Name         string             `json:"name" binding:"required,min=1,max=100"`
	Email        string             `json:"email" binding:"required"`
	Experience   int                `json:"experience" binding:"min=0"`
	Contact      string             `json:"contact"`
	Languages    models.StringSlice `json:"languages"`
	Availability *bool              `json:"availability"`
}

// getGuides returns every guide, ordered by name
func (s *Server) getGuides(c *gin.Context) {
	repo := db.NewRepository(s.db)
	guides, err := repo.GetGuides()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get guides")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get guides"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(guides, "Guides retrieved successfully"))
}

// createGuide registers a guide
func (s *Server) createGuide(c *gin.Context) {
	var req GuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	if !s.validator.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid email address"))
		return
	}

	guide := &models.Guide{
		Name:         s.validator.SanitizeInput(req.Name),
		Email:        req.Email,
		Experience:   req.Experience,
		Contact:      s.validator.SanitizeInput(req.Contact),
		Languages:    req.Languages,
		Availability: true,
	}
	if req.Availability != nil {
		guide.Availability = *req.Availability
	}

	repo := db.NewRepository(s.db)
	if err := repo.CreateGuide(guide); err != nil {
		s.logger.WithError(err).Error("Failed to create guide")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to create guide"))
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"guide_id": guide.ID,
		"name":     guide.Name,
	}).Info("Guide created")

	c.JSON(http.StatusCreated, utils.NewSuccessResponse(guide, "Guide created successfully"))
}

// updateGuide edits a guide, including availability toggling
func (s *Server) updateGuide(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid guide ID"))
		return
	}

	var req GuideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	repo := db.NewRepository(s.db)
	guide, err := repo.GetGuideByID(uint(id))
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Guide not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get guide")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get guide"))
		return
	}

	guide.Name = s.validator.SanitizeInput(req.Name)
	guide.Email = req.Email
	guide.Experience = req.Experience
	guide.Contact = s.validator.SanitizeInput(req.Contact)
	guide.Languages = req.Languages
	if req.Availability != nil {
		guide.Availability = *req.Availability
	}

	if err := repo.UpdateGuide(guide); err != nil {
		s.logger.WithError(err).Error("Failed to update guide")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update guide"))
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"guide_id":     guide.ID,
		"availability": guide.Availability,
	}).Info("Guide updated")

	c.JSON(http.StatusOK, utils.NewSuccessResponse(guide, "Guide updated successfully"))
}
