package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasmi00/yatrimap-frontend/pkg/db"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
	"github.com/kasmi00/yatrimap-frontend/pkg/utils"
)

// AddBucketListRequest names the destination to add
type AddBucketListRequest struct {
	DestinationID uint `json:"destinationId" binding:"required"`
}

// getBucketList returns the signed-in user's bucket list
func (s *Server) getBucketList(c *gin.Context) {
	user, err := s.getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized"))
		return
	}

	repo := db.NewRepository(s.db)
	items, err := repo.GetBucketListByUserID(user.ID)
	if err != nil {
		s.logger.WithError(err).Error("Failed to get bucket list")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get bucket list"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(items, "Bucket list retrieved successfully"))
}

// addBucketListItem saves a destination snapshot onto the user's list.
// Adding a destination that is already listed answers 409, so a retried add
// never creates a second row.
func (s *Server) addBucketListItem(c *gin.Context) {
	user, err := s.getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized"))
		return
	}

	var req AddBucketListRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	repo := db.NewRepository(s.db)

	if _, err := repo.GetBucketListItemByDestination(user.ID, req.DestinationID); err == nil {
		c.JSON(http.StatusConflict, utils.NewErrorResponse("Destination is already in the bucket list"))
		return
	} else if !repo.IsRecordNotFound(err) {
		s.logger.WithError(err).Error("Failed to check bucket list")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update bucket list"))
		return
	}

	destination, err := repo.GetDestinationByID(req.DestinationID)
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Destination not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get destination")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update bucket list"))
		return
	}

	item := &models.BucketListItem{
		UserID:        user.ID,
		DestinationID: destination.ID,
		Title:         destination.Title,
		Description:   destination.Description,
		Location:      destination.Location,
		Category:      destination.Category,
		Image:         destination.Image,
	}

	if err := repo.CreateBucketListItem(item); err != nil {
		s.logger.WithError(err).Error("Failed to create bucket list item")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update bucket list"))
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":        user.ID,
		"destination_id": destination.ID,
	}).Info("Bucket list item added")

	c.JSON(http.StatusCreated, utils.NewSuccessResponse(item, "Destination added to bucket list"))
}

// removeBucketListItem takes a destination off the user's list
func (s *Server) removeBucketListItem(c *gin.Context) {
	user, err := s.getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized"))
		return
	}

	destinationID, err := strconv.ParseUint(c.Param("destinationId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid destination ID"))
		return
	}

	repo := db.NewRepository(s.db)
	item, err := repo.GetBucketListItemByDestination(user.ID, uint(destinationID))
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("Destination is not in the bucket list"))
			return
		}
		s.logger.WithError(err).Error("Failed to get bucket list item")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update bucket list"))
		return
	}

	if err := repo.DeleteBucketListItem(item.ID); err != nil {
		s.logger.WithError(err).Error("Failed to delete bucket list item")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to update bucket list"))
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"user_id":        user.ID,
		"destination_id": destinationID,
	}).Info("Bucket list item removed")

	c.JSON(http.StatusOK, utils.NewSuccessResponse(nil, "Destination removed from bucket list"))
}
