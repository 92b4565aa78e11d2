package webserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kasmi00/yatrimap-frontend/pkg/db"
	"github.com/kasmi00/yatrimap-frontend/pkg/utils"
)

// getCurrentUserProfile returns the signed-in user's account
func (s *Server) getCurrentUserProfile(c *gin.Context) {
	user, err := s.getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(user, "User retrieved successfully"))
}

// getUsers returns every account for the back office
func (s *Server) getUsers(c *gin.Context) {
	repo := db.NewRepository(s.db)
	users, err := repo.GetUsers()
	if err != nil {
		s.logger.WithError(err).Error("Failed to get users")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to get users"))
		return
	}

	c.JSON(http.StatusOK, utils.NewSuccessResponse(users, "Users retrieved successfully"))
}

// deleteUser removes an account. Admins cannot remove themselves, so the
// back office always keeps at least one working admin login.
func (s *Server) deleteUser(c *gin.Context) {
	admin, err := s.getCurrentUser(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Unauthorized"))
		return
	}

	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid user ID"))
		return
	}

	if uint(id) == admin.ID {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Cannot delete your own account"))
		return
	}

	repo := db.NewRepository(s.db)
	if _, err := repo.GetUserByID(uint(id)); err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse("User not found"))
			return
		}
		s.logger.WithError(err).Error("Failed to get user")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete user"))
		return
	}

	if err := repo.DeleteUser(uint(id)); err != nil {
		s.logger.WithError(err).Error("Failed to delete user")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete user"))
		return
	}

	s.logger.WithFields(map[string]interface{}{
		"admin_id": admin.ID,
		"user_id":  id,
	}).Info("User deleted")

	c.JSON(http.StatusOK, utils.NewSuccessResponse(nil, "User deleted successfully"))
}
