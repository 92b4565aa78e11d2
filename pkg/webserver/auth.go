package webserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/kasmi00/yatrimap-frontend/pkg/db"
	"github.com/kasmi00/yatrimap-frontend/pkg/mail"
	"github.com/kasmi00/yatrimap-frontend/pkg/models"
	"github.com/kasmi00/yatrimap-frontend/pkg/utils"
)

// LoginRequest represents the login payload
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// RegisterRequest represents the signup payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=2,max=64"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// ForgetPasswordRequest asks for a password reset mail
type ForgetPasswordRequest struct {
	Email string `json:"email" binding:"required"`
}

// ResetPasswordRequest redeems a mailed token
type ResetPasswordRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=8"`
}

// handleLogin authenticates a user and issues a JWT
func (s *Server) handleLogin(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	repo := db.NewRepository(s.db)
	user, err := repo.GetUserByEmail(req.Email)
	if err != nil {
		if repo.IsRecordNotFound(err) {
			s.logger.LogAuth(0, req.Email, "login", false)
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Invalid credentials"))
			return
		}
		s.logger.WithError(err).Error("Failed to look up user")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Login failed"))
		return
	}

	if !s.hasher.Compare(user.Password, req.Password) {
		s.logger.LogAuth(user.ID, user.Email, "login", false)
		c.JSON(http.StatusUnauthorized, utils.NewErrorResponse("Invalid credentials"))
		return
	}

	token, err := s.jwtManager.GenerateToken(user.ID, user.Email, user.Role)
	if err != nil {
		s.logger.WithError(err).Error("Failed to generate token")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Login failed"))
		return
	}

	s.logger.LogAuth(user.ID, user.Email, "login", true)

	c.JSON(http.StatusOK, utils.NewSuccessResponse(map[string]interface{}{
		"token":    token,
		"userId":   user.ID,
		"username": user.Username,
		"role":     user.Role,
	}, "Login successful"))
}

// handleRegister creates a new user account
func (s *Server) handleRegister(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	req.Username = s.validator.SanitizeInput(req.Username)
	if !s.validator.ValidateEmail(req.Email) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid email address"))
		return
	}

	repo := db.NewRepository(s.db)
	if _, err := repo.GetUserByEmail(req.Email); err == nil {
		c.JSON(http.StatusConflict, utils.NewErrorResponse("Email already registered"))
		return
	} else if !repo.IsRecordNotFound(err) {
		s.logger.WithError(err).Error("Failed to check existing user")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Registration failed"))
		return
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.WithError(err).Error("Failed to hash password")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Registration failed"))
		return
	}

	user := &models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: hashed,
		Role:     models.RoleUser,
	}

	if err := repo.CreateUser(user); err != nil {
		s.logger.WithError(err).Error("Failed to create user")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Registration failed"))
		return
	}

	s.logger.LogAuth(user.ID, user.Email, "register", true)

	c.JSON(http.StatusCreated, utils.NewSuccessResponse(user, "Account created successfully"))
}

// handleForgetPassword issues a reset token and mails the reset link. The
// response is the same whether or not the address exists, so the endpoint
// cannot be used to probe for accounts.
func (s *Server) handleForgetPassword(c *gin.Context) {
	var req ForgetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	const acceptedMsg = "If the address is registered, a reset link has been sent"

	repo := db.NewRepository(s.db)
	user, err := repo.GetUserByEmail(req.Email)
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusOK, utils.NewSuccessResponse(nil, acceptedMsg))
			return
		}
		s.logger.WithError(err).Error("Failed to look up user for reset")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Reset request failed"))
		return
	}

	// A new request supersedes any outstanding reset tokens
	if err := repo.CancelPendingResets(user.ID); err != nil {
		s.logger.WithError(err).Error("Failed to cancel pending resets")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Reset request failed"))
		return
	}

	validFor := time.Duration(s.config.Security.ResetTokenMinutes) * time.Minute
	reset := &models.PasswordReset{
		UserID:    user.ID,
		Token:     s.tokens.GenerateResetToken(),
		ExpiresAt: time.Now().Add(validFor),
	}
	if err := repo.CreatePasswordReset(reset); err != nil {
		s.logger.WithError(err).Error("Failed to create password reset")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Reset request failed"))
		return
	}

	resetURL := fmt.Sprintf("http://%s/resetpassword?token=%s", c.Request.Host, reset.Token)
	body := mail.PasswordResetBody(user.Username, resetURL, validFor)
	if err := s.mail.Enqueue(user.Email, "Reset your YatriMap password", body, models.MailKindPasswordReset); err != nil {
		s.logger.WithError(err).Error("Failed to enqueue reset mail")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Reset request failed"))
		return
	}

	s.logger.LogAuth(user.ID, user.Email, "forget_password", true)

	c.JSON(http.StatusOK, utils.NewSuccessResponse(nil, acceptedMsg))
}

// handleResetPassword redeems a reset token for a new password
func (s *Server) handleResetPassword(c *gin.Context) {
	var req ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid request data"))
		return
	}

	repo := db.NewRepository(s.db)
	reset, err := repo.GetPasswordResetByToken(req.Token)
	if err != nil {
		if repo.IsRecordNotFound(err) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid or expired reset token"))
			return
		}
		s.logger.WithError(err).Error("Failed to look up reset token")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Password reset failed"))
		return
	}

	if !reset.Usable(time.Now()) {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid or expired reset token"))
		return
	}

	hashed, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.WithError(err).Error("Failed to hash password")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Password reset failed"))
		return
	}

	reset.User.Password = hashed
	if err := repo.UpdateUser(&reset.User); err != nil {
		s.logger.WithError(err).Error("Failed to update password")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Password reset failed"))
		return
	}

	if err := repo.MarkPasswordResetUsed(reset.ID); err != nil {
		s.logger.WithError(err).Error("Failed to mark reset used")
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Password reset failed"))
		return
	}

	s.logger.LogAuth(reset.UserID, reset.User.Email, "reset_password", true)

	c.JSON(http.StatusOK, utils.NewSuccessResponse(nil, "Password updated successfully"))
}
