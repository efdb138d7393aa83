package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Wannasingh/wannasingh-blog/internal/api/middleware"
	"github.com/Wannasingh/wannasingh-blog/internal/service"
	"github.com/Wannasingh/wannasingh-blog/pkg/logger"
	"github.com/Wannasingh/wannasingh-blog/pkg/response"
)

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
	Username string `json:"username" binding:"required"`
	Name     string `json:"name" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type resetPasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// userView is the public projection of a user row.
type userView struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	ProfilePic string `json:"profilePic"`
	Bio        string `json:"bio,omitempty"`
}

// Register creates a new user account.
// @Summary Register
// @Tags auth
// @Accept json
// @Param request body registerRequest true "registration"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/register [post]
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.authService.Register(c.Request.Context(), service.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Username: req.Username,
		Name:     req.Name,
	})
	if err != nil {
		if errors.Is(err, service.ErrUsernameTaken) || errors.Is(err, service.ErrEmailTaken) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("register failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Created(c, userView{
		ID: u.ID, Email: u.Email, Username: u.Username, Name: u.Name, Role: u.Role,
	})
}

// Login verifies credentials and returns an access token.
// @Summary Login
// @Tags auth
// @Accept json
// @Param request body loginRequest true "credentials"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("login failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"access_token": token})
}

// GetUser returns the caller's profile.
// @Summary Current user
// @Tags auth
// @Success 200 {object} response.Response
// @Router /auth/get-user [get]
func (h *Handler) GetUser(c *gin.Context) {
	u := middleware.CurrentUser(c)
	response.Success(c, userView{
		ID: u.ID, Email: u.Email, Username: u.Username, Name: u.Name,
		Role: u.Role, ProfilePic: u.ProfilePic, Bio: u.Bio,
	})
}

// ResetPassword verifies the old password before setting the new one.
// @Summary Reset password
// @Tags auth
// @Accept json
// @Param request body resetPasswordRequest true "passwords"
// @Success 200 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /auth/reset-password [put]
func (h *Handler) ResetPassword(c *gin.Context) {
	u := middleware.CurrentUser(c)
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.authService.ResetPassword(c.Request.Context(), u.ID, req.OldPassword, req.NewPassword); err != nil {
		if errors.Is(err, service.ErrInvalidOldPassword) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("reset password failed", zap.String("user", u.ID), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "password updated successfully"})
}
