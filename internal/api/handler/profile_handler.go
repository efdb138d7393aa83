package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Wannasingh/wannasingh-blog/internal/api/middleware"
	"github.com/Wannasingh/wannasingh-blog/internal/model"
	"github.com/Wannasingh/wannasingh-blog/internal/repository"
	"github.com/Wannasingh/wannasingh-blog/internal/service"
	"github.com/Wannasingh/wannasingh-blog/pkg/logger"
	"github.com/Wannasingh/wannasingh-blog/pkg/response"
)

type profileUpdateRequest struct {
	Name       *string `json:"name"`
	Username   *string `json:"username"`
	Bio        *string `json:"bio"`
	ProfilePic *string `json:"profilePic"`
}

type profileView struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Username   string `json:"username"`
	Role       string `json:"role"`
	ProfilePic string `json:"profile_pic"`
	Bio        string `json:"bio"`
}

func toProfileView(u *model.User) profileView {
	return profileView{
		ID: u.ID, Name: u.Name, Username: u.Username,
		Role: u.Role, ProfilePic: u.ProfilePic, Bio: u.Bio,
	}
}

// Author returns the blog's author (earliest admin) for the homepage.
func (h *Handler) Author(c *gin.Context) {
	u, err := h.profileService.Author(c.Request.Context())
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "author not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, toProfileView(u))
}

// GetProfile returns a public profile by user id.
func (h *Handler) GetProfile(c *gin.Context) {
	u, err := h.profileService.Get(c.Request.Context(), c.Param("userId"))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			response.NotFound(c, "user not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, toProfileView(u))
}

// UpdateProfile updates the caller's own profile fields.
func (h *Handler) UpdateProfile(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var req profileUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	u, err := h.profileService.Update(c.Request.Context(), user.ID, service.ProfileUpdate{
		Name:       req.Name,
		Username:   req.Username,
		Bio:        req.Bio,
		ProfilePic: req.ProfilePic,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidName),
			errors.Is(err, service.ErrInvalidUsername),
			errors.Is(err, service.ErrBioTooLong),
			errors.Is(err, service.ErrUsernameTaken):
			response.BadRequest(c, err.Error())
		default:
			logger.Error("update profile failed", zap.String("user", user.ID), zap.Error(err))
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, toProfileView(u))
}
