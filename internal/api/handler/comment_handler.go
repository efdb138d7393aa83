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

type commentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// ListComments returns a post's comments with author info, newest first.
func (h *Handler) ListComments(c *gin.Context) {
	rows, err := h.commentService.ListByPost(c.Request.Context(), c.Param("postId"))
	if err != nil {
		logger.Error("list comments failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, rows)
}

// CreateComment adds a comment and feeds the post owner's notifications.
func (h *Handler) CreateComment(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var req commentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "comment content cannot be empty")
		return
	}
	_, err := h.commentService.Create(c.Request.Context(), c.Param("postId"), user.ID, req.Comment)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmptyComment), errors.Is(err, service.ErrCommentTooLong):
			response.BadRequest(c, err.Error())
		case errors.Is(err, service.ErrPostNotFound):
			response.NotFound(c, "post not found")
		default:
			logger.Error("create comment failed", zap.Error(err))
			response.InternalError(c, err)
		}
		return
	}
	response.Created(c, gin.H{"message": "created comment successfully"})
}

// CountLikes is public.
func (h *Handler) CountLikes(c *gin.Context) {
	count, err := h.likeService.Count(c.Request.Context(), c.Param("postId"))
	if err != nil {
		logger.Error("count likes failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"like_count": count})
}

// CreateLike likes a post; liking twice is a no-op.
func (h *Handler) CreateLike(c *gin.Context) {
	user := middleware.CurrentUser(c)
	err := h.likeService.Like(c.Request.Context(), c.Param("postId"), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		logger.Error("create like failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Created(c, gin.H{"message": "created like successfully"})
}

// DeleteLike removes the caller's like.
func (h *Handler) DeleteLike(c *gin.Context) {
	user := middleware.CurrentUser(c)
	err := h.likeService.Unlike(c.Request.Context(), c.Param("postId"), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrLikeNotFound) {
			response.NotFound(c, "like not found")
			return
		}
		logger.Error("delete like failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "deleted like successfully"})
}
