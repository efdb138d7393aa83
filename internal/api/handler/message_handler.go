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

type sendMessageRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
	Message    string `json:"message"`
}

type typingRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
}

// Conversations lists one summary per counterpart, most recent activity first.
// @Summary List conversations
// @Tags messages
// @Produce json
// @Success 200 {object} response.Response
// @Router /messages/conversations [get]
func (h *Handler) Conversations(c *gin.Context) {
	user := middleware.CurrentUser(c)
	convs, err := h.messageService.Conversations(c.Request.Context(), user.ID)
	if err != nil {
		logger.Error("list conversations failed", zap.String("user", user.ID), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, convs)
}

// ListMessages returns the thread with a counterpart. Fetching marks the
// counterpart's unread messages as read.
// @Summary List messages with a user
// @Tags messages
// @Param userId path string true "counterpart user id"
// @Success 200 {object} response.Response
// @Router /messages/{userId} [get]
func (h *Handler) ListMessages(c *gin.Context) {
	user := middleware.CurrentUser(c)
	otherID := c.Param("userId")
	msgs, err := h.messageService.ListWith(c.Request.Context(), user.ID, otherID)
	if err != nil {
		logger.Error("list messages failed", zap.String("user", user.ID), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, msgs)
}

// SendMessage persists a new message to the receiver.
// @Summary Send a message
// @Tags messages
// @Accept json
// @Param request body sendMessageRequest true "message"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /messages [post]
func (h *Handler) SendMessage(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "receiver and message are required")
		return
	}
	m, err := h.messageService.Send(c.Request.Context(), user.ID, req.ReceiverID, req.Message)
	if err != nil {
		if errors.Is(err, service.ErrEmptyMessage) || errors.Is(err, service.ErrMessageSelf) {
			response.BadRequest(c, err.Error())
			return
		}
		logger.Error("send message failed", zap.String("user", user.ID), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Created(c, m)
}

// UnreadMessageCount is a badge endpoint: it degrades to zero on failure.
// @Summary Unread message count
// @Tags messages
// @Success 200 {object} response.Response
// @Router /messages/unread/count [get]
func (h *Handler) UnreadMessageCount(c *gin.Context) {
	user := middleware.CurrentUser(c)
	count := h.messageService.CountUnread(c.Request.Context(), user.ID)
	response.Success(c, gin.H{"count": count})
}

// SetTyping records a typing signal toward the receiver.
// @Summary Signal typing
// @Tags messages
// @Accept json
// @Param request body typingRequest true "receiver"
// @Success 200 {object} response.Response
// @Router /messages/typing [post]
func (h *Handler) SetTyping(c *gin.Context) {
	user := middleware.CurrentUser(c)
	var req typingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "receiver is required")
		return
	}
	if err := h.typingStore.Set(c.Request.Context(), user.ID, req.ReceiverID); err != nil {
		logger.Warn("set typing failed", zap.String("user", user.ID), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"success": true})
}

// GetTyping reports whether the counterpart is typing toward the caller.
// Best-effort: store errors degrade to false.
// @Summary Typing status of a counterpart
// @Tags messages
// @Param userId path string true "counterpart user id"
// @Success 200 {object} response.Response
// @Router /messages/typing/{userId} [get]
func (h *Handler) GetTyping(c *gin.Context) {
	user := middleware.CurrentUser(c)
	otherID := c.Param("userId")
	typing, err := h.typingStore.IsTyping(c.Request.Context(), otherID, user.ID)
	if err != nil {
		logger.Warn("get typing failed", zap.String("user", user.ID), zap.Error(err))
		typing = false
	}
	response.Success(c, gin.H{"isTyping": typing})
}
