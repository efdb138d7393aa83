package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Wannasingh/wannasingh-blog/internal/api/middleware"
	"github.com/Wannasingh/wannasingh-blog/pkg/logger"
	"github.com/Wannasingh/wannasingh-blog/pkg/response"
)

// ListNotifications returns the admin's feed, scoped to their own posts.
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Success 200 {object} response.Response
// @Router /notifications [get]
func (h *Handler) ListNotifications(c *gin.Context) {
	admin := middleware.CurrentUser(c)
	rows, err := h.notifService.List(c.Request.Context(), admin.ID)
	if err != nil {
		logger.Error("list notifications failed", zap.String("admin", admin.ID), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, rows)
}

// UnreadNotificationCount is a badge endpoint: it degrades to zero on failure.
// @Summary Unread notification count
// @Tags notifications
// @Success 200 {object} response.Response
// @Router /notifications/unread-count [get]
func (h *Handler) UnreadNotificationCount(c *gin.Context) {
	admin := middleware.CurrentUser(c)
	count := h.notifService.CountUnread(c.Request.Context(), admin.ID)
	response.Success(c, gin.H{"count": count})
}

// MarkNotificationRead marks a single notification read. Idempotent.
// @Summary Mark one notification read
// @Tags notifications
// @Param id path int true "notification id"
// @Success 200 {object} response.Response
// @Router /notifications/{id}/read [put]
func (h *Handler) MarkNotificationRead(c *gin.Context) {
	admin := middleware.CurrentUser(c)
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.BadRequest(c, "invalid notification id")
		return
	}
	if err := h.notifService.MarkRead(c.Request.Context(), admin.ID, id); err != nil {
		logger.Error("mark notification read failed", zap.Uint64("id", id), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "notification marked as read"})
}

// MarkAllNotificationsRead marks every unread notification on the admin's
// posts as read. No-op success when the admin owns no posts.
// @Summary Mark all notifications read
// @Tags notifications
// @Success 200 {object} response.Response
// @Router /notifications/read-all [put]
func (h *Handler) MarkAllNotificationsRead(c *gin.Context) {
	admin := middleware.CurrentUser(c)
	if err := h.notifService.MarkAllRead(c.Request.Context(), admin.ID); err != nil {
		logger.Error("mark all notifications read failed", zap.String("admin", admin.ID), zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "all notifications marked as read"})
}
