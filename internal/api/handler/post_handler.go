package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Wannasingh/wannasingh-blog/internal/api/middleware"
	"github.com/Wannasingh/wannasingh-blog/internal/service"
	"github.com/Wannasingh/wannasingh-blog/pkg/logger"
	"github.com/Wannasingh/wannasingh-blog/pkg/response"
)

type postRequest struct {
	Title       string `json:"title" binding:"required"`
	Image       string `json:"image"`
	CategoryID  uint   `json:"category_id" binding:"required"`
	Description string `json:"description"`
	Content     string `json:"content" binding:"required"`
	StatusID    int    `json:"status_id" binding:"required"`
}

func (r postRequest) toInput() service.PostInput {
	return service.PostInput{
		Title:       r.Title,
		Image:       r.Image,
		CategoryID:  r.CategoryID,
		Description: r.Description,
		Content:     r.Content,
		StatusID:    r.StatusID,
	}
}

// ListPosts is the public paginated feed of published posts.
// @Summary List published posts
// @Tags posts
// @Param category query string false "category name filter"
// @Param keyword query string false "keyword over title/description/content"
// @Param page query int false "page" default(1)
// @Param limit query int false "page size" default(6)
// @Success 200 {object} response.Response
// @Router /posts [get]
func (h *Handler) ListPosts(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "6"))
	res, err := h.postService.List(c.Request.Context(), c.Query("category"), c.Query("keyword"), page, limit)
	if err != nil {
		logger.Error("list posts failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, res)
}

// GetPost returns a single published post.
func (h *Handler) GetPost(c *gin.Context) {
	row, err := h.postService.GetPublished(c.Request.Context(), c.Param("postId"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, row)
}

// AdminListPosts returns every post regardless of status.
func (h *Handler) AdminListPosts(c *gin.Context) {
	rows, err := h.postService.AdminList(c.Request.Context())
	if err != nil {
		logger.Error("admin list posts failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"posts": rows})
}

// AdminGetPost returns a post regardless of status.
func (h *Handler) AdminGetPost(c *gin.Context) {
	row, err := h.postService.AdminGet(c.Request.Context(), c.Param("postId"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, row)
}

// CreatePost creates a post owned by the calling admin.
// @Summary Create post
// @Tags posts
// @Accept json
// @Param request body postRequest true "post"
// @Success 201 {object} response.Response
// @Router /posts [post]
func (h *Handler) CreatePost(c *gin.Context) {
	admin := middleware.CurrentUser(c)
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	p, err := h.postService.Create(c.Request.Context(), admin.ID, req.toInput())
	if err != nil {
		logger.Error("create post failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Created(c, p)
}

func (h *Handler) UpdatePost(c *gin.Context) {
	var req postRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	err := h.postService.Update(c.Request.Context(), c.Param("postId"), req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		logger.Error("update post failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "updated post successfully"})
}

func (h *Handler) DeletePost(c *gin.Context) {
	err := h.postService.Delete(c.Request.Context(), c.Param("postId"))
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFound(c, "post not found")
			return
		}
		logger.Error("delete post failed", zap.Error(err))
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "deleted post successfully"})
}
