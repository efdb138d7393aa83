package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Wannasingh/wannasingh-blog/internal/service"
	"github.com/Wannasingh/wannasingh-blog/pkg/response"
)

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func (h *Handler) ListCategories(c *gin.Context) {
	cats, err := h.categoryService.List(c.Request.Context())
	if err != nil {
		response.InternalError(c, err)
		return
	}
	response.Success(c, cats)
}

func (h *Handler) GetCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("categoryId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}
	cat, err := h.categoryService.Get(c.Request.Context(), uint(id))
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.NotFound(c, "category not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, cat)
}

func (h *Handler) CreateCategory(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	cat, err := h.categoryService.Create(c.Request.Context(), req.Name)
	if err != nil {
		if errors.Is(err, service.ErrEmptyCategory) {
			response.BadRequest(c, err.Error())
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Created(c, cat)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("categoryId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}
	if err := h.categoryService.Update(c.Request.Context(), uint(id), req.Name); err != nil {
		switch {
		case errors.Is(err, service.ErrCategoryNotFound):
			response.NotFound(c, "category not found")
		case errors.Is(err, service.ErrEmptyCategory):
			response.BadRequest(c, err.Error())
		default:
			response.InternalError(c, err)
		}
		return
	}
	response.Success(c, gin.H{"message": "updated category successfully"})
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("categoryId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid category id")
		return
	}
	if err := h.categoryService.Delete(c.Request.Context(), uint(id)); err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			response.NotFound(c, "category not found")
			return
		}
		response.InternalError(c, err)
		return
	}
	response.Success(c, gin.H{"message": "deleted category successfully"})
}
