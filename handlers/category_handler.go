package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"takabet-api/helper"
	"takabet-api/models"
	"takabet-api/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CategoryHandler struct {
	categoryService services.CategoryService
	Helper          *helper.HTTPHelper
}

func NewCategoryHandler(categoryService services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		Helper:          helper.NewHTTPHelper(),
	}
}

// GetCategories returns all active categories ordered for display.
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	categories, err := h.categoryService.GetCategories()
	if err != nil {
		h.Helper.SendInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetCategoryBySlug(c *gin.Context) {
	category, err := h.categoryService.GetCategoryBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Category not found")
			return
		}
		h.Helper.SendInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	var req models.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if msg := h.Helper.ValidatePayload(req); msg != "" {
		h.Helper.SendBadRequest(c, msg)
		return
	}

	category, err := h.categoryService.CreateCategory(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID")
		return
	}

	var req models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if msg := h.Helper.ValidatePayload(req); msg != "" {
		h.Helper.SendBadRequest(c, msg)
		return
	}

	category, err := h.categoryService.UpdateCategory(uint(id), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Category not found")
			return
		}
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteCategory(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Category not found")
			return
		}
		h.Helper.SendInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Category removed"})
}
