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

type PostHandler struct {
	postService services.PostService
	Helper      *helper.HTTPHelper
}

func NewPostHandler(postService services.PostService) *PostHandler {
	return &PostHandler{
		postService: postService,
		Helper:      helper.NewHTTPHelper(),
	}
}

// GetPosts lists published posts with pagination. Supported query params:
// page, limit, category (slug), search, featured.
func (h *PostHandler) GetPosts(c *gin.Context) {
	var params models.PostListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	result, err := h.postService.GetPosts(params)
	if err != nil {
		h.Helper.SendInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPostBySlug returns a single published post and increments its view
// counter.
func (h *PostHandler) GetPostBySlug(c *gin.Context) {
	post, err := h.postService.GetPostBySlug(c.Param("slug"))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Post not found")
			return
		}
		h.Helper.SendInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) CreatePost(c *gin.Context) {
	userID, _ := c.Get("user_id")

	var req models.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if msg := h.Helper.ValidatePayload(req); msg != "" {
		h.Helper.SendBadRequest(c, msg)
		return
	}

	post, err := h.postService.CreatePost(req, userID.(uint))
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusCreated, post)
}

func (h *PostHandler) UpdatePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid post ID")
		return
	}

	var req models.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if msg := h.Helper.ValidatePayload(req); msg != "" {
		h.Helper.SendBadRequest(c, msg)
		return
	}

	post, err := h.postService.UpdatePost(uint(id), req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Post not found")
			return
		}
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, post)
}

func (h *PostHandler) DeletePost(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		h.Helper.SendBadRequest(c, "Invalid post ID")
		return
	}

	if err := h.postService.DeletePost(uint(id)); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.Helper.SendNotFoundError(c, "Post not found")
			return
		}
		h.Helper.SendInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post removed"})
}

// GetAllPostsAdmin lists every post regardless of status, newest first.
func (h *PostHandler) GetAllPostsAdmin(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	result, err := h.postService.GetAllPosts(page, limit)
	if err != nil {
		h.Helper.SendInternalError(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, result)
}
