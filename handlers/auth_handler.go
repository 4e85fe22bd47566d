package handlers

import (
	"takabet-api/helper"
	"takabet-api/models"
	"takabet-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		Helper:      helper.NewHTTPHelper(),
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if msg := h.Helper.ValidatePayload(req); msg != "" {
		h.Helper.SendBadRequest(c, msg)
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}

	c.JSON(201, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendBadRequest(c, err.Error())
		return
	}
	if msg := h.Helper.ValidatePayload(req); msg != "" {
		h.Helper.SendBadRequest(c, msg)
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		h.Helper.SendUnauthorizedError(c, err.Error())
		return
	}

	c.JSON(200, response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		h.Helper.SendUnauthorizedError(c, "User not found in context")
		return
	}

	user, err := h.authService.GetUserByID(userID.(uint))
	if err != nil {
		h.Helper.SendNotFoundError(c, "User not found")
		return
	}

	c.JSON(200, user)
}
