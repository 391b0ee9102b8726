package handlers

import (
	"net/http"

	"github.com/devboardhq/devboard/internal/dtos"
	"github.com/devboardhq/devboard/internal/services"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	Users *services.UserService
}

func NewAuthHandler(users *services.UserService) *AuthHandler {
	return &AuthHandler{Users: users}
}

// Register is the POST /register endpoint.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dtos.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name, email, and password are required"})
		return
	}

	resp, err := h.Users.Register(&req)
	if err != nil {
		fail(c, err, "Server error during registration")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// Login is the POST /login endpoint.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dtos.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	resp, err := h.Users.Login(&req)
	if err != nil {
		fail(c, err, "Server error during login")
		return
	}
	c.JSON(http.StatusOK, resp)
}
