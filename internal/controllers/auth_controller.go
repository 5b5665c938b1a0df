package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resourcely-be/internal/models"
	"resourcely-be/internal/service"
)

type AuthController struct {
	authService service.AuthService
}

func NewAuthController(authService service.AuthService) *AuthController {
	return &AuthController{
		authService: authService,
	}
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"message": bindingErrorMessage(err),
		})
		return
	}

	response, err := ac.authService.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{
				"message": "Invalid credentials",
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{
			"message": "Server error",
		})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Profile handles GET /api/auth/profile
func (ac *AuthController) Profile(c *gin.Context) {
	// Set by the auth middleware from the verified token
	userID, exists := c.Get("user_id")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{
			"message": "No token provided",
		})
		return
	}

	user, err := ac.authService.GetProfile(c.Request.Context(), userID.(string))
	if err != nil {
		respondError(c, err, "User not found")
		return
	}

	c.JSON(http.StatusOK, user)
}
