package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Boiketlo2/school-reporting/internal/app/models/dto"
	"github.com/Boiketlo2/school-reporting/internal/app/services"
	"github.com/Boiketlo2/school-reporting/internal/middleware"
	"github.com/Boiketlo2/school-reporting/internal/pkg/apperrors"
)

// AuthController handles registration, login and the current-user endpoint.
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register handles POST /api/auth/register.
func (ac *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("name and password are required"))
		return
	}

	id, err := ac.authService.Register(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.RegisterResponse{
		Message: "User registered successfully",
		UserID:  id,
	})
}

// Login handles POST /api/auth/login.
func (ac *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleAPIError(c, apperrors.NewValidationError("identifier and password are required"))
		return
	}

	resp, err := ac.authService.Login(c.Request.Context(), req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Me handles GET /api/auth/me for the authenticated user.
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.ActorID(c)
	if !ok {
		middleware.HandleAPIError(c, apperrors.ErrUnauthorized)
		return
	}

	resp, err := ac.authService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
