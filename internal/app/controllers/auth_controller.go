package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edupanel/campuscore/internal/app/models/dto"
	"github.com/edupanel/campuscore/internal/app/services"
	"github.com/edupanel/campuscore/internal/middleware"
)

// AuthController handles authentication endpoints
type AuthController struct {
	authService services.AuthService
}

// NewAuthController creates a new AuthController
func NewAuthController(authService services.AuthService) *AuthController {
	return &AuthController{authService: authService}
}

// Register creates a staff account
// @Summary Register an account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration data"
// @Success 201 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 400 {object} dto.ErrorResponse "Validation failure or email already in use"
// @Router /auth/register [post]
func (ctl *AuthController) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ctl.authService.Register(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.NewDataResponse(resp))
}

// Login authenticates an account
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Credentials"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (ctl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ctl.authService.Login(c.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(resp))
}

// RefreshToken exchanges a refresh token for a fresh token pair
// @Summary Refresh tokens
// @Tags auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.APIResponse{data=dto.AuthResponse}
// @Failure 401 {object} dto.ErrorResponse "Invalid or expired refresh token"
// @Router /auth/refresh [post]
func (ctl *AuthController) RefreshToken(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	resp, err := ctl.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(resp))
}

// Logout revokes a refresh token
// @Summary Log out
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.RefreshTokenRequest true "Refresh token to revoke"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse}
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Router /auth/logout [post]
func (ctl *AuthController) Logout(c *gin.Context) {
	var req dto.RefreshTokenRequest
	if !bindJSON(c, &req) {
		return
	}

	if err := ctl.authService.Logout(c.Request.Context(), req.RefreshToken); err != nil {
		middleware.HandleAPIError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewDataResponse(dto.SuccessResponse{Message: "Logged out successfully"}))
}
