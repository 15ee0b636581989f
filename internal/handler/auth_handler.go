package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/middleware"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/model"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/response"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/service"
	"github.com/satyam4056/Medical-Quiz-Platform-Development-Plan-7552/internal/validator"
)

// AuthHandler handles the simulated authentication endpoints.
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /api/v1/auth/login
// Checks the demo credentials and returns a bearer token plus profile.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	token, user, err := h.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user,
	})
}

// Me godoc
// GET /api/v1/auth/me
// Returns the authenticated user's profile with current stats.
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.GetClaims(c)
	if claims == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrTokenRequired)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": h.authService.Profile(claims.UserID)})
}
