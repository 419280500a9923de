package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/sepnoty/sepnoty_backend/middleware"
	"github.com/sepnoty/sepnoty_backend/models"
	"github.com/sepnoty/sepnoty_backend/utils"
)

// AuthController handles admin authentication
type AuthController struct {
	verifier utils.CredentialVerifier
	logger   *log.Logger
}

// NewAuthController creates a new auth controller
func NewAuthController(verifier utils.CredentialVerifier) *AuthController {
	return &AuthController{
		verifier: verifier,
		logger:   log.New(os.Stdout, "[AUTH] ", log.LstdFlags),
	}
}

// Login verifies the admin credential pair and issues a JWT
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		ac.logger.Printf("Login bind error: %v", err)
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Email and password are required",
		})
	}

	if !ac.verifier.Verify(req.Email, req.Password) {
		ac.logger.Printf("Failed login attempt for %s", req.Email)
		return c.JSON(http.StatusUnauthorized, models.Response{
			Status:  http.StatusUnauthorized,
			Message: "Invalid email or password",
		})
	}

	token, err := middleware.GenerateJWT(req.Email, "admin")
	if err != nil {
		ac.logger.Printf("Failed to generate token: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to generate token",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Login successful",
		Data:    map[string]string{"token": token},
	})
}
