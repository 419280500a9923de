package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/sepnoty/sepnoty_backend/controllers"
)

// RegisterAuthRoutes sets up the admin login route
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	e.POST("/api/auth/login", authController.Login)
}
