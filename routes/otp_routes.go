package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/sepnoty/sepnoty_backend/controllers"
)

// RegisterOTPRoutes sets up the phone verification routes
func RegisterOTPRoutes(e *echo.Echo, otpController *controllers.OTPController) {
	e.POST("/api/otp/send", otpController.SendOTP)
	e.POST("/api/otp/verify", otpController.VerifyOTP)
}
