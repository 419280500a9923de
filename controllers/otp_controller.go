package controllers

import (
	"errors"
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/sepnoty/sepnoty_backend/models"
	"github.com/sepnoty/sepnoty_backend/services"
	"github.com/sepnoty/sepnoty_backend/utils"
)

// OTPController handles phone verification endpoints
type OTPController struct {
	service *services.OTPService
	logger  *log.Logger
}

// NewOTPController creates a new OTP controller
func NewOTPController(service *services.OTPService) *OTPController {
	return &OTPController{
		service: service,
		logger:  log.New(os.Stdout, "[OTP] ", log.LstdFlags),
	}
}

// SendOTP generates and delivers a verification code to the given phone
func (oc *OTPController) SendOTP(c echo.Context) error {
	var req models.SendOTPRequest
	if err := c.Bind(&req); err != nil {
		oc.logger.Printf("OTP send bind error: %v", err)
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request",
		})
	}

	if req.Phone == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Phone number is required",
		})
	}

	phone, err := utils.SanitizePhone(req.Phone)
	if err != nil || phone == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid phone number format",
		})
	}

	if err := oc.service.Send(c.Request().Context(), phone); err != nil {
		oc.logger.Printf("Error sending OTP: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to send OTP",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "OTP sent successfully",
	})
}

// VerifyOTP checks the submitted code for the given phone
func (oc *OTPController) VerifyOTP(c echo.Context) error {
	var req models.VerifyOTPRequest
	if err := c.Bind(&req); err != nil {
		oc.logger.Printf("OTP verification bind error: %v", err)
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request",
		})
	}

	req.OTP = utils.SanitizeInput(req.OTP)
	if req.Phone == "" || req.OTP == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Phone number and OTP are required",
		})
	}

	phone, err := utils.SanitizePhone(req.Phone)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid phone number format",
		})
	}

	err = oc.service.Verify(c.Request().Context(), phone, req.OTP)
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, models.Response{
			Status:  http.StatusOK,
			Message: "OTP verified successfully",
		})
	case errors.Is(err, services.ErrOTPNotFound):
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "No OTP request found for this phone number",
		})
	case errors.Is(err, services.ErrOTPExpired):
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "OTP has expired",
		})
	case errors.Is(err, services.ErrOTPMismatch):
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid OTP",
		})
	default:
		oc.logger.Printf("Error verifying OTP: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to verify OTP",
		})
	}
}
