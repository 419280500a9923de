package controllers

import (
	"log"
	"net/http"
	"os"

	"github.com/labstack/echo/v4"

	"github.com/sepnoty/sepnoty_backend/models"
	"github.com/sepnoty/sepnoty_backend/repositories"
	"github.com/sepnoty/sepnoty_backend/services"
	"github.com/sepnoty/sepnoty_backend/utils"
)

// ScheduleController handles call booking endpoints
type ScheduleController struct {
	repo   *repositories.ScheduleRepository
	mail   *services.MailService
	logger *log.Logger
}

// NewScheduleController creates a new schedule controller
func NewScheduleController(repo *repositories.ScheduleRepository, mail *services.MailService) *ScheduleController {
	return &ScheduleController{
		repo:   repo,
		mail:   mail,
		logger: log.New(os.Stdout, "[SCHEDULE] ", log.LstdFlags),
	}
}

// SubmitScheduleCall stores a call booking request
func (sc *ScheduleController) SubmitScheduleCall(c echo.Context) error {
	var req models.ScheduleCallRequest
	if err := c.Bind(&req); err != nil {
		sc.logger.Printf("Schedule call bind error: %v", err)
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid request data",
		})
	}

	email, err := utils.SanitizeEmail(req.ClientEmail)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid email format",
		})
	}
	phone, err := utils.SanitizePhone(req.ClientPhone)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid phone number format",
		})
	}

	call := models.ScheduleCall{
		ClientName:    utils.SanitizeInput(req.ClientName),
		ClientEmail:   email,
		ClientPhone:   phone,
		PurposeOfCall: utils.SanitizeInput(req.PurposeOfCall),
		Date:          utils.SanitizeInput(req.Date),
		Time:          utils.SanitizeInput(req.Time),
		Timezone:      utils.SanitizeInput(req.Timezone),
	}

	stored, err := sc.repo.Append(call)
	if err != nil {
		sc.logger.Printf("Error submitting schedule call: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to submit call booking",
		})
	}

	sc.mail.NotifyScheduleCall(stored)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Call booking submitted successfully",
		Data:    map[string]string{"id": stored.ID},
	})
}

// ListScheduleCalls returns every stored booking in submission order
func (sc *ScheduleController) ListScheduleCalls(c echo.Context) error {
	calls, err := sc.repo.ListAll()
	if err != nil {
		sc.logger.Printf("Error fetching schedule calls: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch call bookings",
		})
	}
	return c.JSON(http.StatusOK, calls)
}
