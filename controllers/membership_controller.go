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

// MembershipController handles membership application endpoints
type MembershipController struct {
	repo   *repositories.MembershipRepository
	mail   *services.MailService
	logger *log.Logger
}

// NewMembershipController creates a new membership controller
func NewMembershipController(repo *repositories.MembershipRepository, mail *services.MailService) *MembershipController {
	return &MembershipController{
		repo:   repo,
		mail:   mail,
		logger: log.New(os.Stdout, "[MEMBERSHIP] ", log.LstdFlags),
	}
}

// SubmitMembership stores a standard membership application
func (mc *MembershipController) SubmitMembership(c echo.Context) error {
	var req models.MembershipRequest
	if err := c.Bind(&req); err != nil {
		mc.logger.Printf("Membership bind error: %v", err)
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

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid email format",
		})
	}
	phone, err := utils.SanitizePhone(req.Phone)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid phone number format",
		})
	}

	app := models.MembershipApplication{
		Name:         utils.SanitizeInput(req.Name),
		Email:        email,
		Phone:        phone,
		College:      utils.SanitizeInput(req.College),
		Department:   utils.SanitizeInput(req.Department),
		Year:         utils.SanitizeInput(req.Year),
		InterestArea: utils.SanitizeInput(req.InterestArea),
		WhyJoin:      utils.SanitizeInput(req.WhyJoin),
		Experience:   utils.SanitizeInput(req.Experience),
		Expectations: utils.SanitizeInput(req.Expectations),
	}

	stored, err := mc.repo.Append(app)
	if err != nil {
		mc.logger.Printf("Error submitting membership: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to submit membership application",
		})
	}

	mc.mail.NotifyMembership(stored)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Membership application submitted successfully",
		Data:    map[string]string{"id": stored.ID},
	})
}

// SubmitClubMembership stores an extended club signup application
func (mc *MembershipController) SubmitClubMembership(c echo.Context) error {
	var req models.ClubMembershipRequest
	if err := c.Bind(&req); err != nil {
		mc.logger.Printf("Club membership bind error: %v", err)
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

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid email format",
		})
	}
	phone, err := utils.SanitizePhone(req.Phone)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Status:  http.StatusBadRequest,
			Message: "Invalid phone number format",
		})
	}

	app := models.MembershipApplication{
		Name:             utils.SanitizeInput(req.Name),
		Email:            email,
		Phone:            phone,
		College:          utils.SanitizeInput(req.College),
		Department:       utils.SanitizeInput(req.Department),
		Year:             utils.SanitizeInput(req.Year),
		Skills:           utils.SanitizeStringArray(req.Skills),
		ProficiencyLevel: utils.SanitizeInput(req.ProficiencyLevel),
		InterestAreas:    utils.SanitizeStringArray(req.InterestAreas),
		WhyJoin:          utils.SanitizeInput(req.WhyJoin),
		Goals:            utils.SanitizeInput(req.Goals),
		Experience:       utils.SanitizeInput(req.Experience),
		Availability:     utils.SanitizeInput(req.Availability),
		Referral:         utils.SanitizeInput(req.Referral),
	}

	stored, err := mc.repo.Append(app)
	if err != nil {
		mc.logger.Printf("Error submitting club membership: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to submit membership application",
		})
	}

	mc.mail.NotifyMembership(stored)

	return c.JSON(http.StatusCreated, models.Response{
		Status:  http.StatusCreated,
		Message: "Membership application submitted successfully",
		Data:    map[string]string{"id": stored.ID},
	})
}

// ListMemberships returns every stored application in submission order
func (mc *MembershipController) ListMemberships(c echo.Context) error {
	apps, err := mc.repo.ListAll()
	if err != nil {
		mc.logger.Printf("Error fetching memberships: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to fetch memberships",
		})
	}
	return c.JSON(http.StatusOK, apps)
}

// ExportMemberships streams all applications as a CSV attachment
func (mc *MembershipController) ExportMemberships(c echo.Context) error {
	csvData, err := mc.repo.ExportCSV(repositories.ExportFields)
	if err != nil {
		mc.logger.Printf("Error exporting memberships: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Status:  http.StatusInternalServerError,
			Message: "Failed to export memberships",
		})
	}

	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="sepnoty-memberships.csv"`)
	return c.Blob(http.StatusOK, "text/csv", csvData)
}
