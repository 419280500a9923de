package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/sepnoty/sepnoty_backend/controllers"
	"github.com/sepnoty/sepnoty_backend/middleware"
)

// RegisterMembershipRoutes sets up the public form submission routes and the
// JWT-protected admin dashboard routes.
func RegisterMembershipRoutes(e *echo.Echo, membershipController *controllers.MembershipController, scheduleController *controllers.ScheduleController) {
	// Public form submissions
	e.POST("/api/membership", membershipController.SubmitMembership)
	e.POST("/api/club-membership", membershipController.SubmitClubMembership)
	e.POST("/api/schedule-call", scheduleController.SubmitScheduleCall)

	// Admin dashboard routes
	admin := e.Group("/api", middleware.JWTMiddleware())
	admin.GET("/memberships", membershipController.ListMemberships)
	admin.GET("/memberships/export", membershipController.ExportMemberships)
	admin.GET("/schedule-calls", scheduleController.ListScheduleCalls)
}
