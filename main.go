package main

import (
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/sepnoty/sepnoty_backend/config"
	"github.com/sepnoty/sepnoty_backend/controllers"
	"github.com/sepnoty/sepnoty_backend/middleware"
	"github.com/sepnoty/sepnoty_backend/repositories"
	"github.com/sepnoty/sepnoty_backend/routes"
	"github.com/sepnoty/sepnoty_backend/services"
	"github.com/sepnoty/sepnoty_backend/utils"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	err := godotenv.Load()
	if err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := config.Load()

	// OTP store: Redis when configured, in-memory otherwise
	var otpStore repositories.OTPStore = repositories.NewMemoryOTPStore()
	if client := config.ConnectRedis(cfg.RedisAddr); client != nil {
		otpStore = repositories.NewRedisOTPStore(client, services.OTPExpiry)
	}

	membershipRepo, err := repositories.NewMembershipRepository(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize membership store:", err)
	}
	scheduleRepo, err := repositories.NewScheduleRepository(cfg.DataDir)
	if err != nil {
		log.Fatal("Failed to initialize schedule store:", err)
	}

	// Services
	gateway := services.NewTwilioService(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioPhoneNumber)
	otpService := services.NewOTPService(otpStore, gateway)
	mailService := services.NewMailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.AdminNotifyEmail)

	// Controllers
	otpController := controllers.NewOTPController(otpService)
	membershipController := controllers.NewMembershipController(membershipRepo, mailService)
	scheduleController := controllers.NewScheduleController(scheduleRepo, mailService)
	verifier := utils.NewEnvCredentialVerifier(cfg.AdminEmail, cfg.AdminPassword, cfg.AdminPasswordHash)
	authController := controllers.NewAuthController(verifier)

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	customValidator := &CustomValidator{validator: validator.New()}
	e.Validator = customValidator

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{"*"},
		AllowInlineJS:  false,
	}))

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":  "OK",
			"message": "Sepnoty Membership API is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Register routes
	routes.RegisterOTPRoutes(e, otpController)
	routes.RegisterMembershipRoutes(e, membershipController, scheduleController)
	routes.RegisterAuthRoutes(e, authController)

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
