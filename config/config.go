// config/config.go
package config

import (
	"log"
	"os"
	"strconv"
)

// Config holds all environment-level configuration for the backend.
type Config struct {
	Port    string
	DataDir string

	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioPhoneNumber string

	AdminEmail        string
	AdminPassword     string
	AdminPasswordHash string
	AdminNotifyEmail  string
	JWTSecret         string

	RedisAddr string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string
}

// Load reads configuration from environment variables. Defaults are
// development-friendly; Twilio and SMTP credentials have no defaults and the
// related services log a warning when they are missing.
func Load() *Config {
	cfg := &Config{
		Port:    getEnv("PORT", "3001"),
		DataDir: getEnv("DATA_DIR", "data"),

		TwilioAccountSID:  os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:   os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioPhoneNumber: os.Getenv("TWILIO_PHONE_NUMBER"),

		AdminEmail:        getEnv("ADMIN_EMAIL", "admin@sepnoty.com"),
		AdminPassword:     os.Getenv("ADMIN_PASSWORD"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		AdminNotifyEmail:  os.Getenv("ADMIN_NOTIFY_EMAIL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		SMTPHost: os.Getenv("SMTP_HOST"),
		SMTPPort: 2525,
		SMTPUser: os.Getenv("SMTP_USER"),
		SMTPPass: os.Getenv("SMTP_PASS"),
	}

	if portStr := os.Getenv("SMTP_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil {
			cfg.SMTPPort = port
		}
	}

	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		log.Println("Warning: ADMIN_PASSWORD / ADMIN_PASSWORD_HASH not set, admin login disabled")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
