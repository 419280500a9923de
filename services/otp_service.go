package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/sepnoty/sepnoty_backend/models"
	"github.com/sepnoty/sepnoty_backend/repositories"
	"github.com/sepnoty/sepnoty_backend/utils"
)

// OTPExpiry is the window within which a sent code can be verified.
const OTPExpiry = 5 * time.Minute

var (
	ErrOTPNotFound = errors.New("no OTP request found for this phone number")
	ErrOTPExpired  = errors.New("OTP has expired")
	ErrOTPMismatch = errors.New("invalid OTP")
	ErrGateway     = errors.New("failed to send OTP")
)

// OTPService orchestrates code issuance and verification against the store
// and the SMS gateway.
type OTPService struct {
	store   repositories.OTPStore
	gateway Gateway
	logger  *log.Logger
}

func NewOTPService(store repositories.OTPStore, gateway Gateway) *OTPService {
	return &OTPService{
		store:   store,
		gateway: gateway,
		logger:  log.New(os.Stdout, "[OTP] ", log.LstdFlags),
	}
}

// Send generates a fresh code, delivers it, and replaces any previous record
// for the phone. Delivery is attempted before the store write, so a gateway
// failure never leaves an unsendable code behind.
func (s *OTPService) Send(ctx context.Context, phone string) error {
	if phone == "" {
		return errors.New("phone number is required")
	}

	code, err := utils.GenerateOTP()
	if err != nil {
		return fmt.Errorf("failed to generate OTP: %w", err)
	}

	if err := s.gateway.SendOTP(phone, code); err != nil {
		s.logger.Printf("Gateway error for %s: %v", phone, err)
		return fmt.Errorf("%w: %v", ErrGateway, err)
	}

	// Replace any existing code for this phone: delete, then insert.
	if err := s.store.Delete(ctx, phone); err != nil {
		s.logger.Printf("Failed to delete existing OTP for %s: %v", phone, err)
	}
	record := models.OTPRecord{
		Phone:     phone,
		Code:      code,
		CreatedAt: time.Now(),
	}
	if err := s.store.Save(ctx, record); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}

	s.logger.Printf("OTP issued for phone: %s", phone)
	return nil
}

// Verify checks the submitted code against the live record for the phone.
// Success consumes the record; an expired record is removed; a mismatch
// leaves it intact so the user can retry within the window.
func (s *OTPService) Verify(ctx context.Context, phone, code string) error {
	if phone == "" || code == "" {
		return errors.New("phone number and OTP are required")
	}

	record, err := s.store.Get(ctx, phone)
	if err != nil {
		return fmt.Errorf("failed to look up OTP: %w", err)
	}
	if record == nil {
		return ErrOTPNotFound
	}

	if time.Since(record.CreatedAt) > OTPExpiry {
		if err := s.store.Delete(ctx, phone); err != nil {
			s.logger.Printf("Failed to delete expired OTP for %s: %v", phone, err)
		}
		return ErrOTPExpired
	}

	if record.Code != code {
		return ErrOTPMismatch
	}

	// OTP is single-use
	if err := s.store.Delete(ctx, phone); err != nil {
		return fmt.Errorf("failed to consume OTP: %w", err)
	}

	s.logger.Printf("OTP verified for phone: %s", phone)
	return nil
}
