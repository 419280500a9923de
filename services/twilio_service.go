package services

import (
	"fmt"
	"log"
	"os"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// Gateway delivers a verification message to a phone number.
type Gateway interface {
	SendOTP(phone, code string) error
}

// TwilioService sends OTP messages through the Twilio REST API.
type TwilioService struct {
	client *twilio.RestClient
	from   string
	logger *log.Logger
}

// NewTwilioService creates a new Twilio service instance
func NewTwilioService(accountSID, authToken, fromNumber string) *TwilioService {
	logger := log.New(os.Stdout, "[SMS] ", log.LstdFlags)

	if accountSID == "" || authToken == "" || fromNumber == "" {
		logger.Println("WARNING: Twilio credentials not fully configured:")
		if accountSID == "" {
			logger.Println("  - TWILIO_ACCOUNT_SID is missing")
		}
		if authToken == "" {
			logger.Println("  - TWILIO_AUTH_TOKEN is missing")
		}
		if fromNumber == "" {
			logger.Println("  - TWILIO_PHONE_NUMBER is missing")
		}
		logger.Println("OTP delivery will fail until these are set")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})

	return &TwilioService{
		client: client,
		from:   fromNumber,
		logger: logger,
	}
}

// SendOTP delivers the code to the given phone number as an SMS.
func (s *TwilioService) SendOTP(phone, code string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(phone)
	params.SetFrom(s.from)
	params.SetBody(fmt.Sprintf("Your OTP is %s", code))

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		s.logger.Printf("Failed to send OTP to %s: %v", phone, err)
		return fmt.Errorf("failed to send SMS via twilio: %w", err)
	}

	s.logger.Printf("OTP sent to %s", phone)
	return nil
}
