package models

import (
	"time"
)

// OTPRecord represents a pending phone verification code. At most one
// record exists per phone number at any time.
type OTPRecord struct {
	Phone     string    `json:"phone"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"createdAt"`
}

type SendOTPRequest struct {
	Phone string `json:"phone"`
}

type VerifyOTPRequest struct {
	Phone string `json:"phone"`
	OTP   string `json:"otp"`
}
