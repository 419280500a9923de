package controllers

import (
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sepnoty/sepnoty_backend/models"
	"github.com/sepnoty/sepnoty_backend/repositories"
	"github.com/sepnoty/sepnoty_backend/services"
)

type recordingGateway struct {
	sent []string
	err  error
}

func (g *recordingGateway) SendOTP(phone, code string) error {
	if g.err != nil {
		return g.err
	}
	g.sent = append(g.sent, code)
	return nil
}

func newOTPTestServer(gateway services.Gateway) *echo.Echo {
	e := newTestEcho()
	svc := services.NewOTPService(repositories.NewMemoryOTPStore(), gateway)
	controller := NewOTPController(svc)
	e.POST("/api/otp/send", controller.SendOTP)
	e.POST("/api/otp/verify", controller.VerifyOTP)
	return e
}

func TestSendOTP_MissingPhone(t *testing.T) {
	e := newOTPTestServer(&recordingGateway{})

	rec := doJSON(t, e, http.MethodPost, "/api/otp/send", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "Phone number is required", resp["message"])
}

func TestSendOTP_GatewayError(t *testing.T) {
	e := newOTPTestServer(&recordingGateway{err: errors.New("provider down")})

	rec := doJSON(t, e, http.MethodPost, "/api/otp/send", models.SendOTPRequest{Phone: "+15551234567"})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	resp := decodeResponse(t, rec)
	assert.Equal(t, "Failed to send OTP", resp["message"])
}

func TestOTPFlow_SendVerifyOnce(t *testing.T) {
	gateway := &recordingGateway{}
	e := newOTPTestServer(gateway)

	rec := doJSON(t, e, http.MethodPost, "/api/otp/send", models.SendOTPRequest{Phone: "+15551234567"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, gateway.sent, 1)
	code := gateway.sent[0]

	// Wrong code is rejected, the record stays usable
	if code != "000000" {
		rec = doJSON(t, e, http.MethodPost, "/api/otp/verify", models.VerifyOTPRequest{Phone: "+15551234567", OTP: "000000"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Invalid OTP", decodeResponse(t, rec)["message"])
	}

	rec = doJSON(t, e, http.MethodPost, "/api/otp/verify", models.VerifyOTPRequest{Phone: "+15551234567", OTP: code})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OTP verified successfully", decodeResponse(t, rec)["message"])

	// Single-use: the same code is gone
	rec = doJSON(t, e, http.MethodPost, "/api/otp/verify", models.VerifyOTPRequest{Phone: "+15551234567", OTP: code})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No OTP request found for this phone number", decodeResponse(t, rec)["message"])
}

func TestVerifyOTP_MissingFields(t *testing.T) {
	e := newOTPTestServer(&recordingGateway{})

	rec := doJSON(t, e, http.MethodPost, "/api/otp/verify", models.VerifyOTPRequest{Phone: "+15551234567"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Phone number and OTP are required", decodeResponse(t, rec)["message"])

	rec = doJSON(t, e, http.MethodPost, "/api/otp/verify", models.VerifyOTPRequest{OTP: "123456"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyOTP_UnknownPhone(t *testing.T) {
	e := newOTPTestServer(&recordingGateway{})

	rec := doJSON(t, e, http.MethodPost, "/api/otp/verify", models.VerifyOTPRequest{Phone: "+15559999999", OTP: "123456"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No OTP request found for this phone number", decodeResponse(t, rec)["message"])
}
