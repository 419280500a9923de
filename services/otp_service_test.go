package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sepnoty/sepnoty_backend/models"
	"github.com/sepnoty/sepnoty_backend/repositories"
)

type fakeGateway struct {
	sent []string
	err  error
}

func (g *fakeGateway) SendOTP(phone, code string) error {
	if g.err != nil {
		return g.err
	}
	g.sent = append(g.sent, code)
	return nil
}

func (g *fakeGateway) lastCode() string {
	if len(g.sent) == 0 {
		return ""
	}
	return g.sent[len(g.sent)-1]
}

const testPhone = "+15551234567"

func TestOTPService_SendThenVerify(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryOTPStore()
	gateway := &fakeGateway{}
	svc := NewOTPService(store, gateway)

	require.NoError(t, svc.Send(ctx, testPhone))
	require.Len(t, gateway.sent, 1)
	assert.Len(t, gateway.lastCode(), 6)

	// Correct code verifies exactly once
	require.NoError(t, svc.Verify(ctx, testPhone, gateway.lastCode()))

	// Single-use: the same code fails afterward
	err := svc.Verify(ctx, testPhone, gateway.lastCode())
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestOTPService_VerifyWithoutSend(t *testing.T) {
	ctx := context.Background()
	svc := NewOTPService(repositories.NewMemoryOTPStore(), &fakeGateway{})

	err := svc.Verify(ctx, testPhone, "123456")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestOTPService_ResendInvalidatesPreviousCode(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryOTPStore()
	gateway := &fakeGateway{}
	svc := NewOTPService(store, gateway)

	require.NoError(t, svc.Send(ctx, testPhone))
	first := gateway.lastCode()

	require.NoError(t, svc.Send(ctx, testPhone))
	second := gateway.lastCode()

	if first != second {
		err := svc.Verify(ctx, testPhone, first)
		assert.ErrorIs(t, err, ErrOTPMismatch)
	}
	require.NoError(t, svc.Verify(ctx, testPhone, second))
}

func TestOTPService_MismatchKeepsRecord(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryOTPStore()
	gateway := &fakeGateway{}
	svc := NewOTPService(store, gateway)

	require.NoError(t, svc.Send(ctx, testPhone))

	err := svc.Verify(ctx, testPhone, "000000")
	if gateway.lastCode() == "000000" {
		t.Skip("generated code collided with the test's wrong guess")
	}
	assert.ErrorIs(t, err, ErrOTPMismatch)

	// Retry with the right code still succeeds within the window
	require.NoError(t, svc.Verify(ctx, testPhone, gateway.lastCode()))
}

func TestOTPService_ExpiredCodeIsRemoved(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryOTPStore()
	svc := NewOTPService(store, &fakeGateway{})

	require.NoError(t, store.Save(ctx, models.OTPRecord{
		Phone:     testPhone,
		Code:      "482913",
		CreatedAt: time.Now().Add(-OTPExpiry - time.Minute),
	}))

	err := svc.Verify(ctx, testPhone, "482913")
	assert.ErrorIs(t, err, ErrOTPExpired)

	// The stale record is gone, further attempts report not found
	err = svc.Verify(ctx, testPhone, "482913")
	assert.ErrorIs(t, err, ErrOTPNotFound)
}

func TestOTPService_GatewayFailureStoresNothing(t *testing.T) {
	ctx := context.Background()
	store := repositories.NewMemoryOTPStore()
	gateway := &fakeGateway{err: errors.New("twilio unreachable")}
	svc := NewOTPService(store, gateway)

	err := svc.Send(ctx, testPhone)
	assert.ErrorIs(t, err, ErrGateway)

	record, getErr := store.Get(ctx, testPhone)
	require.NoError(t, getErr)
	assert.Nil(t, record)
}

func TestOTPService_EmptyInputs(t *testing.T) {
	ctx := context.Background()
	svc := NewOTPService(repositories.NewMemoryOTPStore(), &fakeGateway{})

	assert.Error(t, svc.Send(ctx, ""))
	assert.Error(t, svc.Verify(ctx, "", "123456"))
	assert.Error(t, svc.Verify(ctx, testPhone, ""))
}
