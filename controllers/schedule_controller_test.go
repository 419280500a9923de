package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sepnoty/sepnoty_backend/models"
	"github.com/sepnoty/sepnoty_backend/repositories"
	"github.com/sepnoty/sepnoty_backend/services"
)

func newScheduleTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	repo, err := repositories.NewScheduleRepository(t.TempDir())
	require.NoError(t, err)
	mail := services.NewMailService("", 0, "", "", "")

	e := newTestEcho()
	controller := NewScheduleController(repo, mail)
	e.POST("/api/schedule-call", controller.SubmitScheduleCall)
	e.GET("/api/schedule-calls", controller.ListScheduleCalls)
	return e
}

func validScheduleCall() models.ScheduleCallRequest {
	return models.ScheduleCallRequest{
		ClientName:    "Asha",
		ClientEmail:   "asha@x.com",
		ClientPhone:   "+919999999999",
		PurposeOfCall: "Partnership discussion",
		Date:          "2026-09-04",
		Time:          "10:00 AM",
		Timezone:      "Asia/Kolkata",
	}
}

func TestSubmitScheduleCall_Created(t *testing.T) {
	e := newScheduleTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/schedule-call", validScheduleCall())
	require.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeResponse(t, rec)
	data, ok := resp["data"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["id"])
}

func TestSubmitScheduleCall_MissingPurpose(t *testing.T) {
	e := newScheduleTestServer(t)

	req := validScheduleCall()
	req.PurposeOfCall = ""
	rec := doJSON(t, e, http.MethodPost, "/api/schedule-call", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListScheduleCalls_ReturnsSubmitted(t *testing.T) {
	e := newScheduleTestServer(t)

	rec := doJSON(t, e, http.MethodPost, "/api/schedule-call", validScheduleCall())
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, e, http.MethodGet, "/api/schedule-calls", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var calls []models.ScheduleCall
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &calls))
	require.Len(t, calls, 1)
	assert.Equal(t, "Asha", calls[0].ClientName)
	assert.Equal(t, "Asia/Kolkata", calls[0].Timezone)
	assert.NotEmpty(t, calls[0].ID)
}
