package models

import (
	"time"
)

// ScheduleCall is a stored call booking request.
type ScheduleCall struct {
	ID            string    `json:"id"`
	ClientName    string    `json:"clientName"`
	ClientEmail   string    `json:"clientEmail"`
	ClientPhone   string    `json:"clientPhone"`
	PurposeOfCall string    `json:"purposeOfCall"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	Timezone      string    `json:"timezone"`
	SubmittedAt   time.Time `json:"submittedAt"`
}

// ScheduleCallRequest is the call booking form payload.
type ScheduleCallRequest struct {
	ClientName    string `json:"clientName" validate:"required"`
	ClientEmail   string `json:"clientEmail" validate:"required,email"`
	ClientPhone   string `json:"clientPhone" validate:"required"`
	PurposeOfCall string `json:"purposeOfCall" validate:"required"`
	Date          string `json:"date" validate:"required"`
	Time          string `json:"time" validate:"required"`
	Timezone      string `json:"timezone" validate:"required"`
}
