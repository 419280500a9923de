// models/membership.go
package models

import (
	"time"
)

// MembershipApplication is a stored application record. Records are
// append-only: once written they are never mutated or deleted.
type MembershipApplication struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	College      string `json:"college,omitempty"`
	Department   string `json:"department,omitempty"`
	Year         string `json:"year,omitempty"`
	InterestArea string `json:"interestArea,omitempty"`
	WhyJoin      string `json:"whyJoin,omitempty"`
	Experience   string `json:"experience,omitempty"`
	Expectations string `json:"expectations,omitempty"`
	// Extended fields from the club signup form
	Skills           []string  `json:"skills,omitempty"`
	ProficiencyLevel string    `json:"proficiencyLevel,omitempty"`
	InterestAreas    []string  `json:"interestAreas,omitempty"`
	Goals            string    `json:"goals,omitempty"`
	Availability     string    `json:"availability,omitempty"`
	Referral         string    `json:"referral,omitempty"`
	SubmittedAt      time.Time `json:"submittedAt"`
}

// MembershipRequest is the standard membership form payload.
type MembershipRequest struct {
	Name         string `json:"name" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	Phone        string `json:"phone" validate:"required"`
	College      string `json:"college"`
	Department   string `json:"department"`
	Year         string `json:"year"`
	InterestArea string `json:"interestArea"`
	WhyJoin      string `json:"whyJoin"`
	Experience   string `json:"experience"`
	Expectations string `json:"expectations"`
}

// ClubMembershipRequest is the extended club signup form payload.
type ClubMembershipRequest struct {
	Name             string   `json:"name" validate:"required"`
	Email            string   `json:"email" validate:"required,email"`
	Phone            string   `json:"phone" validate:"required"`
	College          string   `json:"college"`
	Department       string   `json:"department"`
	Year             string   `json:"year"`
	Skills           []string `json:"skills"`
	ProficiencyLevel string   `json:"proficiencyLevel"`
	InterestAreas    []string `json:"interestAreas"`
	WhyJoin          string   `json:"whyJoin"`
	Goals            string   `json:"goals"`
	Experience       string   `json:"experience"`
	Availability     string   `json:"availability"`
	Referral         string   `json:"referral"`
}
