package models

import "time"

// Guest is one signup-form response. Name is the unique display name used to
// key grid rows; ingestion suffixes collisions so two responses never share
// one row.
type Guest struct {
	Name            string    `json:"name"`
	Email           string    `json:"email"`
	Department      string    `json:"department"`
	Advisor         string    `json:"advisor"`
	Degree          string    `json:"degree"`
	Description     string    `json:"description"`
	RawAvailability string    `json:"raw_availability"`
	RawPreference   string    `json:"raw_preference"`
	SignedUpAt      time.Time `json:"signed_up_at"`
}
