package models

import "time"

type Encounter struct {
	ID            int64      `json:"id"`
	PatientID     int64      `json:"patient_id"`
	SiteID        int64      `json:"site_id"`
	CreatedByID   int64      `json:"created_by_id"`
	EncounterType string     `json:"encounter_type"`
	Status        string     `json:"status"`
	Reason        string     `json:"reason"`
	Notes         *string    `json:"notes,omitempty"`
	StartedAt     time.Time  `json:"started_at"`
	FinalizedAt   *time.Time `json:"finalized_at,omitempty"`

	// Denormalized for list and bundle responses.
	PatientName   string `json:"patient_name,omitempty"`
	SiteName      string `json:"site_name,omitempty"`
	CreatedByName string `json:"created_by_name,omitempty"`
	TimeModel
}
