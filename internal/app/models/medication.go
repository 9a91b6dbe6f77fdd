package models

import "time"

type Medication struct {
	ID           int64     `json:"id"`
	PatientID    int64     `json:"patient_id"`
	EncounterID  int64     `json:"encounter_id"`
	CreatedByID  int64     `json:"created_by_id"`
	Name         string    `json:"name"`
	Dose         string    `json:"dose"`
	Frequency    string    `json:"frequency"`
	Route        *string   `json:"route,omitempty"`
	Instructions *string   `json:"instructions,omitempty"`
	PrescribedAt time.Time `json:"prescribed_at"`
	TimeModel
}
