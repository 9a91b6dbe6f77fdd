package models

import "time"

type Observation struct {
	ID             int64     `json:"id"`
	PatientID      int64     `json:"patient_id"`
	EncounterID    int64     `json:"encounter_id"`
	CreatedByID    int64     `json:"created_by_id"`
	Name           string    `json:"name"`
	LoincCode      *string   `json:"loinc_code,omitempty"`
	ValueNumeric   *float64  `json:"value_numeric,omitempty"`
	ValueText      *string   `json:"value_text,omitempty"`
	Unit           *string   `json:"unit,omitempty"`
	ReferenceRange *string   `json:"reference_range,omitempty"`
	Interpretation *string   `json:"interpretation,omitempty"`
	TakenAt        time.Time `json:"taken_at"`
	TimeModel
}
