package models

import "time"

type Diagnosis struct {
	ID          int64     `json:"id"`
	PatientID   int64     `json:"patient_id"`
	EncounterID int64     `json:"encounter_id"`
	CreatedByID int64     `json:"created_by_id"`
	Description string    `json:"description"`
	ICD10Code   *string   `json:"icd10_code,omitempty"`
	SnomedCode  *string   `json:"snomed_code,omitempty"`
	Status      string    `json:"status"`
	DiagnosedAt time.Time `json:"diagnosed_at"`
	TimeModel
}
