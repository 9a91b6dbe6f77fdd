package responses

import "hce-service/internal/app/models"

// PatientRecord is the aggregate view of one patient's chart, each list
// already filtered by the caller's access scope and ordered most recent
// first.
type PatientRecord struct {
	Patient      *models.Patient      `json:"patient"`
	Encounters   []models.Encounter   `json:"encounters"`
	Observations []models.Observation `json:"observations"`
	Diagnoses    []models.Diagnosis   `json:"diagnoses"`
	Medications  []models.Medication  `json:"medications"`
}
