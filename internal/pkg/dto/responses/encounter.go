package responses

import "hce-service/internal/app/models"

type EncounterDetail struct {
	Encounter    *models.Encounter    `json:"encounter"`
	Observations []models.Observation `json:"observations"`
	Diagnoses    []models.Diagnosis   `json:"diagnoses"`
	Medications  []models.Medication  `json:"medications"`
}
