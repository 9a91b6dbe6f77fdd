package requests

type CreateDiagnosis struct {
	PatientID   int64   `json:"patient_id" validate:"required,gt=0"`
	EncounterID int64   `json:"encounter_id" validate:"required,gt=0"`
	Description string  `json:"description" validate:"required"`
	ICD10Code   *string `json:"icd10_code,omitempty"`
	SnomedCode  *string `json:"snomed_code,omitempty"`
	Status      string  `json:"status" validate:"required,oneof=active resolved"`
}
