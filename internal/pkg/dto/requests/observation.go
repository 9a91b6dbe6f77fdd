package requests

type CreateObservation struct {
	PatientID      int64    `json:"patient_id" validate:"required,gt=0"`
	EncounterID    int64    `json:"encounter_id" validate:"required,gt=0"`
	Name           string   `json:"name" validate:"required"`
	LoincCode      *string  `json:"loinc_code,omitempty"`
	ValueNumeric   *float64 `json:"value_numeric,omitempty"`
	ValueText      *string  `json:"value_text,omitempty"`
	Unit           *string  `json:"unit,omitempty"`
	ReferenceRange *string  `json:"reference_range,omitempty"`
	Interpretation *string  `json:"interpretation,omitempty"`
}
