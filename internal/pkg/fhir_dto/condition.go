package fhir_dto

// Condition's code.coding may be an empty array when the row carries neither
// an ICD-10 nor a SNOMED code; code.text is always populated.
type Condition struct {
	ResourceType   string          `json:"resourceType"`
	ID             string          `json:"id"`
	ClinicalStatus CodeableConcept `json:"clinicalStatus"`
	Code           CodeableConcept `json:"code"`
	Subject        Reference       `json:"subject"`
	Encounter      Reference       `json:"encounter"`
	RecordedDate   *string         `json:"recordedDate"`
}
