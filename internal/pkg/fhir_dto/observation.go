package fhir_dto

type Observation struct {
	ResourceType      string            `json:"resourceType"`
	ID                string            `json:"id"`
	Status            string            `json:"status"`
	Category          []CodeableConcept `json:"category"`
	Code              CodeableConcept   `json:"code"`
	Subject           Reference         `json:"subject"`
	Encounter         Reference         `json:"encounter"`
	EffectiveDateTime *string           `json:"effectiveDateTime"`
	ValueQuantity     *Quantity         `json:"valueQuantity,omitempty"`
	ValueString       string            `json:"valueString,omitempty"`
	ReferenceRange    []TextConcept     `json:"referenceRange,omitempty"`
	Interpretation    []TextConcept     `json:"interpretation,omitempty"`
}
