package fhir_dto

type Encounter struct {
	ResourceType    string        `json:"resourceType"`
	ID              string        `json:"id"`
	Status          string        `json:"status"`
	Class           Coding        `json:"class"`
	Subject         Reference     `json:"subject"`
	Participant     []Participant `json:"participant"`
	Period          Period        `json:"period"`
	ServiceProvider Reference     `json:"serviceProvider"`
	ReasonCode      []TextConcept `json:"reasonCode,omitempty"`
}

type Participant struct {
	Individual Reference `json:"individual"`
}
