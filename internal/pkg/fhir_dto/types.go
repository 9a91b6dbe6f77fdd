package fhir_dto

// Shared building blocks for the FHIR resource shapes this service emits.
// Field order and omission rules follow the wire contract exactly, so keep
// omitempty placement intact when touching these.

type Coding struct {
	System  string `json:"system"`
	Code    string `json:"code"`
	Display string `json:"display,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding"`
	Text   string   `json:"text,omitempty"`
}

type Identifier struct {
	System string          `json:"system"`
	Value  string          `json:"value"`
	Type   CodeableConcept `json:"type"`
}

type HumanName struct {
	Use    string   `json:"use"`
	Family string   `json:"family"`
	Given  []string `json:"given"`
}

type ContactPoint struct {
	System string `json:"system"`
	Value  string `json:"value"`
	Use    string `json:"use,omitempty"`
}

type Address struct {
	Use  string  `json:"use"`
	Text string  `json:"text"`
	City *string `json:"city"`
}

type Reference struct {
	Reference string `json:"reference"`
}

type Quantity struct {
	Value  float64 `json:"value"`
	Unit   string  `json:"unit"`
	System string  `json:"system"`
	Code   string  `json:"code"`
}

type Period struct {
	Start *string `json:"start"`
}

// TextConcept is a concept carrying only narrative text, used by reasonCode,
// referenceRange and interpretation elements.
type TextConcept struct {
	Text string `json:"text"`
}
