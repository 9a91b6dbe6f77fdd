package fhir_dto

// Patient keeps birthDate as a nullable pointer without omitempty: the key is
// always on the wire, explicitly null when the date is unknown. Telecom is
// always present too, possibly as an empty array.
type Patient struct {
	ResourceType string         `json:"resourceType"`
	ID           string         `json:"id"`
	Identifier   []Identifier   `json:"identifier"`
	Name         []HumanName    `json:"name"`
	Gender       string         `json:"gender"`
	BirthDate    *string        `json:"birthDate"`
	Telecom      []ContactPoint `json:"telecom"`
	Address      []Address      `json:"address,omitempty"`
}
