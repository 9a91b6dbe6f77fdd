package requests

type CreateMedication struct {
	PatientID    int64   `json:"patient_id" validate:"required,gt=0"`
	EncounterID  int64   `json:"encounter_id" validate:"required,gt=0"`
	Name         string  `json:"name" validate:"required"`
	Dose         string  `json:"dose" validate:"required"`
	Frequency    string  `json:"frequency" validate:"required"`
	Route        *string `json:"route,omitempty"`
	Instructions *string `json:"instructions,omitempty"`
}
