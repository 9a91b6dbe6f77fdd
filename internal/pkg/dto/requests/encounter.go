package requests

type CreateEncounter struct {
	PatientID     int64   `json:"patient_id" validate:"required,gt=0"`
	EncounterType string  `json:"encounter_type" validate:"required,encounter_type"`
	Reason        string  `json:"reason" validate:"required"`
	Notes         *string `json:"notes,omitempty"`
}

type UpdateEncounter struct {
	EncounterType string  `json:"encounter_type" validate:"required,encounter_type"`
	Reason        string  `json:"reason" validate:"required"`
	Notes         *string `json:"notes,omitempty"`
}

type ListEncounters struct {
	PatientID *int64
	Skip      int `validate:"gte=0"`
	Limit     int `validate:"gte=1,lte=1000"`
}
