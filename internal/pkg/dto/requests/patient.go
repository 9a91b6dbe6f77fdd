package requests

type CreatePatient struct {
	IdentificationType string  `json:"identification_type" validate:"required,identification_type"`
	Identification     string  `json:"identification" validate:"required,min=4,max=20"`
	FirstName          string  `json:"first_name" validate:"required"`
	LastName           string  `json:"last_name" validate:"required"`
	BirthDate          *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender             string  `json:"gender" validate:"required,gender"`
	Phone              *string `json:"phone,omitempty"`
	Email              *string `json:"email,omitempty" validate:"omitempty,email"`
	Address            *string `json:"address,omitempty"`
	City               *string `json:"city,omitempty"`
	BloodType          *string `json:"blood_type,omitempty"`
	Allergies          *string `json:"allergies,omitempty"`
}

type UpdatePatient struct {
	IdentificationType string  `json:"identification_type" validate:"required,identification_type"`
	Identification     string  `json:"identification" validate:"required,min=4,max=20"`
	FirstName          string  `json:"first_name" validate:"required"`
	LastName           string  `json:"last_name" validate:"required"`
	BirthDate          *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Gender             string  `json:"gender" validate:"required,gender"`
	Phone              *string `json:"phone,omitempty"`
	Email              *string `json:"email,omitempty" validate:"omitempty,email"`
	Address            *string `json:"address,omitempty"`
	City               *string `json:"city,omitempty"`
	BloodType          *string `json:"blood_type,omitempty"`
	Allergies          *string `json:"allergies,omitempty"`
}

type SearchPatients struct {
	Search string
	Skip   int `validate:"gte=0"`
	Limit  int `validate:"gte=1,lte=1000"`
}
