package models

import "time"

type Patient struct {
	ID                 int64      `json:"id"`
	IdentificationType string     `json:"identification_type"`
	Identification     string     `json:"identification"`
	FirstName          string     `json:"first_name"`
	LastName           string     `json:"last_name"`
	BirthDate          *time.Time `json:"birth_date,omitempty"`
	Gender             string     `json:"gender"`
	Phone              *string    `json:"phone,omitempty"`
	Email              *string    `json:"email,omitempty"`
	Address            *string    `json:"address,omitempty"`
	City               *string    `json:"city,omitempty"`
	BloodType          *string    `json:"blood_type,omitempty"`
	Allergies          *string    `json:"allergies,omitempty"`
	TimeModel
}

func (p *Patient) FullName() string {
	return p.FirstName + " " + p.LastName
}
