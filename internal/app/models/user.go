package models

type User struct {
	ID                 int64  `json:"id"`
	Username           string `json:"username"`
	Password           string `json:"-"`
	FullName           string `json:"full_name"`
	Email              string `json:"email"`
	Role               string `json:"role"`
	SiteID             *int64 `json:"site_id,omitempty"`
	PatientID          *int64 `json:"patient_id,omitempty"`
	Active             bool   `json:"active"`
	MustChangePassword bool   `json:"must_change_password"`
	TimeModel
}
