package requests

type CreateUser struct {
	Username       string `json:"username" validate:"required,min=4,max=50"`
	FullName       string `json:"full_name" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Role           string `json:"role" validate:"required,oneof=front_desk clinician"`
	SiteID         int64  `json:"site_id" validate:"required,gt=0"`
	Identification string `json:"identification" validate:"required,min=4"`
}

type UpdateUser struct {
	FullName string `json:"full_name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Role     string `json:"role" validate:"required,role"`
	SiteID   *int64 `json:"site_id,omitempty" validate:"omitempty,gt=0"`
	Active   bool   `json:"active"`
}

type ListUsersFilter struct {
	Role   string `validate:"omitempty,role"`
	SiteID *int64
	Active *bool
	Search string
	Skip   int `validate:"gte=0"`
	Limit  int `validate:"gte=1,lte=1000"`
}
