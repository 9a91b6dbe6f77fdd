package responses

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

type Me struct {
	UserID    int64  `json:"user_id"`
	Username  string `json:"username"`
	FullName  string `json:"full_name"`
	Role      string `json:"role"`
	SiteID    *int64 `json:"site_id,omitempty"`
	PatientID *int64 `json:"patient_id,omitempty"`
}
