package models

import "time"

// Session is the authority on who the caller is. The JWT only carries the
// session id; everything the access scope resolver needs lives here.
type Session struct {
	SessionID string    `json:"session_id"`
	UserID    int64     `json:"user_id"`
	Username  string    `json:"username"`
	FullName  string    `json:"full_name"`
	Role      string    `json:"role"`
	SiteID    *int64    `json:"site_id,omitempty"`
	PatientID *int64    `json:"patient_id,omitempty"`
	ExpiresAt time.Time `json:"expires_at"`
}
