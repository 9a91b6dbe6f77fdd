package responses

import "hce-service/internal/app/models"

// CreatedUser carries the temporary password exactly once, in the creation
// response. It is never retrievable again.
type CreatedUser struct {
	User         *models.User `json:"user"`
	TempPassword string       `json:"temp_password"`
}
