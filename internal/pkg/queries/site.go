package queries

const (
	FindSiteByIDQuery = `
		SELECT s.id, s.name, s.city, s.address, s.active, s.created_at, s.updated_at
		FROM sites s
		WHERE s.id = $1
	`

	ListActiveSitesQuery = `
		SELECT s.id, s.name, s.city, s.address, s.active, s.created_at, s.updated_at
		FROM sites s
		WHERE s.active = TRUE
		ORDER BY s.name
	`
)
