package queries

const (
	CountPatientsQuery     = `SELECT COUNT(1) FROM patients p WHERE p.deleted_at IS NULL`
	CountEncountersQuery   = `SELECT COUNT(1) FROM encounters e`
	CountObservationsQuery = `SELECT COUNT(1) FROM observations o`
	CountActiveUsersQuery  = `SELECT COUNT(1) FROM users u WHERE u.active = TRUE AND u.deleted_at IS NULL`
)
