package queries

const (
	// Insert Queries
	CreateEncounterQuery = `
		INSERT INTO encounters (
			patient_id, site_id, created_by_id, encounter_type, status, reason, notes,
			started_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		) RETURNING id
	`

	// Select Queries
	encounterColumns = `e.id, e.patient_id, e.site_id, e.created_by_id, e.encounter_type,
			e.status, e.reason, e.notes, e.started_at, e.finalized_at,
			e.created_at, e.updated_at`

	encounterDisplayColumns = `p.first_name || ' ' || p.last_name AS patient_name,
			s.name AS site_name, u.full_name AS created_by_name`

	FindEncounterByIDQueryTemplate = `
		SELECT ` + encounterColumns + `, ` + encounterDisplayColumns + `
		FROM encounters e
		JOIN patients p ON p.id = e.patient_id
		JOIN sites s ON s.id = e.site_id
		JOIN users u ON u.id = e.created_by_id
		WHERE e.id = $1%s
	`

	ListEncountersQueryTemplate = `
		SELECT ` + encounterColumns + `, ` + encounterDisplayColumns + `
		FROM encounters e
		JOIN patients p ON p.id = e.patient_id
		JOIN sites s ON s.id = e.site_id
		JOIN users u ON u.id = e.created_by_id
		WHERE 1 = 1%s%s
		ORDER BY e.started_at DESC
		%s
	`

	// Update Queries
	UpdateEncounterQuery = `
		UPDATE encounters
		SET encounter_type = $1, reason = $2, notes = $3, updated_at = NOW()
		WHERE id = $4
	`

	FinalizeEncounterQuery = `
		UPDATE encounters
		SET status = $1, finalized_at = NOW(), updated_at = NOW()
		WHERE id = $2
	`
)
