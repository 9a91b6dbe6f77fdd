package queries

const (
	// Insert Queries
	CreateMedicationQuery = `
		INSERT INTO medications (
			patient_id, encounter_id, created_by_id, name, dose, frequency, route,
			instructions, prescribed_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		) RETURNING id
	`

	// Select Queries
	medicationColumns = `m.id, m.patient_id, m.encounter_id, m.created_by_id, m.name,
			m.dose, m.frequency, m.route, m.instructions, m.prescribed_at,
			m.created_at, m.updated_at`

	FindMedicationByIDQueryTemplate = `
		SELECT ` + medicationColumns + `
		FROM medications m
		WHERE m.id = $1%s
	`

	ListMedicationsByEncounterQueryTemplate = `
		SELECT ` + medicationColumns + `
		FROM medications m
		WHERE m.encounter_id = $1%s
		ORDER BY m.prescribed_at DESC
	`

	ListMedicationsByPatientQueryTemplate = `
		SELECT ` + medicationColumns + `
		FROM medications m
		WHERE m.patient_id = $1%s
		ORDER BY m.prescribed_at DESC
	`
)
