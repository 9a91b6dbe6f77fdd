package queries

const (
	// Insert Queries
	CreateObservationQuery = `
		INSERT INTO observations (
			patient_id, encounter_id, created_by_id, name, loinc_code, value_numeric,
			value_text, unit, reference_range, interpretation, taken_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW(), NOW()
		) RETURNING id
	`

	// Select Queries
	observationColumns = `o.id, o.patient_id, o.encounter_id, o.created_by_id, o.name,
			o.loinc_code, o.value_numeric, o.value_text, o.unit, o.reference_range,
			o.interpretation, o.taken_at, o.created_at, o.updated_at`

	FindObservationByIDQueryTemplate = `
		SELECT ` + observationColumns + `
		FROM observations o
		WHERE o.id = $1%s
	`

	ListObservationsByEncounterQueryTemplate = `
		SELECT ` + observationColumns + `
		FROM observations o
		WHERE o.encounter_id = $1%s
		ORDER BY o.taken_at DESC
	`

	ListObservationsByPatientQueryTemplate = `
		SELECT ` + observationColumns + `
		FROM observations o
		WHERE o.patient_id = $1%s%s
		ORDER BY o.taken_at DESC
	`
)
