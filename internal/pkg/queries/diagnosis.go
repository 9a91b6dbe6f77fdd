package queries

const (
	// Insert Queries
	CreateDiagnosisQuery = `
		INSERT INTO diagnoses (
			patient_id, encounter_id, created_by_id, description, icd10_code, snomed_code,
			status, diagnosed_at, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, NOW(), NOW()
		) RETURNING id
	`

	// Select Queries
	diagnosisColumns = `d.id, d.patient_id, d.encounter_id, d.created_by_id, d.description,
			d.icd10_code, d.snomed_code, d.status, d.diagnosed_at, d.created_at, d.updated_at`

	FindDiagnosisByIDQueryTemplate = `
		SELECT ` + diagnosisColumns + `
		FROM diagnoses d
		WHERE d.id = $1%s
	`

	ListDiagnosesByEncounterQueryTemplate = `
		SELECT ` + diagnosisColumns + `
		FROM diagnoses d
		WHERE d.encounter_id = $1%s
		ORDER BY d.diagnosed_at DESC
	`

	ListDiagnosesByPatientQueryTemplate = `
		SELECT ` + diagnosisColumns + `
		FROM diagnoses d
		WHERE d.patient_id = $1%s
		ORDER BY d.diagnosed_at DESC
	`

	// Update Queries
	UpdateDiagnosisStatusQuery = `
		UPDATE diagnoses
		SET status = $1, updated_at = NOW()
		WHERE id = $2
	`
)
