package queries

// Templates carrying a %s slot take the rendered access-scope fragment; the
// repository is responsible for numbering scope placeholders after the base
// arguments.

const (
	// Insert Queries
	CreatePatientQuery = `
		INSERT INTO patients (
			identification_type, identification, first_name, last_name, birth_date,
			gender, phone, email, address, city, blood_type, allergies, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()
		) RETURNING id
	`

	// Select Queries
	patientColumns = `p.id, p.identification_type, p.identification, p.first_name, p.last_name,
			p.birth_date, p.gender, p.phone, p.email, p.address, p.city, p.blood_type, p.allergies,
			p.created_at, p.updated_at, p.deleted_at`

	FindPatientByIDQueryTemplate = `
		SELECT ` + patientColumns + `
		FROM patients p
		WHERE p.id = $1 AND p.deleted_at IS NULL%s
	`

	FindPatientByIdentificationQuery = `
		SELECT ` + patientColumns + `
		FROM patients p
		WHERE p.identification = $1 AND p.deleted_at IS NULL
	`

	SearchPatientsQueryTemplate = `
		SELECT ` + patientColumns + `
		FROM patients p
		WHERE p.deleted_at IS NULL%s%s
		ORDER BY p.last_name, p.first_name
		%s
	`

	// Update Queries
	UpdatePatientQuery = `
		UPDATE patients
		SET identification_type = $1, identification = $2, first_name = $3, last_name = $4,
			birth_date = $5, gender = $6, phone = $7, email = $8, address = $9, city = $10,
			blood_type = $11, allergies = $12, updated_at = NOW()
		WHERE id = $13 AND deleted_at IS NULL
	`

	// Delete Queries
	SoftDeletePatientQuery = `
		UPDATE patients
		SET deleted_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
)
