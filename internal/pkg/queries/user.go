package queries

const (
	// Insert Queries
	CreateUserQuery = `
		INSERT INTO users (
			username, password, full_name, email, role, site_id, patient_id,
			active, must_change_password, created_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, NOW(), NOW()
		) RETURNING id
	`

	// Select Queries
	userColumns = `u.id, u.username, u.password, u.full_name, u.email, u.role, u.site_id,
			u.patient_id, u.active, u.must_change_password, u.created_at, u.updated_at, u.deleted_at`

	FindUserByIDQuery = `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.id = $1 AND u.deleted_at IS NULL
	`

	FindUserByUsernameQuery = `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.username = $1 AND u.deleted_at IS NULL
	`

	CountUsersByUsernameOrEmailQuery = `
		SELECT COUNT(1)
		FROM users u
		WHERE (u.username = $1 OR u.email = $2) AND u.deleted_at IS NULL
	`

	ListUsersQueryTemplate = `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.deleted_at IS NULL%s
		ORDER BY u.full_name
		%s
	`

	// Update Queries
	UpdateUserQuery = `
		UPDATE users
		SET full_name = $1, email = $2, role = $3, site_id = $4, active = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`

	UpdateUserPasswordQuery = `
		UPDATE users
		SET password = $1, must_change_password = $2, updated_at = NOW()
		WHERE id = $3 AND deleted_at IS NULL
	`

	UpdateUserLastAccessQuery = `
		UPDATE users
		SET last_access_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`

	// Delete Queries
	DeactivateUserQuery = `
		UPDATE users
		SET active = FALSE, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL
	`
)
