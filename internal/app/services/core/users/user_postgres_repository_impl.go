package users

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/queries"
	"hce-service/internal/pkg/dto/requests"

	"go.uber.org/zap"
)

type userPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	userPostgresRepositoryInstance contracts.UserRepository
	onceUserPostgresRepository     sync.Once
)

func NewUserPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.UserRepository {
	onceUserPostgresRepository.Do(func() {
		userPostgresRepositoryInstance = &userPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return userPostgresRepositoryInstance
}

func (r *userPostgresRepository) Create(ctx context.Context, user *models.User) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.CreateUserQuery,
		user.Username, user.Password, user.FullName, user.Email, user.Role,
		user.SiteID, user.PatientID, user.Active, user.MustChangePassword,
	).Scan(&id)
	if err != nil {
		r.Log.Error("userPostgresRepository.Create error inserting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("userPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, id),
	)
	return id, nil
}

func (r *userPostgresRepository) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	user, err := scanUser(r.DB.QueryRowContext(ctx, queries.FindUserByIDQuery, userID))
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrUserNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return user, nil
}

func (r *userPostgresRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.FindByUsername called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user, err := scanUser(r.DB.QueryRowContext(ctx, queries.FindUserByUsernameQuery, username))
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrUserNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return user, nil
}

func (r *userPostgresRepository) CountByUsernameOrEmail(ctx context.Context, username, email string) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.CountByUsernameOrEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var count int64
	err := r.DB.QueryRowContext(ctx, queries.CountUsersByUsernameOrEmailQuery, username, email).Scan(&count)
	if err != nil {
		return 0, exceptions.ErrPostgresDBFindData(err)
	}
	return count, nil
}

func (r *userPostgresRepository) List(ctx context.Context, filter *requests.ListUsersFilter) ([]models.User, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	args := make([]interface{}, 0, 6)
	filterClause := ""
	if filter.Role != "" {
		filterClause += fmt.Sprintf(" AND u.role = $%d", len(args)+1)
		args = append(args, filter.Role)
	}
	if filter.SiteID != nil {
		filterClause += fmt.Sprintf(" AND u.site_id = $%d", len(args)+1)
		args = append(args, *filter.SiteID)
	}
	if filter.Active != nil {
		filterClause += fmt.Sprintf(" AND u.active = $%d", len(args)+1)
		args = append(args, *filter.Active)
	}
	if filter.Search != "" {
		filterClause += fmt.Sprintf(" AND (u.full_name ILIKE $%d OR u.username ILIKE $%d)", len(args)+1, len(args)+2)
		pattern := "%" + filter.Search + "%"
		args = append(args, pattern, pattern)
	}

	pageClause := fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, filter.Limit, filter.Skip)

	query := fmt.Sprintf(queries.ListUsersQueryTemplate, filterClause, pageClause)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error("userPostgresRepository.List error querying users",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	users := make([]models.User, 0)
	for rows.Next() {
		user, err := scanUser(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		users = append(users, *user)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return users, nil
}

func (r *userPostgresRepository) Update(ctx context.Context, user *models.User) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, user.ID),
	)

	_, err := r.DB.ExecContext(ctx, queries.UpdateUserQuery,
		user.FullName, user.Email, user.Role, user.SiteID, user.Active, user.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *userPostgresRepository) UpdatePassword(ctx context.Context, userID int64, hashedPassword string, mustChange bool) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.UpdatePassword called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	_, err := r.DB.ExecContext(ctx, queries.UpdateUserPasswordQuery, hashedPassword, mustChange, userID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *userPostgresRepository) TouchLastAccess(ctx context.Context, userID int64) error {
	_, err := r.DB.ExecContext(ctx, queries.UpdateUserLastAccessQuery, userID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *userPostgresRepository) Deactivate(ctx context.Context, userID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("userPostgresRepository.Deactivate called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, userID),
	)

	_, err := r.DB.ExecContext(ctx, queries.DeactivateUserQuery, userID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanUser(row rowScanner) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID, &user.Username, &user.Password, &user.FullName, &user.Email,
		&user.Role, &user.SiteID, &user.PatientID, &user.Active, &user.MustChangePassword,
		&user.CreatedAt, &user.UpdatedAt, &user.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
