package patients

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type patientPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	patientPostgresRepositoryInstance contracts.PatientRepository
	oncePatientPostgresRepository     sync.Once
)

func NewPatientPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.PatientRepository {
	oncePatientPostgresRepository.Do(func() {
		patientPostgresRepositoryInstance = &patientPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return patientPostgresRepositoryInstance
}

func (r *patientPostgresRepository) Create(ctx context.Context, patient *models.Patient) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.CreatePatientQuery,
		patient.IdentificationType, patient.Identification, patient.FirstName, patient.LastName,
		patient.BirthDate, patient.Gender, patient.Phone, patient.Email,
		patient.Address, patient.City, patient.BloodType, patient.Allergies,
	).Scan(&id)
	if err != nil {
		r.Log.Error("patientPostgresRepository.Create error inserting patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}

	r.Log.Info("patientPostgresRepository.Create succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, id),
	)
	return id, nil
}

func (r *patientPostgresRepository) FindByID(ctx context.Context, patientID int64, scope accessscope.Predicate) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if scope.IsNone() {
		return nil, exceptions.ErrPatientNotFound(sql.ErrNoRows)
	}

	scopeClause, scopeArgs := scope.Splice(2)
	query := fmt.Sprintf(queries.FindPatientByIDQueryTemplate, scopeClause)
	args := append([]interface{}{patientID}, scopeArgs...)

	row := r.DB.QueryRowContext(ctx, query, args...)
	patient, err := scanPatient(row)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrPatientNotFound(err)
	}
	if err != nil {
		r.Log.Error("patientPostgresRepository.FindByID error scanning patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return patient, nil
}

func (r *patientPostgresRepository) FindByIdentification(ctx context.Context, identification string) (*models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientPostgresRepository.FindByIdentification called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	row := r.DB.QueryRowContext(ctx, queries.FindPatientByIdentificationQuery, identification)
	patient, err := scanPatient(row)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrPatientNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return patient, nil
}

func (r *patientPostgresRepository) Search(ctx context.Context, search string, skip, limit int, scope accessscope.Predicate) ([]models.Patient, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientPostgresRepository.Search called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueryKey, search),
	)

	if scope.IsNone() {
		return []models.Patient{}, nil
	}

	args := make([]interface{}, 0, 4)
	searchClause := ""
	if search != "" {
		searchClause = fmt.Sprintf(
			" AND (p.first_name ILIKE $%d OR p.last_name ILIKE $%d OR p.identification ILIKE $%d)",
			len(args)+1, len(args)+2, len(args)+3)
		pattern := "%" + search + "%"
		args = append(args, pattern, pattern, pattern)
	}

	scopeClause, scopeArgs := scope.Splice(len(args) + 1)
	args = append(args, scopeArgs...)

	pageClause := fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, skip)

	query := fmt.Sprintf(queries.SearchPatientsQueryTemplate, searchClause, scopeClause, pageClause)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error("patientPostgresRepository.Search error querying patients",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	patients := make([]models.Patient, 0)
	for rows.Next() {
		patient, err := scanPatient(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		patients = append(patients, *patient)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return patients, nil
}

func (r *patientPostgresRepository) Update(ctx context.Context, patient *models.Patient) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
	)

	_, err := r.DB.ExecContext(ctx, queries.UpdatePatientQuery,
		patient.IdentificationType, patient.Identification, patient.FirstName, patient.LastName,
		patient.BirthDate, patient.Gender, patient.Phone, patient.Email,
		patient.Address, patient.City, patient.BloodType, patient.Allergies,
		patient.ID,
	)
	if err != nil {
		r.Log.Error("patientPostgresRepository.Update error updating patient",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *patientPostgresRepository) SoftDelete(ctx context.Context, patientID int64) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("patientPostgresRepository.SoftDelete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	_, err := r.DB.ExecContext(ctx, queries.SoftDeletePatientQuery, patientID)
	if err != nil {
		return exceptions.ErrPostgresDBDeleteData(err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanPatient(row rowScanner) (*models.Patient, error) {
	var patient models.Patient
	err := row.Scan(
		&patient.ID, &patient.IdentificationType, &patient.Identification,
		&patient.FirstName, &patient.LastName, &patient.BirthDate, &patient.Gender,
		&patient.Phone, &patient.Email, &patient.Address, &patient.City,
		&patient.BloodType, &patient.Allergies,
		&patient.CreatedAt, &patient.UpdatedAt, &patient.DeletedAt,
	)
	if err != nil {
		return nil, err
	}
	return &patient, nil
}
