package diagnoses

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

type diagnosisPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	diagnosisPostgresRepositoryInstance contracts.DiagnosisRepository
	onceDiagnosisPostgresRepository     sync.Once
)

func NewDiagnosisPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.DiagnosisRepository {
	onceDiagnosisPostgresRepository.Do(func() {
		diagnosisPostgresRepositoryInstance = &diagnosisPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return diagnosisPostgresRepositoryInstance
}

func (r *diagnosisPostgresRepository) Create(ctx context.Context, diagnosis *models.Diagnosis) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("diagnosisPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, diagnosis.PatientID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.CreateDiagnosisQuery,
		diagnosis.PatientID, diagnosis.EncounterID, diagnosis.CreatedByID,
		diagnosis.Description, diagnosis.ICD10Code, diagnosis.SnomedCode,
		diagnosis.Status, diagnosis.DiagnosedAt,
	).Scan(&id)
	if err != nil {
		r.Log.Error("diagnosisPostgresRepository.Create error inserting diagnosis",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (r *diagnosisPostgresRepository) FindByID(ctx context.Context, diagnosisID int64, scope accessscope.Predicate) (*models.Diagnosis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("diagnosisPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("diagnosis_id", diagnosisID),
	)

	if scope.IsNone() {
		return nil, exceptions.ErrDiagnosisNotFound(sql.ErrNoRows)
	}

	scopeClause, scopeArgs := scope.Splice(2)
	query := fmt.Sprintf(queries.FindDiagnosisByIDQueryTemplate, scopeClause)
	args := append([]interface{}{diagnosisID}, scopeArgs...)

	diagnosis, err := scanDiagnosis(r.DB.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrDiagnosisNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return diagnosis, nil
}

func (r *diagnosisPostgresRepository) ListByEncounter(ctx context.Context, encounterID int64, scope accessscope.Predicate) ([]models.Diagnosis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("diagnosisPostgresRepository.ListByEncounter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("encounter_id", encounterID),
	)

	if scope.IsNone() {
		return []models.Diagnosis{}, nil
	}

	scopeClause, scopeArgs := scope.Splice(2)
	query := fmt.Sprintf(queries.ListDiagnosesByEncounterQueryTemplate, scopeClause)
	args := append([]interface{}{encounterID}, scopeArgs...)

	return r.queryList(ctx, requestID, query, args...)
}

func (r *diagnosisPostgresRepository) ListByPatient(ctx context.Context, patientID int64, scope accessscope.Predicate) ([]models.Diagnosis, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("diagnosisPostgresRepository.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if scope.IsNone() {
		return []models.Diagnosis{}, nil
	}

	scopeClause, scopeArgs := scope.Splice(2)
	query := fmt.Sprintf(queries.ListDiagnosesByPatientQueryTemplate, scopeClause)
	args := append([]interface{}{patientID}, scopeArgs...)

	return r.queryList(ctx, requestID, query, args...)
}

func (r *diagnosisPostgresRepository) queryList(ctx context.Context, requestID, query string, args ...interface{}) ([]models.Diagnosis, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error("diagnosisPostgresRepository error querying diagnoses",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	diagnoses := make([]models.Diagnosis, 0)
	for rows.Next() {
		diagnosis, err := scanDiagnosis(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		diagnoses = append(diagnoses, *diagnosis)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return diagnoses, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDiagnosis(row rowScanner) (*models.Diagnosis, error) {
	var diagnosis models.Diagnosis
	err := row.Scan(
		&diagnosis.ID, &diagnosis.PatientID, &diagnosis.EncounterID, &diagnosis.CreatedByID,
		&diagnosis.Description, &diagnosis.ICD10Code, &diagnosis.SnomedCode,
		&diagnosis.Status, &diagnosis.DiagnosedAt, &diagnosis.CreatedAt, &diagnosis.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &diagnosis, nil
}
