package medications

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

type medicationPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	medicationPostgresRepositoryInstance contracts.MedicationRepository
	onceMedicationPostgresRepository     sync.Once
)

func NewMedicationPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.MedicationRepository {
	onceMedicationPostgresRepository.Do(func() {
		medicationPostgresRepositoryInstance = &medicationPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return medicationPostgresRepositoryInstance
}

func (r *medicationPostgresRepository) Create(ctx context.Context, medication *models.Medication) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicationPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, medication.PatientID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.CreateMedicationQuery,
		medication.PatientID, medication.EncounterID, medication.CreatedByID,
		medication.Name, medication.Dose, medication.Frequency, medication.Route,
		medication.Instructions, medication.PrescribedAt,
	).Scan(&id)
	if err != nil {
		r.Log.Error("medicationPostgresRepository.Create error inserting medication",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (r *medicationPostgresRepository) FindByID(ctx context.Context, medicationID int64, scope accessscope.Predicate) (*models.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicationPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("medication_id", medicationID),
	)

	if scope.IsNone() {
		return nil, exceptions.ErrMedicationNotFound(sql.ErrNoRows)
	}

	scopeClause, scopeArgs := scope.Splice(2)
	query := fmt.Sprintf(queries.FindMedicationByIDQueryTemplate, scopeClause)
	args := append([]interface{}{medicationID}, scopeArgs...)

	medication, err := scanMedication(r.DB.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrMedicationNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return medication, nil
}

func (r *medicationPostgresRepository) ListByEncounter(ctx context.Context, encounterID int64, scope accessscope.Predicate) ([]models.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicationPostgresRepository.ListByEncounter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("encounter_id", encounterID),
	)

	if scope.IsNone() {
		return []models.Medication{}, nil
	}

	scopeClause, scopeArgs := scope.Splice(2)
	query := fmt.Sprintf(queries.ListMedicationsByEncounterQueryTemplate, scopeClause)
	args := append([]interface{}{encounterID}, scopeArgs...)

	return r.queryList(ctx, requestID, query, args...)
}

func (r *medicationPostgresRepository) ListByPatient(ctx context.Context, patientID int64, scope accessscope.Predicate) ([]models.Medication, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("medicationPostgresRepository.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if scope.IsNone() {
		return []models.Medication{}, nil
	}

	scopeClause, scopeArgs := scope.Splice(2)
	query := fmt.Sprintf(queries.ListMedicationsByPatientQueryTemplate, scopeClause)
	args := append([]interface{}{patientID}, scopeArgs...)

	return r.queryList(ctx, requestID, query, args...)
}

func (r *medicationPostgresRepository) queryList(ctx context.Context, requestID, query string, args ...interface{}) ([]models.Medication, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error("medicationPostgresRepository error querying medications",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	medications := make([]models.Medication, 0)
	for rows.Next() {
		medication, err := scanMedication(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		medications = append(medications, *medication)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return medications, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanMedication(row rowScanner) (*models.Medication, error) {
	var medication models.Medication
	err := row.Scan(
		&medication.ID, &medication.PatientID, &medication.EncounterID, &medication.CreatedByID,
		&medication.Name, &medication.Dose, &medication.Frequency, &medication.Route,
		&medication.Instructions, &medication.PrescribedAt,
		&medication.CreatedAt, &medication.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &medication, nil
}
