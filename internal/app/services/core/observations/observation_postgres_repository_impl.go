package observations

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

type observationPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	observationPostgresRepositoryInstance contracts.ObservationRepository
	onceObservationPostgresRepository     sync.Once
)

func NewObservationPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.ObservationRepository {
	onceObservationPostgresRepository.Do(func() {
		observationPostgresRepositoryInstance = &observationPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return observationPostgresRepositoryInstance
}

func (r *observationPostgresRepository) Create(ctx context.Context, observation *models.Observation) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("observationPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, observation.PatientID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.CreateObservationQuery,
		observation.PatientID, observation.EncounterID, observation.CreatedByID,
		observation.Name, observation.LoincCode, observation.ValueNumeric,
		observation.ValueText, observation.Unit, observation.ReferenceRange,
		observation.Interpretation, observation.TakenAt,
	).Scan(&id)
	if err != nil {
		r.Log.Error("observationPostgresRepository.Create error inserting observation",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (r *observationPostgresRepository) FindByID(ctx context.Context, observationID int64, scope accessscope.Predicate) (*models.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("observationPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("observation_id", observationID),
	)

	if scope.IsNone() {
		return nil, exceptions.ErrObservationNotFound(sql.ErrNoRows)
	}

	scopeClause, scopeArgs := scope.Splice(2)
	query := fmt.Sprintf(queries.FindObservationByIDQueryTemplate, scopeClause)
	args := append([]interface{}{observationID}, scopeArgs...)

	observation, err := scanObservation(r.DB.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrObservationNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return observation, nil
}

func (r *observationPostgresRepository) ListByEncounter(ctx context.Context, encounterID int64, scope accessscope.Predicate) ([]models.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("observationPostgresRepository.ListByEncounter called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("encounter_id", encounterID),
	)

	if scope.IsNone() {
		return []models.Observation{}, nil
	}

	scopeClause, scopeArgs := scope.Splice(2)
	query := fmt.Sprintf(queries.ListObservationsByEncounterQueryTemplate, scopeClause)
	args := append([]interface{}{encounterID}, scopeArgs...)

	return r.queryList(ctx, requestID, query, args...)
}

func (r *observationPostgresRepository) ListByPatient(ctx context.Context, patientID int64, loincCode string, scope accessscope.Predicate) ([]models.Observation, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("observationPostgresRepository.ListByPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, patientID),
	)

	if scope.IsNone() {
		return []models.Observation{}, nil
	}

	args := []interface{}{patientID}
	loincClause := ""
	if loincCode != "" {
		loincClause = fmt.Sprintf(" AND o.loinc_code = $%d", len(args)+1)
		args = append(args, loincCode)
	}

	scopeClause, scopeArgs := scope.Splice(len(args) + 1)
	args = append(args, scopeArgs...)

	query := fmt.Sprintf(queries.ListObservationsByPatientQueryTemplate, loincClause, scopeClause)
	return r.queryList(ctx, requestID, query, args...)
}

func (r *observationPostgresRepository) queryList(ctx context.Context, requestID, query string, args ...interface{}) ([]models.Observation, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error("observationPostgresRepository error querying observations",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	observations := make([]models.Observation, 0)
	for rows.Next() {
		observation, err := scanObservation(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		observations = append(observations, *observation)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return observations, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanObservation(row rowScanner) (*models.Observation, error) {
	var observation models.Observation
	err := row.Scan(
		&observation.ID, &observation.PatientID, &observation.EncounterID, &observation.CreatedByID,
		&observation.Name, &observation.LoincCode, &observation.ValueNumeric, &observation.ValueText,
		&observation.Unit, &observation.ReferenceRange, &observation.Interpretation,
		&observation.TakenAt, &observation.CreatedAt, &observation.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &observation, nil
}
