package encounters

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

type encounterPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	encounterPostgresRepositoryInstance contracts.EncounterRepository
	onceEncounterPostgresRepository     sync.Once
)

func NewEncounterPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.EncounterRepository {
	onceEncounterPostgresRepository.Do(func() {
		encounterPostgresRepositoryInstance = &encounterPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return encounterPostgresRepositoryInstance
}

func (r *encounterPostgresRepository) Create(ctx context.Context, encounter *models.Encounter) (int64, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("encounterPostgresRepository.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingPatientIDKey, encounter.PatientID),
	)

	var id int64
	err := r.DB.QueryRowContext(ctx, queries.CreateEncounterQuery,
		encounter.PatientID, encounter.SiteID, encounter.CreatedByID,
		encounter.EncounterType, encounter.Status, encounter.Reason, encounter.Notes,
		encounter.StartedAt,
	).Scan(&id)
	if err != nil {
		r.Log.Error("encounterPostgresRepository.Create error inserting encounter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return 0, exceptions.ErrPostgresDBInsertData(err)
	}
	return id, nil
}

func (r *encounterPostgresRepository) FindByID(ctx context.Context, encounterID int64, scope accessscope.Predicate) (*models.Encounter, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("encounterPostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("encounter_id", encounterID),
	)

	if scope.IsNone() {
		return nil, exceptions.ErrEncounterNotFound(sql.ErrNoRows)
	}

	scopeClause, scopeArgs := scope.Splice(2)
	query := fmt.Sprintf(queries.FindEncounterByIDQueryTemplate, scopeClause)
	args := append([]interface{}{encounterID}, scopeArgs...)

	encounter, err := scanEncounter(r.DB.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrEncounterNotFound(err)
	}
	if err != nil {
		r.Log.Error("encounterPostgresRepository.FindByID error scanning encounter",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return encounter, nil
}

func (r *encounterPostgresRepository) List(ctx context.Context, skip, limit int, scope accessscope.Predicate) ([]models.Encounter, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("encounterPostgresRepository.List called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if scope.IsNone() {
		return []models.Encounter{}, nil
	}

	scopeClause, scopeArgs := scope.Splice(1)
	args := append([]interface{}{}, scopeArgs...)

	pageClause := fmt.Sprintf("LIMIT $%d OFFSET $%d", len(args)+1, len(args)+2)
	args = append(args, limit, skip)

	query := fmt.Sprintf(queries.ListEncountersQueryTemplate, "", scopeClause, pageClause)
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		r.Log.Error("encounterPostgresRepository.List error querying encounters",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	encounters := make([]models.Encounter, 0)
	for rows.Next() {
		encounter, err := scanEncounter(rows)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		encounters = append(encounters, *encounter)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return encounters, nil
}

func (r *encounterPostgresRepository) Update(ctx context.Context, encounter *models.Encounter) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("encounterPostgresRepository.Update called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("encounter_id", encounter.ID),
	)

	_, err := r.DB.ExecContext(ctx, queries.UpdateEncounterQuery,
		encounter.EncounterType, encounter.Reason, encounter.Notes, encounter.ID,
	)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

func (r *encounterPostgresRepository) Finalize(ctx context.Context, encounterID int64, status string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("encounterPostgresRepository.Finalize called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("encounter_id", encounterID),
	)

	_, err := r.DB.ExecContext(ctx, queries.FinalizeEncounterQuery, status, encounterID)
	if err != nil {
		return exceptions.ErrPostgresDBUpdateData(err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanEncounter(row rowScanner) (*models.Encounter, error) {
	var encounter models.Encounter
	err := row.Scan(
		&encounter.ID, &encounter.PatientID, &encounter.SiteID, &encounter.CreatedByID,
		&encounter.EncounterType, &encounter.Status, &encounter.Reason, &encounter.Notes,
		&encounter.StartedAt, &encounter.FinalizedAt,
		&encounter.CreatedAt, &encounter.UpdatedAt,
		&encounter.PatientName, &encounter.SiteName, &encounter.CreatedByName,
	)
	if err != nil {
		return nil, err
	}
	return &encounter, nil
}
