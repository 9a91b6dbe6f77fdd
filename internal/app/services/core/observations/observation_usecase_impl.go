package observations

import (
	"context"
	"sync"
	"time"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/exceptions"
)

type observationUsecase struct {
	ObservationRepository contracts.ObservationRepository
	EncounterRepository   contracts.EncounterRepository
	Resolver              *accessscope.Resolver
}

var (
	observationUsecaseInstance contracts.ObservationUsecase
	onceObservationUsecase     sync.Once
)

func NewObservationUsecase(
	observationRepository contracts.ObservationRepository,
	encounterRepository contracts.EncounterRepository,
	resolver *accessscope.Resolver,
) contracts.ObservationUsecase {
	onceObservationUsecase.Do(func() {
		observationUsecaseInstance = &observationUsecase{
			ObservationRepository: observationRepository,
			EncounterRepository:   encounterRepository,
			Resolver:              resolver,
		}
	})
	return observationUsecaseInstance
}

func (uc *observationUsecase) resolve(session *models.Session, operation accessscope.Operation, targetPatientID *int64) (accessscope.Decision, error) {
	decision, err := uc.Resolver.Resolve(session, accessscope.Request{
		Entity:          accessscope.EntityObservation,
		Operation:       operation,
		TargetPatientID: targetPatientID,
	})
	if err != nil {
		return accessscope.Decision{}, err
	}
	if !decision.Authorized {
		return accessscope.Decision{}, exceptions.ErrScopeUnauthorized(nil)
	}
	return decision, nil
}

func (uc *observationUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateObservation) (*models.Observation, error) {
	decision, err := uc.resolve(session, accessscope.OperationCreate, nil)
	if err != nil {
		return nil, err
	}

	// The create scope is an encounter filter: the target encounter must be
	// one the caller owns, or it stays invisible
	encounter, err := uc.EncounterRepository.FindByID(ctx, request.EncounterID, decision.Scope)
	if err != nil {
		return nil, err
	}
	if encounter.PatientID != request.PatientID {
		return nil, exceptions.ErrPatientEncounterMismatch(nil)
	}
	if encounter.Status == constvars.EncounterStatusFinalized {
		return nil, exceptions.ErrEncounterFinalized(nil)
	}

	observation := &models.Observation{
		PatientID:      request.PatientID,
		EncounterID:    request.EncounterID,
		CreatedByID:    session.UserID,
		Name:           request.Name,
		LoincCode:      request.LoincCode,
		ValueNumeric:   request.ValueNumeric,
		ValueText:      request.ValueText,
		Unit:           request.Unit,
		ReferenceRange: request.ReferenceRange,
		Interpretation: request.Interpretation,
		TakenAt:        time.Now(),
	}
	id, err := uc.ObservationRepository.Create(ctx, observation)
	if err != nil {
		return nil, err
	}

	return uc.ObservationRepository.FindByID(ctx, id, accessscope.MatchAll())
}

func (uc *observationUsecase) ListByEncounter(ctx context.Context, session *models.Session, encounterID int64) ([]models.Observation, error) {
	decision, err := uc.resolve(session, accessscope.OperationRead, nil)
	if err != nil {
		return nil, err
	}
	return uc.ObservationRepository.ListByEncounter(ctx, encounterID, decision.Scope)
}

func (uc *observationUsecase) ListByPatient(ctx context.Context, session *models.Session, patientID int64, loincCode string) ([]models.Observation, error) {
	decision, err := uc.resolve(session, accessscope.OperationRead, &patientID)
	if err != nil {
		return nil, err
	}
	return uc.ObservationRepository.ListByPatient(ctx, patientID, loincCode, decision.Scope)
}
