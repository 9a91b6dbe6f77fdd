package encounters

import (
	"context"
	"sync"
	"time"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/dto/responses"
	"hce-service/internal/pkg/exceptions"
)

type encounterUsecase struct {
	EncounterRepository   contracts.EncounterRepository
	PatientRepository     contracts.PatientRepository
	ObservationRepository contracts.ObservationRepository
	DiagnosisRepository   contracts.DiagnosisRepository
	MedicationRepository  contracts.MedicationRepository
	Resolver              *accessscope.Resolver
}

var (
	encounterUsecaseInstance contracts.EncounterUsecase
	onceEncounterUsecase     sync.Once
)

func NewEncounterUsecase(
	encounterRepository contracts.EncounterRepository,
	patientRepository contracts.PatientRepository,
	observationRepository contracts.ObservationRepository,
	diagnosisRepository contracts.DiagnosisRepository,
	medicationRepository contracts.MedicationRepository,
	resolver *accessscope.Resolver,
) contracts.EncounterUsecase {
	onceEncounterUsecase.Do(func() {
		encounterUsecaseInstance = &encounterUsecase{
			EncounterRepository:   encounterRepository,
			PatientRepository:     patientRepository,
			ObservationRepository: observationRepository,
			DiagnosisRepository:   diagnosisRepository,
			MedicationRepository:  medicationRepository,
			Resolver:              resolver,
		}
	})
	return encounterUsecaseInstance
}

func (uc *encounterUsecase) resolve(session *models.Session, operation accessscope.Operation, targetPatientID *int64) (accessscope.Decision, error) {
	decision, err := uc.Resolver.Resolve(session, accessscope.Request{
		Entity:          accessscope.EntityEncounter,
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

func (uc *encounterUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateEncounter) (*models.Encounter, error) {
	if _, err := uc.resolve(session, accessscope.OperationCreate, nil); err != nil {
		return nil, err
	}
	if session.SiteID == nil {
		return nil, exceptions.ErrNoSiteAssigned(nil)
	}

	// The chart must exist and not be soft-deleted
	if _, err := uc.PatientRepository.FindByID(ctx, request.PatientID, accessscope.MatchAll()); err != nil {
		return nil, err
	}

	// Site and author come from the session, never from the request body
	encounter := &models.Encounter{
		PatientID:     request.PatientID,
		SiteID:        *session.SiteID,
		CreatedByID:   session.UserID,
		EncounterType: request.EncounterType,
		Status:        constvars.EncounterStatusOpen,
		Reason:        request.Reason,
		Notes:         request.Notes,
		StartedAt:     time.Now(),
	}
	id, err := uc.EncounterRepository.Create(ctx, encounter)
	if err != nil {
		return nil, err
	}

	return uc.EncounterRepository.FindByID(ctx, id, accessscope.MatchAll())
}

func (uc *encounterUsecase) List(ctx context.Context, session *models.Session, request *requests.ListEncounters) ([]models.Encounter, error) {
	decision, err := uc.resolve(session, accessscope.OperationRead, request.PatientID)
	if err != nil {
		return nil, err
	}
	return uc.EncounterRepository.List(ctx, request.Skip, request.Limit, decision.Scope)
}

func (uc *encounterUsecase) Detail(ctx context.Context, session *models.Session, encounterID int64) (*responses.EncounterDetail, error) {
	decision, err := uc.resolve(session, accessscope.OperationRead, nil)
	if err != nil {
		return nil, err
	}
	encounter, err := uc.EncounterRepository.FindByID(ctx, encounterID, decision.Scope)
	if err != nil {
		return nil, err
	}

	childScope, err := uc.childReadScope(session)
	if err != nil {
		return nil, err
	}
	observations, err := uc.ObservationRepository.ListByEncounter(ctx, encounterID, childScope)
	if err != nil {
		return nil, err
	}
	diagnoses, err := uc.DiagnosisRepository.ListByEncounter(ctx, encounterID, childScope)
	if err != nil {
		return nil, err
	}
	medications, err := uc.MedicationRepository.ListByEncounter(ctx, encounterID, childScope)
	if err != nil {
		return nil, err
	}

	return &responses.EncounterDetail{
		Encounter:    encounter,
		Observations: observations,
		Diagnoses:    diagnoses,
		Medications:  medications,
	}, nil
}

// childReadScope resolves the observation read scope and reuses it for the
// other clinical children, which share the same rule shape.
func (uc *encounterUsecase) childReadScope(session *models.Session) (accessscope.Predicate, error) {
	decision, err := uc.Resolver.Resolve(session, accessscope.Request{
		Entity:    accessscope.EntityObservation,
		Operation: accessscope.OperationRead,
	})
	if err != nil {
		return accessscope.Predicate{}, err
	}
	if !decision.Authorized {
		return accessscope.Predicate{}, exceptions.ErrScopeUnauthorized(nil)
	}
	return decision.Scope, nil
}

// fetchOwned loads the encounter through the caller's read scope, then checks
// authorship. A visible encounter owned by someone else is a 403, a hidden or
// missing one stays a 404.
func (uc *encounterUsecase) fetchOwned(ctx context.Context, session *models.Session, encounterID int64) (*models.Encounter, error) {
	decision, err := uc.resolve(session, accessscope.OperationRead, nil)
	if err != nil {
		return nil, err
	}
	encounter, err := uc.EncounterRepository.FindByID(ctx, encounterID, decision.Scope)
	if err != nil {
		return nil, err
	}
	if encounter.CreatedByID != session.UserID {
		return nil, exceptions.ErrEncounterNotOwned(nil)
	}
	return encounter, nil
}

func (uc *encounterUsecase) Update(ctx context.Context, session *models.Session, encounterID int64, request *requests.UpdateEncounter) (*models.Encounter, error) {
	if _, err := uc.resolve(session, accessscope.OperationUpdate, nil); err != nil {
		return nil, err
	}

	encounter, err := uc.fetchOwned(ctx, session, encounterID)
	if err != nil {
		return nil, err
	}
	if encounter.Status == constvars.EncounterStatusFinalized {
		return nil, exceptions.ErrEncounterFinalized(nil)
	}

	encounter.EncounterType = request.EncounterType
	encounter.Reason = request.Reason
	encounter.Notes = request.Notes
	if err := uc.EncounterRepository.Update(ctx, encounter); err != nil {
		return nil, err
	}

	return uc.EncounterRepository.FindByID(ctx, encounterID, accessscope.MatchAll())
}

func (uc *encounterUsecase) Finalize(ctx context.Context, session *models.Session, encounterID int64) (*models.Encounter, error) {
	if _, err := uc.resolve(session, accessscope.OperationUpdate, nil); err != nil {
		return nil, err
	}

	encounter, err := uc.fetchOwned(ctx, session, encounterID)
	if err != nil {
		return nil, err
	}
	if encounter.Status == constvars.EncounterStatusFinalized {
		return nil, exceptions.ErrEncounterFinalized(nil)
	}

	if err := uc.EncounterRepository.Finalize(ctx, encounterID, constvars.EncounterStatusFinalized); err != nil {
		return nil, err
	}

	return uc.EncounterRepository.FindByID(ctx, encounterID, accessscope.MatchAll())
}
