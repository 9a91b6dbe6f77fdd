package fhir

import (
	"context"
	"sync"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/app/services/shared/fhircodec"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/dto/responses"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/fhir_dto"
)

type fhirUsecase struct {
	PatientRepository     contracts.PatientRepository
	EncounterRepository   contracts.EncounterRepository
	ObservationRepository contracts.ObservationRepository
	DiagnosisRepository   contracts.DiagnosisRepository
	Resolver              *accessscope.Resolver
	Codec                 *fhircodec.Codec
	FHIRClient            contracts.FHIRClient
}

var (
	fhirUsecaseInstance contracts.FHIRUsecase
	onceFhirUsecase     sync.Once
)

func NewFHIRUsecase(
	patientRepository contracts.PatientRepository,
	encounterRepository contracts.EncounterRepository,
	observationRepository contracts.ObservationRepository,
	diagnosisRepository contracts.DiagnosisRepository,
	resolver *accessscope.Resolver,
	codec *fhircodec.Codec,
	fhirClient contracts.FHIRClient,
) contracts.FHIRUsecase {
	onceFhirUsecase.Do(func() {
		fhirUsecaseInstance = &fhirUsecase{
			PatientRepository:     patientRepository,
			EncounterRepository:   encounterRepository,
			ObservationRepository: observationRepository,
			DiagnosisRepository:   diagnosisRepository,
			Resolver:              resolver,
			Codec:                 codec,
			FHIRClient:            fhirClient,
		}
	})
	return fhirUsecaseInstance
}

func (uc *fhirUsecase) readScope(session *models.Session, entity accessscope.Entity) (accessscope.Predicate, error) {
	decision, err := uc.Resolver.Resolve(session, accessscope.Request{
		Entity:    entity,
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

func (uc *fhirUsecase) Patient(ctx context.Context, session *models.Session, patientID int64) (*fhir_dto.Patient, error) {
	scope, err := uc.readScope(session, accessscope.EntityPatient)
	if err != nil {
		return nil, err
	}
	patient, err := uc.PatientRepository.FindByID(ctx, patientID, scope)
	if err != nil {
		return nil, err
	}
	return uc.Codec.EncodePatient(patient)
}

func (uc *fhirUsecase) Encounter(ctx context.Context, session *models.Session, encounterID int64) (*fhir_dto.Encounter, error) {
	scope, err := uc.readScope(session, accessscope.EntityEncounter)
	if err != nil {
		return nil, err
	}
	encounter, err := uc.EncounterRepository.FindByID(ctx, encounterID, scope)
	if err != nil {
		return nil, err
	}
	return uc.Codec.EncodeEncounter(encounter)
}

func (uc *fhirUsecase) Observation(ctx context.Context, session *models.Session, observationID int64) (*fhir_dto.Observation, error) {
	scope, err := uc.readScope(session, accessscope.EntityObservation)
	if err != nil {
		return nil, err
	}
	observation, err := uc.ObservationRepository.FindByID(ctx, observationID, scope)
	if err != nil {
		return nil, err
	}
	return uc.Codec.EncodeObservation(observation)
}

func (uc *fhirUsecase) Condition(ctx context.Context, session *models.Session, diagnosisID int64) (*fhir_dto.Condition, error) {
	scope, err := uc.readScope(session, accessscope.EntityDiagnosis)
	if err != nil {
		return nil, err
	}
	diagnosis, err := uc.DiagnosisRepository.FindByID(ctx, diagnosisID, scope)
	if err != nil {
		return nil, err
	}
	return uc.Codec.EncodeCondition(diagnosis)
}

// SyncPatient pushes the encoded patient to the external FHIR server.
// Clinicians and records clerks can sync; the push is an upsert keyed by the
// internal row id, so repeating it is harmless.
func (uc *fhirUsecase) SyncPatient(ctx context.Context, session *models.Session, patientID int64) (*responses.FHIRSync, error) {
	switch session.Role {
	case constvars.RoleClinician, constvars.RoleRecordsClerk:
	default:
		return nil, exceptions.ErrScopeUnauthorized(nil)
	}

	scope, err := uc.readScope(session, accessscope.EntityPatient)
	if err != nil {
		return nil, err
	}
	patient, err := uc.PatientRepository.FindByID(ctx, patientID, scope)
	if err != nil {
		return nil, err
	}

	resource, err := uc.Codec.EncodePatient(patient)
	if err != nil {
		return nil, err
	}

	stored, err := uc.FHIRClient.UpsertPatient(ctx, resource)
	if err != nil {
		return nil, err
	}

	return &responses.FHIRSync{
		Message:      constvars.FHIRSyncSuccessMessage,
		FHIRResource: stored,
	}, nil
}
