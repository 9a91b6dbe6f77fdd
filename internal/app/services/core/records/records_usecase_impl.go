package records

import (
	"context"
	"sync"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/app/services/shared/fhircodec"
	"hce-service/internal/pkg/dto/responses"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/fhir_dto"
)

// recordListCap bounds each list in the assembled record. The per-patient
// scopes keep the result sets small in practice; the cap only guards against
// a pathological chart.
const recordListCap = 1000

type recordsUsecase struct {
	PatientRepository     contracts.PatientRepository
	EncounterRepository   contracts.EncounterRepository
	ObservationRepository contracts.ObservationRepository
	DiagnosisRepository   contracts.DiagnosisRepository
	MedicationRepository  contracts.MedicationRepository
	Resolver              *accessscope.Resolver
	Codec                 *fhircodec.Codec
}

var (
	recordsUsecaseInstance contracts.RecordsUsecase
	onceRecordsUsecase     sync.Once
)

func NewRecordsUsecase(
	patientRepository contracts.PatientRepository,
	encounterRepository contracts.EncounterRepository,
	observationRepository contracts.ObservationRepository,
	diagnosisRepository contracts.DiagnosisRepository,
	medicationRepository contracts.MedicationRepository,
	resolver *accessscope.Resolver,
	codec *fhircodec.Codec,
) contracts.RecordsUsecase {
	onceRecordsUsecase.Do(func() {
		recordsUsecaseInstance = &recordsUsecase{
			PatientRepository:     patientRepository,
			EncounterRepository:   encounterRepository,
			ObservationRepository: observationRepository,
			DiagnosisRepository:   diagnosisRepository,
			MedicationRepository:  medicationRepository,
			Resolver:              resolver,
			Codec:                 codec,
		}
	})
	return recordsUsecaseInstance
}

func (uc *recordsUsecase) scope(session *models.Session, entity accessscope.Entity, patientID int64) (accessscope.Predicate, error) {
	decision, err := uc.Resolver.Resolve(session, accessscope.Request{
		Entity:          entity,
		Operation:       accessscope.OperationRead,
		TargetPatientID: &patientID,
	})
	if err != nil {
		return accessscope.Predicate{}, err
	}
	if !decision.Authorized {
		return accessscope.Predicate{}, exceptions.ErrScopeUnauthorized(nil)
	}
	return decision.Scope, nil
}

// Assemble builds the aggregate chart view. The patient row itself is fetched
// through the caller's patient scope, so a chart outside the caller's reach is
// a 404, never a partial record.
func (uc *recordsUsecase) Assemble(ctx context.Context, session *models.Session, patientID int64) (*responses.PatientRecord, error) {
	patientScope, err := uc.scope(session, accessscope.EntityPatient, patientID)
	if err != nil {
		return nil, err
	}
	patient, err := uc.PatientRepository.FindByID(ctx, patientID, patientScope)
	if err != nil {
		return nil, err
	}

	encounterScope, err := uc.scope(session, accessscope.EntityEncounter, patientID)
	if err != nil {
		return nil, err
	}
	// The encounter list query has no patient filter of its own, so pin the
	// scope to this chart. Roles whose scope already names the patient just
	// repeat the filter.
	encounterScope = accessscope.And(encounterScope, accessscope.Where("e.patient_id = ?", patientID))
	encounters, err := uc.EncounterRepository.List(ctx, 0, recordListCap, encounterScope)
	if err != nil {
		return nil, err
	}

	observationScope, err := uc.scope(session, accessscope.EntityObservation, patientID)
	if err != nil {
		return nil, err
	}
	observations, err := uc.ObservationRepository.ListByPatient(ctx, patientID, "", observationScope)
	if err != nil {
		return nil, err
	}

	diagnosisScope, err := uc.scope(session, accessscope.EntityDiagnosis, patientID)
	if err != nil {
		return nil, err
	}
	diagnoses, err := uc.DiagnosisRepository.ListByPatient(ctx, patientID, diagnosisScope)
	if err != nil {
		return nil, err
	}

	medicationScope, err := uc.scope(session, accessscope.EntityMedication, patientID)
	if err != nil {
		return nil, err
	}
	medications, err := uc.MedicationRepository.ListByPatient(ctx, patientID, medicationScope)
	if err != nil {
		return nil, err
	}

	return &responses.PatientRecord{
		Patient:      patient,
		Encounters:   encounters,
		Observations: observations,
		Diagnoses:    diagnoses,
		Medications:  medications,
	}, nil
}

// AssembleBundle renders the same scoped record as a FHIR collection bundle.
func (uc *recordsUsecase) AssembleBundle(ctx context.Context, session *models.Session, patientID int64) (*fhir_dto.Bundle, error) {
	record, err := uc.Assemble(ctx, session, patientID)
	if err != nil {
		return nil, err
	}
	return uc.Codec.EncodeBundle(record.Patient, record.Encounters, record.Observations, record.Diagnoses)
}
