package diagnoses

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

type diagnosisUsecase struct {
	DiagnosisRepository contracts.DiagnosisRepository
	EncounterRepository contracts.EncounterRepository
	Resolver            *accessscope.Resolver
}

var (
	diagnosisUsecaseInstance contracts.DiagnosisUsecase
	onceDiagnosisUsecase     sync.Once
)

func NewDiagnosisUsecase(
	diagnosisRepository contracts.DiagnosisRepository,
	encounterRepository contracts.EncounterRepository,
	resolver *accessscope.Resolver,
) contracts.DiagnosisUsecase {
	onceDiagnosisUsecase.Do(func() {
		diagnosisUsecaseInstance = &diagnosisUsecase{
			DiagnosisRepository: diagnosisRepository,
			EncounterRepository: encounterRepository,
			Resolver:            resolver,
		}
	})
	return diagnosisUsecaseInstance
}

func (uc *diagnosisUsecase) resolve(session *models.Session, operation accessscope.Operation, targetPatientID *int64) (accessscope.Decision, error) {
	decision, err := uc.Resolver.Resolve(session, accessscope.Request{
		Entity:          accessscope.EntityDiagnosis,
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

func (uc *diagnosisUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateDiagnosis) (*models.Diagnosis, error) {
	decision, err := uc.resolve(session, accessscope.OperationCreate, nil)
	if err != nil {
		return nil, err
	}

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

	diagnosis := &models.Diagnosis{
		PatientID:   request.PatientID,
		EncounterID: request.EncounterID,
		CreatedByID: session.UserID,
		Description: request.Description,
		ICD10Code:   request.ICD10Code,
		SnomedCode:  request.SnomedCode,
		Status:      request.Status,
		DiagnosedAt: time.Now(),
	}
	id, err := uc.DiagnosisRepository.Create(ctx, diagnosis)
	if err != nil {
		return nil, err
	}

	return uc.DiagnosisRepository.FindByID(ctx, id, accessscope.MatchAll())
}

func (uc *diagnosisUsecase) ListByEncounter(ctx context.Context, session *models.Session, encounterID int64) ([]models.Diagnosis, error) {
	decision, err := uc.resolve(session, accessscope.OperationRead, nil)
	if err != nil {
		return nil, err
	}
	return uc.DiagnosisRepository.ListByEncounter(ctx, encounterID, decision.Scope)
}

func (uc *diagnosisUsecase) ListByPatient(ctx context.Context, session *models.Session, patientID int64) ([]models.Diagnosis, error) {
	decision, err := uc.resolve(session, accessscope.OperationRead, &patientID)
	if err != nil {
		return nil, err
	}
	return uc.DiagnosisRepository.ListByPatient(ctx, patientID, decision.Scope)
}
