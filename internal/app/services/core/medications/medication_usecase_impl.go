package medications

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

type medicationUsecase struct {
	MedicationRepository contracts.MedicationRepository
	EncounterRepository  contracts.EncounterRepository
	Resolver             *accessscope.Resolver
}

var (
	medicationUsecaseInstance contracts.MedicationUsecase
	onceMedicationUsecase     sync.Once
)

func NewMedicationUsecase(
	medicationRepository contracts.MedicationRepository,
	encounterRepository contracts.EncounterRepository,
	resolver *accessscope.Resolver,
) contracts.MedicationUsecase {
	onceMedicationUsecase.Do(func() {
		medicationUsecaseInstance = &medicationUsecase{
			MedicationRepository: medicationRepository,
			EncounterRepository:  encounterRepository,
			Resolver:             resolver,
		}
	})
	return medicationUsecaseInstance
}

func (uc *medicationUsecase) resolve(session *models.Session, operation accessscope.Operation, targetPatientID *int64) (accessscope.Decision, error) {
	decision, err := uc.Resolver.Resolve(session, accessscope.Request{
		Entity:          accessscope.EntityMedication,
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

func (uc *medicationUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateMedication) (*models.Medication, error) {
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

	medication := &models.Medication{
		PatientID:    request.PatientID,
		EncounterID:  request.EncounterID,
		CreatedByID:  session.UserID,
		Name:         request.Name,
		Dose:         request.Dose,
		Frequency:    request.Frequency,
		Route:        request.Route,
		Instructions: request.Instructions,
		PrescribedAt: time.Now(),
	}
	id, err := uc.MedicationRepository.Create(ctx, medication)
	if err != nil {
		return nil, err
	}

	return uc.MedicationRepository.FindByID(ctx, id, accessscope.MatchAll())
}

func (uc *medicationUsecase) ListByEncounter(ctx context.Context, session *models.Session, encounterID int64) ([]models.Medication, error) {
	decision, err := uc.resolve(session, accessscope.OperationRead, nil)
	if err != nil {
		return nil, err
	}
	return uc.MedicationRepository.ListByEncounter(ctx, encounterID, decision.Scope)
}

func (uc *medicationUsecase) ListByPatient(ctx context.Context, session *models.Session, patientID int64) ([]models.Medication, error) {
	decision, err := uc.resolve(session, accessscope.OperationRead, &patientID)
	if err != nil {
		return nil, err
	}
	return uc.MedicationRepository.ListByPatient(ctx, patientID, decision.Scope)
}
