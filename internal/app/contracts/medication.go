package contracts

import (
	"context"

	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/dto/requests"
)

type MedicationUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateMedication) (*models.Medication, error)
	ListByEncounter(ctx context.Context, session *models.Session, encounterID int64) ([]models.Medication, error)
	ListByPatient(ctx context.Context, session *models.Session, patientID int64) ([]models.Medication, error)
}

type MedicationRepository interface {
	Create(ctx context.Context, medication *models.Medication) (int64, error)
	FindByID(ctx context.Context, medicationID int64, scope accessscope.Predicate) (*models.Medication, error)
	ListByEncounter(ctx context.Context, encounterID int64, scope accessscope.Predicate) ([]models.Medication, error)
	ListByPatient(ctx context.Context, patientID int64, scope accessscope.Predicate) ([]models.Medication, error)
}
