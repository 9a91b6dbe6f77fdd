package contracts

import (
	"context"

	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/dto/requests"
)

type DiagnosisUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateDiagnosis) (*models.Diagnosis, error)
	ListByEncounter(ctx context.Context, session *models.Session, encounterID int64) ([]models.Diagnosis, error)
	ListByPatient(ctx context.Context, session *models.Session, patientID int64) ([]models.Diagnosis, error)
}

type DiagnosisRepository interface {
	Create(ctx context.Context, diagnosis *models.Diagnosis) (int64, error)
	FindByID(ctx context.Context, diagnosisID int64, scope accessscope.Predicate) (*models.Diagnosis, error)
	ListByEncounter(ctx context.Context, encounterID int64, scope accessscope.Predicate) ([]models.Diagnosis, error)
	ListByPatient(ctx context.Context, patientID int64, scope accessscope.Predicate) ([]models.Diagnosis, error)
}
