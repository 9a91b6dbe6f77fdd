package contracts

import (
	"context"

	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/dto/requests"
)

type ObservationUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateObservation) (*models.Observation, error)
	ListByEncounter(ctx context.Context, session *models.Session, encounterID int64) ([]models.Observation, error)
	ListByPatient(ctx context.Context, session *models.Session, patientID int64, loincCode string) ([]models.Observation, error)
}

type ObservationRepository interface {
	Create(ctx context.Context, observation *models.Observation) (int64, error)
	FindByID(ctx context.Context, observationID int64, scope accessscope.Predicate) (*models.Observation, error)
	ListByEncounter(ctx context.Context, encounterID int64, scope accessscope.Predicate) ([]models.Observation, error)
	ListByPatient(ctx context.Context, patientID int64, loincCode string, scope accessscope.Predicate) ([]models.Observation, error)
}
