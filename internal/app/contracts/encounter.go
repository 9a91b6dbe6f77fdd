package contracts

import (
	"context"

	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/dto/responses"
)

type EncounterUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateEncounter) (*models.Encounter, error)
	List(ctx context.Context, session *models.Session, request *requests.ListEncounters) ([]models.Encounter, error)
	Detail(ctx context.Context, session *models.Session, encounterID int64) (*responses.EncounterDetail, error)
	Update(ctx context.Context, session *models.Session, encounterID int64, request *requests.UpdateEncounter) (*models.Encounter, error)
	Finalize(ctx context.Context, session *models.Session, encounterID int64) (*models.Encounter, error)
}

type EncounterRepository interface {
	Create(ctx context.Context, encounter *models.Encounter) (int64, error)
	FindByID(ctx context.Context, encounterID int64, scope accessscope.Predicate) (*models.Encounter, error)
	List(ctx context.Context, skip, limit int, scope accessscope.Predicate) ([]models.Encounter, error)
	Update(ctx context.Context, encounter *models.Encounter) error
	Finalize(ctx context.Context, encounterID int64, status string) error
}
