package contracts

import (
	"context"

	"hce-service/internal/app/models"
	"hce-service/internal/pkg/dto/responses"
)

type StatsUsecase interface {
	General(ctx context.Context, session *models.Session) (*responses.GeneralStats, error)
}

type StatsRepository interface {
	General(ctx context.Context) (*responses.GeneralStats, error)
}
