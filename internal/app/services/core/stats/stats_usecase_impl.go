package stats

import (
	"context"
	"sync"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/dto/responses"
	"hce-service/internal/pkg/exceptions"
)

type statsUsecase struct {
	StatsRepository contracts.StatsRepository
}

var (
	statsUsecaseInstance contracts.StatsUsecase
	onceStatsUsecase     sync.Once
)

func NewStatsUsecase(statsRepository contracts.StatsRepository) contracts.StatsUsecase {
	onceStatsUsecase.Do(func() {
		statsUsecaseInstance = &statsUsecase{
			StatsRepository: statsRepository,
		}
	})
	return statsUsecaseInstance
}

func (uc *statsUsecase) General(ctx context.Context, session *models.Session) (*responses.GeneralStats, error) {
	switch session.Role {
	case constvars.RoleRecordsClerk, constvars.RoleAdmin:
	default:
		return nil, exceptions.ErrScopeUnauthorized(nil)
	}
	return uc.StatsRepository.General(ctx)
}
