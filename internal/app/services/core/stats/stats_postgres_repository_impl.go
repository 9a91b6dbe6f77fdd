package stats

import (
	"context"
	"database/sql"
	"sync"

	"hce-service/internal/app/contracts"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/dto/responses"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type statsPostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	statsPostgresRepositoryInstance contracts.StatsRepository
	onceStatsPostgresRepository     sync.Once
)

func NewStatsPostgresRepository(db *sql.DB, logger *zap.Logger) contracts.StatsRepository {
	onceStatsPostgresRepository.Do(func() {
		statsPostgresRepositoryInstance = &statsPostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return statsPostgresRepositoryInstance
}

func (r *statsPostgresRepository) General(ctx context.Context) (*responses.GeneralStats, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("statsPostgresRepository.General called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var result responses.GeneralStats
	counts := []struct {
		query string
		dest  *int64
	}{
		{queries.CountPatientsQuery, &result.TotalPatients},
		{queries.CountEncountersQuery, &result.TotalEncounters},
		{queries.CountObservationsQuery, &result.TotalObservations},
		{queries.CountActiveUsersQuery, &result.TotalActiveUsers},
	}
	for _, count := range counts {
		if err := r.DB.QueryRowContext(ctx, count.query).Scan(count.dest); err != nil {
			r.Log.Error("statsPostgresRepository.General error counting rows",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			return nil, exceptions.ErrPostgresDBFindData(err)
		}
	}
	return &result, nil
}
