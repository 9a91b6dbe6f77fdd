package sites

import (
	"context"
	"database/sql"
	"sync"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/queries"

	"go.uber.org/zap"
)

type sitePostgresRepository struct {
	DB  *sql.DB
	Log *zap.Logger
}

var (
	sitePostgresRepositoryInstance contracts.SiteRepository
	onceSitePostgresRepository     sync.Once
)

func NewSitePostgresRepository(db *sql.DB, logger *zap.Logger) contracts.SiteRepository {
	onceSitePostgresRepository.Do(func() {
		sitePostgresRepositoryInstance = &sitePostgresRepository{
			DB:  db,
			Log: logger,
		}
	})
	return sitePostgresRepositoryInstance
}

func (r *sitePostgresRepository) FindByID(ctx context.Context, siteID int64) (*models.Site, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sitePostgresRepository.FindByID called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64("site_id", siteID),
	)

	var site models.Site
	err := r.DB.QueryRowContext(ctx, queries.FindSiteByIDQuery, siteID).Scan(
		&site.ID, &site.Name, &site.City, &site.Address, &site.Active,
		&site.CreatedAt, &site.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, exceptions.ErrSiteNotFound(err)
	}
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	return &site, nil
}

func (r *sitePostgresRepository) ListActive(ctx context.Context) ([]models.Site, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sitePostgresRepository.ListActive called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	rows, err := r.DB.QueryContext(ctx, queries.ListActiveSitesQuery)
	if err != nil {
		return nil, exceptions.ErrPostgresDBFindData(err)
	}
	defer rows.Close()

	sites := make([]models.Site, 0)
	for rows.Next() {
		var site models.Site
		err := rows.Scan(
			&site.ID, &site.Name, &site.City, &site.Address, &site.Active,
			&site.CreatedAt, &site.UpdatedAt,
		)
		if err != nil {
			return nil, exceptions.ErrPostgresDBIterateDataset(err)
		}
		sites = append(sites, site)
	}
	if err := rows.Err(); err != nil {
		return nil, exceptions.ErrPostgresDBIterateDataset(err)
	}
	return sites, nil
}
