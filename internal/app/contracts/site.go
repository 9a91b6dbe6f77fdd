package contracts

import (
	"context"

	"hce-service/internal/app/models"
)

type SiteRepository interface {
	FindByID(ctx context.Context, siteID int64) (*models.Site, error)
	ListActive(ctx context.Context) ([]models.Site, error)
}
