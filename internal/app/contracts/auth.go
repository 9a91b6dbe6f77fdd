package contracts

import (
	"context"

	"hce-service/internal/app/models"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/dto/responses"
)

type AuthUsecase interface {
	Login(ctx context.Context, request *requests.Login) (*responses.Token, error)
	Me(ctx context.Context, session *models.Session) (*responses.Me, error)
	HomeSite(ctx context.Context, session *models.Session) (*models.Site, error)
	ChangePassword(ctx context.Context, session *models.Session, request *requests.ChangePassword) error
	Logout(ctx context.Context, session *models.Session) error
}
