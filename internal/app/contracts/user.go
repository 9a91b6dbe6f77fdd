package contracts

import (
	"context"

	"hce-service/internal/app/models"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/dto/responses"
)

type UserUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreateUser) (*responses.CreatedUser, error)
	List(ctx context.Context, session *models.Session, filter *requests.ListUsersFilter) ([]models.User, error)
	FindByID(ctx context.Context, session *models.Session, userID int64) (*models.User, error)
	Update(ctx context.Context, session *models.Session, userID int64, request *requests.UpdateUser) (*models.User, error)
	Deactivate(ctx context.Context, session *models.Session, userID int64) error
}

type UserRepository interface {
	Create(ctx context.Context, user *models.User) (int64, error)
	FindByID(ctx context.Context, userID int64) (*models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	CountByUsernameOrEmail(ctx context.Context, username, email string) (int64, error)
	List(ctx context.Context, filter *requests.ListUsersFilter) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	UpdatePassword(ctx context.Context, userID int64, hashedPassword string, mustChange bool) error
	TouchLastAccess(ctx context.Context, userID int64) error
	Deactivate(ctx context.Context, userID int64) error
}
