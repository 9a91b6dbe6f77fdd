package users

import (
	"context"
	"sync"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/dto/responses"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/utils"
)

type userUsecase struct {
	UserRepository contracts.UserRepository
	SiteRepository contracts.SiteRepository
	Resolver       *accessscope.Resolver
}

var (
	userUsecaseInstance contracts.UserUsecase
	onceUserUsecase     sync.Once
)

func NewUserUsecase(
	userRepository contracts.UserRepository,
	siteRepository contracts.SiteRepository,
	resolver *accessscope.Resolver,
) contracts.UserUsecase {
	onceUserUsecase.Do(func() {
		userUsecaseInstance = &userUsecase{
			UserRepository: userRepository,
			SiteRepository: siteRepository,
			Resolver:       resolver,
		}
	})
	return userUsecaseInstance
}

func (uc *userUsecase) authorize(session *models.Session, operation accessscope.Operation) error {
	decision, err := uc.Resolver.Resolve(session, accessscope.Request{
		Entity:    accessscope.EntityUser,
		Operation: operation,
	})
	if err != nil {
		return err
	}
	if !decision.Authorized {
		return exceptions.ErrScopeUnauthorized(nil)
	}
	return nil
}

func (uc *userUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreateUser) (*responses.CreatedUser, error) {
	if err := uc.authorize(session, accessscope.OperationCreate); err != nil {
		return nil, err
	}

	// The site must exist and be active before an account is attached to it
	site, err := uc.SiteRepository.FindByID(ctx, request.SiteID)
	if err != nil {
		return nil, err
	}
	if !site.Active {
		return nil, exceptions.ErrSiteNotFound(nil)
	}

	// Username and email are unique among live accounts
	count, err := uc.UserRepository.CountByUsernameOrEmail(ctx, request.Username, request.Email)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, exceptions.ErrUsernameAlreadyExists(nil)
	}

	// Provision with a derived temporary password, forced to change on
	// first login
	tempPassword := utils.TempPasswordFromIdentification(request.Identification)
	hashed, err := utils.HashPassword(tempPassword)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	siteID := request.SiteID
	user := &models.User{
		Username:           request.Username,
		Password:           hashed,
		FullName:           request.FullName,
		Email:              request.Email,
		Role:               request.Role,
		SiteID:             &siteID,
		Active:             true,
		MustChangePassword: true,
	}
	id, err := uc.UserRepository.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	created, err := uc.UserRepository.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// The temporary password is returned exactly once
	return &responses.CreatedUser{
		User:         created,
		TempPassword: tempPassword,
	}, nil
}

func (uc *userUsecase) List(ctx context.Context, session *models.Session, filter *requests.ListUsersFilter) ([]models.User, error) {
	if err := uc.authorize(session, accessscope.OperationRead); err != nil {
		return nil, err
	}
	return uc.UserRepository.List(ctx, filter)
}

func (uc *userUsecase) FindByID(ctx context.Context, session *models.Session, userID int64) (*models.User, error) {
	if err := uc.authorize(session, accessscope.OperationRead); err != nil {
		return nil, err
	}
	return uc.UserRepository.FindByID(ctx, userID)
}

func (uc *userUsecase) Update(ctx context.Context, session *models.Session, userID int64, request *requests.UpdateUser) (*models.User, error) {
	if err := uc.authorize(session, accessscope.OperationUpdate); err != nil {
		return nil, err
	}

	user, err := uc.UserRepository.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if request.SiteID != nil {
		site, err := uc.SiteRepository.FindByID(ctx, *request.SiteID)
		if err != nil {
			return nil, err
		}
		if !site.Active {
			return nil, exceptions.ErrSiteNotFound(nil)
		}
	}

	user.FullName = request.FullName
	user.Email = request.Email
	user.Role = request.Role
	user.SiteID = request.SiteID
	user.Active = request.Active
	if err := uc.UserRepository.Update(ctx, user); err != nil {
		return nil, err
	}

	return uc.UserRepository.FindByID(ctx, userID)
}

func (uc *userUsecase) Deactivate(ctx context.Context, session *models.Session, userID int64) error {
	if err := uc.authorize(session, accessscope.OperationDelete); err != nil {
		return err
	}

	if _, err := uc.UserRepository.FindByID(ctx, userID); err != nil {
		return err
	}
	return uc.UserRepository.Deactivate(ctx, userID)
}
