package auth

import (
	"context"
	"sync"
	"time"

	"hce-service/internal/app/config"
	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/dto/responses"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/utils"
)

type authUsecase struct {
	UserRepository    contracts.UserRepository
	SiteRepository    contracts.SiteRepository
	SessionRepository contracts.SessionRepository
	InternalConfig    *config.InternalConfig
}

var (
	authUsecaseInstance contracts.AuthUsecase
	onceAuthUsecase     sync.Once
)

func NewAuthUsecase(
	userRepository contracts.UserRepository,
	siteRepository contracts.SiteRepository,
	sessionRepository contracts.SessionRepository,
	internalConfig *config.InternalConfig,
) contracts.AuthUsecase {
	onceAuthUsecase.Do(func() {
		authUsecaseInstance = &authUsecase{
			UserRepository:    userRepository,
			SiteRepository:    siteRepository,
			SessionRepository: sessionRepository,
			InternalConfig:    internalConfig,
		}
	})
	return authUsecaseInstance
}

func (uc *authUsecase) Login(ctx context.Context, request *requests.Login) (*responses.Token, error) {
	// A missing or inactive account must look identical to a wrong password
	// from the outside
	user, err := uc.UserRepository.FindByUsername(ctx, request.Username)
	if err != nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(err)
	}
	if !user.Active {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	// Verify credentials
	if !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	// Record the login
	if err := uc.UserRepository.TouchLastAccess(ctx, user.ID); err != nil {
		return nil, err
	}

	// Create the session; the token only names the session id, so the
	// session store stays the single authority on identity
	expiration := time.Duration(uc.InternalConfig.JWT.ExpTimeInHour) * time.Hour
	session := &models.Session{
		SessionID: utils.GenerateSessionID(),
		UserID:    user.ID,
		Username:  user.Username,
		FullName:  user.FullName,
		Role:      user.Role,
		SiteID:    user.SiteID,
		PatientID: user.PatientID,
		ExpiresAt: time.Now().Add(expiration),
	}
	if err := uc.SessionRepository.Save(ctx, session, expiration); err != nil {
		return nil, err
	}

	token, err := utils.GenerateJWT(session.SessionID, uc.InternalConfig.JWT.Secret, expiration)
	if err != nil {
		return nil, err
	}

	return &responses.Token{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   int(expiration.Seconds()),
	}, nil
}

func (uc *authUsecase) Me(ctx context.Context, session *models.Session) (*responses.Me, error) {
	return &responses.Me{
		UserID:    session.UserID,
		Username:  session.Username,
		FullName:  session.FullName,
		Role:      session.Role,
		SiteID:    session.SiteID,
		PatientID: session.PatientID,
	}, nil
}

func (uc *authUsecase) HomeSite(ctx context.Context, session *models.Session) (*models.Site, error) {
	if session.SiteID == nil {
		return nil, exceptions.ErrNoSiteAssigned(nil)
	}
	return uc.SiteRepository.FindByID(ctx, *session.SiteID)
}

func (uc *authUsecase) ChangePassword(ctx context.Context, session *models.Session, request *requests.ChangePassword) error {
	// Fetch the stored hash
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return err
	}

	// The current password must still match
	if !utils.CheckPasswordHash(request.CurrentPassword, user.Password) {
		return exceptions.ErrCurrentPasswordIncorrect(nil)
	}

	// Request validation enforces the policy too; keep the usecase safe
	// when called from elsewhere
	if !utils.ValidatePasswordPolicy(request.NewPassword) {
		return exceptions.ErrPasswordPolicy(nil)
	}

	hashed, err := utils.HashPassword(request.NewPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	return uc.UserRepository.UpdatePassword(ctx, user.ID, hashed, false)
}

func (uc *authUsecase) Logout(ctx context.Context, session *models.Session) error {
	return uc.SessionRepository.Delete(ctx, session.SessionID)
}
