package users

import (
	"context"
	"errors"
	"testing"

	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
)

type stubUserRepo struct {
	create                func(ctx context.Context, user *models.User) (int64, error)
	findByID              func(ctx context.Context, userID int64) (*models.User, error)
	countByUsernameOrMail func(ctx context.Context, username, email string) (int64, error)
	deactivate            func(ctx context.Context, userID int64) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	return s.create(ctx, user)
}
func (s *stubUserRepo) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	return s.findByID(ctx, userID)
}
func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubUserRepo) CountByUsernameOrEmail(ctx context.Context, username, email string) (int64, error) {
	return s.countByUsernameOrMail(ctx, username, email)
}
func (s *stubUserRepo) List(ctx context.Context, filter *requests.ListUsersFilter) ([]models.User, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return errors.New("unexpected call")
}
func (s *stubUserRepo) UpdatePassword(ctx context.Context, userID int64, hashedPassword string, mustChange bool) error {
	return errors.New("unexpected call")
}
func (s *stubUserRepo) TouchLastAccess(ctx context.Context, userID int64) error {
	return errors.New("unexpected call")
}
func (s *stubUserRepo) Deactivate(ctx context.Context, userID int64) error {
	return s.deactivate(ctx, userID)
}

type stubSiteRepo struct {
	findByID func(ctx context.Context, siteID int64) (*models.Site, error)
}

func (s *stubSiteRepo) FindByID(ctx context.Context, siteID int64) (*models.Site, error) {
	return s.findByID(ctx, siteID)
}
func (s *stubSiteRepo) ListActive(ctx context.Context) ([]models.Site, error) {
	return nil, errors.New("unexpected call")
}

func adminSession() *models.Session {
	return &models.Session{SessionID: "test-session", UserID: 1, Role: constvars.RoleAdmin}
}

func newTestUserUsecase(userRepo *stubUserRepo, siteRepo *stubSiteRepo) *userUsecase {
	return &userUsecase{
		UserRepository: userRepo,
		SiteRepository: siteRepo,
		Resolver:       accessscope.NewResolver(),
	}
}

func createUserRequest() *requests.CreateUser {
	return &requests.CreateUser{
		Username:       "dr.ruiz",
		FullName:       "Ana Ruiz",
		Email:          "ana.ruiz@example.com",
		Role:           constvars.RoleClinician,
		SiteID:         3,
		Identification: "52841036",
	}
}

func activeSite(siteID int64) *models.Site {
	return &models.Site{ID: siteID, Name: "Sede Norte", Active: true}
}

func TestUserCreate(t *testing.T) {
	t.Run("Returns the temporary password exactly once", func(t *testing.T) {
		var captured *models.User
		userRepo := &stubUserRepo{
			countByUsernameOrMail: func(_ context.Context, _, _ string) (int64, error) { return 0, nil },
			create: func(_ context.Context, user *models.User) (int64, error) {
				captured = user
				return 10, nil
			},
			findByID: func(_ context.Context, userID int64) (*models.User, error) {
				return &models.User{ID: userID, Username: "dr.ruiz"}, nil
			},
		}
		siteRepo := &stubSiteRepo{
			findByID: func(_ context.Context, siteID int64) (*models.Site, error) {
				return activeSite(siteID), nil
			},
		}
		uc := newTestUserUsecase(userRepo, siteRepo)

		request := createUserRequest()
		created, err := uc.Create(context.Background(), adminSession(), request)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), created.User.ID)
		assert.Equal(t, utils.TempPasswordFromIdentification(request.Identification), created.TempPassword)
		assert.True(t, utils.CheckPasswordHash(created.TempPassword, captured.Password))
		assert.True(t, captured.MustChangePassword, "a provisioned account must rotate its password on first login")
		assert.Equal(t, int64(3), *captured.SiteID)
	})

	t.Run("Only admins manage accounts", func(t *testing.T) {
		uc := newTestUserUsecase(&stubUserRepo{}, &stubSiteRepo{})
		siteID := int64(3)
		session := &models.Session{UserID: 10, Role: constvars.RoleClinician, SiteID: &siteID}

		_, err := uc.Create(context.Background(), session, createUserRequest())
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.True(t, customErr.IsForbidden())
	})

	t.Run("Duplicate username is a conflict", func(t *testing.T) {
		userRepo := &stubUserRepo{
			countByUsernameOrMail: func(_ context.Context, username, email string) (int64, error) {
				assert.Equal(t, "dr.ruiz", username)
				assert.Equal(t, "ana.ruiz@example.com", email)
				return 1, nil
			},
		}
		siteRepo := &stubSiteRepo{
			findByID: func(_ context.Context, siteID int64) (*models.Site, error) {
				return activeSite(siteID), nil
			},
		}
		uc := newTestUserUsecase(userRepo, siteRepo)

		_, err := uc.Create(context.Background(), adminSession(), createUserRequest())
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("Inactive site cannot receive accounts", func(t *testing.T) {
		siteRepo := &stubSiteRepo{
			findByID: func(_ context.Context, siteID int64) (*models.Site, error) {
				site := activeSite(siteID)
				site.Active = false
				return site, nil
			},
		}
		uc := newTestUserUsecase(&stubUserRepo{}, siteRepo)

		_, err := uc.Create(context.Background(), adminSession(), createUserRequest())
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.True(t, customErr.IsNotFound())
	})
}

func TestUserDeactivate(t *testing.T) {
	t.Run("Admin turns the account off without deleting it", func(t *testing.T) {
		var deactivated int64
		userRepo := &stubUserRepo{
			findByID: func(_ context.Context, userID int64) (*models.User, error) {
				return &models.User{ID: userID, Active: true}, nil
			},
			deactivate: func(_ context.Context, userID int64) error {
				deactivated = userID
				return nil
			},
		}
		uc := newTestUserUsecase(userRepo, &stubSiteRepo{})

		err := uc.Deactivate(context.Background(), adminSession(), 10)
		assert.NoError(t, err)
		assert.Equal(t, int64(10), deactivated)
	})

	t.Run("Front desk cannot deactivate accounts", func(t *testing.T) {
		uc := newTestUserUsecase(&stubUserRepo{}, &stubSiteRepo{})
		siteID := int64(3)
		session := &models.Session{UserID: 20, Role: constvars.RoleFrontDesk, SiteID: &siteID}

		err := uc.Deactivate(context.Background(), session, 10)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.True(t, customErr.IsForbidden())
	})
}
