package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"hce-service/internal/app/config"
	"hce-service/internal/app/models"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/utils"

	"github.com/stretchr/testify/assert"
)

type stubUserRepo struct {
	findByID        func(ctx context.Context, userID int64) (*models.User, error)
	findByUsername  func(ctx context.Context, username string) (*models.User, error)
	updatePassword  func(ctx context.Context, userID int64, hashedPassword string, mustChange bool) error
	touchLastAccess func(ctx context.Context, userID int64) error
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	return 0, errors.New("unexpected call")
}
func (s *stubUserRepo) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	return s.findByID(ctx, userID)
}
func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.findByUsername(ctx, username)
}
func (s *stubUserRepo) CountByUsernameOrEmail(ctx context.Context, username, email string) (int64, error) {
	return 0, errors.New("unexpected call")
}
func (s *stubUserRepo) List(ctx context.Context, filter *requests.ListUsersFilter) ([]models.User, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubUserRepo) Update(ctx context.Context, user *models.User) error {
	return errors.New("unexpected call")
}
func (s *stubUserRepo) UpdatePassword(ctx context.Context, userID int64, hashedPassword string, mustChange bool) error {
	return s.updatePassword(ctx, userID, hashedPassword, mustChange)
}
func (s *stubUserRepo) TouchLastAccess(ctx context.Context, userID int64) error {
	return s.touchLastAccess(ctx, userID)
}
func (s *stubUserRepo) Deactivate(ctx context.Context, userID int64) error {
	return errors.New("unexpected call")
}

type stubSessionRepo struct {
	save   func(ctx context.Context, session *models.Session, ttl time.Duration) error
	delete func(ctx context.Context, sessionID string) error
}

func (s *stubSessionRepo) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return s.save(ctx, session, ttl)
}
func (s *stubSessionRepo) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubSessionRepo) Delete(ctx context.Context, sessionID string) error {
	return s.delete(ctx, sessionID)
}

func testInternalConfig() *config.InternalConfig {
	cfg := &config.InternalConfig{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.ExpTimeInHour = 8
	return cfg
}

func newTestAuthUsecase(userRepo *stubUserRepo, sessionRepo *stubSessionRepo) *authUsecase {
	return &authUsecase{
		UserRepository:    userRepo,
		SessionRepository: sessionRepo,
		InternalConfig:    testInternalConfig(),
	}
}

func storedUser(t *testing.T, password string) *models.User {
	t.Helper()
	hashed, err := utils.HashPassword(password)
	assert.NoError(t, err)
	return &models.User{
		ID:       10,
		Username: "dr.ruiz",
		FullName: "Ana Ruiz",
		Password: hashed,
		Role:     constvars.RoleClinician,
		Active:   true,
	}
}

func assertInvalidCredentials(t *testing.T, err error) {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	assert.Equal(t, constvars.StatusUnauthorized, customErr.StatusCode)
	assert.Equal(t, constvars.ErrClientInvalidUsernameOrPassword, customErr.ClientMessage)
}

func TestLogin(t *testing.T) {
	t.Run("Token names the saved session and nothing more", func(t *testing.T) {
		var savedSession *models.Session
		userRepo := &stubUserRepo{
			findByUsername: func(_ context.Context, username string) (*models.User, error) {
				assert.Equal(t, "dr.ruiz", username)
				return storedUser(t, "Consulta2024"), nil
			},
			touchLastAccess: func(_ context.Context, userID int64) error {
				assert.Equal(t, int64(10), userID)
				return nil
			},
		}
		sessionRepo := &stubSessionRepo{
			save: func(_ context.Context, session *models.Session, ttl time.Duration) error {
				savedSession = session
				assert.Equal(t, 8*time.Hour, ttl)
				return nil
			},
		}
		uc := newTestAuthUsecase(userRepo, sessionRepo)

		token, err := uc.Login(context.Background(), &requests.Login{Username: "dr.ruiz", Password: "Consulta2024"})
		assert.NoError(t, err)
		assert.Equal(t, "bearer", token.TokenType)
		assert.Equal(t, int(8*time.Hour/time.Second), token.ExpiresIn)

		assert.Equal(t, int64(10), savedSession.UserID)
		assert.Equal(t, constvars.RoleClinician, savedSession.Role)

		sessionID, err := utils.ParseJWT(token.AccessToken, "test-secret")
		assert.NoError(t, err)
		assert.Equal(t, savedSession.SessionID, sessionID, "the JWT carries only the session id")
	})

	t.Run("Wrong password and unknown user are indistinguishable", func(t *testing.T) {
		userRepo := &stubUserRepo{
			findByUsername: func(_ context.Context, username string) (*models.User, error) {
				if username == "dr.ruiz" {
					return storedUser(t, "Consulta2024"), nil
				}
				return nil, exceptions.ErrUserNotFound(nil)
			},
		}
		uc := newTestAuthUsecase(userRepo, &stubSessionRepo{})

		_, err := uc.Login(context.Background(), &requests.Login{Username: "dr.ruiz", Password: "wrong"})
		assertInvalidCredentials(t, err)

		_, err = uc.Login(context.Background(), &requests.Login{Username: "nobody", Password: "Consulta2024"})
		assertInvalidCredentials(t, err)
	})

	t.Run("Inactive account cannot log in", func(t *testing.T) {
		userRepo := &stubUserRepo{
			findByUsername: func(_ context.Context, _ string) (*models.User, error) {
				user := storedUser(t, "Consulta2024")
				user.Active = false
				return user, nil
			},
		}
		uc := newTestAuthUsecase(userRepo, &stubSessionRepo{})

		_, err := uc.Login(context.Background(), &requests.Login{Username: "dr.ruiz", Password: "Consulta2024"})
		assertInvalidCredentials(t, err)
	})
}

func TestChangePassword(t *testing.T) {
	session := &models.Session{SessionID: "test-session", UserID: 10}

	t.Run("Rejects a wrong current password", func(t *testing.T) {
		userRepo := &stubUserRepo{
			findByID: func(_ context.Context, _ int64) (*models.User, error) {
				return storedUser(t, "Consulta2024"), nil
			},
		}
		uc := newTestAuthUsecase(userRepo, &stubSessionRepo{})

		err := uc.ChangePassword(context.Background(), session, &requests.ChangePassword{
			CurrentPassword: "wrong",
			NewPassword:     "Nueva2025x",
		})
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.ErrClientCurrentPasswordIncorrect, customErr.ClientMessage)
	})

	t.Run("Enforces the password policy", func(t *testing.T) {
		userRepo := &stubUserRepo{
			findByID: func(_ context.Context, _ int64) (*models.User, error) {
				return storedUser(t, "Consulta2024"), nil
			},
		}
		uc := newTestAuthUsecase(userRepo, &stubSessionRepo{})

		err := uc.ChangePassword(context.Background(), session, &requests.ChangePassword{
			CurrentPassword: "Consulta2024",
			NewPassword:     "corta",
		})
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Stores the new hash and clears the change flag", func(t *testing.T) {
		var storedHash string
		var storedMustChange bool
		userRepo := &stubUserRepo{
			findByID: func(_ context.Context, _ int64) (*models.User, error) {
				return storedUser(t, "Consulta2024"), nil
			},
			updatePassword: func(_ context.Context, userID int64, hashedPassword string, mustChange bool) error {
				assert.Equal(t, int64(10), userID)
				storedHash = hashedPassword
				storedMustChange = mustChange
				return nil
			},
		}
		uc := newTestAuthUsecase(userRepo, &stubSessionRepo{})

		err := uc.ChangePassword(context.Background(), session, &requests.ChangePassword{
			CurrentPassword: "Consulta2024",
			NewPassword:     "Nueva2025x",
		})
		assert.NoError(t, err)
		assert.True(t, utils.CheckPasswordHash("Nueva2025x", storedHash))
		assert.False(t, storedMustChange)
	})
}

func TestLogout(t *testing.T) {
	t.Run("Drops the session from the store", func(t *testing.T) {
		var deleted string
		sessionRepo := &stubSessionRepo{
			delete: func(_ context.Context, sessionID string) error {
				deleted = sessionID
				return nil
			},
		}
		uc := newTestAuthUsecase(&stubUserRepo{}, sessionRepo)

		err := uc.Logout(context.Background(), &models.Session{SessionID: "test-session"})
		assert.NoError(t, err)
		assert.Equal(t, "test-session", deleted)
	})
}
