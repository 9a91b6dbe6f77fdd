package patients

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

type stubPatientRepo struct {
	create               func(ctx context.Context, patient *models.Patient) (int64, error)
	findByID             func(ctx context.Context, patientID int64, scope accessscope.Predicate) (*models.Patient, error)
	findByIdentification func(ctx context.Context, identification string) (*models.Patient, error)
	search               func(ctx context.Context, search string, skip, limit int, scope accessscope.Predicate) ([]models.Patient, error)
	softDelete           func(ctx context.Context, patientID int64) error
}

func (s *stubPatientRepo) Create(ctx context.Context, patient *models.Patient) (int64, error) {
	return s.create(ctx, patient)
}
func (s *stubPatientRepo) FindByID(ctx context.Context, patientID int64, scope accessscope.Predicate) (*models.Patient, error) {
	return s.findByID(ctx, patientID, scope)
}
func (s *stubPatientRepo) FindByIdentification(ctx context.Context, identification string) (*models.Patient, error) {
	return s.findByIdentification(ctx, identification)
}
func (s *stubPatientRepo) Search(ctx context.Context, search string, skip, limit int, scope accessscope.Predicate) ([]models.Patient, error) {
	return s.search(ctx, search, skip, limit, scope)
}
func (s *stubPatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	return errors.New("unexpected call")
}
func (s *stubPatientRepo) SoftDelete(ctx context.Context, patientID int64) error {
	return s.softDelete(ctx, patientID)
}

type stubUserRepo struct {
	create func(ctx context.Context, user *models.User) (int64, error)
}

func (s *stubUserRepo) Create(ctx context.Context, user *models.User) (int64, error) {
	return s.create(ctx, user)
}
func (s *stubUserRepo) FindByID(ctx context.Context, userID int64) (*models.User, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	return nil, errors.New("unexpected call")
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
	return errors.New("unexpected call")
}
func (s *stubUserRepo) TouchLastAccess(ctx context.Context, userID int64) error {
	return errors.New("unexpected call")
}
func (s *stubUserRepo) Deactivate(ctx context.Context, userID int64) error {
	return errors.New("unexpected call")
}

func int64Ptr(v int64) *int64 { return &v }

func sessionWithRole(role string, siteID *int64) *models.Session {
	return &models.Session{SessionID: "test-session", UserID: 20, Role: role, SiteID: siteID}
}

func newTestPatientUsecase(patientRepo *stubPatientRepo, userRepo *stubUserRepo) *patientUsecase {
	return &patientUsecase{
		PatientRepository: patientRepo,
		UserRepository:    userRepo,
		Resolver:          accessscope.NewResolver(),
	}
}

func createPatientRequest() *requests.CreatePatient {
	email := "maria.lopez@example.com"
	birthDate := "1988-04-17"
	return &requests.CreatePatient{
		IdentificationType: "CC",
		Identification:     "1032456789",
		FirstName:          "Maria",
		LastName:           "Lopez",
		BirthDate:          &birthDate,
		Gender:             "F",
		Email:              &email,
	}
}

func TestPatientCreate(t *testing.T) {
	t.Run("Provisions the linked portal account", func(t *testing.T) {
		var capturedUser *models.User
		patientRepo := &stubPatientRepo{
			findByIdentification: func(_ context.Context, _ string) (*models.Patient, error) {
				return nil, exceptions.ErrPatientNotFound(nil)
			},
			create: func(_ context.Context, _ *models.Patient) (int64, error) {
				return 7, nil
			},
			findByID: func(_ context.Context, patientID int64, _ accessscope.Predicate) (*models.Patient, error) {
				return &models.Patient{ID: patientID}, nil
			},
		}
		userRepo := &stubUserRepo{
			create: func(_ context.Context, user *models.User) (int64, error) {
				capturedUser = user
				return 40, nil
			},
		}
		uc := newTestPatientUsecase(patientRepo, userRepo)

		request := createPatientRequest()
		created, err := uc.Create(context.Background(), sessionWithRole(constvars.RoleFrontDesk, int64Ptr(3)), request)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), created.ID)

		assert.Equal(t, request.Identification, capturedUser.Username, "the patient logs in with their identification")
		assert.Equal(t, constvars.RolePatient, capturedUser.Role)
		assert.Equal(t, int64(7), *capturedUser.PatientID)
		assert.True(t, capturedUser.MustChangePassword)
		assert.True(t,
			utils.CheckPasswordHash(utils.TempPasswordFromIdentification(request.Identification), capturedUser.Password),
			"temporary password is derived from the identification")
	})

	t.Run("Duplicate identification is a conflict", func(t *testing.T) {
		patientRepo := &stubPatientRepo{
			findByIdentification: func(_ context.Context, _ string) (*models.Patient, error) {
				return &models.Patient{ID: 7}, nil
			},
		}
		uc := newTestPatientUsecase(patientRepo, &stubUserRepo{})

		_, err := uc.Create(context.Background(), sessionWithRole(constvars.RoleFrontDesk, int64Ptr(3)), createPatientRequest())
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode)
	})

	t.Run("Patient role cannot register patients", func(t *testing.T) {
		uc := newTestPatientUsecase(&stubPatientRepo{}, &stubUserRepo{})
		session := sessionWithRole(constvars.RolePatient, nil)
		session.PatientID = int64Ptr(7)

		_, err := uc.Create(context.Background(), session, createPatientRequest())
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.True(t, customErr.IsForbidden())
	})

	t.Run("Malformed birth date fails before any insert", func(t *testing.T) {
		patientRepo := &stubPatientRepo{
			findByIdentification: func(_ context.Context, _ string) (*models.Patient, error) {
				return nil, exceptions.ErrPatientNotFound(nil)
			},
		}
		uc := newTestPatientUsecase(patientRepo, &stubUserRepo{})

		request := createPatientRequest()
		badDate := "17/04/1988"
		request.BirthDate = &badDate

		_, err := uc.Create(context.Background(), sessionWithRole(constvars.RoleFrontDesk, int64Ptr(3)), request)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})
}

func TestPatientSearch(t *testing.T) {
	t.Run("Records clerk searches every chart", func(t *testing.T) {
		patientRepo := &stubPatientRepo{
			search: func(_ context.Context, search string, skip, limit int, scope accessscope.Predicate) ([]models.Patient, error) {
				assert.Equal(t, "lopez", search)
				assert.True(t, scope.IsAll(), "records clerk reads without a filter")
				return []models.Patient{{ID: 7}}, nil
			},
		}
		uc := newTestPatientUsecase(patientRepo, &stubUserRepo{})

		found, err := uc.Search(context.Background(), sessionWithRole(constvars.RoleRecordsClerk, nil), &requests.SearchPatients{
			Search: "lopez",
			Limit:  100,
		})
		assert.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("Patient role only sees their own chart", func(t *testing.T) {
		patientRepo := &stubPatientRepo{
			search: func(_ context.Context, _ string, _, _ int, scope accessscope.Predicate) ([]models.Patient, error) {
				clause, args := scope.Render(1)
				assert.Equal(t, "p.id = $1", clause)
				assert.Equal(t, []interface{}{int64(7)}, args)
				return []models.Patient{{ID: 7}}, nil
			},
		}
		uc := newTestPatientUsecase(patientRepo, &stubUserRepo{})

		session := sessionWithRole(constvars.RolePatient, nil)
		session.PatientID = int64Ptr(7)

		found, err := uc.Search(context.Background(), session, &requests.SearchPatients{Limit: 100})
		assert.NoError(t, err)
		assert.Len(t, found, 1)
	})

	t.Run("Patient session without a linked chart matches nothing", func(t *testing.T) {
		patientRepo := &stubPatientRepo{
			search: func(_ context.Context, _ string, _, _ int, scope accessscope.Predicate) ([]models.Patient, error) {
				assert.True(t, scope.IsNone(), "an unlinked patient session must see no rows")
				return nil, nil
			},
		}
		uc := newTestPatientUsecase(patientRepo, &stubUserRepo{})

		found, err := uc.Search(context.Background(), sessionWithRole(constvars.RolePatient, nil), &requests.SearchPatients{Limit: 100})
		assert.NoError(t, err)
		assert.Empty(t, found)
	})
}

func TestPatientDelete(t *testing.T) {
	t.Run("Clinicians cannot retire a chart", func(t *testing.T) {
		uc := newTestPatientUsecase(&stubPatientRepo{}, &stubUserRepo{})

		err := uc.Delete(context.Background(), sessionWithRole(constvars.RoleClinician, int64Ptr(3)), 7)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.True(t, customErr.IsForbidden())
	})

	t.Run("Front desk soft deletes", func(t *testing.T) {
		var deleted int64
		patientRepo := &stubPatientRepo{
			findByID: func(_ context.Context, patientID int64, _ accessscope.Predicate) (*models.Patient, error) {
				return &models.Patient{ID: patientID}, nil
			},
			softDelete: func(_ context.Context, patientID int64) error {
				deleted = patientID
				return nil
			},
		}
		uc := newTestPatientUsecase(patientRepo, &stubUserRepo{})

		err := uc.Delete(context.Background(), sessionWithRole(constvars.RoleFrontDesk, int64Ptr(3)), 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), deleted)
	})
}
