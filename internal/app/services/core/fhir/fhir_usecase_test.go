package fhir

import (
	"context"
	"errors"
	"testing"

	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/app/services/shared/fhircodec"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubPatientRepo struct {
	findByID func(ctx context.Context, patientID int64, scope accessscope.Predicate) (*models.Patient, error)
}

func (s *stubPatientRepo) Create(ctx context.Context, patient *models.Patient) (int64, error) {
	return 0, errors.New("unexpected call")
}
func (s *stubPatientRepo) FindByID(ctx context.Context, patientID int64, scope accessscope.Predicate) (*models.Patient, error) {
	return s.findByID(ctx, patientID, scope)
}
func (s *stubPatientRepo) FindByIdentification(ctx context.Context, identification string) (*models.Patient, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubPatientRepo) Search(ctx context.Context, search string, skip, limit int, scope accessscope.Predicate) ([]models.Patient, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubPatientRepo) Update(ctx context.Context, patient *models.Patient) error {
	return errors.New("unexpected call")
}
func (s *stubPatientRepo) SoftDelete(ctx context.Context, patientID int64) error {
	return errors.New("unexpected call")
}

type stubFHIRClient struct {
	upsertPatient func(ctx context.Context, patient *fhir_dto.Patient) ([]byte, error)
}

func (s *stubFHIRClient) UpsertPatient(ctx context.Context, patient *fhir_dto.Patient) ([]byte, error) {
	return s.upsertPatient(ctx, patient)
}

func int64Ptr(v int64) *int64 { return &v }

func newTestFHIRUsecase(patientRepo *stubPatientRepo, client *stubFHIRClient) *fhirUsecase {
	return &fhirUsecase{
		PatientRepository: patientRepo,
		Resolver:          accessscope.NewResolver(),
		Codec:             fhircodec.NewCodec(zap.NewNop()),
		FHIRClient:        client,
	}
}

func storedPatient() *models.Patient {
	return &models.Patient{
		ID:                 7,
		IdentificationType: "CC",
		Identification:     "1032456789",
		FirstName:          "Maria",
		LastName:           "Lopez",
		Gender:             "F",
	}
}

func TestFHIRPatient(t *testing.T) {
	t.Run("Encodes the row the caller's scope can see", func(t *testing.T) {
		siteID := int64(3)
		patientRepo := &stubPatientRepo{
			findByID: func(_ context.Context, patientID int64, scope accessscope.Predicate) (*models.Patient, error) {
				assert.True(t, scope.IsAll(), "clinicians read every chart")
				return storedPatient(), nil
			},
		}
		uc := newTestFHIRUsecase(patientRepo, &stubFHIRClient{})
		session := &models.Session{UserID: 10, Role: constvars.RoleClinician, SiteID: &siteID}

		resource, err := uc.Patient(context.Background(), session, 7)
		assert.NoError(t, err)
		assert.Equal(t, constvars.ResourcePatient, resource.ResourceType)
		assert.Equal(t, "7", resource.ID)
		assert.Equal(t, "1032456789", resource.Identifier[0].Value)
	})

	t.Run("Patient role cannot reach another chart", func(t *testing.T) {
		patientRepo := &stubPatientRepo{
			findByID: func(_ context.Context, _ int64, scope accessscope.Predicate) (*models.Patient, error) {
				clause, args := scope.Render(1)
				assert.Equal(t, "p.id = $1", clause)
				assert.Equal(t, []interface{}{int64(8)}, args)
				return nil, exceptions.ErrPatientNotFound(nil)
			},
		}
		uc := newTestFHIRUsecase(patientRepo, &stubFHIRClient{})
		session := &models.Session{UserID: 40, Role: constvars.RolePatient, PatientID: int64Ptr(8)}

		_, err := uc.Patient(context.Background(), session, 7)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.True(t, customErr.IsNotFound())
	})
}

func TestFHIRSyncPatient(t *testing.T) {
	t.Run("Clinician pushes the chart and gets the stored resource back", func(t *testing.T) {
		siteID := int64(3)
		patientRepo := &stubPatientRepo{
			findByID: func(_ context.Context, _ int64, _ accessscope.Predicate) (*models.Patient, error) {
				return storedPatient(), nil
			},
		}
		stored := []byte(`{"resourceType":"Patient","id":"7","meta":{"versionId":"2"}}`)
		client := &stubFHIRClient{
			upsertPatient: func(_ context.Context, patient *fhir_dto.Patient) ([]byte, error) {
				assert.Equal(t, "7", patient.ID)
				return stored, nil
			},
		}
		uc := newTestFHIRUsecase(patientRepo, client)
		session := &models.Session{UserID: 10, Role: constvars.RoleClinician, SiteID: &siteID}

		result, err := uc.SyncPatient(context.Background(), session, 7)
		assert.NoError(t, err)
		assert.Equal(t, constvars.FHIRSyncSuccessMessage, result.Message)
		assert.Equal(t, stored, []byte(result.FHIRResource), "the server's representation passes through untouched")
	})

	t.Run("Front desk and admin cannot sync", func(t *testing.T) {
		uc := newTestFHIRUsecase(&stubPatientRepo{}, &stubFHIRClient{})
		siteID := int64(3)

		for _, session := range []*models.Session{
			{UserID: 20, Role: constvars.RoleFrontDesk, SiteID: &siteID},
			{UserID: 1, Role: constvars.RoleAdmin},
		} {
			_, err := uc.SyncPatient(context.Background(), session, 7)
			var customErr *exceptions.CustomError
			assert.True(t, errors.As(err, &customErr), "role %s should be rejected", session.Role)
			assert.True(t, customErr.IsForbidden())
		}
	})

	t.Run("Upstream failure surfaces as a bad gateway", func(t *testing.T) {
		patientRepo := &stubPatientRepo{
			findByID: func(_ context.Context, _ int64, _ accessscope.Predicate) (*models.Patient, error) {
				return storedPatient(), nil
			},
		}
		client := &stubFHIRClient{
			upsertPatient: func(_ context.Context, _ *fhir_dto.Patient) ([]byte, error) {
				return nil, exceptions.ErrFHIRServerBadStatus(500)
			},
		}
		uc := newTestFHIRUsecase(patientRepo, client)
		session := &models.Session{UserID: 30, Role: constvars.RoleRecordsClerk}

		_, err := uc.SyncPatient(context.Background(), session, 7)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.Equal(t, constvars.StatusBadGateway, customErr.StatusCode)
	})
}
