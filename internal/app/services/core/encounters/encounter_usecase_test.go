package encounters

import (
	"context"
	"errors"
	"testing"
	"time"

	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/exceptions"

	"github.com/stretchr/testify/assert"
)

type stubEncounterRepo struct {
	create   func(ctx context.Context, encounter *models.Encounter) (int64, error)
	findByID func(ctx context.Context, encounterID int64, scope accessscope.Predicate) (*models.Encounter, error)
	list     func(ctx context.Context, skip, limit int, scope accessscope.Predicate) ([]models.Encounter, error)
	update   func(ctx context.Context, encounter *models.Encounter) error
	finalize func(ctx context.Context, encounterID int64, status string) error
}

func (s *stubEncounterRepo) Create(ctx context.Context, encounter *models.Encounter) (int64, error) {
	return s.create(ctx, encounter)
}
func (s *stubEncounterRepo) FindByID(ctx context.Context, encounterID int64, scope accessscope.Predicate) (*models.Encounter, error) {
	return s.findByID(ctx, encounterID, scope)
}
func (s *stubEncounterRepo) List(ctx context.Context, skip, limit int, scope accessscope.Predicate) ([]models.Encounter, error) {
	return s.list(ctx, skip, limit, scope)
}
func (s *stubEncounterRepo) Update(ctx context.Context, encounter *models.Encounter) error {
	return s.update(ctx, encounter)
}
func (s *stubEncounterRepo) Finalize(ctx context.Context, encounterID int64, status string) error {
	return s.finalize(ctx, encounterID, status)
}

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

func int64Ptr(v int64) *int64 { return &v }

func clinicianSession(userID int64, siteID *int64) *models.Session {
	return &models.Session{
		SessionID: "test-session",
		UserID:    userID,
		Username:  "dr.ruiz",
		Role:      constvars.RoleClinician,
		SiteID:    siteID,
	}
}

func newTestEncounterUsecase(encounterRepo *stubEncounterRepo, patientRepo *stubPatientRepo) *encounterUsecase {
	return &encounterUsecase{
		EncounterRepository: encounterRepo,
		PatientRepository:   patientRepo,
		Resolver:            accessscope.NewResolver(),
	}
}

func asCustomError(t *testing.T, err error) *exceptions.CustomError {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr
}

func TestEncounterCreate(t *testing.T) {
	t.Run("Site and author come from the session", func(t *testing.T) {
		var captured *models.Encounter
		encounterRepo := &stubEncounterRepo{
			create: func(_ context.Context, encounter *models.Encounter) (int64, error) {
				captured = encounter
				return 55, nil
			},
			findByID: func(_ context.Context, encounterID int64, _ accessscope.Predicate) (*models.Encounter, error) {
				return &models.Encounter{ID: encounterID}, nil
			},
		}
		patientRepo := &stubPatientRepo{
			findByID: func(_ context.Context, patientID int64, _ accessscope.Predicate) (*models.Patient, error) {
				return &models.Patient{ID: patientID}, nil
			},
		}
		uc := newTestEncounterUsecase(encounterRepo, patientRepo)

		created, err := uc.Create(context.Background(), clinicianSession(10, int64Ptr(3)), &requests.CreateEncounter{
			PatientID:     7,
			EncounterType: constvars.EncounterTypeConsulta,
			Reason:        "Dolor abdominal",
		})
		assert.NoError(t, err)
		assert.Equal(t, int64(55), created.ID)
		assert.Equal(t, int64(3), captured.SiteID, "site must come from the session")
		assert.Equal(t, int64(10), captured.CreatedByID, "author must come from the session")
		assert.Equal(t, constvars.EncounterStatusOpen, captured.Status)
		assert.WithinDuration(t, time.Now(), captured.StartedAt, time.Minute)
	})

	t.Run("Front desk cannot create encounters", func(t *testing.T) {
		uc := newTestEncounterUsecase(&stubEncounterRepo{}, &stubPatientRepo{})
		session := &models.Session{UserID: 20, Role: constvars.RoleFrontDesk, SiteID: int64Ptr(3)}

		_, err := uc.Create(context.Background(), session, &requests.CreateEncounter{PatientID: 7})
		customErr := asCustomError(t, err)
		assert.True(t, customErr.IsForbidden())
	})

	t.Run("Clinician without a site cannot open an encounter", func(t *testing.T) {
		uc := newTestEncounterUsecase(&stubEncounterRepo{}, &stubPatientRepo{})

		_, err := uc.Create(context.Background(), clinicianSession(10, nil), &requests.CreateEncounter{PatientID: 7})
		customErr := asCustomError(t, err)
		assert.True(t, customErr.IsNotFound())
	})

	t.Run("Missing patient fails the create", func(t *testing.T) {
		patientRepo := &stubPatientRepo{
			findByID: func(_ context.Context, _ int64, _ accessscope.Predicate) (*models.Patient, error) {
				return nil, exceptions.ErrPatientNotFound(nil)
			},
		}
		uc := newTestEncounterUsecase(&stubEncounterRepo{}, patientRepo)

		_, err := uc.Create(context.Background(), clinicianSession(10, int64Ptr(3)), &requests.CreateEncounter{PatientID: 999})
		customErr := asCustomError(t, err)
		assert.True(t, customErr.IsNotFound())
	})
}

func TestEncounterUpdate(t *testing.T) {
	t.Run("Visible encounter owned by someone else is forbidden, not hidden", func(t *testing.T) {
		encounterRepo := &stubEncounterRepo{
			findByID: func(_ context.Context, encounterID int64, _ accessscope.Predicate) (*models.Encounter, error) {
				return &models.Encounter{ID: encounterID, CreatedByID: 99, Status: constvars.EncounterStatusOpen}, nil
			},
		}
		uc := newTestEncounterUsecase(encounterRepo, &stubPatientRepo{})

		_, err := uc.Update(context.Background(), clinicianSession(10, int64Ptr(3)), 55, &requests.UpdateEncounter{
			EncounterType: constvars.EncounterTypeControl,
			Reason:        "Control",
		})
		customErr := asCustomError(t, err)
		assert.True(t, customErr.IsForbidden(), "a colleague's encounter at the same site is visible but not editable")
	})

	t.Run("Finalized encounter rejects updates", func(t *testing.T) {
		encounterRepo := &stubEncounterRepo{
			findByID: func(_ context.Context, encounterID int64, _ accessscope.Predicate) (*models.Encounter, error) {
				return &models.Encounter{ID: encounterID, CreatedByID: 10, Status: constvars.EncounterStatusFinalized}, nil
			},
		}
		uc := newTestEncounterUsecase(encounterRepo, &stubPatientRepo{})

		_, err := uc.Update(context.Background(), clinicianSession(10, int64Ptr(3)), 55, &requests.UpdateEncounter{
			EncounterType: constvars.EncounterTypeControl,
			Reason:        "Control",
		})
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
		assert.Equal(t, constvars.ErrClientEncounterFinalized, customErr.ClientMessage)
	})

	t.Run("Own open encounter is editable", func(t *testing.T) {
		var updated *models.Encounter
		encounterRepo := &stubEncounterRepo{
			findByID: func(_ context.Context, encounterID int64, _ accessscope.Predicate) (*models.Encounter, error) {
				return &models.Encounter{ID: encounterID, CreatedByID: 10, Status: constvars.EncounterStatusOpen}, nil
			},
			update: func(_ context.Context, encounter *models.Encounter) error {
				updated = encounter
				return nil
			},
		}
		uc := newTestEncounterUsecase(encounterRepo, &stubPatientRepo{})

		_, err := uc.Update(context.Background(), clinicianSession(10, int64Ptr(3)), 55, &requests.UpdateEncounter{
			EncounterType: constvars.EncounterTypeControl,
			Reason:        "Control postoperatorio",
		})
		assert.NoError(t, err)
		assert.Equal(t, constvars.EncounterTypeControl, updated.EncounterType)
		assert.Equal(t, "Control postoperatorio", updated.Reason)
	})
}

func TestEncounterFinalize(t *testing.T) {
	t.Run("Marks the encounter finalized exactly once", func(t *testing.T) {
		status := constvars.EncounterStatusOpen
		encounterRepo := &stubEncounterRepo{
			findByID: func(_ context.Context, encounterID int64, _ accessscope.Predicate) (*models.Encounter, error) {
				return &models.Encounter{ID: encounterID, CreatedByID: 10, Status: status}, nil
			},
			finalize: func(_ context.Context, _ int64, newStatus string) error {
				status = newStatus
				return nil
			},
		}
		uc := newTestEncounterUsecase(encounterRepo, &stubPatientRepo{})
		session := clinicianSession(10, int64Ptr(3))

		_, err := uc.Finalize(context.Background(), session, 55)
		assert.NoError(t, err)
		assert.Equal(t, constvars.EncounterStatusFinalized, status)

		_, err = uc.Finalize(context.Background(), session, 55)
		customErr := asCustomError(t, err)
		assert.Equal(t, constvars.ErrClientEncounterFinalized, customErr.ClientMessage, "finalize is not repeatable")
	})
}
