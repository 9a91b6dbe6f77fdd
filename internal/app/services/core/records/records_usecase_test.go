package records

import (
	"context"
	"errors"
	"testing"
	"time"

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

type stubEncounterRepo struct {
	list func(ctx context.Context, skip, limit int, scope accessscope.Predicate) ([]models.Encounter, error)
}

func (s *stubEncounterRepo) Create(ctx context.Context, encounter *models.Encounter) (int64, error) {
	return 0, errors.New("unexpected call")
}
func (s *stubEncounterRepo) FindByID(ctx context.Context, encounterID int64, scope accessscope.Predicate) (*models.Encounter, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubEncounterRepo) List(ctx context.Context, skip, limit int, scope accessscope.Predicate) ([]models.Encounter, error) {
	return s.list(ctx, skip, limit, scope)
}
func (s *stubEncounterRepo) Update(ctx context.Context, encounter *models.Encounter) error {
	return errors.New("unexpected call")
}
func (s *stubEncounterRepo) Finalize(ctx context.Context, encounterID int64, status string) error {
	return errors.New("unexpected call")
}

type stubObservationRepo struct {
	listByPatient func(ctx context.Context, patientID int64, loincCode string, scope accessscope.Predicate) ([]models.Observation, error)
}

func (s *stubObservationRepo) Create(ctx context.Context, observation *models.Observation) (int64, error) {
	return 0, errors.New("unexpected call")
}
func (s *stubObservationRepo) FindByID(ctx context.Context, observationID int64, scope accessscope.Predicate) (*models.Observation, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubObservationRepo) ListByEncounter(ctx context.Context, encounterID int64, scope accessscope.Predicate) ([]models.Observation, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubObservationRepo) ListByPatient(ctx context.Context, patientID int64, loincCode string, scope accessscope.Predicate) ([]models.Observation, error) {
	return s.listByPatient(ctx, patientID, loincCode, scope)
}

type stubDiagnosisRepo struct {
	listByPatient func(ctx context.Context, patientID int64, scope accessscope.Predicate) ([]models.Diagnosis, error)
}

func (s *stubDiagnosisRepo) Create(ctx context.Context, diagnosis *models.Diagnosis) (int64, error) {
	return 0, errors.New("unexpected call")
}
func (s *stubDiagnosisRepo) FindByID(ctx context.Context, diagnosisID int64, scope accessscope.Predicate) (*models.Diagnosis, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubDiagnosisRepo) ListByEncounter(ctx context.Context, encounterID int64, scope accessscope.Predicate) ([]models.Diagnosis, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubDiagnosisRepo) ListByPatient(ctx context.Context, patientID int64, scope accessscope.Predicate) ([]models.Diagnosis, error) {
	return s.listByPatient(ctx, patientID, scope)
}

type stubMedicationRepo struct {
	listByPatient func(ctx context.Context, patientID int64, scope accessscope.Predicate) ([]models.Medication, error)
}

func (s *stubMedicationRepo) Create(ctx context.Context, medication *models.Medication) (int64, error) {
	return 0, errors.New("unexpected call")
}
func (s *stubMedicationRepo) FindByID(ctx context.Context, medicationID int64, scope accessscope.Predicate) (*models.Medication, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubMedicationRepo) ListByEncounter(ctx context.Context, encounterID int64, scope accessscope.Predicate) ([]models.Medication, error) {
	return nil, errors.New("unexpected call")
}
func (s *stubMedicationRepo) ListByPatient(ctx context.Context, patientID int64, scope accessscope.Predicate) ([]models.Medication, error) {
	return s.listByPatient(ctx, patientID, scope)
}

func int64Ptr(v int64) *int64 { return &v }

func newTestRecordsUsecase(
	patientRepo *stubPatientRepo,
	encounterRepo *stubEncounterRepo,
	observationRepo *stubObservationRepo,
	diagnosisRepo *stubDiagnosisRepo,
	medicationRepo *stubMedicationRepo,
) *recordsUsecase {
	return &recordsUsecase{
		PatientRepository:     patientRepo,
		EncounterRepository:   encounterRepo,
		ObservationRepository: observationRepo,
		DiagnosisRepository:   diagnosisRepo,
		MedicationRepository:  medicationRepo,
		Resolver:              accessscope.NewResolver(),
		Codec:                 fhircodec.NewCodec(zap.NewNop()),
	}
}

func chartPatient() *models.Patient {
	return &models.Patient{
		ID:                 7,
		IdentificationType: "CC",
		Identification:     "1032456789",
		FirstName:          "Maria",
		LastName:           "Lopez",
		Gender:             "F",
	}
}

func chartFixtures() ([]models.Encounter, []models.Observation, []models.Diagnosis, []models.Medication) {
	encounters := []models.Encounter{{
		ID:            55,
		PatientID:     7,
		SiteID:        3,
		CreatedByID:   10,
		EncounterType: constvars.EncounterTypeConsulta,
		Status:        constvars.EncounterStatusOpen,
		Reason:        "Dolor abdominal",
		StartedAt:     time.Now(),
	}}
	observations := []models.Observation{{
		ID:          901,
		PatientID:   7,
		EncounterID: 55,
		Name:        "Frecuencia cardiaca",
		TakenAt:     time.Now(),
	}}
	diagnoses := []models.Diagnosis{{
		ID:          301,
		PatientID:   7,
		EncounterID: 55,
		Description: "Gastritis aguda",
		Status:      constvars.DiagnosisStatusActive,
		DiagnosedAt: time.Now(),
	}}
	medications := []models.Medication{{
		ID:          401,
		PatientID:   7,
		EncounterID: 55,
		Name:        "Omeprazol",
		Dose:        "20 mg",
		Frequency:   "cada 24 horas",
	}}
	return encounters, observations, diagnoses, medications
}

func TestRecordsAssemble(t *testing.T) {
	encounters, observations, diagnoses, medications := chartFixtures()

	happyRepos := func() (*stubPatientRepo, *stubEncounterRepo, *stubObservationRepo, *stubDiagnosisRepo, *stubMedicationRepo) {
		return &stubPatientRepo{
				findByID: func(_ context.Context, patientID int64, _ accessscope.Predicate) (*models.Patient, error) {
					return chartPatient(), nil
				},
			}, &stubEncounterRepo{
				list: func(_ context.Context, _, _ int, _ accessscope.Predicate) ([]models.Encounter, error) {
					return encounters, nil
				},
			}, &stubObservationRepo{
				listByPatient: func(_ context.Context, _ int64, _ string, _ accessscope.Predicate) ([]models.Observation, error) {
					return observations, nil
				},
			}, &stubDiagnosisRepo{
				listByPatient: func(_ context.Context, _ int64, _ accessscope.Predicate) ([]models.Diagnosis, error) {
					return diagnoses, nil
				},
			}, &stubMedicationRepo{
				listByPatient: func(_ context.Context, _ int64, _ accessscope.Predicate) ([]models.Medication, error) {
					return medications, nil
				},
			}
	}

	t.Run("Records clerk gets the full chart pinned to the patient", func(t *testing.T) {
		patientRepo, encounterRepo, observationRepo, diagnosisRepo, medicationRepo := happyRepos()
		var encounterScope accessscope.Predicate
		encounterRepo.list = func(_ context.Context, skip, limit int, scope accessscope.Predicate) ([]models.Encounter, error) {
			encounterScope = scope
			assert.Equal(t, 0, skip)
			assert.Equal(t, recordListCap, limit)
			return encounters, nil
		}
		uc := newTestRecordsUsecase(patientRepo, encounterRepo, observationRepo, diagnosisRepo, medicationRepo)
		session := &models.Session{UserID: 30, Role: constvars.RoleRecordsClerk}

		record, err := uc.Assemble(context.Background(), session, 7)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), record.Patient.ID)
		assert.Len(t, record.Encounters, 1)
		assert.Len(t, record.Observations, 1)
		assert.Len(t, record.Diagnoses, 1)
		assert.Len(t, record.Medications, 1)

		clause, args := encounterScope.Render(1)
		assert.Equal(t, "(e.patient_id = $1)", clause,
			"even a read-everything role must only pull this patient's encounters")
		assert.Equal(t, []interface{}{int64(7)}, args)
	})

	t.Run("Patient reads their own chart through their own scope", func(t *testing.T) {
		patientRepo, encounterRepo, observationRepo, diagnosisRepo, medicationRepo := happyRepos()
		var patientScope accessscope.Predicate
		patientRepo.findByID = func(_ context.Context, _ int64, scope accessscope.Predicate) (*models.Patient, error) {
			patientScope = scope
			return chartPatient(), nil
		}
		uc := newTestRecordsUsecase(patientRepo, encounterRepo, observationRepo, diagnosisRepo, medicationRepo)
		session := &models.Session{UserID: 40, Role: constvars.RolePatient, PatientID: int64Ptr(7)}

		_, err := uc.Assemble(context.Background(), session, 7)
		assert.NoError(t, err)

		clause, args := patientScope.Render(1)
		assert.Equal(t, "p.id = $1", clause)
		assert.Equal(t, []interface{}{int64(7)}, args)
	})

	t.Run("Chart outside the scope is a 404, never a partial record", func(t *testing.T) {
		patientRepo, encounterRepo, observationRepo, diagnosisRepo, medicationRepo := happyRepos()
		patientRepo.findByID = func(_ context.Context, _ int64, _ accessscope.Predicate) (*models.Patient, error) {
			return nil, exceptions.ErrPatientNotFound(nil)
		}
		uc := newTestRecordsUsecase(patientRepo, encounterRepo, observationRepo, diagnosisRepo, medicationRepo)
		session := &models.Session{UserID: 40, Role: constvars.RolePatient, PatientID: int64Ptr(8)}

		_, err := uc.Assemble(context.Background(), session, 7)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.True(t, customErr.IsNotFound())
	})

	t.Run("Admin holds no clinical read at all", func(t *testing.T) {
		uc := newTestRecordsUsecase(happyRepos())
		session := &models.Session{UserID: 1, Role: constvars.RoleAdmin}

		_, err := uc.Assemble(context.Background(), session, 7)
		var customErr *exceptions.CustomError
		assert.True(t, errors.As(err, &customErr))
		assert.True(t, customErr.IsForbidden())
	})
}

func TestRecordsAssembleBundle(t *testing.T) {
	t.Run("Bundle keeps the fixed entry order and leaves medications out", func(t *testing.T) {
		encounters, observations, diagnoses, medications := chartFixtures()
		uc := newTestRecordsUsecase(
			&stubPatientRepo{
				findByID: func(_ context.Context, _ int64, _ accessscope.Predicate) (*models.Patient, error) {
					return chartPatient(), nil
				},
			},
			&stubEncounterRepo{
				list: func(_ context.Context, _, _ int, _ accessscope.Predicate) ([]models.Encounter, error) {
					return encounters, nil
				},
			},
			&stubObservationRepo{
				listByPatient: func(_ context.Context, _ int64, _ string, _ accessscope.Predicate) ([]models.Observation, error) {
					return observations, nil
				},
			},
			&stubDiagnosisRepo{
				listByPatient: func(_ context.Context, _ int64, _ accessscope.Predicate) ([]models.Diagnosis, error) {
					return diagnoses, nil
				},
			},
			&stubMedicationRepo{
				listByPatient: func(_ context.Context, _ int64, _ accessscope.Predicate) ([]models.Medication, error) {
					return medications, nil
				},
			},
		)
		session := &models.Session{UserID: 30, Role: constvars.RoleRecordsClerk}

		bundle, err := uc.AssembleBundle(context.Background(), session, 7)
		assert.NoError(t, err)
		assert.Equal(t, constvars.FhirBundleTypeCollection, bundle.Type)
		assert.Len(t, bundle.Entry, 4, "patient, encounter, observation, condition; medications stay internal")

		_, ok := bundle.Entry[0].Resource.(*fhir_dto.Patient)
		assert.True(t, ok, "the patient leads the bundle")
		_, ok = bundle.Entry[1].Resource.(*fhir_dto.Encounter)
		assert.True(t, ok)
		_, ok = bundle.Entry[2].Resource.(*fhir_dto.Observation)
		assert.True(t, ok)
		_, ok = bundle.Entry[3].Resource.(*fhir_dto.Condition)
		assert.True(t, ok)
	})
}
