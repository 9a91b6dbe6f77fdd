package contracts

import (
	"context"

	"hce-service/internal/app/models"
	"hce-service/internal/pkg/dto/responses"
	"hce-service/internal/pkg/fhir_dto"
)

type FHIRUsecase interface {
	Patient(ctx context.Context, session *models.Session, patientID int64) (*fhir_dto.Patient, error)
	Encounter(ctx context.Context, session *models.Session, encounterID int64) (*fhir_dto.Encounter, error)
	Observation(ctx context.Context, session *models.Session, observationID int64) (*fhir_dto.Observation, error)
	Condition(ctx context.Context, session *models.Session, diagnosisID int64) (*fhir_dto.Condition, error)
	SyncPatient(ctx context.Context, session *models.Session, patientID int64) (*responses.FHIRSync, error)
}

// FHIRClient pushes resources to the external FHIR server (HAPI). Upserts by
// id so repeated syncs stay idempotent.
type FHIRClient interface {
	UpsertPatient(ctx context.Context, patient *fhir_dto.Patient) ([]byte, error)
}
