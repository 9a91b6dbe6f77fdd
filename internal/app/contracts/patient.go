package contracts

import (
	"context"

	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/dto/requests"
)

type PatientUsecase interface {
	Create(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*models.Patient, error)
	Search(ctx context.Context, session *models.Session, request *requests.SearchPatients) ([]models.Patient, error)
	FindByID(ctx context.Context, session *models.Session, patientID int64) (*models.Patient, error)
	Update(ctx context.Context, session *models.Session, patientID int64, request *requests.UpdatePatient) (*models.Patient, error)
	Delete(ctx context.Context, session *models.Session, patientID int64) error
}

type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) (int64, error)
	FindByID(ctx context.Context, patientID int64, scope accessscope.Predicate) (*models.Patient, error)
	FindByIdentification(ctx context.Context, identification string) (*models.Patient, error)
	Search(ctx context.Context, search string, skip, limit int, scope accessscope.Predicate) ([]models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	SoftDelete(ctx context.Context, patientID int64) error
}
