package contracts

import (
	"context"

	"hce-service/internal/app/models"
	"hce-service/internal/pkg/dto/responses"
	"hce-service/internal/pkg/fhir_dto"
)

// RecordsUsecase is the aggregation assembler: one patient's full chart,
// every list filtered by the caller's access scope.
type RecordsUsecase interface {
	Assemble(ctx context.Context, session *models.Session, patientID int64) (*responses.PatientRecord, error)
	AssembleBundle(ctx context.Context, session *models.Session, patientID int64) (*fhir_dto.Bundle, error)
}
