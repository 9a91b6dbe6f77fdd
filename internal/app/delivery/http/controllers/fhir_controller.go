package controllers

import (
	"context"
	"net/http"
	"time"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/delivery/http/middlewares"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/utils"

	"go.uber.org/zap"
)

// FHIRController serves read-only FHIR renditions of internal rows. The
// response body is the bare resource, not the service's success envelope:
// these endpoints speak application/fhir+json to external consumers.
type FHIRController struct {
	Log            *zap.Logger
	FHIRUsecase    contracts.FHIRUsecase
	RecordsUsecase contracts.RecordsUsecase
}

func NewFHIRController(
	logger *zap.Logger,
	fhirUsecase contracts.FHIRUsecase,
	recordsUsecase contracts.RecordsUsecase,
) *FHIRController {
	return &FHIRController{
		Log:            logger,
		FHIRUsecase:    fhirUsecase,
		RecordsUsecase: recordsUsecase,
	}
}

func (ctrl *FHIRController) Patient(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	patientID, err := parseIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resource, err := ctrl.FHIRUsecase.Patient(ctx, session, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, constvars.MIMEApplicationFHIRJSON, resource)
}

func (ctrl *FHIRController) Encounter(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	encounterID, err := parseIDParam(r, constvars.URLParamEncounterID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resource, err := ctrl.FHIRUsecase.Encounter(ctx, session, encounterID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, constvars.MIMEApplicationFHIRJSON, resource)
}

func (ctrl *FHIRController) Observation(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	observationID, err := parseIDParam(r, constvars.URLParamObservationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resource, err := ctrl.FHIRUsecase.Observation(ctx, session, observationID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, constvars.MIMEApplicationFHIRJSON, resource)
}

func (ctrl *FHIRController) Condition(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	diagnosisID, err := parseIDParam(r, constvars.URLParamDiagnosisID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	resource, err := ctrl.FHIRUsecase.Condition(ctx, session, diagnosisID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, constvars.MIMEApplicationFHIRJSON, resource)
}

// Bundle renders the full chart of one patient as a FHIR collection bundle.
func (ctrl *FHIRController) Bundle(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	patientID, err := parseIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	bundle, err := ctrl.RecordsUsecase.AssembleBundle(ctx, session, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildRawResponse(w, constvars.StatusOK, constvars.MIMEApplicationFHIRJSON, bundle)
}

// SyncPatient pushes the encoded patient to the external FHIR server.
func (ctrl *FHIRController) SyncPatient(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	patientID, err := parseIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	response, err := ctrl.FHIRUsecase.SyncPatient(ctx, session, patientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FHIRSyncSuccessMessage, response)
}
