package controllers

import (
	"context"
	"net/http"
	"time"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/delivery/http/middlewares"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ObservationController struct {
	Log                *zap.Logger
	ObservationUsecase contracts.ObservationUsecase
}

func NewObservationController(logger *zap.Logger, observationUsecase contracts.ObservationUsecase) *ObservationController {
	return &ObservationController{
		Log:                logger,
		ObservationUsecase: observationUsecase,
	}
}

func (ctrl *ObservationController) Create(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	// Bind body to request
	request := new(requests.CreateObservation)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	// Validate request
	err = utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	// Send it to be processed by usecase
	response, err := ctrl.ObservationUsecase.Create(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateObservationSuccessMsg, response)
}

func (ctrl *ObservationController) ListByEncounter(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	encounterID, err := parseIDParam(r, constvars.URLParamEncounterID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ObservationUsecase.ListByEncounter(ctx, session, encounterID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetObservationsSuccessMessage, response)
}

func (ctrl *ObservationController) ListByPatient(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	patientID, err := parseIDParam(r, constvars.URLParamPatientID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	loincCode := r.URL.Query().Get(constvars.QueryParamLoincCode)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.ObservationUsecase.ListByPatient(ctx, session, patientID, loincCode)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetObservationsSuccessMessage, response)
}
