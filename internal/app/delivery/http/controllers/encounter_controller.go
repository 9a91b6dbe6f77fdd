package controllers

import (
	"context"
	"net/http"
	"strconv"
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

type EncounterController struct {
	Log              *zap.Logger
	EncounterUsecase contracts.EncounterUsecase
}

func NewEncounterController(logger *zap.Logger, encounterUsecase contracts.EncounterUsecase) *EncounterController {
	return &EncounterController{
		Log:              logger,
		EncounterUsecase: encounterUsecase,
	}
}

func (ctrl *EncounterController) Create(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	// Bind body to request
	request := new(requests.CreateEncounter)
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
	response, err := ctrl.EncounterUsecase.Create(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateEncounterSuccessMessage, response)
}

func (ctrl *EncounterController) List(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	skip, limit := parsePagination(r)
	request := &requests.ListEncounters{
		Skip:  skip,
		Limit: limit,
	}
	if raw := r.URL.Query().Get(constvars.QueryParamPatientID); raw != "" {
		patientID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.QueryParamPatientID))
			return
		}
		request.PatientID = &patientID
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EncounterUsecase.List(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEncountersSuccessMessage, response)
}

func (ctrl *EncounterController) Detail(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	encounterID, err := parseIDParam(r, constvars.URLParamEncounterID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EncounterUsecase.Detail(ctx, session, encounterID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetEncounterSuccessMessage, response)
}

func (ctrl *EncounterController) Update(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	encounterID, err := parseIDParam(r, constvars.URLParamEncounterID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.UpdateEncounter)
	err = json.NewDecoder(r.Body).Decode(&request)
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

	response, err := ctrl.EncounterUsecase.Update(ctx, session, encounterID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateEncounterSuccessMessage, response)
}

func (ctrl *EncounterController) Finalize(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	encounterID, err := parseIDParam(r, constvars.URLParamEncounterID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.EncounterUsecase.Finalize(ctx, session, encounterID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FinalizeEncounterSuccessMsg, response)
}
