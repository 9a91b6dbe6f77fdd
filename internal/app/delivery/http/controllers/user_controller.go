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

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase) *UserController {
	return &UserController{
		Log:         logger,
		UserUsecase: userUsecase,
	}
}

func (ctrl *UserController) Create(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	// Bind body to request
	request := new(requests.CreateUser)
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
	response, err := ctrl.UserUsecase.Create(ctx, session, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Send response
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUserSuccessMessage, response)
}

func (ctrl *UserController) List(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	skip, limit := parsePagination(r)
	filter := &requests.ListUsersFilter{
		Role:   r.URL.Query().Get(constvars.QueryParamRole),
		Search: r.URL.Query().Get(constvars.QueryParamSearch),
		Skip:   skip,
		Limit:  limit,
	}
	if raw := r.URL.Query().Get(constvars.QueryParamSiteID); raw != "" {
		siteID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, constvars.QueryParamSiteID))
			return
		}
		filter.SiteID = &siteID
	}
	if raw := r.URL.Query().Get(constvars.QueryParamActive); raw != "" {
		active := raw == "true"
		filter.Active = &active
	}

	err := utils.ValidateStruct(filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UserUsecase.List(ctx, session, filter)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUsersSuccessMessage, response)
}

func (ctrl *UserController) FindByID(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	userID, err := parseIDParam(r, constvars.URLParamUserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.UserUsecase.FindByID(ctx, session, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUsersSuccessMessage, response)
}

func (ctrl *UserController) Update(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	userID, err := parseIDParam(r, constvars.URLParamUserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	// Bind body to request
	request := new(requests.UpdateUser)
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

	response, err := ctrl.UserUsecase.Update(ctx, session, userID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateUserSuccessMessage, response)
}

func (ctrl *UserController) Deactivate(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	userID, err := parseIDParam(r, constvars.URLParamUserID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	err = ctrl.UserUsecase.Deactivate(ctx, session, userID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteUserSuccessMessage, nil)
}
