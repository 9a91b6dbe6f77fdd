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

type StatsController struct {
	Log          *zap.Logger
	StatsUsecase contracts.StatsUsecase
}

func NewStatsController(logger *zap.Logger, statsUsecase contracts.StatsUsecase) *StatsController {
	return &StatsController{
		Log:          logger,
		StatsUsecase: statsUsecase,
	}
}

func (ctrl *StatsController) General(w http.ResponseWriter, r *http.Request) {
	session := middlewares.SessionFromContext(r.Context())

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.StatsUsecase.General(ctx, session)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetStatsSuccessMessage, response)
}
