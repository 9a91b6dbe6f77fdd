package middlewares

import (
	"hce-service/internal/app/config"
	"hce-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log               *zap.Logger
	SessionRepository contracts.SessionRepository
	InternalConfig    *config.InternalConfig
}

func NewMiddlewares(
	logger *zap.Logger,
	sessionRepository contracts.SessionRepository,
	internalConfig *config.InternalConfig,
) *Middlewares {
	return &Middlewares{
		Log:               logger,
		SessionRepository: sessionRepository,
		InternalConfig:    internalConfig,
	}
}
