package session

import (
	"context"
	"sync"
	"time"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const sessionKeyPrefix = "session:"

type sessionRedisRepository struct {
	Client *redis.Client
	Log    *zap.Logger
}

var (
	sessionRedisRepositoryInstance contracts.SessionRepository
	onceSessionRedisRepository     sync.Once
)

func NewSessionRedisRepository(client *redis.Client, logger *zap.Logger) contracts.SessionRepository {
	onceSessionRedisRepository.Do(func() {
		sessionRedisRepositoryInstance = &sessionRedisRepository{
			Client: client,
			Log:    logger,
		}
	})
	return sessionRedisRepositoryInstance
}

func (r *sessionRedisRepository) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sessionRedisRepository.Save called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int64(constvars.LoggingUserIDKey, session.UserID),
	)

	payload, err := json.Marshal(session)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = r.Client.Set(ctx, sessionKeyPrefix+session.SessionID, payload, ttl).Err()
	if err != nil {
		r.Log.Error("sessionRedisRepository.Save error setting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrRedisSet(err)
	}
	return nil
}

func (r *sessionRedisRepository) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sessionRedisRepository.Find called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	payload, err := r.Client.Get(ctx, sessionKeyPrefix+sessionID).Result()
	if err == redis.Nil {
		return nil, exceptions.ErrSessionNotFound(err)
	}
	if err != nil {
		r.Log.Error("sessionRedisRepository.Find error getting session",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrRedisGet(err)
	}

	var session models.Session
	if err := json.Unmarshal([]byte(payload), &session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return &session, nil
}

func (r *sessionRedisRepository) Delete(ctx context.Context, sessionID string) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	r.Log.Info("sessionRedisRepository.Delete called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	err := r.Client.Del(ctx, sessionKeyPrefix+sessionID).Err()
	if err != nil {
		return exceptions.ErrRedisSet(err)
	}
	return nil
}
