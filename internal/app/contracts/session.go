package contracts

import (
	"context"
	"time"

	"hce-service/internal/app/models"
)

// SessionRepository stores sessions in Redis keyed by session id. The JWT
// handed to the client only names the session; revoking the session revokes
// the token.
type SessionRepository interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}
