package middlewares

import (
	"context"
	"net/http"
	"strings"

	"hce-service/internal/app/models"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/utils"
)

// Authenticate resolves the bearer token to a live session. The token only
// names a session id; the session store in Redis stays the single authority
// on who the caller is, so deactivating an account or logging out takes
// effect immediately.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get(constvars.HeaderAuthorization)
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimPrefix(header, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		session, err := m.SessionRepository.Find(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// SessionFromContext returns the authenticated session placed by
// Authenticate, or nil on unauthenticated routes.
func SessionFromContext(ctx context.Context) *models.Session {
	session, _ := ctx.Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	return session
}
