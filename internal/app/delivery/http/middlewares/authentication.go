package middlewares

import (
	"citabot-service/internal/app/services/core/permissions"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"context"
	"net/http"

	"go.uber.org/zap"
)

// Authentication resolves the session cookie into the redis-backed session
// and seeds the request context with the session, the profile and a
// permissions evaluator built from it.
func (m *Middlewares) Authentication(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

		cookie, err := r.Cookie(constvars.SessionCookieName)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthenticated())
			return
		}

		sessionID, err := utils.ParseSessionJWT(cookie.Value, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.RedisRepository.GetSession(r.Context(), sessionID)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}
		if session == nil {
			m.Log.Warn("Authentication session not found",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession())
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_KEY, session)
		ctx = context.WithValue(ctx, constvars.CONTEXT_PROFILE_KEY, session.Perfil)
		ctx = context.WithValue(ctx, constvars.CONTEXT_EVALUATOR_KEY, permissions.NewEvaluator(session.Perfil))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
