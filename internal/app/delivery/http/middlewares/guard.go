package middlewares

import (
	"citabot-service/internal/app/services/core/permissions"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func evaluatorFrom(r *http.Request) *permissions.Evaluator {
	evaluator, _ := r.Context().Value(constvars.CONTEXT_EVALUATOR_KEY).(*permissions.Evaluator)
	return evaluator
}

// GuardModule admits the request when the user holds module permissions for
// the given actions. With no actions it only requires module visibility;
// requireAll switches the action check from any-of to all-of.
func (m *Middlewares) GuardModule(module string, requireAll bool, actions ...string) func(http.Handler) http.Handler {
	permisos := make([]string, 0, len(actions))
	for _, action := range actions {
		permisos = append(permisos, module+constvars.PermissionSeparator+action)
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			evaluator := evaluatorFrom(r)
			if evaluator == nil {
				w.WriteHeader(constvars.StatusUnauthorized)
				return
			}

			allowed := false
			switch {
			case len(permisos) == 0:
				allowed = evaluator.CanAccess(module)
			case requireAll:
				allowed = evaluator.HasAllPermissions(permisos)
			default:
				allowed = evaluator.HasAnyPermission(permisos)
			}

			if !allowed {
				requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
				m.Log.Warn("GuardModule denied",
					zap.String(constvars.LoggingRequestIDKey, requestID),
					zap.String("module", module),
					zap.Strings("permisos", permisos),
				)
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middlewares) GuardRole(requireAll bool, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			evaluator := evaluatorFrom(r)
			if evaluator == nil {
				w.WriteHeader(constvars.StatusUnauthorized)
				return
			}
			if !evaluator.HasRole(roles, requireAll) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func (m *Middlewares) GuardSuperadmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		evaluator := evaluatorFrom(r)
		if evaluator == nil {
			w.WriteHeader(constvars.StatusUnauthorized)
			return
		}
		if !evaluator.IsSuperadmin() {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized())
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GuardConsultorio checks the consultorioID route param against the user's
// consultorio membership; superadmins pass inside the evaluator.
func (m *Middlewares) GuardConsultorio(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		evaluator := evaluatorFrom(r)
		if evaluator == nil {
			w.WriteHeader(constvars.StatusUnauthorized)
			return
		}
		if !evaluator.HasConsultorioAccess(chi.URLParam(r, "consultorioID")) {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrNotAuthorized())
			return
		}
		next.ServeHTTP(w, r)
	})
}
