package auth

import (
	"citabot-service/internal/app/config"
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/dto/responses"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AuthController struct {
	Log            *zap.Logger
	AuthUsecase    contracts.AuthUsecase
	InternalConfig *config.InternalConfig
}

func NewAuthController(logger *zap.Logger, authUsecase contracts.AuthUsecase, internalConfig *config.InternalConfig) *AuthController {
	return &AuthController{
		Log:            logger,
		AuthUsecase:    authUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AuthController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.Login{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, token, err := ctrl.AuthUsecase.Login(ctx, request)
	if err != nil {
		if err == context.DeadlineExceeded {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.setSessionCookie(w, token, session.ExpiresAt)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccess, responses.Login{User: session.Perfil})
}

func (ctrl *AuthController) Me(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok {
		ctrl.Log.Error("AuthController.Me session not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	perfil, err := ctrl.AuthUsecase.Me(ctx, session.SessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ProfileRetrievedSuccess, responses.Me{User: perfil})
}

// Refresh stands outside the authentication middleware: it only needs the
// cookie to still parse, the session lookup happens in the usecase.
func (ctrl *AuthController) Refresh(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("AuthController.Refresh called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	sessionID, err := ctrl.sessionIDFromCookie(r)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	session, token, err := ctrl.AuthUsecase.Refresh(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.setSessionCookie(w, token, session.ExpiresAt)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SessionRefreshSuccess, responses.Me{User: session.Perfil})
}

// Logout always clears the cookie and reports success, even when the
// server-side session is already gone.
func (ctrl *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)

	if sessionID, err := ctrl.sessionIDFromCookie(r); err == nil {
		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		if err := ctrl.AuthUsecase.Logout(ctx, sessionID); err != nil {
			ctrl.Log.Warn("AuthController.Logout failed to delete session",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
		}
	}

	ctrl.clearSessionCookie(w)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccess, nil)
}

func (ctrl *AuthController) sessionIDFromCookie(r *http.Request) (string, error) {
	cookie, err := r.Cookie(constvars.SessionCookieName)
	if err != nil {
		return "", exceptions.ErrNotAuthenticated()
	}
	return utils.ParseSessionJWT(cookie.Value, ctrl.InternalConfig.JWT.Secret)
}

func (ctrl *AuthController) setSessionCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.App.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (ctrl *AuthController) clearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     constvars.SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   ctrl.InternalConfig.App.CookieSecure,
		SameSite: http.SameSiteLaxMode,
	})
}
