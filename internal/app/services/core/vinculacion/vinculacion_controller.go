package vinculacion

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type VinculacionController struct {
	Log                *zap.Logger
	VinculacionUsecase contracts.VinculacionUsecase
}

func NewVinculacionController(logger *zap.Logger, vinculacionUsecase contracts.VinculacionUsecase) *VinculacionController {
	return &VinculacionController{
		Log:                logger,
		VinculacionUsecase: vinculacionUsecase,
	}
}

func (ctrl *VinculacionController) Iniciar(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("VinculacionController.Iniciar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated())
		return
	}

	request := &requests.IniciarVinculacion{}
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

	response, err := ctrl.VinculacionUsecase.Iniciar(ctx, session.UsuarioID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VinculacionStartedSuccess, response)
}

// Callback is where Meta redirects the browser back to; it carries the
// state token and the short-lived authorization code.
func (ctrl *VinculacionController) Callback(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("VinculacionController.Callback called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.CallbackVinculacion{
		State: r.URL.Query().Get("state"),
		Code:  r.URL.Query().Get("code"),
	}
	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.VinculacionUsecase.Callback(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VinculacionCallbackSuccess, response)
}

func (ctrl *VinculacionController) Finalizar(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("VinculacionController.Finalizar called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.FinalizarVinculacion{}
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

	response, err := ctrl.VinculacionUsecase.Finalizar(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VinculacionDoneSuccess, response)
}

func (ctrl *VinculacionController) Status(w http.ResponseWriter, r *http.Request) {
	state := chi.URLParam(r, "state")
	if state == "" {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(fmt.Errorf("missing state")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.VinculacionUsecase.Status(ctx, state)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.VinculacionStatusSuccess, response)
}
