package pagos

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type PagoController struct {
	Log         *zap.Logger
	PagoUsecase contracts.PagoUsecase
}

func NewPagoController(logger *zap.Logger, pagoUsecase contracts.PagoUsecase) *PagoController {
	return &PagoController{
		Log:         logger,
		PagoUsecase: pagoUsecase,
	}
}

func (ctrl *PagoController) Upsert(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("PagoController.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.UpsertMetodoPago{}
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

	metodo, err := ctrl.PagoUsecase.UpsertMetodoPago(ctx, chi.URLParam(r, "consultorioID"), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MetodoPagoSavedSuccess, metodo)
}

func (ctrl *PagoController) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	metodos, err := ctrl.PagoUsecase.ListMetodosPago(ctx, chi.URLParam(r, "consultorioID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MetodosPagoListSuccess, metodos)
}

func (ctrl *PagoController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.PagoUsecase.DeleteMetodoPago(ctx, chi.URLParam(r, "consultorioID"), chi.URLParam(r, "tipo")); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.MetodoPagoDeletedSuccess, nil)
}
