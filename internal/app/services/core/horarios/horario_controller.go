package horarios

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type HorarioController struct {
	Log            *zap.Logger
	HorarioUsecase contracts.HorarioUsecase
}

func NewHorarioController(logger *zap.Logger, horarioUsecase contracts.HorarioUsecase) *HorarioController {
	return &HorarioController{
		Log:            logger,
		HorarioUsecase: horarioUsecase,
	}
}

func (ctrl *HorarioController) Upsert(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("HorarioController.Upsert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.UpsertHorario{}
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

	horario, err := ctrl.HorarioUsecase.UpsertHorario(ctx, chi.URLParam(r, "consultorioID"), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HorarioSavedSuccess, horario)
}

func (ctrl *HorarioController) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	horarios, err := ctrl.HorarioUsecase.ListHorarios(ctx, chi.URLParam(r, "consultorioID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HorariosListSuccess, horarios)
}

func (ctrl *HorarioController) Delete(w http.ResponseWriter, r *http.Request) {
	diaSemana, err := strconv.Atoi(chi.URLParam(r, "diaSemana"))
	if err != nil || diaSemana < 0 || diaSemana > 6 {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(fmt.Errorf("invalid dia_semana")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.HorarioUsecase.DeleteHorario(ctx, chi.URLParam(r, "consultorioID"), diaSemana); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HorarioSavedSuccess, nil)
}
