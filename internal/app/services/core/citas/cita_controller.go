package citas

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CitaController struct {
	Log         *zap.Logger
	CitaUsecase contracts.CitaUsecase
}

func NewCitaController(logger *zap.Logger, citaUsecase contracts.CitaUsecase) *CitaController {
	return &CitaController{
		Log:         logger,
		CitaUsecase: citaUsecase,
	}
}

// Dashboard accepts optional desde/hasta query params (RFC 3339); the
// default window is the next 7 days.
func (ctrl *CitaController) Dashboard(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("CitaController.Dashboard called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	desde := time.Now().Truncate(24 * time.Hour)
	hasta := desde.AddDate(0, 0, 7)

	if raw := r.URL.Query().Get("desde"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(fmt.Errorf("invalid desde: %w", err)))
			return
		}
		desde = parsed
	}
	if raw := r.URL.Query().Get("hasta"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(fmt.Errorf("invalid hasta: %w", err)))
			return
		}
		hasta = parsed
	}
	if !hasta.After(desde) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(fmt.Errorf("hasta must be after desde")))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	dashboard, err := ctrl.CitaUsecase.Dashboard(ctx, chi.URLParam(r, "consultorioID"), desde, hasta)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardRetrievedSuccess, dashboard)
}
