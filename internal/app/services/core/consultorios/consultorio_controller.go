package consultorios

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

type ConsultorioController struct {
	Log                *zap.Logger
	ConsultorioUsecase contracts.ConsultorioUsecase
	MaxUploadBytes     int64
}

func NewConsultorioController(logger *zap.Logger, consultorioUsecase contracts.ConsultorioUsecase, maxUploadMB int) *ConsultorioController {
	return &ConsultorioController{
		Log:                logger,
		ConsultorioUsecase: consultorioUsecase,
		MaxUploadBytes:     int64(maxUploadMB) * 1024 * 1024,
	}
}

func (ctrl *ConsultorioController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("ConsultorioController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.CreateConsultorio{}
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

	consultorio, err := ctrl.ConsultorioUsecase.CreateConsultorio(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.ConsultorioCreatedSuccess, consultorio)
}

func (ctrl *ConsultorioController) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consultorio, err := ctrl.ConsultorioUsecase.GetConsultorio(ctx, chi.URLParam(r, "consultorioID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultoriosListSuccess, consultorio)
}

func (ctrl *ConsultorioController) List(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consultorios, err := ctrl.ConsultorioUsecase.ListConsultorios(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultoriosListSuccess, consultorios)
}

func (ctrl *ConsultorioController) Update(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpdateConsultorio{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	consultorio, err := ctrl.ConsultorioUsecase.UpdateConsultorio(ctx, chi.URLParam(r, "consultorioID"), request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultorioUpdatedSuccess, consultorio)
}

func (ctrl *ConsultorioController) Delete(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ConsultorioUsecase.DeleteConsultorio(ctx, chi.URLParam(r, "consultorioID")); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ConsultorioDeletedSuccess, nil)
}

func (ctrl *ConsultorioController) UploadLogo(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("ConsultorioController.UploadLogo called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	r.Body = http.MaxBytesReader(w, r.Body, ctrl.MaxUploadBytes)
	if err := r.ParseMultipartForm(ctrl.MaxUploadBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}

	file, header, err := r.FormFile("logo")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrImageValidation(err))
		return
	}
	defer file.Close()

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	logoURL, err := ctrl.ConsultorioUsecase.UploadLogo(ctx, chi.URLParam(r, "consultorioID"), header.Filename, header.Size, file)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoUploadedSuccess, map[string]string{"logo_url": logoURL})
}
