package usuarios

import (
	"citabot-service/internal/app/contracts"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/dto/requests"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UsuarioController struct {
	Log            *zap.Logger
	UsuarioUsecase contracts.UsuarioUsecase
}

func NewUsuarioController(logger *zap.Logger, usuarioUsecase contracts.UsuarioUsecase) *UsuarioController {
	return &UsuarioController{
		Log:            logger,
		UsuarioUsecase: usuarioUsecase,
	}
}

func (ctrl *UsuarioController) Create(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("UsuarioController.Create called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.CreateUsuario{}
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

	usuarioID, err := ctrl.UsuarioUsecase.CreateUsuario(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.UsuarioCreatedSuccess, map[string]string{"usuario_id": usuarioID})
}

func (ctrl *UsuarioController) Get(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	usuario, err := ctrl.UsuarioUsecase.GetUsuario(ctx, chi.URLParam(r, "usuarioID"))
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UsuariosRetrievedSuccess, usuario)
}

func (ctrl *UsuarioController) List(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("pageSize"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	usuarios, total, err := ctrl.UsuarioUsecase.ListUsuarios(ctx, page, pageSize)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	pagination := utils.BuildPaginationResponse(total, page, pageSize, r.URL.Path)
	utils.BuildPaginatedResponse(w, constvars.StatusOK, constvars.UsuariosRetrievedSuccess, usuarios, pagination)
}

func (ctrl *UsuarioController) Update(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpdateUsuario{}
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.UsuarioUsecase.UpdateUsuario(ctx, chi.URLParam(r, "usuarioID"), request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UsuarioUpdatedSuccess, nil)
}

func (ctrl *UsuarioController) AssignRoles(w http.ResponseWriter, r *http.Request) {
	requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	ctrl.Log.Info("UsuarioController.AssignRoles called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := &requests.AssignRoles{}
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

	if err := ctrl.UsuarioUsecase.AssignRoles(ctx, chi.URLParam(r, "usuarioID"), request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RolesAssignedSuccess, nil)
}

func (ctrl *UsuarioController) UpsertRol(w http.ResponseWriter, r *http.Request) {
	request := &requests.UpsertRol{}
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

	if err := ctrl.UsuarioUsecase.UpsertRol(ctx, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RolesAssignedSuccess, nil)
}

func (ctrl *UsuarioController) ListRoles(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	roles, err := ctrl.UsuarioUsecase.ListRoles(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UsuariosRetrievedSuccess, roles)
}
