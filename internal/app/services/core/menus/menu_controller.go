package menus

import (
	"citabot-service/internal/app/services/core/permissions"
	"citabot-service/internal/pkg/constvars"
	"citabot-service/internal/pkg/exceptions"
	"citabot-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

// MenuController serves the menu the signed-in user may see. The filtering
// itself lives in the permissions evaluator the authentication middleware
// put in the request context.
type MenuController struct {
	Log *zap.Logger
}

func NewMenuController(logger *zap.Logger) *MenuController {
	return &MenuController{Log: logger}
}

func (ctrl *MenuController) Tree(w http.ResponseWriter, r *http.Request) {
	evaluator, ok := r.Context().Value(constvars.CONTEXT_EVALUATOR_KEY).(*permissions.Evaluator)
	if !ok || evaluator == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated())
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModulosRetrievedSuccess, evaluator.MenuTree())
}

func (ctrl *MenuController) Modulos(w http.ResponseWriter, r *http.Request) {
	evaluator, ok := r.Context().Value(constvars.CONTEXT_EVALUATOR_KEY).(*permissions.Evaluator)
	if !ok || evaluator == nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrNotAuthenticated())
		return
	}
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ModulosRetrievedSuccess, evaluator.AvailableModules())
}
