package permissions

import (
	"citabot-service/internal/app/models"
	"citabot-service/internal/pkg/constvars"
	"strings"
)

// Evaluator is a pure derivation over one UserProfile. It is built once per
// profile and holds no mutable state; callers rebuild it when the profile
// changes and must stop using it the moment the user logs out.
//
// Rule order in every predicate: superadmin override first, then literal
// matching against permisos_lista. ModulePermissions is the one exception:
// it lists literal data and is never short-circuited.
type Evaluator struct {
	user     *models.UserProfile
	permisos []string
	permSet  map[string]struct{}
	menuTree []MenuNode
}

// NewEvaluator returns nil when user is nil: "cannot determine access" is a
// distinct state from "denied" and guards handle it separately. A profile
// with missing fields degrades to an evaluator that grants nothing.
func NewEvaluator(user *models.UserProfile) *Evaluator {
	if user == nil {
		return nil
	}

	permisos := user.PermisosLista
	permSet := make(map[string]struct{}, len(permisos))
	for _, p := range permisos {
		permSet[p] = struct{}{}
	}

	e := &Evaluator{
		user:     user,
		permisos: permisos,
		permSet:  permSet,
	}
	e.menuTree = BuildMenuTree(e.AvailableModules())
	return e
}

func (e *Evaluator) IsSuperadmin() bool {
	return e != nil && e.user.EsSuperadmin
}

// HasPermission reports whether the exact string "<module>:<action>" was
// granted. An empty action defaults to READ.
func (e *Evaluator) HasPermission(module, action string) bool {
	if e == nil {
		return false
	}
	if e.user.EsSuperadmin {
		return true
	}
	if action == "" {
		action = constvars.ActionRead
	}
	_, ok := e.permSet[module+constvars.PermissionSeparator+action]
	return ok
}

// HasAnyPermission is true when at least one of the given strings was
// granted. An empty requirement list never grants access.
func (e *Evaluator) HasAnyPermission(permisos []string) bool {
	if e == nil {
		return false
	}
	if e.user.EsSuperadmin {
		return true
	}
	for _, p := range permisos {
		if _, ok := e.permSet[p]; ok {
			return true
		}
	}
	return false
}

// HasAllPermissions is true when every given string was granted. The empty
// list is vacuously true, mirroring HasAnyPermission's vacuously-false
// empty case (exists vs. for-all over the empty set).
func (e *Evaluator) HasAllPermissions(permisos []string) bool {
	if e == nil {
		return false
	}
	if e.user.EsSuperadmin {
		return true
	}
	for _, p := range permisos {
		if _, ok := e.permSet[p]; !ok {
			return false
		}
	}
	return true
}

// CanAccess reports module visibility: any action on the module grants it.
func (e *Evaluator) CanAccess(module string) bool {
	if e == nil {
		return false
	}
	if e.user.EsSuperadmin {
		return true
	}
	prefix := module + constvars.PermissionSeparator
	for _, p := range e.permisos {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	return false
}

// ModulePermissions lists the granted actions on a module as literally
// present in permisos_lista. It reflects data, not grants, so superadmin is
// not special-cased and an empty result stays an empty slice.
func (e *Evaluator) ModulePermissions(module string) []string {
	actions := []string{}
	if e == nil {
		return actions
	}
	prefix := module + constvars.PermissionSeparator
	for _, p := range e.permisos {
		if strings.HasPrefix(p, prefix) {
			actions = append(actions, strings.TrimPrefix(p, prefix))
		}
	}
	return actions
}

func (e *Evaluator) CanCreate(module string) bool {
	return e.HasPermission(module, constvars.ActionCreate)
}

func (e *Evaluator) CanRead(module string) bool {
	return e.HasPermission(module, constvars.ActionRead)
}

func (e *Evaluator) CanUpdate(module string) bool {
	return e.HasPermission(module, constvars.ActionUpdate)
}

func (e *Evaluator) CanDelete(module string) bool {
	return e.HasPermission(module, constvars.ActionDelete)
}

// Can checks an action on a module; with an empty module it becomes a
// cross-module check, matching the action suffix on any granted permission.
func (e *Evaluator) Can(action, module string) bool {
	if e == nil {
		return false
	}
	if module != "" {
		return e.HasPermission(module, action)
	}
	if e.user.EsSuperadmin {
		return true
	}
	suffix := constvars.PermissionSeparator + action
	for _, p := range e.permisos {
		if strings.HasSuffix(p, suffix) {
			return true
		}
	}
	return false
}

// HasConsultorioAccess reports whether the user is explicitly assigned to
// the consultorio. The empty id never grants access.
func (e *Evaluator) HasConsultorioAccess(consultorioID string) bool {
	if e == nil {
		return false
	}
	if e.user.EsSuperadmin {
		return true
	}
	if consultorioID == "" {
		return false
	}
	for _, c := range e.user.ConsultoriosUsuario {
		if c.ConsultorioID == consultorioID {
			return true
		}
	}
	return false
}

// HasRole checks the user's role names against the required ones; requireAll
// selects AND over the list instead of OR. Superadmin always passes.
func (e *Evaluator) HasRole(roles []string, requireAll bool) bool {
	if e == nil {
		return false
	}
	if e.user.EsSuperadmin {
		return true
	}
	if len(roles) == 0 {
		return false
	}
	assigned := make(map[string]struct{})
	for _, name := range e.user.RoleNames() {
		assigned[name] = struct{}{}
	}
	if e.user.RolActivo != "" {
		assigned[e.user.RolActivo] = struct{}{}
	}
	for _, required := range roles {
		_, ok := assigned[required]
		if requireAll && !ok {
			return false
		}
		if !requireAll && ok {
			return true
		}
	}
	return requireAll
}

// AvailableModules filters menu_modulos down to the modules the user can
// see; superadmins get the unfiltered list.
func (e *Evaluator) AvailableModules() []models.MenuModulo {
	if e == nil {
		return nil
	}
	if e.user.EsSuperadmin {
		out := make([]models.MenuModulo, len(e.user.MenuModulos))
		copy(out, e.user.MenuModulos)
		return out
	}
	out := make([]models.MenuModulo, 0, len(e.user.MenuModulos))
	for _, m := range e.user.MenuModulos {
		if e.CanAccess(m.Nombre) {
			out = append(out, m)
		}
	}
	return out
}

// MenuTree returns the navigation tree built once at construction.
func (e *Evaluator) MenuTree() []MenuNode {
	if e == nil {
		return nil
	}
	return e.menuTree
}
