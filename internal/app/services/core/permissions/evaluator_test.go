package permissions

import (
	"testing"

	"citabot-service/internal/app/models"

	"github.com/stretchr/testify/assert"
)

func perfilConPermisos(superadmin bool, permisos ...string) *models.UserProfile {
	return &models.UserProfile{
		EsSuperadmin:  superadmin,
		PermisosLista: permisos,
	}
}

func TestNewEvaluatorNilProfile(t *testing.T) {
	assert.Nil(t, NewEvaluator(nil), "no profile means no evaluator, not a deny-all one")

	var e *Evaluator
	assert.False(t, e.HasPermission("CITAS", "READ"))
	assert.False(t, e.CanAccess("CITAS"))
	assert.False(t, e.HasConsultorioAccess("c-1"))
	assert.Empty(t, e.ModulePermissions("CITAS"))
}

func TestVacuousQuantifiers(t *testing.T) {
	e := NewEvaluator(perfilConPermisos(false, "CITAS:READ"))

	assert.False(t, e.HasAnyPermission([]string{}), "any over empty set must be false")
	assert.False(t, e.HasAnyPermission(nil))
	assert.True(t, e.HasAllPermissions([]string{}), "all over empty set must be true")
	assert.True(t, e.HasAllPermissions(nil))
}

func TestSuperadminOverride(t *testing.T) {
	e := NewEvaluator(perfilConPermisos(true))

	assert.True(t, e.HasPermission("ANYTHING", "ANY"))
	assert.True(t, e.HasAnyPermission(nil))
	assert.True(t, e.HasAnyPermission([]string{"NOPE:NOPE"}))
	assert.True(t, e.HasAllPermissions([]string{"NOPE:NOPE"}))
	assert.True(t, e.CanAccess("ANYTHING"))
	assert.True(t, e.HasConsultorioAccess("cualquier-consultorio"))
	assert.True(t, e.HasConsultorioAccess(""))
	assert.True(t, e.Can("EXPORT", ""))
	assert.True(t, e.HasRole([]string{"ADMIN"}, true))

	assert.Empty(t, e.ModulePermissions("ANYTHING"),
		"module listing reflects literal data even for superadmins")
}

func TestExactMatchPermission(t *testing.T) {
	e := NewEvaluator(perfilConPermisos(false, "CITAS:READ"))

	assert.True(t, e.HasPermission("CITAS", "READ"))
	assert.False(t, e.HasPermission("CITAS", "READX"), "no prefix matching on actions")
	assert.False(t, e.HasPermission("CITA", "READ"), "no prefix matching on modules")
	assert.True(t, e.HasPermission("CITAS", ""), "empty action defaults to READ")
}

func TestModulePermissionsListing(t *testing.T) {
	e := NewEvaluator(perfilConPermisos(false,
		"FACTURACION:READ", "FACTURACION:UPDATE", "USUARIOS:READ"))

	assert.Equal(t, []string{"READ", "UPDATE"}, e.ModulePermissions("FACTURACION"))
	assert.Equal(t, []string{}, e.ModulePermissions("CITAS"), "empty slice, never nil")
}

func TestAggregateChecks(t *testing.T) {
	e := NewEvaluator(perfilConPermisos(false, "CITAS:READ", "CITAS:CREATE"))

	assert.False(t, e.HasPermission("CITAS", "DELETE"))
	assert.True(t, e.HasAnyPermission([]string{"CITAS:DELETE", "CITAS:CREATE"}))
	assert.True(t, e.HasAllPermissions([]string{"CITAS:READ", "CITAS:CREATE"}))
	assert.False(t, e.HasAllPermissions([]string{"CITAS:READ", "CITAS:DELETE"}))
}

func TestCanAccessAnyActionGrantsVisibility(t *testing.T) {
	e := NewEvaluator(perfilConPermisos(false, "CITAS:EXPORTAR"))

	assert.True(t, e.CanAccess("CITAS"), "custom actions still make the module visible")
	assert.False(t, e.CanAccess("USUARIOS"))
}

func TestCrudSugar(t *testing.T) {
	e := NewEvaluator(perfilConPermisos(false, "PAGOS:CREATE", "PAGOS:READ"))

	assert.True(t, e.CanCreate("PAGOS"))
	assert.True(t, e.CanRead("PAGOS"))
	assert.False(t, e.CanUpdate("PAGOS"))
	assert.False(t, e.CanDelete("PAGOS"))
}

func TestCanCrossModule(t *testing.T) {
	e := NewEvaluator(perfilConPermisos(false, "CITAS:READ", "USUARIOS:DELETE"))

	assert.True(t, e.Can("DELETE", ""), "some module grants DELETE")
	assert.False(t, e.Can("UPDATE", ""))
	assert.True(t, e.Can("READ", "CITAS"))
	assert.False(t, e.Can("READ", "PAGOS"))
}

func TestHasConsultorioAccess(t *testing.T) {
	perfil := perfilConPermisos(false)
	perfil.ConsultoriosUsuario = []models.ConsultorioUsuario{
		{ConsultorioID: "c-1", Nombre: "Consultorio Centro", RolNombre: "MEDICO"},
	}
	e := NewEvaluator(perfil)

	assert.True(t, e.HasConsultorioAccess("c-1"))
	assert.False(t, e.HasConsultorioAccess("c-2"))
	assert.False(t, e.HasConsultorioAccess(""), "empty id never grants access")
}

func TestHasRole(t *testing.T) {
	perfil := perfilConPermisos(false)
	perfil.ConsultoriosUsuario = []models.ConsultorioUsuario{
		{ConsultorioID: "c-1", RolNombre: "MEDICO"},
		{ConsultorioID: "c-2", RolNombre: "RECEPCION"},
	}
	e := NewEvaluator(perfil)

	assert.True(t, e.HasRole([]string{"MEDICO"}, false))
	assert.True(t, e.HasRole([]string{"MEDICO", "ADMIN"}, false))
	assert.False(t, e.HasRole([]string{"MEDICO", "ADMIN"}, true))
	assert.True(t, e.HasRole([]string{"MEDICO", "RECEPCION"}, true))
	assert.False(t, e.HasRole(nil, false), "empty requirement grants nothing")

	global := perfilConPermisos(false)
	global.RolGlobal = &models.RolDescriptor{Nombre: "AUDITOR"}
	assert.True(t, NewEvaluator(global).HasRole([]string{"AUDITOR"}, true))
}

func TestDuplicatePermissionsTolerated(t *testing.T) {
	e := NewEvaluator(perfilConPermisos(false, "CITAS:READ", "CITAS:READ"))

	assert.True(t, e.HasPermission("CITAS", "READ"))
	assert.Equal(t, []string{"READ", "READ"}, e.ModulePermissions("CITAS"),
		"listing mirrors the literal list, duplicates included")
}

func TestPredicatesAreIdempotent(t *testing.T) {
	e := NewEvaluator(perfilConPermisos(false, "CITAS:READ"))

	for i := 0; i < 3; i++ {
		assert.True(t, e.HasPermission("CITAS", "READ"))
		assert.False(t, e.HasPermission("CITAS", "DELETE"))
		assert.Equal(t, []string{"READ"}, e.ModulePermissions("CITAS"))
	}
}

func TestAvailableModulesFiltering(t *testing.T) {
	padre := 1
	modulos := []models.MenuModulo{
		{ModuloID: 1, Nombre: "CITAS", Orden: 1},
		{ModuloID: 2, Nombre: "USUARIOS", Orden: 2},
		{ModuloID: 3, Nombre: "CITAS", Orden: 3, ModuloPadreID: &padre},
	}

	perfil := perfilConPermisos(false, "CITAS:READ")
	perfil.MenuModulos = modulos
	e := NewEvaluator(perfil)

	visibles := e.AvailableModules()
	assert.Len(t, visibles, 2)
	for _, m := range visibles {
		assert.Equal(t, "CITAS", m.Nombre)
	}

	sa := perfilConPermisos(true)
	sa.MenuModulos = modulos
	assert.Len(t, NewEvaluator(sa).AvailableModules(), 3, "superadmin sees everything")
}

func TestConsultorioActualResolution(t *testing.T) {
	perfil := &models.UserProfile{
		ConsultorioContextoActual: "ctx",
		ConsultorioPrincipal:      "principal",
		UltimoConsultorioActivo:   "ultimo",
	}
	assert.Equal(t, "ctx", perfil.ConsultorioActual())

	perfil.ConsultorioContextoActual = ""
	assert.Equal(t, "principal", perfil.ConsultorioActual())

	perfil.ConsultorioPrincipal = ""
	assert.Equal(t, "ultimo", perfil.ConsultorioActual())

	var ninguno *models.UserProfile
	assert.Equal(t, "", ninguno.ConsultorioActual())
}
