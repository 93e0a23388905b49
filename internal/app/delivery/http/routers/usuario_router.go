package routers

import (
	"citabot-service/internal/app/delivery/http/middlewares"
	"citabot-service/internal/app/services/core/usuarios"
	"citabot-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUsuarioRoutes(router chi.Router, middlewares *middlewares.Middlewares, usuarioController *usuarios.UsuarioController) {
	router.Use(middlewares.Authentication)

	router.With(middlewares.GuardModule(constvars.ModuloUsuarios, false, constvars.ActionRead)).Get("/", usuarioController.List)
	router.With(middlewares.GuardModule(constvars.ModuloUsuarios, false, constvars.ActionRead)).Get("/{usuarioID}", usuarioController.Get)
	router.With(middlewares.GuardModule(constvars.ModuloUsuarios, false, constvars.ActionCreate)).Post("/", usuarioController.Create)
	router.With(middlewares.GuardModule(constvars.ModuloUsuarios, false, constvars.ActionUpdate)).Put("/{usuarioID}", usuarioController.Update)
	router.With(middlewares.GuardSuperadmin).Put("/{usuarioID}/roles", usuarioController.AssignRoles)
}

func attachRolRoutes(router chi.Router, middlewares *middlewares.Middlewares, usuarioController *usuarios.UsuarioController) {
	router.Use(middlewares.Authentication)

	router.With(middlewares.GuardModule(constvars.ModuloUsuarios, false, constvars.ActionRead)).Get("/", usuarioController.ListRoles)
	router.With(middlewares.GuardSuperadmin).Put("/", usuarioController.UpsertRol)
}
