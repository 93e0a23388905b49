package routers

import (
	"citabot-service/internal/app/delivery/http/middlewares"
	"citabot-service/internal/app/services/core/vinculacion"
	"citabot-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachVinculacionRoutes(router chi.Router, middlewares *middlewares.Middlewares, vinculacionController *vinculacion.VinculacionController) {
	// Meta redirects the browser here mid-wizard, so the callback cannot
	// sit behind the session cookie; the state token is its credential.
	router.Get("/callback", vinculacionController.Callback)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.Authentication)
		r.Use(middlewares.GuardModule(constvars.ModuloWhatsApp, false, constvars.ActionUpdate))

		r.Post("/iniciar", vinculacionController.Iniciar)
		r.Post("/finalizar", vinculacionController.Finalizar)
		r.Get("/{state}", vinculacionController.Status)
	})
}
