package routers

import (
	"citabot-service/internal/app/delivery/http/middlewares"
	"citabot-service/internal/app/services/core/citas"
	"citabot-service/internal/app/services/core/consultorios"
	"citabot-service/internal/app/services/core/horarios"
	"citabot-service/internal/app/services/core/pagos"
	"citabot-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachConsultorioRoutes(
	router chi.Router,
	middlewares *middlewares.Middlewares,
	consultorioController *consultorios.ConsultorioController,
	citaController *citas.CitaController,
	pagoController *pagos.PagoController,
	horarioController *horarios.HorarioController,
) {
	router.Use(middlewares.Authentication)

	router.With(middlewares.GuardModule(constvars.ModuloConsultorios, false, constvars.ActionRead)).Get("/", consultorioController.List)
	router.With(middlewares.GuardSuperadmin).Post("/", consultorioController.Create)

	router.Route("/{consultorioID}", func(r chi.Router) {
		r.Use(middlewares.GuardConsultorio)

		r.With(middlewares.GuardModule(constvars.ModuloConsultorios, false, constvars.ActionRead)).Get("/", consultorioController.Get)
		r.With(middlewares.GuardModule(constvars.ModuloConsultorios, false, constvars.ActionUpdate)).Put("/", consultorioController.Update)
		r.With(middlewares.GuardSuperadmin).Delete("/", consultorioController.Delete)
		r.With(middlewares.GuardModule(constvars.ModuloConsultorios, false, constvars.ActionUpdate)).Post("/logo", consultorioController.UploadLogo)

		r.With(middlewares.GuardModule(constvars.ModuloCitas, false, constvars.ActionRead)).Get("/citas/dashboard", citaController.Dashboard)

		r.Route("/pagos", func(r chi.Router) {
			r.With(middlewares.GuardModule(constvars.ModuloPagos, false, constvars.ActionRead)).Get("/", pagoController.List)
			r.With(middlewares.GuardModule(constvars.ModuloPagos, false, constvars.ActionCreate, constvars.ActionUpdate)).Put("/", pagoController.Upsert)
			r.With(middlewares.GuardModule(constvars.ModuloPagos, false, constvars.ActionDelete)).Delete("/{tipo}", pagoController.Delete)
		})

		r.Route("/horarios", func(r chi.Router) {
			r.With(middlewares.GuardModule(constvars.ModuloHorarios, false, constvars.ActionRead)).Get("/", horarioController.List)
			r.With(middlewares.GuardModule(constvars.ModuloHorarios, false, constvars.ActionCreate, constvars.ActionUpdate)).Put("/", horarioController.Upsert)
			r.With(middlewares.GuardModule(constvars.ModuloHorarios, false, constvars.ActionDelete)).Delete("/{diaSemana}", horarioController.Delete)
		})
	})
}
