package routers

import (
	"citabot-service/internal/app/config"
	"citabot-service/internal/app/delivery/http/middlewares"
	"citabot-service/internal/app/services/core/auth"
	"citabot-service/internal/app/services/core/citas"
	"citabot-service/internal/app/services/core/consultorios"
	"citabot-service/internal/app/services/core/horarios"
	"citabot-service/internal/app/services/core/menus"
	"citabot-service/internal/app/services/core/pagos"
	"citabot-service/internal/app/services/core/usuarios"
	"citabot-service/internal/app/services/core/vinculacion"
	"fmt"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	authController *auth.AuthController,
	usuarioController *usuarios.UsuarioController,
	consultorioController *consultorios.ConsultorioController,
	citaController *citas.CitaController,
	pagoController *pagos.PagoController,
	horarioController *horarios.HorarioController,
	vinculacionController *vinculacion.VinculacionController,
	menuController *menus.MenuController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, middlewares, authController)
			})

			r.Route("/usuarios", func(r chi.Router) {
				attachUsuarioRoutes(r, middlewares, usuarioController)
			})

			r.Route("/roles", func(r chi.Router) {
				attachRolRoutes(r, middlewares, usuarioController)
			})

			r.Route("/consultorios", func(r chi.Router) {
				attachConsultorioRoutes(r, middlewares, consultorioController, citaController, pagoController, horarioController)
			})

			r.Route("/vinculacion", func(r chi.Router) {
				attachVinculacionRoutes(r, middlewares, vinculacionController)
			})

			r.Route("/menu", func(r chi.Router) {
				attachMenuRoutes(r, middlewares, menuController)
			})
		})
	})
}
