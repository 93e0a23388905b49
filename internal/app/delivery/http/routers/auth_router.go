package routers

import (
	"citabot-service/internal/app/delivery/http/middlewares"
	"citabot-service/internal/app/services/core/auth"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(router chi.Router, middlewares *middlewares.Middlewares, authController *auth.AuthController) {
	router.Post("/login", authController.Login)
	router.Post("/refresh", authController.Refresh)
	router.Post("/logout", authController.Logout)
	router.With(middlewares.Authentication).Get("/me", authController.Me)
}
