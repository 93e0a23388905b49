package routers

import (
	"citabot-service/internal/app/delivery/http/middlewares"
	"citabot-service/internal/app/services/core/menus"

	"github.com/go-chi/chi/v5"
)

func attachMenuRoutes(router chi.Router, middlewares *middlewares.Middlewares, menuController *menus.MenuController) {
	router.Use(middlewares.Authentication)

	router.Get("/", menuController.Tree)
	router.Get("/modulos", menuController.Modulos)
}
