package routers

import (
	"hce-service/internal/app/delivery/http/controllers"
	"hce-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachAuthRoutes(r chi.Router, mw *middlewares.Middlewares, ctrl *controllers.AuthController) {
	r.Post("/login", ctrl.Login)

	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate)
		r.Get("/me", ctrl.Me)
		r.Get("/me/site", ctrl.HomeSite)
		r.Post("/change-password", ctrl.ChangePassword)
		r.Post("/logout", ctrl.Logout)
	})
}
