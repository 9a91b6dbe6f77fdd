package routers

import (
	"fmt"

	"hce-service/internal/app/delivery/http/controllers"
	"hce-service/internal/app/delivery/http/middlewares"
	"hce-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(r chi.Router, mw *middlewares.Middlewares, ctrl *controllers.UserController) {
	r.Use(mw.Authenticate)

	userIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamUserID)

	r.Post("/", ctrl.Create)
	r.Get("/", ctrl.List)
	r.Get(userIDPattern, ctrl.FindByID)
	r.Put(userIDPattern, ctrl.Update)
	r.Delete(userIDPattern, ctrl.Deactivate)
}
