package routers

import (
	"hce-service/internal/app/delivery/http/controllers"
	"hce-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
)

func attachObservationRoutes(r chi.Router, mw *middlewares.Middlewares, ctrl *controllers.ObservationController) {
	r.Use(mw.Authenticate)
	r.Post("/", ctrl.Create)
}

func attachDiagnosisRoutes(r chi.Router, mw *middlewares.Middlewares, ctrl *controllers.DiagnosisController) {
	r.Use(mw.Authenticate)
	r.Post("/", ctrl.Create)
}

func attachMedicationRoutes(r chi.Router, mw *middlewares.Middlewares, ctrl *controllers.MedicationController) {
	r.Use(mw.Authenticate)
	r.Post("/", ctrl.Create)
}

func attachStatsRoutes(r chi.Router, mw *middlewares.Middlewares, ctrl *controllers.StatsController) {
	r.Use(mw.Authenticate)
	r.Get("/general", ctrl.General)
}
