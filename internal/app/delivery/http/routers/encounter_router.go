package routers

import (
	"fmt"

	"hce-service/internal/app/delivery/http/controllers"
	"hce-service/internal/app/delivery/http/middlewares"
	"hce-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachEncounterRoutes(
	r chi.Router,
	mw *middlewares.Middlewares,
	ctrl *controllers.EncounterController,
	observationCtrl *controllers.ObservationController,
	diagnosisCtrl *controllers.DiagnosisController,
	medicationCtrl *controllers.MedicationController,
) {
	r.Use(mw.Authenticate)

	encounterIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamEncounterID)

	r.Post("/", ctrl.Create)
	r.Get("/", ctrl.List)
	r.Get(encounterIDPattern, ctrl.Detail)
	r.Put(encounterIDPattern, ctrl.Update)
	r.Patch(encounterIDPattern+"/finalize", ctrl.Finalize)

	r.Get(encounterIDPattern+"/observations", observationCtrl.ListByEncounter)
	r.Get(encounterIDPattern+"/diagnoses", diagnosisCtrl.ListByEncounter)
	r.Get(encounterIDPattern+"/medications", medicationCtrl.ListByEncounter)
}
