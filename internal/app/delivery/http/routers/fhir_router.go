package routers

import (
	"fmt"

	"hce-service/internal/app/delivery/http/controllers"
	"hce-service/internal/app/delivery/http/middlewares"
	"hce-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachFHIRRoutes(r chi.Router, mw *middlewares.Middlewares, ctrl *controllers.FHIRController) {
	r.Use(mw.Authenticate)

	patientIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamPatientID)

	r.Route("/patients", func(r chi.Router) {
		r.Get(patientIDPattern, ctrl.Patient)
		r.Get(patientIDPattern+"/bundle", ctrl.Bundle)
		r.Post(patientIDPattern+"/sync", ctrl.SyncPatient)
	})
	r.Get(fmt.Sprintf("/encounters/{%s}", constvars.URLParamEncounterID), ctrl.Encounter)
	r.Get(fmt.Sprintf("/observations/{%s}", constvars.URLParamObservationID), ctrl.Observation)
	r.Get(fmt.Sprintf("/conditions/{%s}", constvars.URLParamDiagnosisID), ctrl.Condition)
}
