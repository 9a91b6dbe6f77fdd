package routers

import (
	"fmt"

	"hce-service/internal/app/delivery/http/controllers"
	"hce-service/internal/app/delivery/http/middlewares"
	"hce-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(
	r chi.Router,
	mw *middlewares.Middlewares,
	ctrl *controllers.PatientController,
	observationCtrl *controllers.ObservationController,
	diagnosisCtrl *controllers.DiagnosisController,
	medicationCtrl *controllers.MedicationController,
) {
	r.Use(mw.Authenticate)

	patientIDPattern := fmt.Sprintf("/{%s}", constvars.URLParamPatientID)

	r.Post("/", ctrl.Create)
	r.Get("/", ctrl.Search)
	r.Get(patientIDPattern, ctrl.FindByID)
	r.Put(patientIDPattern, ctrl.Update)
	r.Delete(patientIDPattern, ctrl.Delete)

	r.Get(patientIDPattern+"/record", ctrl.Record)
	r.Get(patientIDPattern+"/observations", observationCtrl.ListByPatient)
	r.Get(patientIDPattern+"/diagnoses", diagnosisCtrl.ListByPatient)
	r.Get(patientIDPattern+"/medications", medicationCtrl.ListByPatient)
}
