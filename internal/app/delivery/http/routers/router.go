package routers

import (
	"fmt"
	"time"

	"hce-service/internal/app/config"
	"hce-service/internal/app/delivery/http/controllers"
	"hce-service/internal/app/delivery/http/middlewares"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	mw *middlewares.Middlewares,
	authController *controllers.AuthController,
	userController *controllers.UserController,
	patientController *controllers.PatientController,
	encounterController *controllers.EncounterController,
	observationController *controllers.ObservationController,
	diagnosisController *controllers.DiagnosisController,
	medicationController *controllers.MedicationController,
	statsController *controllers.StatsController,
	fhirController *controllers.FHIRController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	// Rate limiting middleware using httprate
	rateLimiter := httprate.LimitByIP(
		internalConfig.App.MaxRequests,
		time.Duration(internalConfig.App.MaxTimeRequestsPerSeconds)*time.Second,
	)
	router.Use(rateLimiter)

	router.Use(mw.RequestID)
	router.Use(mw.Logging)
	router.Use(mw.Recover)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, mw, authController)
			})

			r.Route("/users", func(r chi.Router) {
				attachUserRoutes(r, mw, userController)
			})

			r.Route("/patients", func(r chi.Router) {
				attachPatientRoutes(r, mw, patientController, observationController, diagnosisController, medicationController)
			})

			r.Route("/encounters", func(r chi.Router) {
				attachEncounterRoutes(r, mw, encounterController, observationController, diagnosisController, medicationController)
			})

			r.Route("/observations", func(r chi.Router) {
				attachObservationRoutes(r, mw, observationController)
			})

			r.Route("/diagnoses", func(r chi.Router) {
				attachDiagnosisRoutes(r, mw, diagnosisController)
			})

			r.Route("/medications", func(r chi.Router) {
				attachMedicationRoutes(r, mw, medicationController)
			})

			r.Route("/stats", func(r chi.Router) {
				attachStatsRoutes(r, mw, statsController)
			})

			r.Route("/fhir", func(r chi.Router) {
				attachFHIRRoutes(r, mw, fhirController)
			})
		})
	})
}
