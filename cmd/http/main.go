package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hce-service/cmd/migration"
	"hce-service/internal/app/config"
	"hce-service/internal/app/delivery/http/controllers"
	"hce-service/internal/app/delivery/http/middlewares"
	"hce-service/internal/app/delivery/http/routers"
	"hce-service/internal/app/drivers/database"
	"hce-service/internal/app/drivers/logger"
	"hce-service/internal/app/services/core/auth"
	"hce-service/internal/app/services/core/diagnoses"
	"hce-service/internal/app/services/core/encounters"
	"hce-service/internal/app/services/core/fhir"
	"hce-service/internal/app/services/core/medications"
	"hce-service/internal/app/services/core/observations"
	"hce-service/internal/app/services/core/patients"
	"hce-service/internal/app/services/core/records"
	"hce-service/internal/app/services/core/sites"
	"hce-service/internal/app/services/core/stats"
	"hce-service/internal/app/services/core/users"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/app/services/shared/fhircodec"
	"hce-service/internal/app/services/shared/fhirserver"
	"hce-service/internal/app/services/shared/session"
	"hce-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewZapLogger(driverConfig, internalConfig)

	postgresDB := database.NewPostgresDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	chiRouter := chi.NewRouter()

	if utils.GetEnvBool("APP_RUN_MIGRATIONS", false) {
		migration.Run(postgresDB)
	}

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		PostgresDB:     postgresDB,
		Redis:          redisClient,
		Logger:         log,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		logrus.Printf("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests already received by the server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Server forced to shutdown: %v", err)
	}

	err = bootstrap.Shutdown(shutdownCtx)
	if err != nil {
		logrus.Fatalf("Error closing application resources: %v", err)
	}

	logrus.Println("Server exiting")
}

func bootstrapTheApp(bootstrap config.Bootstrap) {
	// Access scope resolver, shared by every usecase
	resolver := accessscope.NewResolver()

	// Session store
	sessionRepository := session.NewSessionRedisRepository(bootstrap.Redis, bootstrap.Logger)

	// Middlewares
	mw := middlewares.NewMiddlewares(bootstrap.Logger, sessionRepository, bootstrap.InternalConfig)

	// Repositories
	userRepository := users.NewUserPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	siteRepository := sites.NewSitePostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	patientRepository := patients.NewPatientPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	encounterRepository := encounters.NewEncounterPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	observationRepository := observations.NewObservationPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	diagnosisRepository := diagnoses.NewDiagnosisPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	medicationRepository := medications.NewMedicationPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)
	statsRepository := stats.NewStatsPostgresRepository(bootstrap.PostgresDB, bootstrap.Logger)

	// FHIR codec and the external server client
	codec := fhircodec.NewCodec(bootstrap.Logger)
	fhirClient := fhirserver.NewFHIRClient(bootstrap.InternalConfig.FHIR.BaseUrl, bootstrap.Logger)

	// Usecases
	authUsecase := auth.NewAuthUsecase(userRepository, siteRepository, sessionRepository, bootstrap.InternalConfig)
	userUsecase := users.NewUserUsecase(userRepository, siteRepository, resolver)
	patientUsecase := patients.NewPatientUsecase(patientRepository, userRepository, resolver)
	encounterUsecase := encounters.NewEncounterUsecase(
		encounterRepository,
		patientRepository,
		observationRepository,
		diagnosisRepository,
		medicationRepository,
		resolver,
	)
	observationUsecase := observations.NewObservationUsecase(observationRepository, encounterRepository, resolver)
	diagnosisUsecase := diagnoses.NewDiagnosisUsecase(diagnosisRepository, encounterRepository, resolver)
	medicationUsecase := medications.NewMedicationUsecase(medicationRepository, encounterRepository, resolver)
	statsUsecase := stats.NewStatsUsecase(statsRepository)
	recordsUsecase := records.NewRecordsUsecase(
		patientRepository,
		encounterRepository,
		observationRepository,
		diagnosisRepository,
		medicationRepository,
		resolver,
		codec,
	)
	fhirUsecase := fhir.NewFHIRUsecase(
		patientRepository,
		encounterRepository,
		observationRepository,
		diagnosisRepository,
		resolver,
		codec,
		fhirClient,
	)

	// Controllers
	authController := controllers.NewAuthController(bootstrap.Logger, authUsecase)
	userController := controllers.NewUserController(bootstrap.Logger, userUsecase)
	patientController := controllers.NewPatientController(bootstrap.Logger, patientUsecase, recordsUsecase)
	encounterController := controllers.NewEncounterController(bootstrap.Logger, encounterUsecase)
	observationController := controllers.NewObservationController(bootstrap.Logger, observationUsecase)
	diagnosisController := controllers.NewDiagnosisController(bootstrap.Logger, diagnosisUsecase)
	medicationController := controllers.NewMedicationController(bootstrap.Logger, medicationUsecase)
	statsController := controllers.NewStatsController(bootstrap.Logger, statsUsecase)
	fhirController := controllers.NewFHIRController(bootstrap.Logger, fhirUsecase, recordsUsecase)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		mw,
		authController,
		userController,
		patientController,
		encounterController,
		observationController,
		diagnosisController,
		medicationController,
		statsController,
		fhirController,
	)
}
