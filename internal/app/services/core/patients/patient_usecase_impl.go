package patients

import (
	"context"
	"errors"
	"sync"
	"time"

	"hce-service/internal/app/contracts"
	"hce-service/internal/app/models"
	"hce-service/internal/app/services/shared/accessscope"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/dto/requests"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/utils"
)

type patientUsecase struct {
	PatientRepository contracts.PatientRepository
	UserRepository    contracts.UserRepository
	Resolver          *accessscope.Resolver
}

var (
	patientUsecaseInstance contracts.PatientUsecase
	oncePatientUsecase     sync.Once
)

func NewPatientUsecase(
	patientRepository contracts.PatientRepository,
	userRepository contracts.UserRepository,
	resolver *accessscope.Resolver,
) contracts.PatientUsecase {
	oncePatientUsecase.Do(func() {
		patientUsecaseInstance = &patientUsecase{
			PatientRepository: patientRepository,
			UserRepository:    userRepository,
			Resolver:          resolver,
		}
	})
	return patientUsecaseInstance
}

func (uc *patientUsecase) resolve(session *models.Session, operation accessscope.Operation) (accessscope.Decision, error) {
	decision, err := uc.Resolver.Resolve(session, accessscope.Request{
		Entity:    accessscope.EntityPatient,
		Operation: operation,
	})
	if err != nil {
		return accessscope.Decision{}, err
	}
	if !decision.Authorized {
		return accessscope.Decision{}, exceptions.ErrScopeUnauthorized(nil)
	}
	return decision, nil
}

func (uc *patientUsecase) Create(ctx context.Context, session *models.Session, request *requests.CreatePatient) (*models.Patient, error) {
	if _, err := uc.resolve(session, accessscope.OperationCreate); err != nil {
		return nil, err
	}

	// Identification is unique among live patients
	existing, err := uc.PatientRepository.FindByIdentification(ctx, request.Identification)
	if err != nil && !isNotFound(err) {
		return nil, err
	}
	if existing != nil {
		return nil, exceptions.ErrPatientAlreadyExists(nil)
	}

	patient, err := patientFromInput(patientInput(*request))
	if err != nil {
		return nil, err
	}

	id, err := uc.PatientRepository.Create(ctx, patient)
	if err != nil {
		return nil, err
	}

	// Provision the portal account linked to the new chart. The patient
	// logs in with their identification and a derived temporary password.
	if err := uc.createLinkedUser(ctx, id, request); err != nil {
		return nil, err
	}

	return uc.PatientRepository.FindByID(ctx, id, accessscope.MatchAll())
}

func (uc *patientUsecase) createLinkedUser(ctx context.Context, patientID int64, request *requests.CreatePatient) error {
	tempPassword := utils.TempPasswordFromIdentification(request.Identification)
	hashed, err := utils.HashPassword(tempPassword)
	if err != nil {
		return exceptions.ErrHashPassword(err)
	}

	email := ""
	if request.Email != nil {
		email = *request.Email
	}
	user := &models.User{
		Username:           request.Identification,
		Password:           hashed,
		FullName:           request.FirstName + " " + request.LastName,
		Email:              email,
		Role:               constvars.RolePatient,
		PatientID:          &patientID,
		Active:             true,
		MustChangePassword: true,
	}
	_, err = uc.UserRepository.Create(ctx, user)
	return err
}

func (uc *patientUsecase) Search(ctx context.Context, session *models.Session, request *requests.SearchPatients) ([]models.Patient, error) {
	decision, err := uc.resolve(session, accessscope.OperationRead)
	if err != nil {
		return nil, err
	}
	return uc.PatientRepository.Search(ctx, request.Search, request.Skip, request.Limit, decision.Scope)
}

func (uc *patientUsecase) FindByID(ctx context.Context, session *models.Session, patientID int64) (*models.Patient, error) {
	decision, err := uc.resolve(session, accessscope.OperationRead)
	if err != nil {
		return nil, err
	}
	return uc.PatientRepository.FindByID(ctx, patientID, decision.Scope)
}

func (uc *patientUsecase) Update(ctx context.Context, session *models.Session, patientID int64, request *requests.UpdatePatient) (*models.Patient, error) {
	if _, err := uc.resolve(session, accessscope.OperationUpdate); err != nil {
		return nil, err
	}

	patient, err := uc.PatientRepository.FindByID(ctx, patientID, accessscope.MatchAll())
	if err != nil {
		return nil, err
	}

	updated, err := patientFromInput(patientInput(*request))
	if err != nil {
		return nil, err
	}
	updated.ID = patient.ID
	if err := uc.PatientRepository.Update(ctx, updated); err != nil {
		return nil, err
	}

	return uc.PatientRepository.FindByID(ctx, patientID, accessscope.MatchAll())
}

func (uc *patientUsecase) Delete(ctx context.Context, session *models.Session, patientID int64) error {
	if _, err := uc.resolve(session, accessscope.OperationDelete); err != nil {
		return err
	}

	if _, err := uc.PatientRepository.FindByID(ctx, patientID, accessscope.MatchAll()); err != nil {
		return err
	}
	return uc.PatientRepository.SoftDelete(ctx, patientID)
}

// patientInput is the shared shape of the create and update requests.
type patientInput requests.CreatePatient

func patientFromInput(input patientInput) (*models.Patient, error) {
	birthDate, err := parseBirthDate(input.BirthDate)
	if err != nil {
		return nil, err
	}
	return &models.Patient{
		IdentificationType: input.IdentificationType,
		Identification:     input.Identification,
		FirstName:          input.FirstName,
		LastName:           input.LastName,
		BirthDate:          birthDate,
		Gender:             input.Gender,
		Phone:              input.Phone,
		Email:              input.Email,
		Address:            input.Address,
		City:               input.City,
		BloodType:          input.BloodType,
		Allergies:          input.Allergies,
	}, nil
}

func parseBirthDate(raw *string) (*time.Time, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	parsed, err := time.Parse("2006-01-02", *raw)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return &parsed, nil
}

func isNotFound(err error) bool {
	var customErr *exceptions.CustomError
	return errors.As(err, &customErr) && customErr.IsNotFound()
}
