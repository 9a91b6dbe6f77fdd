package utils

import (
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

func init() {
	validate = validator.New()
	validate.RegisterValidation("password", validatePasswordTag)
	validate.RegisterValidation("role", validateRoleTag)
	validate.RegisterValidation("encounter_type", validateEncounterTypeTag)
	validate.RegisterValidation("identification_type", validateIdentificationTypeTag)
	validate.RegisterValidation("gender", validateGenderTag)
}

func ValidateStruct(s interface{}) error {
	if err := validate.Struct(s); err != nil {
		return exceptions.ErrInputValidation(err)
	}
	return nil
}

func validatePasswordTag(fl validator.FieldLevel) bool {
	return ValidatePasswordPolicy(fl.Field().String())
}

func validateRoleTag(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RolePatient, constvars.RoleFrontDesk, constvars.RoleClinician, constvars.RoleRecordsClerk, constvars.RoleAdmin:
		return true
	}
	return false
}

func validateEncounterTypeTag(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.EncounterTypeConsulta, constvars.EncounterTypeUrgencia, constvars.EncounterTypeHospitalizacion, constvars.EncounterTypeControl, constvars.EncounterTypeCirugia:
		return true
	}
	return false
}

func validateIdentificationTypeTag(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.IdentificationTypeCC, constvars.IdentificationTypeTI, constvars.IdentificationTypeCE, constvars.IdentificationTypePA, constvars.IdentificationTypeRC:
		return true
	}
	return false
}

func validateGenderTag(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.GenderMale, constvars.GenderFemale, constvars.GenderOther:
		return true
	}
	return false
}

var regexNumericID = regexp.MustCompile(`^[1-9][0-9]*$`)

// ValidateNumericID guards chi URL params before they reach a query.
func ValidateNumericID(raw string) bool {
	return regexNumericID.MatchString(raw)
}
