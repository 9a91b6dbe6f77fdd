package constvars

const (
	LoginSuccessMessage            = "Successfully logged in"
	LogoutSuccessMessage           = "Successfully logged out"
	GetProfileSuccessMessage       = "Successfully fetched profile"
	GetSiteSuccessMessage          = "Successfully fetched site"
	ChangePasswordSuccessMessage   = "Password changed successfully"
	CreateUserSuccessMessage       = "Successfully created user"
	GetUsersSuccessMessage         = "Successfully fetched users"
	UpdateUserSuccessMessage       = "Successfully updated user"
	DeleteUserSuccessMessage       = "Successfully deactivated user"
	CreatePatientSuccessMessage    = "Successfully created patient"
	GetPatientsSuccessMessage      = "Successfully fetched patients"
	GetPatientSuccessMessage       = "Successfully fetched patient"
	UpdatePatientSuccessMessage    = "Successfully updated patient"
	DeletePatientSuccessMessage    = "Successfully deactivated patient"
	CreateEncounterSuccessMessage  = "Successfully created encounter"
	GetEncountersSuccessMessage    = "Successfully fetched encounters"
	GetEncounterSuccessMessage     = "Successfully fetched encounter"
	UpdateEncounterSuccessMessage  = "Successfully updated encounter"
	FinalizeEncounterSuccessMsg    = "Successfully finalized encounter"
	CreateObservationSuccessMsg    = "Successfully created observation"
	GetObservationsSuccessMessage  = "Successfully fetched observations"
	CreateDiagnosisSuccessMessage  = "Successfully created diagnosis"
	GetDiagnosesSuccessMessage     = "Successfully fetched diagnoses"
	CreateMedicationSuccessMessage = "Successfully created medication"
	GetMedicationsSuccessMessage   = "Successfully fetched medications"
	GetRecordSuccessMessage        = "Successfully fetched patient record"
	GetStatsSuccessMessage         = "Successfully fetched statistics"
	FHIRSyncSuccessMessage         = "Patient synchronized with FHIR server"
)
