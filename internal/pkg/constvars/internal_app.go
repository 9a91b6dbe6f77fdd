package constvars

type ContextKey string

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "HCE_SVC_"
)

// Roles carried in the identity context.
const (
	RolePatient      = "patient"
	RoleFrontDesk    = "front_desk"
	RoleClinician    = "clinician"
	RoleRecordsClerk = "records_clerk"
	RoleAdmin        = "admin"
)

const (
	EncounterTypeConsulta        = "consulta"
	EncounterTypeUrgencia        = "urgencia"
	EncounterTypeHospitalizacion = "hospitalizacion"
	EncounterTypeControl         = "control"
	EncounterTypeCirugia         = "cirugia"
)

const (
	EncounterStatusOpen      = "open"
	EncounterStatusFinalized = "finalized"
)

const (
	DiagnosisStatusActive   = "active"
	DiagnosisStatusResolved = "resolved"
)

const (
	IdentificationTypeCC = "CC"
	IdentificationTypeTI = "TI"
	IdentificationTypeCE = "CE"
	IdentificationTypePA = "PA"
	IdentificationTypeRC = "RC"
)

const (
	GenderMale   = "M"
	GenderFemale = "F"
	GenderOther  = "O"
)

// Temporary credentials for provisioned accounts: last four characters of the
// identification plus this suffix.
const TempPasswordSuffix = "2024"
