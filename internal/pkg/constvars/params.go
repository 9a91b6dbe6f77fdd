package constvars

const (
	URLParamPatientID     = "patientID"
	URLParamEncounterID   = "encounterID"
	URLParamObservationID = "observationID"
	URLParamDiagnosisID   = "diagnosisID"
	URLParamMedicationID  = "medicationID"
	URLParamUserID        = "userID"
)

const (
	QueryParamSearch    = "search"
	QueryParamPatientID = "patient_id"
	QueryParamLoincCode = "loinc_code"
	QueryParamSkip      = "skip"
	QueryParamLimit     = "limit"
	QueryParamRole      = "role"
	QueryParamSiteID    = "site_id"
	QueryParamActive    = "active"
)

const (
	DefaultQueryLimit = 100
	MaxQueryLimit     = 1000
)
