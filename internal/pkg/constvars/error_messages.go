package constvars

// Client-facing messages. Never leak row existence through these.
const (
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientCannotProcessRequest          = "Cannot process the request, please check your input"
	ErrClientNotAuthorized                 = "You are not authorized to perform this action"
	ErrClientNotLoggedIn                   = "You are not logged in, please log in first"
	ErrClientInvalidUsernameOrPassword     = "Invalid username or password"
	ErrClientCurrentPasswordIncorrect      = "Current password is incorrect"
	ErrClientPatientNotFound               = "Patient not found"
	ErrClientEncounterNotFound             = "Encounter not found"
	ErrClientObservationNotFound           = "Observation not found"
	ErrClientDiagnosisNotFound             = "Diagnosis not found"
	ErrClientMedicationNotFound            = "Medication not found"
	ErrClientUserNotFound                  = "User not found"
	ErrClientSiteNotFound                  = "Site not found"
	ErrClientNoSiteAssigned                = "User has no site assigned"
	ErrClientPatientAlreadyExists          = "A patient with this identification already exists"
	ErrClientUsernameAlreadyExists         = "A user with this identification already exists"
	ErrClientEmailAlreadyExists            = "A user with this email already exists"
	ErrClientEncounterNotOwned             = "Only the clinician who created the encounter can modify it"
	ErrClientPatientEncounterMismatch      = "The patient does not match the encounter"
	ErrClientEncounterFinalized            = "The encounter is already finalized"
	ErrClientFHIRSyncFailed                = "Could not synchronize with the FHIR server"
)

// Developer-facing messages, logged but only exposed outside production.
const (
	ErrDevValidationFailed           = "request validation failed"
	ErrDevURLParamIDValidation       = "failed to validate URL param '%s' as numeric id"
	ErrDevCannotParseJSON            = "failed to parse JSON request body"
	ErrDevCannotMarshalJSON          = "failed to marshal JSON"
	ErrDevFailedToHashPassword       = "failed to hash password"
	ErrDevInvalidCredentials         = "username or password does not match any active user"
	ErrDevAuthGenerateToken          = "failed to sign access token"
	ErrDevAuthTokenMissing           = "authorization header missing"
	ErrDevAuthTokenInvalidOrExpired  = "access token invalid or expired"
	ErrDevAuthSigningMethod          = "unexpected token signing method"
	ErrDevSessionNotFound            = "session not found in store"
	ErrDevSessionStore               = "failed to persist session"
	ErrDevRoleNotAllowed             = "role is not allowed for this operation"
	ErrDevScopeUnauthorized          = "access scope resolver denied the operation"
	ErrDevEncounterNotOwned          = "encounter belongs to a different clinician"
	ErrDevEncounterFinalized         = "encounter state is already finalized"
	ErrDevPatientEncounterMismatch   = "observation/diagnosis/medication patient id does not match encounter"
	ErrDevPasswordPolicy             = "new password does not satisfy the password policy"
	ErrDevDataIntegrity              = "record is missing a mandatory field: %s"
	ErrDevDBFailedToFindData         = "postgres failed to find data"
	ErrDevDBFailedToIterateDataset   = "postgres failed to iterate dataset"
	ErrDevDBFailedToInsertData       = "postgres failed to insert data"
	ErrDevDBFailedToUpdateData       = "postgres failed to update data"
	ErrDevDBFailedToDeleteData       = "postgres failed to delete data"
	ErrDevRedisFailedToSet           = "redis failed to set key"
	ErrDevRedisFailedToGet           = "redis failed to get key"
	ErrDevFHIRServerRequest          = "request to external FHIR server failed"
	ErrDevFHIRServerBadStatus        = "external FHIR server returned status %d"
	ErrDevServerDeadlineExceeded     = "server took too long to respond"
)

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"email":    "must be a valid email",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"numeric":  "must be a number",
	"datetime": "must be a valid date",
	"password": "must be at least 8 characters long and contain an uppercase letter, a lowercase letter and a digit",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lte":   true,
}
