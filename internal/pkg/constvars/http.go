package constvars

const (
	MIMETextPlain           = "text/plain"
	MIMEApplicationJSON     = "application/json"
	MIMEApplicationFHIRJSON = "application/fhir+json"
)

const (
	StatusOK        = 200
	StatusCreated   = 201
	StatusAccepted  = 202
	StatusNoContent = 204

	StatusBadRequest       = 400
	StatusUnauthorized     = 401
	StatusForbidden        = 403
	StatusNotFound         = 404
	StatusConflict         = 409
	StatusGone             = 410
	StatusUnprocessable    = 422
	StatusTooManyRequests  = 429
	StatusInternalServerError = 500
	StatusBadGateway          = 502
	StatusServiceUnavailable  = 503
	StatusGatewayTimeout      = 504
)

const (
	HeaderAuthorization   = "Authorization"
	HeaderContentType     = "Content-Type"
	HeaderWWWAuthenticate = "WWW-Authenticate"
	HeaderXRequestID      = "X-Request-Id"
)
