package config

type (
	InternalConfig struct {
		App  App
		FHIR FHIR
		JWT  JWT
	}

	App struct {
		Env                       string
		Port                      string
		Version                   string
		Address                   string
		EndpointPrefix            string
		MaxRequests               int
		ShutdownTimeout           int
		MaxTimeRequestsPerSeconds int
	}

	FHIR struct {
		BaseUrl string
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
