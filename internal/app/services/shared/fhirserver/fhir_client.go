package fhirserver

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"hce-service/internal/app/contracts"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

const fhirContentType = "application/fhir+json"

// fhirClient talks to the external HAPI FHIR server. Pushes are PUT upserts
// keyed by the internal row id, so re-syncing the same patient is idempotent
// on the remote side.
type fhirClient struct {
	BaseURL string
	HTTP    *http.Client
	Log     *zap.Logger
}

var (
	fhirClientInstance contracts.FHIRClient
	onceFhirClient     sync.Once
)

func NewFHIRClient(baseURL string, logger *zap.Logger) contracts.FHIRClient {
	onceFhirClient.Do(func() {
		fhirClientInstance = &fhirClient{
			BaseURL: baseURL,
			HTTP: &http.Client{
				Timeout: 15 * time.Second,
			},
			Log: logger,
		}
	})
	return fhirClientInstance
}

func (c *fhirClient) UpsertPatient(ctx context.Context, patient *fhir_dto.Patient) ([]byte, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	c.Log.Info("fhirClient.UpsertPatient called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("resource_id", patient.ID),
	)

	payload, err := json.Marshal(patient)
	if err != nil {
		return nil, exceptions.ErrCannotMarshalJSON(err)
	}

	url := fmt.Sprintf("%s/%s/%s", c.BaseURL, constvars.ResourcePatient, patient.ID)
	request, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(payload))
	if err != nil {
		return nil, exceptions.ErrFHIRServerRequest(err)
	}
	request.Header.Set(constvars.HeaderContentType, fhirContentType)

	response, err := c.HTTP.Do(request)
	if err != nil {
		c.Log.Error("fhirClient.UpsertPatient request failed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrFHIRServerRequest(err)
	}
	defer response.Body.Close()

	body, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, exceptions.ErrFHIRServerRequest(err)
	}

	if response.StatusCode < 200 || response.StatusCode > 299 {
		c.Log.Error("fhirClient.UpsertPatient bad status from FHIR server",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Int(constvars.LoggingStatusCodeKey, response.StatusCode),
		)
		return nil, exceptions.ErrFHIRServerBadStatus(response.StatusCode)
	}

	return body, nil
}
