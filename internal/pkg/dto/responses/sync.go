package responses

import "github.com/goccy/go-json"

// FHIRSync reports the outcome of pushing a resource to the external FHIR
// server, echoing the server's stored representation back to the caller.
type FHIRSync struct {
	Message      string          `json:"message"`
	FHIRResource json.RawMessage `json:"fhir_resource"`
}
