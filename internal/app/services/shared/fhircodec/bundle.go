package fhircodec

import (
	"hce-service/internal/app/models"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

// EncodeBundle assembles the full-record collection bundle for one patient.
// Entry order is fixed: the patient first, then encounters, observations and
// conditions, each group in the order it was handed in. Medication rows are
// not part of the bundle: there is no stable mapping to MedicationStatement
// yet, so they stay internal-only.
//
// The patient resource is mandatory. A clinical row that fails to encode is
// dropped from the bundle individually and logged; one bad diagnosis must not
// take the whole record export down.
func (c *Codec) EncodeBundle(
	patient *models.Patient,
	encounters []models.Encounter,
	observations []models.Observation,
	diagnoses []models.Diagnosis,
) (*fhir_dto.Bundle, error) {
	patientResource, err := c.EncodePatient(patient)
	if err != nil {
		return nil, err
	}

	bundle := &fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeCollection,
		Entry:        []fhir_dto.BundleEntry{{Resource: patientResource}},
	}

	for i := range encounters {
		resource, err := c.EncodeEncounter(&encounters[i])
		if err != nil {
			c.log.Warn("dropping encounter from bundle",
				zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
				zap.Int64("encounter_id", encounters[i].ID),
				zap.Error(err),
			)
			continue
		}
		bundle.Entry = append(bundle.Entry, fhir_dto.BundleEntry{Resource: resource})
	}
	for i := range observations {
		resource, err := c.EncodeObservation(&observations[i])
		if err != nil {
			c.log.Warn("dropping observation from bundle",
				zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
				zap.Int64("observation_id", observations[i].ID),
				zap.Error(err),
			)
			continue
		}
		bundle.Entry = append(bundle.Entry, fhir_dto.BundleEntry{Resource: resource})
	}
	for i := range diagnoses {
		resource, err := c.EncodeCondition(&diagnoses[i])
		if err != nil {
			c.log.Warn("dropping diagnosis from bundle",
				zap.Int64(constvars.LoggingPatientIDKey, patient.ID),
				zap.Int64("diagnosis_id", diagnoses[i].ID),
				zap.Error(err),
			)
			continue
		}
		bundle.Entry = append(bundle.Entry, fhir_dto.BundleEntry{Resource: resource})
	}

	return bundle, nil
}
