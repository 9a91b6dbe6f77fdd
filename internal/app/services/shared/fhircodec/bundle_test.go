package fhircodec

import (
	"testing"
	"time"

	"hce-service/internal/app/models"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeBundle(t *testing.T) {
	codec := testCodec()

	encounters := []models.Encounter{
		{ID: 1, PatientID: 12, SiteID: 3, CreatedByID: 44, EncounterType: constvars.EncounterTypeConsulta, Status: constvars.EncounterStatusFinalized, StartedAt: time.Now()},
		{ID: 2, PatientID: 12, SiteID: 3, CreatedByID: 44, EncounterType: constvars.EncounterTypeUrgencia, Status: constvars.EncounterStatusOpen, StartedAt: time.Now()},
	}
	observations := []models.Observation{
		{ID: 10, PatientID: 12, EncounterID: 1, Name: "Temperatura", TakenAt: time.Now()},
	}
	diagnoses := []models.Diagnosis{
		{ID: 20, PatientID: 12, EncounterID: 1, Description: "Gripe comun", Status: constvars.DiagnosisStatusResolved, DiagnosedAt: time.Now()},
	}

	t.Run("Collection bundle with entries in fixed group order", func(t *testing.T) {
		bundle, err := codec.EncodeBundle(basePatient(), encounters, observations, diagnoses)
		require.NoError(t, err)
		assert.Equal(t, "Bundle", bundle.ResourceType)
		assert.Equal(t, "collection", bundle.Type)
		require.Len(t, bundle.Entry, 5)

		_, ok := bundle.Entry[0].Resource.(*fhir_dto.Patient)
		assert.True(t, ok, "the patient leads the bundle")
		first, ok := bundle.Entry[1].Resource.(*fhir_dto.Encounter)
		require.True(t, ok)
		assert.Equal(t, "1", first.ID, "input order is preserved inside each group")
		second, ok := bundle.Entry[2].Resource.(*fhir_dto.Encounter)
		require.True(t, ok)
		assert.Equal(t, "2", second.ID)
		_, ok = bundle.Entry[3].Resource.(*fhir_dto.Observation)
		assert.True(t, ok)
		_, ok = bundle.Entry[4].Resource.(*fhir_dto.Condition)
		assert.True(t, ok)
	})

	t.Run("Medications never enter the bundle", func(t *testing.T) {
		bundle, err := codec.EncodeBundle(basePatient(), nil, nil, nil)
		require.NoError(t, err)
		require.Len(t, bundle.Entry, 1, "a bare record bundles only the patient")
	})

	t.Run("A malformed clinical row is dropped, the bundle survives", func(t *testing.T) {
		broken := append([]models.Diagnosis{}, diagnoses...)
		broken = append(broken, models.Diagnosis{ID: 21, PatientID: 12, EncounterID: 1, Description: ""})
		bundle, err := codec.EncodeBundle(basePatient(), nil, nil, broken)
		require.NoError(t, err)
		require.Len(t, bundle.Entry, 2, "the descriptionless diagnosis is skipped")
	})

	t.Run("An unencodable patient fails the whole bundle", func(t *testing.T) {
		patient := basePatient()
		patient.Identification = ""
		_, err := codec.EncodeBundle(patient, encounters, nil, nil)
		assert.Error(t, err, "without its subject the bundle is meaningless")
	})
}
