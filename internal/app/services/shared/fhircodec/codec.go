package fhircodec

import (
	"fmt"
	"time"

	"hce-service/internal/app/models"
	"hce-service/internal/pkg/constvars"
	"hce-service/internal/pkg/exceptions"
	"hce-service/internal/pkg/fhir_dto"

	"go.uber.org/zap"
)

const birthDateLayout = "2006-01-02"

// Codec renders internal rows as FHIR resources. It is one-directional: this
// service is the system of record, external FHIR consumers never write back
// through it.
type Codec struct {
	log *zap.Logger
}

func NewCodec(log *zap.Logger) *Codec {
	return &Codec{log: log}
}

var genderMap = map[string]string{
	constvars.GenderMale:   constvars.FhirGenderMale,
	constvars.GenderFemale: constvars.FhirGenderFemale,
	constvars.GenderOther:  constvars.FhirGenderOther,
}

var encounterClassMap = map[string]string{
	constvars.EncounterTypeConsulta:        constvars.FhirEncounterClassAmbulatory,
	constvars.EncounterTypeUrgencia:        constvars.FhirEncounterClassEmergency,
	constvars.EncounterTypeHospitalizacion: constvars.FhirEncounterClassInpatient,
	constvars.EncounterTypeControl:         constvars.FhirEncounterClassAmbulatory,
	constvars.EncounterTypeCirugia:         constvars.FhirEncounterClassInpatient,
}

// EncodePatient maps a patient row to a FHIR Patient. birthDate stays on the
// wire as an explicit null when unknown, and telecom is always present even
// when empty.
func (c *Codec) EncodePatient(patient *models.Patient) (*fhir_dto.Patient, error) {
	if patient == nil || patient.ID == 0 {
		return nil, exceptions.ErrDataIntegrity("patient id")
	}
	if patient.Identification == "" {
		return nil, exceptions.ErrDataIntegrity("patient identification")
	}

	gender, ok := genderMap[patient.Gender]
	if !ok {
		gender = constvars.FhirGenderUnknown
	}

	resource := &fhir_dto.Patient{
		ResourceType: constvars.ResourcePatient,
		ID:           fmt.Sprintf("%d", patient.ID),
		Identifier: []fhir_dto.Identifier{
			{
				System: constvars.FhirSystemPatientIdentifier,
				Value:  patient.Identification,
				Type: fhir_dto.CodeableConcept{
					Coding: []fhir_dto.Coding{
						{
							System: constvars.FhirSystemIdentifierType,
							Code:   patient.IdentificationType,
						},
					},
				},
			},
		},
		Name: []fhir_dto.HumanName{
			{
				Use:    "official",
				Family: patient.LastName,
				Given:  []string{patient.FirstName},
			},
		},
		Gender:  gender,
		Telecom: []fhir_dto.ContactPoint{},
	}

	if patient.BirthDate != nil {
		birthDate := patient.BirthDate.Format(birthDateLayout)
		resource.BirthDate = &birthDate
	}
	if patient.Phone != nil && *patient.Phone != "" {
		resource.Telecom = append(resource.Telecom, fhir_dto.ContactPoint{
			System: "phone",
			Value:  *patient.Phone,
			Use:    "mobile",
		})
	}
	if patient.Email != nil && *patient.Email != "" {
		resource.Telecom = append(resource.Telecom, fhir_dto.ContactPoint{
			System: "email",
			Value:  *patient.Email,
		})
	}
	if patient.Address != nil && *patient.Address != "" {
		resource.Address = []fhir_dto.Address{
			{
				Use:  "home",
				Text: *patient.Address,
				City: patient.City,
			},
		}
	}

	return resource, nil
}

// EncodeEncounter maps an encounter row to a FHIR Encounter. The class comes
// from a fixed v3-ActCode table keyed by the internal encounter type, with
// the internal type kept as display; unknown types fall back to ambulatory.
func (c *Codec) EncodeEncounter(encounter *models.Encounter) (*fhir_dto.Encounter, error) {
	if encounter == nil || encounter.ID == 0 {
		return nil, exceptions.ErrDataIntegrity("encounter id")
	}
	if encounter.PatientID == 0 {
		return nil, exceptions.ErrDataIntegrity("encounter patient id")
	}

	class, ok := encounterClassMap[encounter.EncounterType]
	if !ok {
		class = constvars.FhirEncounterClassAmbulatory
	}

	resource := &fhir_dto.Encounter{
		ResourceType: constvars.ResourceEncounter,
		ID:           fmt.Sprintf("%d", encounter.ID),
		Status:       encounter.Status,
		Class: fhir_dto.Coding{
			System:  constvars.FhirSystemActCode,
			Code:    class,
			Display: encounter.EncounterType,
		},
		Subject: fhir_dto.Reference{
			Reference: fmt.Sprintf("%s/%d", constvars.ResourcePatient, encounter.PatientID),
		},
		Participant: []fhir_dto.Participant{
			{
				Individual: fhir_dto.Reference{
					Reference: fmt.Sprintf("%s/%d", constvars.ResourcePractitioner, encounter.CreatedByID),
				},
			},
		},
		ServiceProvider: fhir_dto.Reference{
			Reference: fmt.Sprintf("%s/%d", constvars.ResourceOrganization, encounter.SiteID),
		},
	}

	if !encounter.StartedAt.IsZero() {
		start := encounter.StartedAt.Format(time.RFC3339)
		resource.Period.Start = &start
	}
	if encounter.Reason != "" {
		resource.ReasonCode = []fhir_dto.TextConcept{{Text: encounter.Reason}}
	}

	return resource, nil
}

// EncodeObservation maps an observation row to a FHIR Observation. Numeric
// and text values are independent: both may be present on the same resource.
func (c *Codec) EncodeObservation(observation *models.Observation) (*fhir_dto.Observation, error) {
	if observation == nil || observation.ID == 0 {
		return nil, exceptions.ErrDataIntegrity("observation id")
	}
	if observation.PatientID == 0 {
		return nil, exceptions.ErrDataIntegrity("observation patient id")
	}
	if observation.Name == "" {
		return nil, exceptions.ErrDataIntegrity("observation name")
	}

	loincCode := ""
	if observation.LoincCode != nil {
		loincCode = *observation.LoincCode
	}

	resource := &fhir_dto.Observation{
		ResourceType: constvars.ResourceObservation,
		ID:           fmt.Sprintf("%d", observation.ID),
		Status:       constvars.FhirObservationFinal,
		Category: []fhir_dto.CodeableConcept{
			{
				Coding: []fhir_dto.Coding{
					{
						System:  constvars.FhirSystemObservationCategory,
						Code:    constvars.FhirCategoryVitalSigns,
						Display: constvars.FhirCategoryVitalSignsDisplay,
					},
				},
			},
		},
		Code: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System:  constvars.FhirSystemLoinc,
					Code:    loincCode,
					Display: observation.Name,
				},
			},
			Text: observation.Name,
		},
		Subject: fhir_dto.Reference{
			Reference: fmt.Sprintf("%s/%d", constvars.ResourcePatient, observation.PatientID),
		},
		Encounter: fhir_dto.Reference{
			Reference: fmt.Sprintf("%s/%d", constvars.ResourceEncounter, observation.EncounterID),
		},
	}

	if !observation.TakenAt.IsZero() {
		effective := observation.TakenAt.Format(time.RFC3339)
		resource.EffectiveDateTime = &effective
	}
	if observation.ValueNumeric != nil {
		unit := ""
		if observation.Unit != nil {
			unit = *observation.Unit
		}
		resource.ValueQuantity = &fhir_dto.Quantity{
			Value:  *observation.ValueNumeric,
			Unit:   unit,
			System: constvars.FhirSystemUcum,
			Code:   unit,
		}
	}
	if observation.ValueText != nil && *observation.ValueText != "" {
		resource.ValueString = *observation.ValueText
	}
	if observation.ReferenceRange != nil && *observation.ReferenceRange != "" {
		resource.ReferenceRange = []fhir_dto.TextConcept{{Text: *observation.ReferenceRange}}
	}
	if observation.Interpretation != nil && *observation.Interpretation != "" {
		resource.Interpretation = []fhir_dto.TextConcept{{Text: *observation.Interpretation}}
	}

	return resource, nil
}

// EncodeCondition maps a diagnosis row to a FHIR Condition. The coding array
// grows incrementally, ICD-10 first then SNOMED, and may legitimately end up
// empty when the row carries neither code.
func (c *Codec) EncodeCondition(diagnosis *models.Diagnosis) (*fhir_dto.Condition, error) {
	if diagnosis == nil || diagnosis.ID == 0 {
		return nil, exceptions.ErrDataIntegrity("diagnosis id")
	}
	if diagnosis.PatientID == 0 {
		return nil, exceptions.ErrDataIntegrity("diagnosis patient id")
	}
	if diagnosis.Description == "" {
		return nil, exceptions.ErrDataIntegrity("diagnosis description")
	}

	clinicalCode := constvars.FhirConditionResolved
	if diagnosis.Status == constvars.DiagnosisStatusActive {
		clinicalCode = constvars.FhirConditionActive
	}

	resource := &fhir_dto.Condition{
		ResourceType: constvars.ResourceCondition,
		ID:           fmt.Sprintf("%d", diagnosis.ID),
		ClinicalStatus: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{
				{
					System: constvars.FhirSystemConditionClinical,
					Code:   clinicalCode,
				},
			},
		},
		Code: fhir_dto.CodeableConcept{
			Coding: []fhir_dto.Coding{},
			Text:   diagnosis.Description,
		},
		Subject: fhir_dto.Reference{
			Reference: fmt.Sprintf("%s/%d", constvars.ResourcePatient, diagnosis.PatientID),
		},
		Encounter: fhir_dto.Reference{
			Reference: fmt.Sprintf("%s/%d", constvars.ResourceEncounter, diagnosis.EncounterID),
		},
	}

	if diagnosis.ICD10Code != nil && *diagnosis.ICD10Code != "" {
		resource.Code.Coding = append(resource.Code.Coding, fhir_dto.Coding{
			System:  constvars.FhirSystemICD10,
			Code:    *diagnosis.ICD10Code,
			Display: diagnosis.Description,
		})
	}
	if diagnosis.SnomedCode != nil && *diagnosis.SnomedCode != "" {
		resource.Code.Coding = append(resource.Code.Coding, fhir_dto.Coding{
			System:  constvars.FhirSystemSnomed,
			Code:    *diagnosis.SnomedCode,
			Display: diagnosis.Description,
		})
	}

	if !diagnosis.DiagnosedAt.IsZero() {
		recorded := diagnosis.DiagnosedAt.Format(time.RFC3339)
		resource.RecordedDate = &recorded
	}

	return resource, nil
}
