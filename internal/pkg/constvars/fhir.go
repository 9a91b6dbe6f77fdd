package constvars

const (
	ResourcePatient      = "Patient"
	ResourceEncounter    = "Encounter"
	ResourceObservation  = "Observation"
	ResourceCondition    = "Condition"
	ResourcePractitioner = "Practitioner"
	ResourceOrganization = "Organization"
	ResourceBundle       = "Bundle"
)

const (
	FhirBundleTypeCollection = "collection"
	FhirObservationFinal     = "final"
)

const (
	FhirSystemPatientIdentifier   = "http://hospital.com/identifiers/patient"
	FhirSystemIdentifierType      = "http://terminology.hl7.org/CodeSystem/v2-0203"
	FhirSystemObservationCategory = "http://terminology.hl7.org/CodeSystem/observation-category"
	FhirSystemLoinc               = "http://loinc.org"
	FhirSystemUcum                = "http://unitsofmeasure.org"
	FhirSystemActCode             = "http://terminology.hl7.org/CodeSystem/v3-ActCode"
	FhirSystemConditionClinical   = "http://terminology.hl7.org/CodeSystem/condition-clinical"
	FhirSystemICD10               = "http://hl7.org/fhir/sid/icd-10"
	FhirSystemSnomed              = "http://snomed.info/sct"
)

const (
	FhirCategoryVitalSigns        = "vital-signs"
	FhirCategoryVitalSignsDisplay = "Vital Signs"
)

const (
	FhirEncounterClassAmbulatory = "AMB"
	FhirEncounterClassEmergency  = "EMER"
	FhirEncounterClassInpatient  = "IMP"
)

const (
	FhirConditionActive   = "active"
	FhirConditionResolved = "resolved"
)

const (
	FhirGenderMale    = "male"
	FhirGenderFemale  = "female"
	FhirGenderOther   = "other"
	FhirGenderUnknown = "unknown"
)
