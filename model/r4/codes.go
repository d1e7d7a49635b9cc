package r4

// Code systems used by the catalogue.
const (
	UCUMSystem                        = "http://unitsofmeasure.org"
	MedicationKnowledgeStatusSystem   = "http://hl7.org/fhir/CodeSystem/medicationknowledge-status"
	PublicationStatusSystem           = "http://hl7.org/fhir/publication-status"
	ExposureStateSystem               = "http://hl7.org/fhir/exposure-state"
	VariableTypeSystem                = "http://hl7.org/fhir/variable-type"
	GroupMeasureSystem                = "http://hl7.org/fhir/group-measure"
	NarrativeStatusSystem             = "http://hl7.org/fhir/narrative-status"
	IdentifierUseSystem               = "http://hl7.org/fhir/identifier-use"
	QuantityComparatorSystem          = "http://hl7.org/fhir/quantity-comparator"
	SynthesisTypeSystem               = "http://terminology.hl7.org/CodeSystem/synthesis-type"
	StudyTypeSystem                   = "http://terminology.hl7.org/CodeSystem/study-type"
	EvidenceQualitySystem             = "http://terminology.hl7.org/CodeSystem/evidence-quality"
	MedicationKnowledgeCharSystem     = "http://terminology.hl7.org/CodeSystem/medicationknowledge-characteristic"
	EffectEstimateTypeSystem          = "http://terminology.hl7.org/CodeSystem/effect-estimate-type"
	PrecisionEstimateTypeSystem       = "http://terminology.hl7.org/CodeSystem/precision-estimate-type"
	VariantStateSystem                = "http://terminology.hl7.org/CodeSystem/variant-state"
	CertaintySubcomponentTypeSystem   = "http://terminology.hl7.org/CodeSystem/certainty-subcomponent-type"
	CertaintySubcomponentRatingSystem = "http://terminology.hl7.org/CodeSystem/certainty-subcomponent-rating"
)

// Value sets bound by the field tables.
const (
	MedicationKnowledgeStatusVS   = "http://hl7.org/fhir/ValueSet/medicationknowledge-status"
	MedicationCodesVS             = "http://hl7.org/fhir/ValueSet/medication-codes"
	MedicationFormCodesVS         = "http://hl7.org/fhir/ValueSet/medication-form-codes"
	RouteCodesVS                  = "http://hl7.org/fhir/ValueSet/route-codes"
	MedicationKnowledgeCharVS     = "http://hl7.org/fhir/ValueSet/medicationknowledge-characteristic"
	PublicationStatusVS           = "http://hl7.org/fhir/ValueSet/publication-status"
	ExposureStateVS               = "http://hl7.org/fhir/ValueSet/exposure-state"
	VariableTypeVS                = "http://hl7.org/fhir/ValueSet/variable-type"
	GroupMeasureVS                = "http://hl7.org/fhir/ValueSet/group-measure"
	SynthesisTypeVS               = "http://hl7.org/fhir/ValueSet/synthesis-type"
	StudyTypeVS                   = "http://hl7.org/fhir/ValueSet/study-type"
	EffectEstimateTypeVS          = "http://hl7.org/fhir/ValueSet/effect-estimate-type"
	PrecisionEstimateTypeVS       = "http://hl7.org/fhir/ValueSet/precision-estimate-type"
	VariantStateVS                = "http://hl7.org/fhir/ValueSet/variant-state"
	EvidenceQualityVS             = "http://hl7.org/fhir/ValueSet/evidence-quality"
	CertaintySubcomponentTypeVS   = "http://hl7.org/fhir/ValueSet/certainty-subcomponent-type"
	CertaintySubcomponentRatingVS = "http://hl7.org/fhir/ValueSet/certainty-subcomponent-rating"
	DefinitionTopicVS             = "http://hl7.org/fhir/ValueSet/definition-topic"
	JurisdictionVS                = "http://hl7.org/fhir/ValueSet/jurisdiction"
	UCUMUnitsVS                   = "http://hl7.org/fhir/ValueSet/ucum-units"
	NarrativeStatusVS             = "http://hl7.org/fhir/ValueSet/narrative-status"
	IdentifierUseVS               = "http://hl7.org/fhir/ValueSet/identifier-use"
	IdentifierTypeVS              = "http://hl7.org/fhir/ValueSet/identifier-type"
	QuantityComparatorVS          = "http://hl7.org/fhir/ValueSet/quantity-comparator"
	CurrenciesVS                  = "http://hl7.org/fhir/ValueSet/currencies"
	LanguagesVS                   = "http://hl7.org/fhir/ValueSet/languages"
)
