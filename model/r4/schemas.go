package r4

import (
	"strings"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/issue"
	"github.com/gofhir/catalog/pkg/schema"
)

const (
	many        = schema.Unbounded
	definitions = "http://hl7.org/fhir/StructureDefinition/"
)

// Schemas returns a fresh registry holding the field tables of every
// catalogue type. Callers may overlay profiles on the returned registry.
func Schemas() *schema.Registry {
	types := []*schema.Type{
		primitiveType("boolean", `true|false`),
		primitiveType("integer", `-?([0]|([1-9][0-9]*))`),
		primitiveType("unsignedInt", `[0]|([1-9][0-9]*)`),
		primitiveType("positiveInt", `\+?[1-9][0-9]*`),
		primitiveType("decimal", `-?(0|[1-9][0-9]*)(\.[0-9]+)?([eE][+-]?[0-9]+)?`),
		primitiveType("string", `[ \r\n\t\S]+`),
		primitiveType("code", `[^\s]+(\s[^\s]+)*`),
		primitiveType("id", `[A-Za-z0-9\-\.]{1,64}`),
		primitiveType("uri", `\S*`),
		primitiveType("canonical", `\S*`),
		primitiveType("markdown", `\s*(\S|\s)*`),
		primitiveType("dateTime", `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)(-(0[1-9]|1[0-2])(-(0[1-9]|[1-2][0-9]|3[0-1])(T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00)))?)?)?`),
		primitiveType("instant", `([0-9]([0-9]([0-9][1-9]|[1-9]0)|[1-9]00)|[1-9]000)-(0[1-9]|1[0-2])-(0[1-9]|[1-2][0-9]|3[0-1])T([01][0-9]|2[0-3]):[0-5][0-9]:([0-5][0-9]|60)(\.[0-9]+)?(Z|(\+|-)((0[0-9]|1[0-3]):[0-5][0-9]|14:00))`),
		primitiveType("base64Binary", `(\s*([0-9a-zA-Z\+/=]){4}\s*)+`),
		primitiveType("xhtml", ""),
		extensionType(),
		codingType(),
		codeableConceptType(),
		identifierType(),
		periodType(),
		quantityType(),
		moneyType(),
		ratioType(),
		metaType(),
		narrativeType(),
		referenceType(),
		medicationKnowledgeType(),
		effectEvidenceSynthesisType(),
		evidenceVariableType(),
	}
	return schema.NewRegistry(types...)
}

func el(path string, minVal, maxVal int, types ...string) *schema.Element {
	return &schema.Element{Path: path, Min: minVal, Max: maxVal, Types: types}
}

func bound(e *schema.Element, s schema.BindingStrength, valueSet string) *schema.Element {
	e.Binding = &schema.Binding{Strength: s, ValueSet: valueSet}
	return e
}

func ref(path string, minVal, maxVal int, kinds ...string) *schema.Element {
	e := el(path, minVal, maxVal, schema.TypeReference)
	e.Targets = kinds
	return e
}

func modifier(e *schema.Element) *schema.Element {
	e.IsModifier = true
	return e
}

func newType(name string, kind schema.Kind, base string, elements ...*schema.Element) *schema.Type {
	t := schema.NewType(name, kind, elements...)
	t.URL = definitions + name
	t.Base = base
	return t
}

func elementFields(path string) []*schema.Element {
	return []*schema.Element{el(path+".extension", 0, many, schema.TypeExtension)}
}

func backboneFields(path string) []*schema.Element {
	return []*schema.Element{
		el(path, 0, many, schema.TypeBackboneElement),
		el(path+".extension", 0, many, schema.TypeExtension),
		modifier(el(path+".modifierExtension", 0, many, schema.TypeExtension)),
	}
}

func resourceFields(name string) []*schema.Element {
	return []*schema.Element{
		el(name+".meta", 0, 1, "Meta"),
		modifier(el(name+".implicitRules", 0, 1, "uri")),
		el(name+".language", 0, 1, "code"),
		el(name+".text", 0, 1, "Narrative"),
		el(name+".contained", 0, many, schema.TypeResource),
		el(name+".extension", 0, many, schema.TypeExtension),
		modifier(el(name+".modifierExtension", 0, many, schema.TypeExtension)),
	}
}

func artifactFields(name string) []*schema.Element {
	return []*schema.Element{
		el(name+".url", 0, 1, "uri"),
		el(name+".identifier", 0, many, "Identifier"),
		el(name+".version", 0, 1, "string"),
		el(name+".name", 0, 1, "string"),
		el(name+".title", 0, 1, "string"),
		modifier(bound(el(name+".status", 1, 1, "code"), schema.StrengthRequired, PublicationStatusVS)),
		el(name+".date", 0, 1, "dateTime"),
		el(name+".publisher", 0, 1, "string"),
		el(name+".description", 0, 1, "markdown"),
		bound(el(name+".jurisdiction", 0, many, "CodeableConcept"), schema.StrengthExtensible, JurisdictionVS),
		el(name+".copyright", 0, 1, "markdown"),
		el(name+".effectivePeriod", 0, 1, "Period"),
		bound(el(name+".topic", 0, many, "CodeableConcept"), schema.StrengthExample, DefinitionTopicVS),
	}
}

// domainConstraints are the invariants every record kind carries.
var domainConstraints = []schema.Constraint{
	{
		Key:        "dom-4",
		Severity:   issue.SeverityError,
		Human:      "If a resource is contained in another resource, it SHALL NOT have a meta.versionId or a meta.lastUpdated",
		Expression: "contained.meta.versionId.empty() and contained.meta.lastUpdated.empty()",
	},
	{
		Key:        "dom-5",
		Severity:   issue.SeverityError,
		Human:      "If a resource is contained in another resource, it SHALL NOT have a security label",
		Expression: "contained.meta.security.empty()",
	},
}

func primitiveType(name, pattern string) *schema.Type {
	t := newType(name, schema.KindPrimitiveType, "Element", elementFields(name)...)
	t.Pattern = pattern
	return t
}

var extensionValueTypes = []string{
	"base64Binary", "boolean", "canonical", "code", "dateTime", "decimal", "id", "instant",
	"integer", "markdown", "positiveInt", "string", "unsignedInt", "uri",
	"CodeableConcept", "Coding", "Identifier", "Meta", "Money", "Period", "Quantity", "Ratio", "Reference",
}

func extensionType() *schema.Type {
	return newType("Extension", schema.KindComplexType, "Element",
		el("Extension.extension", 0, many, schema.TypeExtension),
		el("Extension.url", 1, 1, "uri"),
		el("Extension.value[x]", 0, 1, extensionValueTypes...),
	)
}

func codingType() *schema.Type {
	return newType("Coding", schema.KindComplexType, "Element", append(elementFields("Coding"),
		el("Coding.system", 0, 1, "uri"),
		el("Coding.version", 0, 1, "string"),
		el("Coding.code", 0, 1, "code"),
		el("Coding.display", 0, 1, "string"),
		el("Coding.userSelected", 0, 1, "boolean"),
	)...)
}

func codeableConceptType() *schema.Type {
	return newType("CodeableConcept", schema.KindComplexType, "Element", append(elementFields("CodeableConcept"),
		el("CodeableConcept.coding", 0, many, "Coding"),
		el("CodeableConcept.text", 0, 1, "string"),
	)...)
}

func identifierType() *schema.Type {
	return newType("Identifier", schema.KindComplexType, "Element", append(elementFields("Identifier"),
		modifier(bound(el("Identifier.use", 0, 1, "code"), schema.StrengthRequired, IdentifierUseVS)),
		bound(el("Identifier.type", 0, 1, "CodeableConcept"), schema.StrengthExtensible, IdentifierTypeVS),
		el("Identifier.system", 0, 1, "uri"),
		el("Identifier.value", 0, 1, "string"),
		el("Identifier.period", 0, 1, "Period"),
		ref("Identifier.assigner", 0, 1, "Organization"),
	)...)
}

func periodType() *schema.Type {
	return newType("Period", schema.KindComplexType, "Element", append(elementFields("Period"),
		el("Period.start", 0, 1, "dateTime"),
		el("Period.end", 0, 1, "dateTime"),
	)...).Constrain(schema.Constraint{
		Key:       "per-1",
		Severity:  issue.SeverityError,
		Human:     "If present, start SHALL have a lower value than end",
		Predicate: periodOrdered,
	})
}

// periodOrdered compares the bounds on their common precision, which is
// what the lexical dateTime form allows without a calendar.
func periodOrdered(e model.Element) bool {
	p, ok := e.(*Period)
	if !ok || p.start == nil || p.end == nil {
		return true
	}
	start, ok1 := p.start.Value()
	end, ok2 := p.end.Value()
	if !ok1 || !ok2 {
		return true
	}
	n := min(len(start), len(end))
	return strings.Compare(start[:n], end[:n]) <= 0
}

func quantityType() *schema.Type {
	return newType("Quantity", schema.KindComplexType, "Element", append(elementFields("Quantity"),
		el("Quantity.value", 0, 1, "decimal"),
		modifier(bound(el("Quantity.comparator", 0, 1, "code"), schema.StrengthRequired, QuantityComparatorVS)),
		el("Quantity.unit", 0, 1, "string"),
		el("Quantity.system", 0, 1, "uri"),
		el("Quantity.code", 0, 1, "code"),
	)...).Constrain(schema.Constraint{
		Key:        "qty-3",
		Severity:   issue.SeverityError,
		Human:      "If a code for the unit is present, the system SHALL also be present",
		Expression: "code.empty() or system.exists()",
		Predicate: func(e model.Element) bool {
			q, ok := e.(*Quantity)
			return !ok || q.code == nil || q.system != nil
		},
	})
}

func moneyType() *schema.Type {
	return newType("Money", schema.KindComplexType, "Element", append(elementFields("Money"),
		el("Money.value", 0, 1, "decimal"),
		bound(el("Money.currency", 0, 1, "code"), schema.StrengthRequired, CurrenciesVS),
	)...)
}

func ratioType() *schema.Type {
	return newType("Ratio", schema.KindComplexType, "Element", append(elementFields("Ratio"),
		el("Ratio.numerator", 0, 1, "Quantity"),
		el("Ratio.denominator", 0, 1, "Quantity"),
	)...).Constrain(schema.Constraint{
		Key:        "rat-1",
		Severity:   issue.SeverityError,
		Human:      "Numerator and denominator SHALL both be present, or both are absent. If both are absent, there SHALL be some extension present",
		Expression: "(numerator.empty() xor denominator.exists()) and (numerator.exists() or extension.exists())",
		Predicate: func(e model.Element) bool {
			r, ok := e.(*Ratio)
			if !ok {
				return true
			}
			n, d := r.numerator != nil, r.denominator != nil
			return n == d && (n || len(r.Extensions()) > 0)
		},
	})
}

func metaType() *schema.Type {
	return newType("Meta", schema.KindComplexType, "Element", append(elementFields("Meta"),
		el("Meta.versionId", 0, 1, "id"),
		el("Meta.lastUpdated", 0, 1, "instant"),
		el("Meta.source", 0, 1, "uri"),
		el("Meta.profile", 0, many, "canonical"),
		el("Meta.security", 0, many, "Coding"),
		el("Meta.tag", 0, many, "Coding"),
	)...)
}

func narrativeType() *schema.Type {
	return newType("Narrative", schema.KindComplexType, "Element", append(elementFields("Narrative"),
		bound(el("Narrative.status", 1, 1, "code"), schema.StrengthRequired, NarrativeStatusVS),
		el("Narrative.div", 1, 1, "xhtml"),
	)...)
}

func referenceType() *schema.Type {
	return newType("Reference", schema.KindComplexType, "Element", append(elementFields("Reference"),
		el("Reference.reference", 0, 1, "string"),
		el("Reference.type", 0, 1, "uri"),
		el("Reference.identifier", 0, 1, "Identifier"),
		el("Reference.display", 0, 1, "string"),
	)...)
}

func medicationKnowledgeType() *schema.Type {
	const n = "MedicationKnowledge"
	elems := resourceFields(n)
	elems = append(elems,
		bound(el(n+".code", 0, 1, "CodeableConcept"), schema.StrengthExample, MedicationCodesVS),
		bound(el(n+".status", 0, 1, "code"), schema.StrengthRequired, MedicationKnowledgeStatusVS),
		ref(n+".manufacturer", 0, 1, "Organization"),
		bound(el(n+".doseForm", 0, 1, "CodeableConcept"), schema.StrengthExample, MedicationFormCodesVS),
		el(n+".amount", 0, 1, "Quantity"),
		el(n+".synonym", 0, many, "string"),
	)
	elems = append(elems, backboneFields(n+".relatedMedicationKnowledge")...)
	elems = append(elems,
		el(n+".relatedMedicationKnowledge.type", 1, 1, "CodeableConcept"),
		ref(n+".relatedMedicationKnowledge.reference", 1, many, "MedicationKnowledge"),
		ref(n+".associatedMedication", 0, many, "Medication"),
		el(n+".productType", 0, many, "CodeableConcept"),
	)
	elems = append(elems, backboneFields(n+".monograph")...)
	elems = append(elems,
		el(n+".monograph.type", 0, 1, "CodeableConcept"),
		ref(n+".monograph.source", 0, 1, "DocumentReference", "Media"),
	)
	elems = append(elems, backboneFields(n+".ingredient")...)
	item := el(n+".ingredient.item[x]", 1, 1, "CodeableConcept", schema.TypeReference)
	item.Targets = []string{"Substance"}
	elems = append(elems,
		item,
		el(n+".ingredient.isActive", 0, 1, "boolean"),
		el(n+".ingredient.strength", 0, 1, "Ratio"),
		el(n+".preparationInstruction", 0, 1, "markdown"),
		bound(el(n+".intendedRoute", 0, many, "CodeableConcept"), schema.StrengthExample, RouteCodesVS),
	)
	elems = append(elems, backboneFields(n+".cost")...)
	elems = append(elems,
		el(n+".cost.type", 1, 1, "CodeableConcept"),
		el(n+".cost.source", 0, 1, "string"),
		el(n+".cost.cost", 1, 1, "Money"),
	)
	elems = append(elems, backboneFields(n+".drugCharacteristic")...)
	elems = append(elems,
		bound(el(n+".drugCharacteristic.type", 0, 1, "CodeableConcept"), schema.StrengthExample, MedicationKnowledgeCharVS),
		el(n+".drugCharacteristic.value[x]", 0, 1, "CodeableConcept", "string", "Quantity", "base64Binary"),
		ref(n+".contraindication", 0, many, "DetectedIssue"),
	)
	return newType(n, schema.KindResource, "DomainResource", elems...).Constrain(domainConstraints...)
}

func effectEvidenceSynthesisType() *schema.Type {
	const n = "EffectEvidenceSynthesis"
	elems := append(resourceFields(n), artifactFields(n)...)
	elems = append(elems,
		bound(el(n+".synthesisType", 0, 1, "CodeableConcept"), schema.StrengthExtensible, SynthesisTypeVS),
		bound(el(n+".studyType", 0, 1, "CodeableConcept"), schema.StrengthExtensible, StudyTypeVS),
		ref(n+".population", 1, 1, "EvidenceVariable"),
		ref(n+".exposure", 1, 1, "EvidenceVariable"),
		ref(n+".exposureAlternative", 1, 1, "EvidenceVariable"),
		ref(n+".outcome", 1, 1, "EvidenceVariable"),
		el(n+".sampleSize", 0, 1, schema.TypeBackboneElement),
		el(n+".sampleSize.extension", 0, many, schema.TypeExtension),
		modifier(el(n+".sampleSize.modifierExtension", 0, many, schema.TypeExtension)),
		el(n+".sampleSize.description", 0, 1, "string"),
		el(n+".sampleSize.numberOfStudies", 0, 1, "integer"),
		el(n+".sampleSize.numberOfParticipants", 0, 1, "integer"),
	)
	elems = append(elems, backboneFields(n+".resultsByExposure")...)
	elems = append(elems,
		el(n+".resultsByExposure.description", 0, 1, "string"),
		bound(el(n+".resultsByExposure.exposureState", 0, 1, "code"), schema.StrengthRequired, ExposureStateVS),
		bound(el(n+".resultsByExposure.variantState", 0, 1, "CodeableConcept"), schema.StrengthExtensible, VariantStateVS),
		ref(n+".resultsByExposure.riskEvidenceSynthesis", 1, 1, "RiskEvidenceSynthesis"),
	)
	elems = append(elems, backboneFields(n+".effectEstimate")...)
	elems = append(elems,
		el(n+".effectEstimate.description", 0, 1, "string"),
		bound(el(n+".effectEstimate.type", 0, 1, "CodeableConcept"), schema.StrengthExtensible, EffectEstimateTypeVS),
		bound(el(n+".effectEstimate.variantState", 0, 1, "CodeableConcept"), schema.StrengthExtensible, VariantStateVS),
		el(n+".effectEstimate.value", 0, 1, "decimal"),
		bound(el(n+".effectEstimate.unitOfMeasure", 0, 1, "CodeableConcept"), schema.StrengthRequired, UCUMUnitsVS),
	)
	elems = append(elems, backboneFields(n+".effectEstimate.precisionEstimate")...)
	elems = append(elems,
		bound(el(n+".effectEstimate.precisionEstimate.type", 0, 1, "CodeableConcept"), schema.StrengthExtensible, PrecisionEstimateTypeVS),
		el(n+".effectEstimate.precisionEstimate.level", 0, 1, "decimal"),
		el(n+".effectEstimate.precisionEstimate.from", 0, 1, "decimal"),
		el(n+".effectEstimate.precisionEstimate.to", 0, 1, "decimal"),
	)
	elems = append(elems, backboneFields(n+".certainty")...)
	elems = append(elems,
		bound(el(n+".certainty.rating", 0, many, "CodeableConcept"), schema.StrengthExtensible, EvidenceQualityVS),
	)
	elems = append(elems, backboneFields(n+".certainty.certaintySubcomponent")...)
	elems = append(elems,
		bound(el(n+".certainty.certaintySubcomponent.type", 0, 1, "CodeableConcept"), schema.StrengthExtensible, CertaintySubcomponentTypeVS),
		bound(el(n+".certainty.certaintySubcomponent.rating", 0, many, "CodeableConcept"), schema.StrengthExtensible, CertaintySubcomponentRatingVS),
	)
	t := newType(n, schema.KindResource, "DomainResource", elems...).Constrain(domainConstraints...)
	return t.Constrain(schema.Constraint{
		Key:        "ees-0",
		Severity:   issue.SeverityWarning,
		Human:      "Name should be usable as an identifier for the module by machine processing applications such as code generation",
		Expression: "name.matches('[A-Z]([A-Za-z0-9_]){0,254}')",
	})
}

func evidenceVariableType() *schema.Type {
	const n = "EvidenceVariable"
	elems := append(resourceFields(n), artifactFields(n)...)
	elems = append(elems,
		bound(el(n+".type", 0, 1, "code"), schema.StrengthRequired, VariableTypeVS),
	)
	characteristic := backboneFields(n + ".characteristic")
	characteristic[0].Min = 1
	elems = append(elems, characteristic...)
	definition := el(n+".characteristic.definition[x]", 1, 1, schema.TypeReference, "canonical", "CodeableConcept")
	definition.Targets = []string{"Group"}
	elems = append(elems,
		el(n+".characteristic.description", 0, 1, "string"),
		definition,
		modifier(el(n+".characteristic.exclude", 0, 1, "boolean")),
		el(n+".characteristic.participantEffective[x]", 0, 1, "dateTime", "Period"),
		bound(el(n+".characteristic.groupMeasure", 0, 1, "code"), schema.StrengthRequired, GroupMeasureVS),
	)
	t := newType(n, schema.KindResource, "DomainResource", elems...).Constrain(domainConstraints...)
	return t.Constrain(schema.Constraint{
		Key:        "evv-0",
		Severity:   issue.SeverityWarning,
		Human:      "Name should be usable as an identifier for the module by machine processing applications such as code generation",
		Expression: "name.matches('[A-Z]([A-Za-z0-9_]){0,254}')",
	})
}
