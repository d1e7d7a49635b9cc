package r4

import (
	"slices"

	"github.com/gofhir/catalog/model"
)

// EffectEvidenceSynthesis is the combined results of research on the
// effect of an exposure on an outcome in a population.
type EffectEvidenceSynthesis struct {
	model.ResourceBase
	artifact
	synthesisType       *CodeableConcept
	studyType           *CodeableConcept
	population          *Reference
	exposure            *Reference
	exposureAlternative *Reference
	outcome             *Reference
	sampleSize          *EffectEvidenceSynthesisSampleSize
	resultsByExposure   []*EffectEvidenceSynthesisResultsByExposure
	effectEstimate      []*EffectEvidenceSynthesisEffectEstimate
	certainty           []*EffectEvidenceSynthesisCertainty
}

func (r *EffectEvidenceSynthesis) SynthesisType() *CodeableConcept { return r.synthesisType }
func (r *EffectEvidenceSynthesis) StudyType() *CodeableConcept     { return r.studyType }
func (r *EffectEvidenceSynthesis) Population() *Reference          { return r.population }
func (r *EffectEvidenceSynthesis) Exposure() *Reference            { return r.exposure }
func (r *EffectEvidenceSynthesis) ExposureAlternative() *Reference { return r.exposureAlternative }
func (r *EffectEvidenceSynthesis) Outcome() *Reference             { return r.outcome }
func (r *EffectEvidenceSynthesis) SampleSize() *EffectEvidenceSynthesisSampleSize {
	return r.sampleSize
}
func (r *EffectEvidenceSynthesis) ResultsByExposure() []*EffectEvidenceSynthesisResultsByExposure {
	return slices.Clone(r.resultsByExposure)
}
func (r *EffectEvidenceSynthesis) EffectEstimate() []*EffectEvidenceSynthesisEffectEstimate {
	return slices.Clone(r.effectEstimate)
}
func (r *EffectEvidenceSynthesis) Certainty() []*EffectEvidenceSynthesisCertainty {
	return slices.Clone(r.certainty)
}

func (*EffectEvidenceSynthesis) ResourceType() string { return "EffectEvidenceSynthesis" }
func (*EffectEvidenceSynthesis) TypeName() string     { return "EffectEvidenceSynthesis" }

func (r *EffectEvidenceSynthesis) Fields() []model.Field {
	fields := append(r.ResourceFields(), r.artifactFields()...)
	return append(fields,
		model.One("synthesisType", r.synthesisType),
		model.One("studyType", r.studyType),
		model.One("population", r.population),
		model.One("exposure", r.exposure),
		model.One("exposureAlternative", r.exposureAlternative),
		model.One("outcome", r.outcome),
		model.One("sampleSize", r.sampleSize),
		model.Many("resultsByExposure", r.resultsByExposure),
		model.Many("effectEstimate", r.effectEstimate),
		model.Many("certainty", r.certainty),
	)
}

func (r *EffectEvidenceSynthesis) HasContent() bool { return model.HasContent(r) }
func (r *EffectEvidenceSynthesis) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, r)
}
func (r *EffectEvidenceSynthesis) Equal(o *EffectEvidenceSynthesis) bool {
	return model.Equal(model.Elem(r), model.Elem(o))
}

// ToBuilder seeds a builder from r.
func (r *EffectEvidenceSynthesis) ToBuilder() *EffectEvidenceSynthesisBuilder {
	b := NewEffectEvidenceSynthesisBuilder()
	b.base.CopyFrom(&r.ResourceBase)
	b.art = r.artifact.clone()
	b.synthesisType = r.synthesisType
	b.studyType = r.studyType
	b.population = r.population
	b.exposure = r.exposure
	b.exposureAlternative = r.exposureAlternative
	b.outcome = r.outcome
	b.sampleSize = r.sampleSize
	b.resultsByExposure = slices.Clone(r.resultsByExposure)
	b.effectEstimate = slices.Clone(r.effectEstimate)
	b.certainty = slices.Clone(r.certainty)
	return b
}

// EffectEvidenceSynthesisBuilder builds an EffectEvidenceSynthesis.
type EffectEvidenceSynthesisBuilder struct {
	resourceBuilder[EffectEvidenceSynthesisBuilder]
	artifactBuilder[EffectEvidenceSynthesisBuilder]
	synthesisType       *CodeableConcept
	studyType           *CodeableConcept
	population          *Reference
	exposure            *Reference
	exposureAlternative *Reference
	outcome             *Reference
	sampleSize          *EffectEvidenceSynthesisSampleSize
	resultsByExposure   []*EffectEvidenceSynthesisResultsByExposure
	effectEstimate      []*EffectEvidenceSynthesisEffectEstimate
	certainty           []*EffectEvidenceSynthesisCertainty
}

// NewEffectEvidenceSynthesisBuilder starts an EffectEvidenceSynthesis.
func NewEffectEvidenceSynthesisBuilder() *EffectEvidenceSynthesisBuilder {
	b := &EffectEvidenceSynthesisBuilder{}
	b.self, b.ret = b, b
	return b
}

func (b *EffectEvidenceSynthesisBuilder) SynthesisType(c *CodeableConcept) *EffectEvidenceSynthesisBuilder {
	b.synthesisType = c
	return b
}

func (b *EffectEvidenceSynthesisBuilder) StudyType(c *CodeableConcept) *EffectEvidenceSynthesisBuilder {
	b.studyType = c
	return b
}

func (b *EffectEvidenceSynthesisBuilder) Population(r *Reference) *EffectEvidenceSynthesisBuilder {
	b.population = r
	return b
}

func (b *EffectEvidenceSynthesisBuilder) Exposure(r *Reference) *EffectEvidenceSynthesisBuilder {
	b.exposure = r
	return b
}

func (b *EffectEvidenceSynthesisBuilder) ExposureAlternative(r *Reference) *EffectEvidenceSynthesisBuilder {
	b.exposureAlternative = r
	return b
}

func (b *EffectEvidenceSynthesisBuilder) Outcome(r *Reference) *EffectEvidenceSynthesisBuilder {
	b.outcome = r
	return b
}

func (b *EffectEvidenceSynthesisBuilder) SampleSize(s *EffectEvidenceSynthesisSampleSize) *EffectEvidenceSynthesisBuilder {
	b.sampleSize = s
	return b
}

// ResultsByExposure appends results.
func (b *EffectEvidenceSynthesisBuilder) ResultsByExposure(r ...*EffectEvidenceSynthesisResultsByExposure) *EffectEvidenceSynthesisBuilder {
	b.resultsByExposure = model.Append("resultsByExposure", b.resultsByExposure, r...)
	return b
}

// SetResultsByExposure replaces the results.
func (b *EffectEvidenceSynthesisBuilder) SetResultsByExposure(r []*EffectEvidenceSynthesisResultsByExposure) *EffectEvidenceSynthesisBuilder {
	b.resultsByExposure = model.Replace("resultsByExposure", r)
	return b
}

// EffectEstimate appends effect estimates.
func (b *EffectEvidenceSynthesisBuilder) EffectEstimate(e ...*EffectEvidenceSynthesisEffectEstimate) *EffectEvidenceSynthesisBuilder {
	b.effectEstimate = model.Append("effectEstimate", b.effectEstimate, e...)
	return b
}

// SetEffectEstimate replaces the effect estimates.
func (b *EffectEvidenceSynthesisBuilder) SetEffectEstimate(e []*EffectEvidenceSynthesisEffectEstimate) *EffectEvidenceSynthesisBuilder {
	b.effectEstimate = model.Replace("effectEstimate", e)
	return b
}

// Certainty appends certainty assessments.
func (b *EffectEvidenceSynthesisBuilder) Certainty(c ...*EffectEvidenceSynthesisCertainty) *EffectEvidenceSynthesisBuilder {
	b.certainty = model.Append("certainty", b.certainty, c...)
	return b
}

// SetCertainty replaces the certainty assessments.
func (b *EffectEvidenceSynthesisBuilder) SetCertainty(c []*EffectEvidenceSynthesisCertainty) *EffectEvidenceSynthesisBuilder {
	b.certainty = model.Replace("certainty", c)
	return b
}

// Build constructs the EffectEvidenceSynthesis and runs v over it.
func (b *EffectEvidenceSynthesisBuilder) Build(v model.Validator) (*EffectEvidenceSynthesis, error) {
	return model.Finish(v, &EffectEvidenceSynthesis{
		ResourceBase:        b.base.Resource(),
		artifact:            b.art.clone(),
		synthesisType:       b.synthesisType,
		studyType:           b.studyType,
		population:          b.population,
		exposure:            b.exposure,
		exposureAlternative: b.exposureAlternative,
		outcome:             b.outcome,
		sampleSize:          b.sampleSize,
		resultsByExposure:   slices.Clone(b.resultsByExposure),
		effectEstimate:      slices.Clone(b.effectEstimate),
		certainty:           slices.Clone(b.certainty),
	})
}

// EffectEvidenceSynthesisSampleSize summarizes the studies and
// participants contributing to the synthesis.
type EffectEvidenceSynthesisSampleSize struct {
	model.BackboneBase
	description          *String
	numberOfStudies      *Integer
	numberOfParticipants *Integer
}

func (e *EffectEvidenceSynthesisSampleSize) Description() *String      { return e.description }
func (e *EffectEvidenceSynthesisSampleSize) NumberOfStudies() *Integer { return e.numberOfStudies }
func (e *EffectEvidenceSynthesisSampleSize) NumberOfParticipants() *Integer {
	return e.numberOfParticipants
}
func (*EffectEvidenceSynthesisSampleSize) TypeName() string {
	return "EffectEvidenceSynthesis.sampleSize"
}

func (e *EffectEvidenceSynthesisSampleSize) Fields() []model.Field {
	return append(e.BackboneFields(),
		model.One("description", e.description),
		model.One("numberOfStudies", e.numberOfStudies),
		model.One("numberOfParticipants", e.numberOfParticipants),
	)
}

func (e *EffectEvidenceSynthesisSampleSize) HasContent() bool { return model.HasContent(e) }
func (e *EffectEvidenceSynthesisSampleSize) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *EffectEvidenceSynthesisSampleSize) Equal(o *EffectEvidenceSynthesisSampleSize) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *EffectEvidenceSynthesisSampleSize) ToBuilder() *EffectEvidenceSynthesisSampleSizeBuilder {
	b := NewEffectEvidenceSynthesisSampleSizeBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.description, b.numberOfStudies, b.numberOfParticipants = e.description, e.numberOfStudies, e.numberOfParticipants
	return b
}

// EffectEvidenceSynthesisSampleSizeBuilder builds an
// EffectEvidenceSynthesisSampleSize.
type EffectEvidenceSynthesisSampleSizeBuilder struct {
	backboneBuilder[EffectEvidenceSynthesisSampleSizeBuilder]
	description          *String
	numberOfStudies      *Integer
	numberOfParticipants *Integer
}

func NewEffectEvidenceSynthesisSampleSizeBuilder() *EffectEvidenceSynthesisSampleSizeBuilder {
	b := &EffectEvidenceSynthesisSampleSizeBuilder{}
	b.self = b
	return b
}

func (b *EffectEvidenceSynthesisSampleSizeBuilder) Description(s string) *EffectEvidenceSynthesisSampleSizeBuilder {
	b.description = NewString(s)
	return b
}

func (b *EffectEvidenceSynthesisSampleSizeBuilder) NumberOfStudies(n int32) *EffectEvidenceSynthesisSampleSizeBuilder {
	b.numberOfStudies = NewInteger(n)
	return b
}

func (b *EffectEvidenceSynthesisSampleSizeBuilder) NumberOfParticipants(n int32) *EffectEvidenceSynthesisSampleSizeBuilder {
	b.numberOfParticipants = NewInteger(n)
	return b
}

func (b *EffectEvidenceSynthesisSampleSizeBuilder) Build(v model.Validator) (*EffectEvidenceSynthesisSampleSize, error) {
	return model.Finish(v, &EffectEvidenceSynthesisSampleSize{
		BackboneBase:         b.base.Backbone(),
		description:          b.description,
		numberOfStudies:      b.numberOfStudies,
		numberOfParticipants: b.numberOfParticipants,
	})
}

// EffectEvidenceSynthesisResultsByExposure is the result for one exposure
// state.
type EffectEvidenceSynthesisResultsByExposure struct {
	model.BackboneBase
	description           *String
	exposureState         *Code
	variantState          *CodeableConcept
	riskEvidenceSynthesis *Reference
}

func (e *EffectEvidenceSynthesisResultsByExposure) Description() *String { return e.description }
func (e *EffectEvidenceSynthesisResultsByExposure) ExposureState() *Code { return e.exposureState }
func (e *EffectEvidenceSynthesisResultsByExposure) VariantState() *CodeableConcept {
	return e.variantState
}
func (e *EffectEvidenceSynthesisResultsByExposure) RiskEvidenceSynthesis() *Reference {
	return e.riskEvidenceSynthesis
}
func (*EffectEvidenceSynthesisResultsByExposure) TypeName() string {
	return "EffectEvidenceSynthesis.resultsByExposure"
}

func (e *EffectEvidenceSynthesisResultsByExposure) Fields() []model.Field {
	return append(e.BackboneFields(),
		model.One("description", e.description),
		model.One("exposureState", e.exposureState),
		model.One("variantState", e.variantState),
		model.One("riskEvidenceSynthesis", e.riskEvidenceSynthesis),
	)
}

func (e *EffectEvidenceSynthesisResultsByExposure) HasContent() bool { return model.HasContent(e) }
func (e *EffectEvidenceSynthesisResultsByExposure) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *EffectEvidenceSynthesisResultsByExposure) Equal(o *EffectEvidenceSynthesisResultsByExposure) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *EffectEvidenceSynthesisResultsByExposure) ToBuilder() *EffectEvidenceSynthesisResultsByExposureBuilder {
	b := NewEffectEvidenceSynthesisResultsByExposureBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.description = e.description
	b.exposureState = e.exposureState
	b.variantState = e.variantState
	b.riskEvidenceSynthesis = e.riskEvidenceSynthesis
	return b
}

// EffectEvidenceSynthesisResultsByExposureBuilder builds an
// EffectEvidenceSynthesisResultsByExposure.
type EffectEvidenceSynthesisResultsByExposureBuilder struct {
	backboneBuilder[EffectEvidenceSynthesisResultsByExposureBuilder]
	description           *String
	exposureState         *Code
	variantState          *CodeableConcept
	riskEvidenceSynthesis *Reference
}

func NewEffectEvidenceSynthesisResultsByExposureBuilder() *EffectEvidenceSynthesisResultsByExposureBuilder {
	b := &EffectEvidenceSynthesisResultsByExposureBuilder{}
	b.self = b
	return b
}

func (b *EffectEvidenceSynthesisResultsByExposureBuilder) Description(s string) *EffectEvidenceSynthesisResultsByExposureBuilder {
	b.description = NewString(s)
	return b
}

func (b *EffectEvidenceSynthesisResultsByExposureBuilder) ExposureState(s string) *EffectEvidenceSynthesisResultsByExposureBuilder {
	return b.ExposureStateElement(NewCode(s))
}

func (b *EffectEvidenceSynthesisResultsByExposureBuilder) ExposureStateElement(c *Code) *EffectEvidenceSynthesisResultsByExposureBuilder {
	b.exposureState = c
	return b
}

func (b *EffectEvidenceSynthesisResultsByExposureBuilder) VariantState(c *CodeableConcept) *EffectEvidenceSynthesisResultsByExposureBuilder {
	b.variantState = c
	return b
}

func (b *EffectEvidenceSynthesisResultsByExposureBuilder) RiskEvidenceSynthesis(r *Reference) *EffectEvidenceSynthesisResultsByExposureBuilder {
	b.riskEvidenceSynthesis = r
	return b
}

func (b *EffectEvidenceSynthesisResultsByExposureBuilder) Build(v model.Validator) (*EffectEvidenceSynthesisResultsByExposure, error) {
	return model.Finish(v, &EffectEvidenceSynthesisResultsByExposure{
		BackboneBase:          b.base.Backbone(),
		description:           b.description,
		exposureState:         b.exposureState,
		variantState:          b.variantState,
		riskEvidenceSynthesis: b.riskEvidenceSynthesis,
	})
}

// EffectEvidenceSynthesisEffectEstimate is an estimated size of the effect.
type EffectEvidenceSynthesisEffectEstimate struct {
	model.BackboneBase
	description       *String
	type_             *CodeableConcept
	variantState      *CodeableConcept
	value             *Decimal
	unitOfMeasure     *CodeableConcept
	precisionEstimate []*EffectEvidenceSynthesisPrecisionEstimate
}

func (e *EffectEvidenceSynthesisEffectEstimate) Description() *String   { return e.description }
func (e *EffectEvidenceSynthesisEffectEstimate) Type() *CodeableConcept { return e.type_ }
func (e *EffectEvidenceSynthesisEffectEstimate) VariantState() *CodeableConcept {
	return e.variantState
}
func (e *EffectEvidenceSynthesisEffectEstimate) Value() *Decimal { return e.value }
func (e *EffectEvidenceSynthesisEffectEstimate) UnitOfMeasure() *CodeableConcept {
	return e.unitOfMeasure
}
func (e *EffectEvidenceSynthesisEffectEstimate) PrecisionEstimate() []*EffectEvidenceSynthesisPrecisionEstimate {
	return slices.Clone(e.precisionEstimate)
}
func (*EffectEvidenceSynthesisEffectEstimate) TypeName() string {
	return "EffectEvidenceSynthesis.effectEstimate"
}

func (e *EffectEvidenceSynthesisEffectEstimate) Fields() []model.Field {
	return append(e.BackboneFields(),
		model.One("description", e.description),
		model.One("type", e.type_),
		model.One("variantState", e.variantState),
		model.One("value", e.value),
		model.One("unitOfMeasure", e.unitOfMeasure),
		model.Many("precisionEstimate", e.precisionEstimate),
	)
}

func (e *EffectEvidenceSynthesisEffectEstimate) HasContent() bool { return model.HasContent(e) }
func (e *EffectEvidenceSynthesisEffectEstimate) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *EffectEvidenceSynthesisEffectEstimate) Equal(o *EffectEvidenceSynthesisEffectEstimate) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *EffectEvidenceSynthesisEffectEstimate) ToBuilder() *EffectEvidenceSynthesisEffectEstimateBuilder {
	b := NewEffectEvidenceSynthesisEffectEstimateBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.description = e.description
	b.type_ = e.type_
	b.variantState = e.variantState
	b.value = e.value
	b.unitOfMeasure = e.unitOfMeasure
	b.precisionEstimate = slices.Clone(e.precisionEstimate)
	return b
}

// EffectEvidenceSynthesisEffectEstimateBuilder builds an
// EffectEvidenceSynthesisEffectEstimate.
type EffectEvidenceSynthesisEffectEstimateBuilder struct {
	backboneBuilder[EffectEvidenceSynthesisEffectEstimateBuilder]
	description       *String
	type_             *CodeableConcept
	variantState      *CodeableConcept
	value             *Decimal
	unitOfMeasure     *CodeableConcept
	precisionEstimate []*EffectEvidenceSynthesisPrecisionEstimate
}

func NewEffectEvidenceSynthesisEffectEstimateBuilder() *EffectEvidenceSynthesisEffectEstimateBuilder {
	b := &EffectEvidenceSynthesisEffectEstimateBuilder{}
	b.self = b
	return b
}

func (b *EffectEvidenceSynthesisEffectEstimateBuilder) Description(s string) *EffectEvidenceSynthesisEffectEstimateBuilder {
	b.description = NewString(s)
	return b
}

func (b *EffectEvidenceSynthesisEffectEstimateBuilder) Type(c *CodeableConcept) *EffectEvidenceSynthesisEffectEstimateBuilder {
	b.type_ = c
	return b
}

func (b *EffectEvidenceSynthesisEffectEstimateBuilder) VariantState(c *CodeableConcept) *EffectEvidenceSynthesisEffectEstimateBuilder {
	b.variantState = c
	return b
}

func (b *EffectEvidenceSynthesisEffectEstimateBuilder) Value(d *Decimal) *EffectEvidenceSynthesisEffectEstimateBuilder {
	b.value = d
	return b
}

func (b *EffectEvidenceSynthesisEffectEstimateBuilder) UnitOfMeasure(c *CodeableConcept) *EffectEvidenceSynthesisEffectEstimateBuilder {
	b.unitOfMeasure = c
	return b
}

// PrecisionEstimate appends precision estimates.
func (b *EffectEvidenceSynthesisEffectEstimateBuilder) PrecisionEstimate(p ...*EffectEvidenceSynthesisPrecisionEstimate) *EffectEvidenceSynthesisEffectEstimateBuilder {
	b.precisionEstimate = model.Append("precisionEstimate", b.precisionEstimate, p...)
	return b
}

// SetPrecisionEstimate replaces the precision estimates.
func (b *EffectEvidenceSynthesisEffectEstimateBuilder) SetPrecisionEstimate(p []*EffectEvidenceSynthesisPrecisionEstimate) *EffectEvidenceSynthesisEffectEstimateBuilder {
	b.precisionEstimate = model.Replace("precisionEstimate", p)
	return b
}

func (b *EffectEvidenceSynthesisEffectEstimateBuilder) Build(v model.Validator) (*EffectEvidenceSynthesisEffectEstimate, error) {
	return model.Finish(v, &EffectEvidenceSynthesisEffectEstimate{
		BackboneBase:      b.base.Backbone(),
		description:       b.description,
		type_:             b.type_,
		variantState:      b.variantState,
		value:             b.value,
		unitOfMeasure:     b.unitOfMeasure,
		precisionEstimate: slices.Clone(b.precisionEstimate),
	})
}

// EffectEvidenceSynthesisPrecisionEstimate is a confidence or credible
// interval around an effect estimate.
type EffectEvidenceSynthesisPrecisionEstimate struct {
	model.BackboneBase
	type_ *CodeableConcept
	level *Decimal
	from  *Decimal
	to    *Decimal
}

func (e *EffectEvidenceSynthesisPrecisionEstimate) Type() *CodeableConcept { return e.type_ }
func (e *EffectEvidenceSynthesisPrecisionEstimate) Level() *Decimal        { return e.level }
func (e *EffectEvidenceSynthesisPrecisionEstimate) From() *Decimal         { return e.from }
func (e *EffectEvidenceSynthesisPrecisionEstimate) To() *Decimal           { return e.to }
func (*EffectEvidenceSynthesisPrecisionEstimate) TypeName() string {
	return "EffectEvidenceSynthesis.effectEstimate.precisionEstimate"
}

func (e *EffectEvidenceSynthesisPrecisionEstimate) Fields() []model.Field {
	return append(e.BackboneFields(),
		model.One("type", e.type_),
		model.One("level", e.level),
		model.One("from", e.from),
		model.One("to", e.to),
	)
}

func (e *EffectEvidenceSynthesisPrecisionEstimate) HasContent() bool { return model.HasContent(e) }
func (e *EffectEvidenceSynthesisPrecisionEstimate) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *EffectEvidenceSynthesisPrecisionEstimate) Equal(o *EffectEvidenceSynthesisPrecisionEstimate) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *EffectEvidenceSynthesisPrecisionEstimate) ToBuilder() *EffectEvidenceSynthesisPrecisionEstimateBuilder {
	b := NewEffectEvidenceSynthesisPrecisionEstimateBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.type_, b.level, b.from, b.to = e.type_, e.level, e.from, e.to
	return b
}

// EffectEvidenceSynthesisPrecisionEstimateBuilder builds an
// EffectEvidenceSynthesisPrecisionEstimate.
type EffectEvidenceSynthesisPrecisionEstimateBuilder struct {
	backboneBuilder[EffectEvidenceSynthesisPrecisionEstimateBuilder]
	type_ *CodeableConcept
	level *Decimal
	from  *Decimal
	to    *Decimal
}

func NewEffectEvidenceSynthesisPrecisionEstimateBuilder() *EffectEvidenceSynthesisPrecisionEstimateBuilder {
	b := &EffectEvidenceSynthesisPrecisionEstimateBuilder{}
	b.self = b
	return b
}

func (b *EffectEvidenceSynthesisPrecisionEstimateBuilder) Type(c *CodeableConcept) *EffectEvidenceSynthesisPrecisionEstimateBuilder {
	b.type_ = c
	return b
}

func (b *EffectEvidenceSynthesisPrecisionEstimateBuilder) Level(d *Decimal) *EffectEvidenceSynthesisPrecisionEstimateBuilder {
	b.level = d
	return b
}

func (b *EffectEvidenceSynthesisPrecisionEstimateBuilder) From(d *Decimal) *EffectEvidenceSynthesisPrecisionEstimateBuilder {
	b.from = d
	return b
}

func (b *EffectEvidenceSynthesisPrecisionEstimateBuilder) To(d *Decimal) *EffectEvidenceSynthesisPrecisionEstimateBuilder {
	b.to = d
	return b
}

func (b *EffectEvidenceSynthesisPrecisionEstimateBuilder) Build(v model.Validator) (*EffectEvidenceSynthesisPrecisionEstimate, error) {
	return model.Finish(v, &EffectEvidenceSynthesisPrecisionEstimate{
		BackboneBase: b.base.Backbone(),
		type_:        b.type_,
		level:        b.level,
		from:         b.from,
		to:           b.to,
	})
}

// EffectEvidenceSynthesisCertainty is an assessment of how certain the
// effect estimate is.
type EffectEvidenceSynthesisCertainty struct {
	model.BackboneBase
	rating                []*CodeableConcept
	certaintySubcomponent []*EffectEvidenceSynthesisCertaintySubcomponent
}

func (e *EffectEvidenceSynthesisCertainty) Rating() []*CodeableConcept { return slices.Clone(e.rating) }
func (e *EffectEvidenceSynthesisCertainty) CertaintySubcomponent() []*EffectEvidenceSynthesisCertaintySubcomponent {
	return slices.Clone(e.certaintySubcomponent)
}
func (*EffectEvidenceSynthesisCertainty) TypeName() string {
	return "EffectEvidenceSynthesis.certainty"
}

func (e *EffectEvidenceSynthesisCertainty) Fields() []model.Field {
	return append(e.BackboneFields(),
		model.Many("rating", e.rating),
		model.Many("certaintySubcomponent", e.certaintySubcomponent),
	)
}

func (e *EffectEvidenceSynthesisCertainty) HasContent() bool { return model.HasContent(e) }
func (e *EffectEvidenceSynthesisCertainty) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *EffectEvidenceSynthesisCertainty) Equal(o *EffectEvidenceSynthesisCertainty) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *EffectEvidenceSynthesisCertainty) ToBuilder() *EffectEvidenceSynthesisCertaintyBuilder {
	b := NewEffectEvidenceSynthesisCertaintyBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.rating = slices.Clone(e.rating)
	b.certaintySubcomponent = slices.Clone(e.certaintySubcomponent)
	return b
}

// EffectEvidenceSynthesisCertaintyBuilder builds an
// EffectEvidenceSynthesisCertainty.
type EffectEvidenceSynthesisCertaintyBuilder struct {
	backboneBuilder[EffectEvidenceSynthesisCertaintyBuilder]
	rating                []*CodeableConcept
	certaintySubcomponent []*EffectEvidenceSynthesisCertaintySubcomponent
}

func NewEffectEvidenceSynthesisCertaintyBuilder() *EffectEvidenceSynthesisCertaintyBuilder {
	b := &EffectEvidenceSynthesisCertaintyBuilder{}
	b.self = b
	return b
}

// Rating appends ratings.
func (b *EffectEvidenceSynthesisCertaintyBuilder) Rating(c ...*CodeableConcept) *EffectEvidenceSynthesisCertaintyBuilder {
	b.rating = model.Append("rating", b.rating, c...)
	return b
}

// SetRating replaces the ratings.
func (b *EffectEvidenceSynthesisCertaintyBuilder) SetRating(c []*CodeableConcept) *EffectEvidenceSynthesisCertaintyBuilder {
	b.rating = model.Replace("rating", c)
	return b
}

// CertaintySubcomponent appends subcomponents.
func (b *EffectEvidenceSynthesisCertaintyBuilder) CertaintySubcomponent(s ...*EffectEvidenceSynthesisCertaintySubcomponent) *EffectEvidenceSynthesisCertaintyBuilder {
	b.certaintySubcomponent = model.Append("certaintySubcomponent", b.certaintySubcomponent, s...)
	return b
}

// SetCertaintySubcomponent replaces the subcomponents.
func (b *EffectEvidenceSynthesisCertaintyBuilder) SetCertaintySubcomponent(s []*EffectEvidenceSynthesisCertaintySubcomponent) *EffectEvidenceSynthesisCertaintyBuilder {
	b.certaintySubcomponent = model.Replace("certaintySubcomponent", s)
	return b
}

func (b *EffectEvidenceSynthesisCertaintyBuilder) Build(v model.Validator) (*EffectEvidenceSynthesisCertainty, error) {
	return model.Finish(v, &EffectEvidenceSynthesisCertainty{
		BackboneBase:          b.base.Backbone(),
		rating:                slices.Clone(b.rating),
		certaintySubcomponent: slices.Clone(b.certaintySubcomponent),
	})
}

// EffectEvidenceSynthesisCertaintySubcomponent is one component of the
// certainty assessment.
type EffectEvidenceSynthesisCertaintySubcomponent struct {
	model.BackboneBase
	type_  *CodeableConcept
	rating []*CodeableConcept
}

func (e *EffectEvidenceSynthesisCertaintySubcomponent) Type() *CodeableConcept { return e.type_ }
func (e *EffectEvidenceSynthesisCertaintySubcomponent) Rating() []*CodeableConcept {
	return slices.Clone(e.rating)
}
func (*EffectEvidenceSynthesisCertaintySubcomponent) TypeName() string {
	return "EffectEvidenceSynthesis.certainty.certaintySubcomponent"
}

func (e *EffectEvidenceSynthesisCertaintySubcomponent) Fields() []model.Field {
	return append(e.BackboneFields(), model.One("type", e.type_), model.Many("rating", e.rating))
}

func (e *EffectEvidenceSynthesisCertaintySubcomponent) HasContent() bool { return model.HasContent(e) }
func (e *EffectEvidenceSynthesisCertaintySubcomponent) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *EffectEvidenceSynthesisCertaintySubcomponent) Equal(o *EffectEvidenceSynthesisCertaintySubcomponent) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *EffectEvidenceSynthesisCertaintySubcomponent) ToBuilder() *EffectEvidenceSynthesisCertaintySubcomponentBuilder {
	b := NewEffectEvidenceSynthesisCertaintySubcomponentBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.type_ = e.type_
	b.rating = slices.Clone(e.rating)
	return b
}

// EffectEvidenceSynthesisCertaintySubcomponentBuilder builds an
// EffectEvidenceSynthesisCertaintySubcomponent.
type EffectEvidenceSynthesisCertaintySubcomponentBuilder struct {
	backboneBuilder[EffectEvidenceSynthesisCertaintySubcomponentBuilder]
	type_  *CodeableConcept
	rating []*CodeableConcept
}

func NewEffectEvidenceSynthesisCertaintySubcomponentBuilder() *EffectEvidenceSynthesisCertaintySubcomponentBuilder {
	b := &EffectEvidenceSynthesisCertaintySubcomponentBuilder{}
	b.self = b
	return b
}

func (b *EffectEvidenceSynthesisCertaintySubcomponentBuilder) Type(c *CodeableConcept) *EffectEvidenceSynthesisCertaintySubcomponentBuilder {
	b.type_ = c
	return b
}

// Rating appends ratings.
func (b *EffectEvidenceSynthesisCertaintySubcomponentBuilder) Rating(c ...*CodeableConcept) *EffectEvidenceSynthesisCertaintySubcomponentBuilder {
	b.rating = model.Append("rating", b.rating, c...)
	return b
}

// SetRating replaces the ratings.
func (b *EffectEvidenceSynthesisCertaintySubcomponentBuilder) SetRating(c []*CodeableConcept) *EffectEvidenceSynthesisCertaintySubcomponentBuilder {
	b.rating = model.Replace("rating", c)
	return b
}

func (b *EffectEvidenceSynthesisCertaintySubcomponentBuilder) Build(v model.Validator) (*EffectEvidenceSynthesisCertaintySubcomponent, error) {
	return model.Finish(v, &EffectEvidenceSynthesisCertaintySubcomponent{
		BackboneBase: b.base.Backbone(),
		type_:        b.type_,
		rating:       slices.Clone(b.rating),
	})
}
