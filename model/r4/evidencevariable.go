package r4

import (
	"slices"

	"github.com/gofhir/catalog/model"
)

// EvidenceVariable describes an element a population, exposure or outcome
// is measured on.
type EvidenceVariable struct {
	model.ResourceBase
	artifact
	type_          *Code
	characteristic []*EvidenceVariableCharacteristic
}

func (r *EvidenceVariable) Type() *Code { return r.type_ }
func (r *EvidenceVariable) Characteristic() []*EvidenceVariableCharacteristic {
	return slices.Clone(r.characteristic)
}

func (*EvidenceVariable) ResourceType() string { return "EvidenceVariable" }
func (*EvidenceVariable) TypeName() string     { return "EvidenceVariable" }

func (r *EvidenceVariable) Fields() []model.Field {
	fields := append(r.ResourceFields(), r.artifactFields()...)
	return append(fields,
		model.One("type", r.type_),
		model.Many("characteristic", r.characteristic),
	)
}

func (r *EvidenceVariable) HasContent() bool { return model.HasContent(r) }
func (r *EvidenceVariable) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, r)
}
func (r *EvidenceVariable) Equal(o *EvidenceVariable) bool {
	return model.Equal(model.Elem(r), model.Elem(o))
}

// ToBuilder seeds a builder from r.
func (r *EvidenceVariable) ToBuilder() *EvidenceVariableBuilder {
	b := NewEvidenceVariableBuilder()
	b.base.CopyFrom(&r.ResourceBase)
	b.art = r.artifact.clone()
	b.type_ = r.type_
	b.characteristic = slices.Clone(r.characteristic)
	return b
}

// EvidenceVariableBuilder builds an EvidenceVariable.
type EvidenceVariableBuilder struct {
	resourceBuilder[EvidenceVariableBuilder]
	artifactBuilder[EvidenceVariableBuilder]
	type_          *Code
	characteristic []*EvidenceVariableCharacteristic
}

// NewEvidenceVariableBuilder starts an EvidenceVariable.
func NewEvidenceVariableBuilder() *EvidenceVariableBuilder {
	b := &EvidenceVariableBuilder{}
	b.self, b.ret = b, b
	return b
}

// Type sets the variable type (dichotomous, continuous, descriptive).
func (b *EvidenceVariableBuilder) Type(s string) *EvidenceVariableBuilder {
	return b.TypeElement(NewCode(s))
}

func (b *EvidenceVariableBuilder) TypeElement(c *Code) *EvidenceVariableBuilder {
	b.type_ = c
	return b
}

// Characteristic appends characteristics.
func (b *EvidenceVariableBuilder) Characteristic(c ...*EvidenceVariableCharacteristic) *EvidenceVariableBuilder {
	b.characteristic = model.Append("characteristic", b.characteristic, c...)
	return b
}

// SetCharacteristic replaces the characteristics.
func (b *EvidenceVariableBuilder) SetCharacteristic(c []*EvidenceVariableCharacteristic) *EvidenceVariableBuilder {
	b.characteristic = model.Replace("characteristic", c)
	return b
}

// Build constructs the EvidenceVariable and runs v over it.
func (b *EvidenceVariableBuilder) Build(v model.Validator) (*EvidenceVariable, error) {
	return model.Finish(v, &EvidenceVariable{
		ResourceBase:   b.base.Resource(),
		artifact:       b.art.clone(),
		type_:          b.type_,
		characteristic: slices.Clone(b.characteristic),
	})
}

// EvidenceVariableCharacteristic is one criterion defining membership of
// the variable.
type EvidenceVariableCharacteristic struct {
	model.BackboneBase
	description          *String
	definition           EvidenceVariableCharacteristicDefinition
	exclude              *Boolean
	participantEffective EvidenceVariableCharacteristicParticipantEffective
	groupMeasure         *Code
}

func (e *EvidenceVariableCharacteristic) Description() *String { return e.description }
func (e *EvidenceVariableCharacteristic) Definition() EvidenceVariableCharacteristicDefinition {
	return e.definition
}
func (e *EvidenceVariableCharacteristic) Exclude() *Boolean { return e.exclude }
func (e *EvidenceVariableCharacteristic) ParticipantEffective() EvidenceVariableCharacteristicParticipantEffective {
	return e.participantEffective
}
func (e *EvidenceVariableCharacteristic) GroupMeasure() *Code { return e.groupMeasure }

func (*EvidenceVariableCharacteristic) TypeName() string {
	return "EvidenceVariable.characteristic"
}

func (e *EvidenceVariableCharacteristic) Fields() []model.Field {
	return append(e.BackboneFields(),
		model.One("description", e.description),
		model.ChoiceOf("definition", e.definition),
		model.One("exclude", e.exclude),
		model.ChoiceOf("participantEffective", e.participantEffective),
		model.One("groupMeasure", e.groupMeasure),
	)
}

func (e *EvidenceVariableCharacteristic) HasContent() bool { return model.HasContent(e) }
func (e *EvidenceVariableCharacteristic) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, e)
}
func (e *EvidenceVariableCharacteristic) Equal(o *EvidenceVariableCharacteristic) bool {
	return model.Equal(model.Elem(e), model.Elem(o))
}

// ToBuilder seeds a builder from e.
func (e *EvidenceVariableCharacteristic) ToBuilder() *EvidenceVariableCharacteristicBuilder {
	b := NewEvidenceVariableCharacteristicBuilder()
	b.base.CopyFrom(&e.BackboneBase)
	b.description = e.description
	b.definition = e.definition
	b.exclude = e.exclude
	b.participantEffective = e.participantEffective
	b.groupMeasure = e.groupMeasure
	return b
}

// EvidenceVariableCharacteristicBuilder builds an
// EvidenceVariableCharacteristic.
type EvidenceVariableCharacteristicBuilder struct {
	backboneBuilder[EvidenceVariableCharacteristicBuilder]
	description          *String
	definition           EvidenceVariableCharacteristicDefinition
	exclude              *Boolean
	participantEffective EvidenceVariableCharacteristicParticipantEffective
	groupMeasure         *Code
}

func NewEvidenceVariableCharacteristicBuilder() *EvidenceVariableCharacteristicBuilder {
	b := &EvidenceVariableCharacteristicBuilder{}
	b.self = b
	return b
}

func (b *EvidenceVariableCharacteristicBuilder) Description(s string) *EvidenceVariableCharacteristicBuilder {
	return b.DescriptionElement(NewString(s))
}

func (b *EvidenceVariableCharacteristicBuilder) DescriptionElement(s *String) *EvidenceVariableCharacteristicBuilder {
	b.description = s
	return b
}

// Definition sets definition[x]; a nil value clears it.
func (b *EvidenceVariableCharacteristicBuilder) Definition(d EvidenceVariableCharacteristicDefinition) *EvidenceVariableCharacteristicBuilder {
	b.definition = choice(d)
	return b
}

func (b *EvidenceVariableCharacteristicBuilder) Exclude(v bool) *EvidenceVariableCharacteristicBuilder {
	return b.ExcludeElement(NewBoolean(v))
}

func (b *EvidenceVariableCharacteristicBuilder) ExcludeElement(v *Boolean) *EvidenceVariableCharacteristicBuilder {
	b.exclude = v
	return b
}

// ParticipantEffective sets participantEffective[x]; a nil value clears it.
func (b *EvidenceVariableCharacteristicBuilder) ParticipantEffective(p EvidenceVariableCharacteristicParticipantEffective) *EvidenceVariableCharacteristicBuilder {
	b.participantEffective = choice(p)
	return b
}

func (b *EvidenceVariableCharacteristicBuilder) GroupMeasure(s string) *EvidenceVariableCharacteristicBuilder {
	return b.GroupMeasureElement(NewCode(s))
}

func (b *EvidenceVariableCharacteristicBuilder) GroupMeasureElement(c *Code) *EvidenceVariableCharacteristicBuilder {
	b.groupMeasure = c
	return b
}

func (b *EvidenceVariableCharacteristicBuilder) Build(v model.Validator) (*EvidenceVariableCharacteristic, error) {
	return model.Finish(v, &EvidenceVariableCharacteristic{
		BackboneBase:         b.base.Backbone(),
		description:          b.description,
		definition:           b.definition,
		exclude:              b.exclude,
		participantEffective: b.participantEffective,
		groupMeasure:         b.groupMeasure,
	})
}
