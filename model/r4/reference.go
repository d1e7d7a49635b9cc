package r4

import "github.com/gofhir/catalog/model"

// Reference points at another record by literal, identifier or kind.
type Reference struct {
	model.Base
	reference  *String
	type_      *URI
	identifier *Identifier
	display    *String
}

// NewReference returns a Reference holding the literal ref.
func NewReference(ref string) *Reference {
	return &Reference{Base: model.NewBase(nil, nil), reference: NewString(ref)}
}

func (r *Reference) Reference() *String      { return r.reference }
func (r *Reference) Type() *URI              { return r.type_ }
func (r *Reference) Identifier() *Identifier { return r.identifier }
func (r *Reference) Display() *String        { return r.display }

// ReferenceTarget implements model.Referencer.
func (r *Reference) ReferenceTarget() model.ReferenceTarget {
	return model.ReferenceTarget{Literal: lit(r.reference), Type: lit(r.type_)}
}

func (*Reference) TypeName() string { return "Reference" }

func (r *Reference) Fields() []model.Field {
	return append(r.BaseFields(),
		model.One("reference", r.reference),
		model.One("type", r.type_),
		model.One("identifier", r.identifier),
		model.One("display", r.display),
	)
}

func (r *Reference) HasContent() bool        { return model.HasContent(r) }
func (r *Reference) Equal(o *Reference) bool { return model.Equal(model.Elem(r), model.Elem(o)) }
func (r *Reference) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, r)
}

// ToBuilder seeds a builder from r.
func (r *Reference) ToBuilder() *ReferenceBuilder {
	b := NewReferenceBuilder()
	b.base.CopyFrom(&r.Base)
	b.reference, b.type_, b.identifier, b.display = r.reference, r.type_, r.identifier, r.display
	return b
}

// ReferenceBuilder builds a Reference.
type ReferenceBuilder struct {
	elementBuilder[ReferenceBuilder]
	reference  *String
	type_      *URI
	identifier *Identifier
	display    *String
}

// NewReferenceBuilder starts a Reference.
func NewReferenceBuilder() *ReferenceBuilder {
	b := &ReferenceBuilder{}
	b.self = b
	return b
}

// Reference sets the literal reference.
func (b *ReferenceBuilder) Reference(ref string) *ReferenceBuilder {
	return b.ReferenceElement(NewString(ref))
}

// ReferenceElement sets the literal reference; nil clears it.
func (b *ReferenceBuilder) ReferenceElement(ref *String) *ReferenceBuilder {
	b.reference = ref
	return b
}

// Type sets the target kind annotation.
func (b *ReferenceBuilder) Type(kind string) *ReferenceBuilder { return b.TypeElement(NewURI(kind)) }

// TypeElement sets the target kind annotation; nil clears it.
func (b *ReferenceBuilder) TypeElement(kind *URI) *ReferenceBuilder {
	b.type_ = kind
	return b
}

// Identifier sets the logical identifier; nil clears it.
func (b *ReferenceBuilder) Identifier(id *Identifier) *ReferenceBuilder {
	b.identifier = id
	return b
}

// Display sets the display text.
func (b *ReferenceBuilder) Display(text string) *ReferenceBuilder {
	return b.DisplayElement(NewString(text))
}

// DisplayElement sets the display text; nil clears it.
func (b *ReferenceBuilder) DisplayElement(text *String) *ReferenceBuilder {
	b.display = text
	return b
}

// Build constructs the Reference and runs v over it.
func (b *ReferenceBuilder) Build(v model.Validator) (*Reference, error) {
	return model.Finish(v, &Reference{
		Base:       b.base.Base(),
		reference:  b.reference,
		type_:      b.type_,
		identifier: b.identifier,
		display:    b.display,
	})
}
