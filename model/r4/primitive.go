package r4

import (
	"strconv"

	"github.com/cockroachdb/apd/v3"

	"github.com/gofhir/catalog/model"
)

// primitive holds the value shared by the scalar types. The outer types
// supply TypeName, Kind, Literal and Accept so visitors see them directly.
type primitive[T any] struct {
	model.Base
	value *T
}

// Value returns the scalar value.
func (p *primitive[T]) Value() (T, bool) {
	if p == nil || p.value == nil {
		var zero T
		return zero, false
	}
	return *p.value, true
}

// HasValue reports whether the scalar value is set.
func (p *primitive[T]) HasValue() bool {
	return p != nil && p.value != nil
}

// Fields lists the extension field; primitives have no other children.
func (p *primitive[T]) Fields() []model.Field {
	return p.BaseFields()
}

func literalOf[T any](p *primitive[T], format func(T) string) (string, bool) {
	v, ok := p.Value()
	if !ok {
		return "", false
	}
	return format(v), true
}

func identity(s string) string { return s }

// lit returns the literal of a possibly absent primitive, or "".
func lit[T any, P interface {
	*T
	model.Primitive
}](p P) string {
	if p == nil {
		return ""
	}
	s, _ := p.Literal()
	return s
}

// PrimitiveBuilder builds any primitive type.
type PrimitiveBuilder[T any, P model.Element] struct {
	base  model.ElementBuilder
	value *T
	make  func(model.Base, *T) P
}

func newPrimitiveBuilder[T any, P model.Element](mk func(model.Base, *T) P) *PrimitiveBuilder[T, P] {
	return &PrimitiveBuilder[T, P]{make: mk}
}

// ID sets the element id.
func (b *PrimitiveBuilder[T, P]) ID(id string) *PrimitiveBuilder[T, P] {
	b.base.SetID(id)
	return b
}

// Value sets the scalar value.
func (b *PrimitiveBuilder[T, P]) Value(v T) *PrimitiveBuilder[T, P] {
	b.value = &v
	return b
}

// ClearValue removes the scalar value.
func (b *PrimitiveBuilder[T, P]) ClearValue() *PrimitiveBuilder[T, P] {
	b.value = nil
	return b
}

// Extension appends extensions.
func (b *PrimitiveBuilder[T, P]) Extension(ext ...*Extension) *PrimitiveBuilder[T, P] {
	b.base.AddExtension(extensions("extension", ext)...)
	return b
}

// SetExtension replaces the extensions.
func (b *PrimitiveBuilder[T, P]) SetExtension(ext []*Extension) *PrimitiveBuilder[T, P] {
	b.base.SetExtensions(replaceExtensions("extension", ext))
	return b
}

// Build constructs the primitive and runs v over it.
func (b *PrimitiveBuilder[T, P]) Build(v model.Validator) (P, error) {
	var val *T
	if b.value != nil {
		c := *b.value
		val = &c
	}
	return model.Finish(v, b.make(b.base.Base(), val))
}

// --- string-valued primitives ---

// String is the FHIR string type.
type String struct{ primitive[string] }

// NewString returns a String holding v.
func NewString(v string) *String {
	return &String{primitive[string]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewStringBuilder starts a String.
func NewStringBuilder() *PrimitiveBuilder[string, *String] {
	return newPrimitiveBuilder(func(b model.Base, v *string) *String { return &String{primitive[string]{b, v}} })
}

func (*String) TypeName() string                          { return "string" }
func (*String) Kind() model.PrimitiveKind                 { return model.KindString }
func (p *String) Literal() (string, bool)                 { return literalOf(&p.primitive, identity) }
func (p *String) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *String) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *String) Equal(o *String) bool                    { return model.Equal(model.Elem(p), model.Elem(o)) }

// Code is the FHIR code type.
type Code struct{ primitive[string] }

// NewCode returns a Code holding v.
func NewCode(v string) *Code {
	return &Code{primitive[string]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewCodeBuilder starts a Code.
func NewCodeBuilder() *PrimitiveBuilder[string, *Code] {
	return newPrimitiveBuilder(func(b model.Base, v *string) *Code { return &Code{primitive[string]{b, v}} })
}

func (*Code) TypeName() string                          { return "code" }
func (*Code) Kind() model.PrimitiveKind                 { return model.KindString }
func (p *Code) Literal() (string, bool)                 { return literalOf(&p.primitive, identity) }
func (p *Code) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *Code) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *Code) Equal(o *Code) bool                      { return model.Equal(model.Elem(p), model.Elem(o)) }

// Codings exposes the code with its system left to the bound value set.
func (p *Code) Codings() []model.CodeValue {
	v, ok := p.Value()
	if !ok {
		return nil
	}
	return []model.CodeValue{{Code: v}}
}

// ID is the FHIR id type.
type ID struct{ primitive[string] }

// NewID returns an ID holding v.
func NewID(v string) *ID { return &ID{primitive[string]{Base: model.NewBase(nil, nil), value: &v}} }

// NewIDBuilder starts an ID.
func NewIDBuilder() *PrimitiveBuilder[string, *ID] {
	return newPrimitiveBuilder(func(b model.Base, v *string) *ID { return &ID{primitive[string]{b, v}} })
}

func (*ID) TypeName() string                          { return "id" }
func (*ID) Kind() model.PrimitiveKind                 { return model.KindString }
func (p *ID) Literal() (string, bool)                 { return literalOf(&p.primitive, identity) }
func (p *ID) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *ID) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *ID) Equal(o *ID) bool                        { return model.Equal(model.Elem(p), model.Elem(o)) }

// URI is the FHIR uri type.
type URI struct{ primitive[string] }

// NewURI returns a URI holding v.
func NewURI(v string) *URI { return &URI{primitive[string]{Base: model.NewBase(nil, nil), value: &v}} }

// NewURIBuilder starts a URI.
func NewURIBuilder() *PrimitiveBuilder[string, *URI] {
	return newPrimitiveBuilder(func(b model.Base, v *string) *URI { return &URI{primitive[string]{b, v}} })
}

func (*URI) TypeName() string                          { return "uri" }
func (*URI) Kind() model.PrimitiveKind                 { return model.KindString }
func (p *URI) Literal() (string, bool)                 { return literalOf(&p.primitive, identity) }
func (p *URI) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *URI) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *URI) Equal(o *URI) bool                       { return model.Equal(model.Elem(p), model.Elem(o)) }

// Canonical is the FHIR canonical type.
type Canonical struct{ primitive[string] }

// NewCanonical returns a Canonical holding v.
func NewCanonical(v string) *Canonical {
	return &Canonical{primitive[string]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewCanonicalBuilder starts a Canonical.
func NewCanonicalBuilder() *PrimitiveBuilder[string, *Canonical] {
	return newPrimitiveBuilder(func(b model.Base, v *string) *Canonical { return &Canonical{primitive[string]{b, v}} })
}

func (*Canonical) TypeName() string                          { return "canonical" }
func (*Canonical) Kind() model.PrimitiveKind                 { return model.KindString }
func (p *Canonical) Literal() (string, bool)                 { return literalOf(&p.primitive, identity) }
func (p *Canonical) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *Canonical) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *Canonical) Equal(o *Canonical) bool                 { return model.Equal(model.Elem(p), model.Elem(o)) }

// Markdown is the FHIR markdown type.
type Markdown struct{ primitive[string] }

// NewMarkdown returns a Markdown holding v.
func NewMarkdown(v string) *Markdown {
	return &Markdown{primitive[string]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewMarkdownBuilder starts a Markdown.
func NewMarkdownBuilder() *PrimitiveBuilder[string, *Markdown] {
	return newPrimitiveBuilder(func(b model.Base, v *string) *Markdown { return &Markdown{primitive[string]{b, v}} })
}

func (*Markdown) TypeName() string                          { return "markdown" }
func (*Markdown) Kind() model.PrimitiveKind                 { return model.KindString }
func (p *Markdown) Literal() (string, bool)                 { return literalOf(&p.primitive, identity) }
func (p *Markdown) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *Markdown) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *Markdown) Equal(o *Markdown) bool                  { return model.Equal(model.Elem(p), model.Elem(o)) }

// DateTime is the FHIR dateTime type, held in its lexical form.
type DateTime struct{ primitive[string] }

// NewDateTime returns a DateTime holding v.
func NewDateTime(v string) *DateTime {
	return &DateTime{primitive[string]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewDateTimeBuilder starts a DateTime.
func NewDateTimeBuilder() *PrimitiveBuilder[string, *DateTime] {
	return newPrimitiveBuilder(func(b model.Base, v *string) *DateTime { return &DateTime{primitive[string]{b, v}} })
}

func (*DateTime) TypeName() string                          { return "dateTime" }
func (*DateTime) Kind() model.PrimitiveKind                 { return model.KindString }
func (p *DateTime) Literal() (string, bool)                 { return literalOf(&p.primitive, identity) }
func (p *DateTime) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *DateTime) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *DateTime) Equal(o *DateTime) bool                  { return model.Equal(model.Elem(p), model.Elem(o)) }

// Base64Binary is the FHIR base64Binary type, held in its encoded form.
type Base64Binary struct{ primitive[string] }

// NewBase64Binary returns a Base64Binary holding the encoded value v.
func NewBase64Binary(v string) *Base64Binary {
	return &Base64Binary{primitive[string]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewBase64BinaryBuilder starts a Base64Binary.
func NewBase64BinaryBuilder() *PrimitiveBuilder[string, *Base64Binary] {
	return newPrimitiveBuilder(func(b model.Base, v *string) *Base64Binary { return &Base64Binary{primitive[string]{b, v}} })
}

func (*Base64Binary) TypeName() string                          { return "base64Binary" }
func (*Base64Binary) Kind() model.PrimitiveKind                 { return model.KindString }
func (p *Base64Binary) Literal() (string, bool)                 { return literalOf(&p.primitive, identity) }
func (p *Base64Binary) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *Base64Binary) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *Base64Binary) Equal(o *Base64Binary) bool              { return model.Equal(model.Elem(p), model.Elem(o)) }

// --- other scalar primitives ---

// Boolean is the FHIR boolean type.
type Boolean struct{ primitive[bool] }

// NewBoolean returns a Boolean holding v.
func NewBoolean(v bool) *Boolean {
	return &Boolean{primitive[bool]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewBooleanBuilder starts a Boolean.
func NewBooleanBuilder() *PrimitiveBuilder[bool, *Boolean] {
	return newPrimitiveBuilder(func(b model.Base, v *bool) *Boolean { return &Boolean{primitive[bool]{b, v}} })
}

func (*Boolean) TypeName() string                          { return "boolean" }
func (*Boolean) Kind() model.PrimitiveKind                 { return model.KindBoolean }
func (p *Boolean) Literal() (string, bool)                 { return literalOf(&p.primitive, strconv.FormatBool) }
func (p *Boolean) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *Boolean) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *Boolean) Equal(o *Boolean) bool                   { return model.Equal(model.Elem(p), model.Elem(o)) }

// Integer is the FHIR integer type.
type Integer struct{ primitive[int32] }

// NewInteger returns an Integer holding v.
func NewInteger(v int32) *Integer {
	return &Integer{primitive[int32]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewIntegerBuilder starts an Integer.
func NewIntegerBuilder() *PrimitiveBuilder[int32, *Integer] {
	return newPrimitiveBuilder(func(b model.Base, v *int32) *Integer { return &Integer{primitive[int32]{b, v}} })
}

func formatInt32(v int32) string { return strconv.FormatInt(int64(v), 10) }

func (*Integer) TypeName() string                          { return "integer" }
func (*Integer) Kind() model.PrimitiveKind                 { return model.KindNumber }
func (p *Integer) Literal() (string, bool)                 { return literalOf(&p.primitive, formatInt32) }
func (p *Integer) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *Integer) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *Integer) Equal(o *Integer) bool                   { return model.Equal(model.Elem(p), model.Elem(o)) }

// UnsignedInt is the FHIR unsignedInt type.
type UnsignedInt struct{ primitive[uint32] }

// NewUnsignedInt returns an UnsignedInt holding v.
func NewUnsignedInt(v uint32) *UnsignedInt {
	return &UnsignedInt{primitive[uint32]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewUnsignedIntBuilder starts an UnsignedInt.
func NewUnsignedIntBuilder() *PrimitiveBuilder[uint32, *UnsignedInt] {
	return newPrimitiveBuilder(func(b model.Base, v *uint32) *UnsignedInt { return &UnsignedInt{primitive[uint32]{b, v}} })
}

func formatUint32(v uint32) string { return strconv.FormatUint(uint64(v), 10) }

func (*UnsignedInt) TypeName() string                          { return "unsignedInt" }
func (*UnsignedInt) Kind() model.PrimitiveKind                 { return model.KindNumber }
func (p *UnsignedInt) Literal() (string, bool)                 { return literalOf(&p.primitive, formatUint32) }
func (p *UnsignedInt) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *UnsignedInt) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *UnsignedInt) Equal(o *UnsignedInt) bool               { return model.Equal(model.Elem(p), model.Elem(o)) }

// Decimal is the FHIR decimal type. The value keeps its precision, so 1.0
// and 1.00 are different values.
type Decimal struct {
	model.Base
	value *apd.Decimal
}

// NewDecimal returns a Decimal holding a copy of d.
func NewDecimal(d *apd.Decimal) *Decimal {
	return &Decimal{Base: model.NewBase(nil, nil), value: copyDecimal(d)}
}

// ParseDecimal returns a Decimal parsed from its lexical form.
func ParseDecimal(s string) (*Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return nil, err
	}
	return &Decimal{Base: model.NewBase(nil, nil), value: d}, nil
}

func copyDecimal(d *apd.Decimal) *apd.Decimal {
	if d == nil {
		return nil
	}
	return new(apd.Decimal).Set(d)
}

// Value returns a copy of the value.
func (p *Decimal) Value() (*apd.Decimal, bool) {
	if p == nil || p.value == nil {
		return nil, false
	}
	return copyDecimal(p.value), true
}

// HasValue reports whether the value is set.
func (p *Decimal) HasValue() bool { return p != nil && p.value != nil }

func (*Decimal) TypeName() string          { return "decimal" }
func (*Decimal) Kind() model.PrimitiveKind { return model.KindNumber }
func (p *Decimal) Fields() []model.Field   { return p.BaseFields() }
func (p *Decimal) HasContent() bool        { return p.HasValue() || model.HasContent(p) }
func (p *Decimal) Accept(v model.Visitor, n string, i int) {
	model.Accept(v, n, i, p)
}
func (p *Decimal) Equal(o *Decimal) bool { return model.Equal(model.Elem(p), model.Elem(o)) }

// Literal renders the value in plain (non-exponent) notation.
func (p *Decimal) Literal() (string, bool) {
	if !p.HasValue() {
		return "", false
	}
	return p.value.Text('f'), true
}

// DecimalBuilder builds a Decimal.
type DecimalBuilder struct {
	base  model.ElementBuilder
	value *apd.Decimal
}

// NewDecimalBuilder starts a Decimal.
func NewDecimalBuilder() *DecimalBuilder { return &DecimalBuilder{} }

// ID sets the element id.
func (b *DecimalBuilder) ID(id string) *DecimalBuilder {
	b.base.SetID(id)
	return b
}

// Value sets the value; nil clears it.
func (b *DecimalBuilder) Value(d *apd.Decimal) *DecimalBuilder {
	b.value = copyDecimal(d)
	return b
}

// Float sets the value from a float64 using its shortest representation.
func (b *DecimalBuilder) Float(f float64) *DecimalBuilder {
	d, _, err := apd.NewFromString(strconv.FormatFloat(f, 'f', -1, 64))
	if err != nil {
		panic(&model.PreconditionError{Field: "value", Reason: err.Error()})
	}
	b.value = d
	return b
}

// Extension appends extensions.
func (b *DecimalBuilder) Extension(ext ...*Extension) *DecimalBuilder {
	b.base.AddExtension(extensions("extension", ext)...)
	return b
}

// Build constructs the Decimal and runs v over it.
func (b *DecimalBuilder) Build(v model.Validator) (*Decimal, error) {
	return model.Finish(v, &Decimal{Base: b.base.Base(), value: copyDecimal(b.value)})
}

// Instant is the FHIR instant type, held in its lexical form.
type Instant struct{ primitive[string] }

// NewInstant returns an Instant holding v.
func NewInstant(v string) *Instant {
	return &Instant{primitive[string]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewInstantBuilder starts an Instant.
func NewInstantBuilder() *PrimitiveBuilder[string, *Instant] {
	return newPrimitiveBuilder(func(b model.Base, v *string) *Instant { return &Instant{primitive[string]{b, v}} })
}

func (*Instant) TypeName() string                          { return "instant" }
func (*Instant) Kind() model.PrimitiveKind                 { return model.KindString }
func (p *Instant) Literal() (string, bool)                 { return literalOf(&p.primitive, identity) }
func (p *Instant) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *Instant) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *Instant) Equal(o *Instant) bool                   { return model.Equal(model.Elem(p), model.Elem(o)) }

// XHTML is the narrative div, held as markup text.
type XHTML struct{ primitive[string] }

// NewXHTML returns an XHTML holding v.
func NewXHTML(v string) *XHTML {
	return &XHTML{primitive[string]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewXHTMLBuilder starts an XHTML.
func NewXHTMLBuilder() *PrimitiveBuilder[string, *XHTML] {
	return newPrimitiveBuilder(func(b model.Base, v *string) *XHTML { return &XHTML{primitive[string]{b, v}} })
}

func (*XHTML) TypeName() string                          { return "xhtml" }
func (*XHTML) Kind() model.PrimitiveKind                 { return model.KindString }
func (p *XHTML) Literal() (string, bool)                 { return literalOf(&p.primitive, identity) }
func (p *XHTML) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *XHTML) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *XHTML) Equal(o *XHTML) bool                     { return model.Equal(model.Elem(p), model.Elem(o)) }

// PositiveInt is the FHIR positiveInt type. Zero is representable but
// rejected by validation.
type PositiveInt struct{ primitive[uint32] }

// NewPositiveInt returns a PositiveInt holding v.
func NewPositiveInt(v uint32) *PositiveInt {
	return &PositiveInt{primitive[uint32]{Base: model.NewBase(nil, nil), value: &v}}
}

// NewPositiveIntBuilder starts a PositiveInt.
func NewPositiveIntBuilder() *PrimitiveBuilder[uint32, *PositiveInt] {
	return newPrimitiveBuilder(func(b model.Base, v *uint32) *PositiveInt { return &PositiveInt{primitive[uint32]{b, v}} })
}

func (*PositiveInt) TypeName() string                          { return "positiveInt" }
func (*PositiveInt) Kind() model.PrimitiveKind                 { return model.KindNumber }
func (p *PositiveInt) Literal() (string, bool)                 { return literalOf(&p.primitive, formatUint32) }
func (p *PositiveInt) HasContent() bool                        { return p.HasValue() || model.HasContent(p) }
func (p *PositiveInt) Accept(v model.Visitor, n string, i int) { model.Accept(v, n, i, p) }
func (p *PositiveInt) Equal(o *PositiveInt) bool               { return model.Equal(model.Elem(p), model.Elem(o)) }
