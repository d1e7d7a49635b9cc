package r4

import (
	"slices"

	"github.com/cockroachdb/apd/v3"

	"github.com/gofhir/catalog/model"
)

// Coding is a code defined by a code system.
type Coding struct {
	model.Base
	system       *URI
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean
}

// NewCoding returns a Coding with system and code set.
func NewCoding(system, code string) *Coding {
	return &Coding{Base: model.NewBase(nil, nil), system: NewURI(system), code: NewCode(code)}
}

func (c *Coding) System() *URI           { return c.system }
func (c *Coding) Version() *String       { return c.version }
func (c *Coding) Code() *Code            { return c.code }
func (c *Coding) Display() *String       { return c.display }
func (c *Coding) UserSelected() *Boolean { return c.userSelected }

// Codings implements model.Coded.
func (c *Coding) Codings() []model.CodeValue {
	return []model.CodeValue{c.codeValue()}
}

func (c *Coding) codeValue() model.CodeValue {
	return model.CodeValue{System: lit(c.system), Code: lit(c.code), Display: lit(c.display)}
}

func (*Coding) TypeName() string { return "Coding" }

func (c *Coding) Fields() []model.Field {
	return append(c.BaseFields(),
		model.One("system", c.system),
		model.One("version", c.version),
		model.One("code", c.code),
		model.One("display", c.display),
		model.One("userSelected", c.userSelected),
	)
}

func (c *Coding) HasContent() bool                               { return model.HasContent(c) }
func (c *Coding) Accept(v model.Visitor, name string, index int) { model.Accept(v, name, index, c) }
func (c *Coding) Equal(o *Coding) bool                           { return model.Equal(model.Elem(c), model.Elem(o)) }

// ToBuilder seeds a builder from c.
func (c *Coding) ToBuilder() *CodingBuilder {
	b := NewCodingBuilder()
	b.base.CopyFrom(&c.Base)
	b.system, b.version, b.code, b.display, b.userSelected = c.system, c.version, c.code, c.display, c.userSelected
	return b
}

// CodingBuilder builds a Coding.
type CodingBuilder struct {
	elementBuilder[CodingBuilder]
	system       *URI
	version      *String
	code         *Code
	display      *String
	userSelected *Boolean
}

// NewCodingBuilder starts a Coding.
func NewCodingBuilder() *CodingBuilder {
	b := &CodingBuilder{}
	b.self = b
	return b
}

func (b *CodingBuilder) System(s string) *CodingBuilder { return b.SystemElement(NewURI(s)) }
func (b *CodingBuilder) SystemElement(s *URI) *CodingBuilder {
	b.system = s
	return b
}
func (b *CodingBuilder) Version(s string) *CodingBuilder { return b.VersionElement(NewString(s)) }
func (b *CodingBuilder) VersionElement(s *String) *CodingBuilder {
	b.version = s
	return b
}
func (b *CodingBuilder) Code(s string) *CodingBuilder { return b.CodeElement(NewCode(s)) }
func (b *CodingBuilder) CodeElement(c *Code) *CodingBuilder {
	b.code = c
	return b
}
func (b *CodingBuilder) Display(s string) *CodingBuilder { return b.DisplayElement(NewString(s)) }
func (b *CodingBuilder) DisplayElement(s *String) *CodingBuilder {
	b.display = s
	return b
}
func (b *CodingBuilder) UserSelected(v bool) *CodingBuilder {
	return b.UserSelectedElement(NewBoolean(v))
}
func (b *CodingBuilder) UserSelectedElement(v *Boolean) *CodingBuilder {
	b.userSelected = v
	return b
}

// Build constructs the Coding and runs v over it.
func (b *CodingBuilder) Build(v model.Validator) (*Coding, error) {
	return model.Finish(v, &Coding{
		Base:         b.base.Base(),
		system:       b.system,
		version:      b.version,
		code:         b.code,
		display:      b.display,
		userSelected: b.userSelected,
	})
}

// CodeableConcept is a concept given by codings and/or text.
type CodeableConcept struct {
	model.Base
	coding []*Coding
	text   *String
}

// NewCodeableConcept returns a CodeableConcept holding one coding.
func NewCodeableConcept(system, code string) *CodeableConcept {
	return &CodeableConcept{Base: model.NewBase(nil, nil), coding: []*Coding{NewCoding(system, code)}}
}

// NewCodeableConceptText returns a text-only CodeableConcept.
func NewCodeableConceptText(text string) *CodeableConcept {
	return &CodeableConcept{Base: model.NewBase(nil, nil), text: NewString(text)}
}

func (c *CodeableConcept) Coding() []*Coding { return slices.Clone(c.coding) }
func (c *CodeableConcept) Text() *String     { return c.text }

// Codings implements model.Coded.
func (c *CodeableConcept) Codings() []model.CodeValue {
	out := make([]model.CodeValue, 0, len(c.coding))
	for _, cd := range c.coding {
		out = append(out, cd.codeValue())
	}
	return out
}

func (*CodeableConcept) TypeName() string { return "CodeableConcept" }

func (c *CodeableConcept) Fields() []model.Field {
	return append(c.BaseFields(),
		model.Many("coding", c.coding),
		model.One("text", c.text),
	)
}

func (c *CodeableConcept) HasContent() bool { return model.HasContent(c) }
func (c *CodeableConcept) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, c)
}
func (c *CodeableConcept) Equal(o *CodeableConcept) bool {
	return model.Equal(model.Elem(c), model.Elem(o))
}

// ToBuilder seeds a builder from c.
func (c *CodeableConcept) ToBuilder() *CodeableConceptBuilder {
	b := NewCodeableConceptBuilder()
	b.base.CopyFrom(&c.Base)
	b.coding = slices.Clone(c.coding)
	b.text = c.text
	return b
}

// CodeableConceptBuilder builds a CodeableConcept.
type CodeableConceptBuilder struct {
	elementBuilder[CodeableConceptBuilder]
	coding []*Coding
	text   *String
}

// NewCodeableConceptBuilder starts a CodeableConcept.
func NewCodeableConceptBuilder() *CodeableConceptBuilder {
	b := &CodeableConceptBuilder{}
	b.self = b
	return b
}

// Coding appends codings.
func (b *CodeableConceptBuilder) Coding(c ...*Coding) *CodeableConceptBuilder {
	b.coding = model.Append("coding", b.coding, c...)
	return b
}

// SetCoding replaces the codings.
func (b *CodeableConceptBuilder) SetCoding(c []*Coding) *CodeableConceptBuilder {
	b.coding = model.Replace("coding", c)
	return b
}

func (b *CodeableConceptBuilder) Text(s string) *CodeableConceptBuilder {
	return b.TextElement(NewString(s))
}
func (b *CodeableConceptBuilder) TextElement(s *String) *CodeableConceptBuilder {
	b.text = s
	return b
}

// Build constructs the CodeableConcept and runs v over it.
func (b *CodeableConceptBuilder) Build(v model.Validator) (*CodeableConcept, error) {
	return model.Finish(v, &CodeableConcept{Base: b.base.Base(), coding: slices.Clone(b.coding), text: b.text})
}

// Identifier is a business identifier.
type Identifier struct {
	model.Base
	use      *Code
	type_    *CodeableConcept
	system   *URI
	value    *String
	period   *Period
	assigner *Reference
}

// NewIdentifier returns an Identifier with system and value set.
func NewIdentifier(system, value string) *Identifier {
	return &Identifier{Base: model.NewBase(nil, nil), system: NewURI(system), value: NewString(value)}
}

func (i *Identifier) Use() *Code               { return i.use }
func (i *Identifier) Type() *CodeableConcept   { return i.type_ }
func (i *Identifier) System() *URI             { return i.system }
func (i *Identifier) Value() *String           { return i.value }
func (i *Identifier) Period() *Period          { return i.period }
func (i *Identifier) Assigner() *Reference     { return i.assigner }
func (*Identifier) TypeName() string           { return "Identifier" }
func (i *Identifier) HasContent() bool         { return model.HasContent(i) }
func (i *Identifier) Equal(o *Identifier) bool { return model.Equal(model.Elem(i), model.Elem(o)) }
func (i *Identifier) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, i)
}

func (i *Identifier) Fields() []model.Field {
	return append(i.BaseFields(),
		model.One("use", i.use),
		model.One("type", i.type_),
		model.One("system", i.system),
		model.One("value", i.value),
		model.One("period", i.period),
		model.One("assigner", i.assigner),
	)
}

// ToBuilder seeds a builder from i.
func (i *Identifier) ToBuilder() *IdentifierBuilder {
	b := NewIdentifierBuilder()
	b.base.CopyFrom(&i.Base)
	b.use, b.type_, b.system, b.value, b.period, b.assigner = i.use, i.type_, i.system, i.value, i.period, i.assigner
	return b
}

// IdentifierBuilder builds an Identifier.
type IdentifierBuilder struct {
	elementBuilder[IdentifierBuilder]
	use      *Code
	type_    *CodeableConcept
	system   *URI
	value    *String
	period   *Period
	assigner *Reference
}

// NewIdentifierBuilder starts an Identifier.
func NewIdentifierBuilder() *IdentifierBuilder {
	b := &IdentifierBuilder{}
	b.self = b
	return b
}

func (b *IdentifierBuilder) Use(s string) *IdentifierBuilder { return b.UseElement(NewCode(s)) }
func (b *IdentifierBuilder) UseElement(c *Code) *IdentifierBuilder {
	b.use = c
	return b
}
func (b *IdentifierBuilder) Type(c *CodeableConcept) *IdentifierBuilder {
	b.type_ = c
	return b
}
func (b *IdentifierBuilder) System(s string) *IdentifierBuilder { return b.SystemElement(NewURI(s)) }
func (b *IdentifierBuilder) SystemElement(s *URI) *IdentifierBuilder {
	b.system = s
	return b
}
func (b *IdentifierBuilder) Value(s string) *IdentifierBuilder { return b.ValueElement(NewString(s)) }
func (b *IdentifierBuilder) ValueElement(s *String) *IdentifierBuilder {
	b.value = s
	return b
}
func (b *IdentifierBuilder) Period(p *Period) *IdentifierBuilder {
	b.period = p
	return b
}
func (b *IdentifierBuilder) Assigner(r *Reference) *IdentifierBuilder {
	b.assigner = r
	return b
}

// Build constructs the Identifier and runs v over it.
func (b *IdentifierBuilder) Build(v model.Validator) (*Identifier, error) {
	return model.Finish(v, &Identifier{
		Base:     b.base.Base(),
		use:      b.use,
		type_:    b.type_,
		system:   b.system,
		value:    b.value,
		period:   b.period,
		assigner: b.assigner,
	})
}

// Period is a time range with optional bounds.
type Period struct {
	model.Base
	start *DateTime
	end   *DateTime
}

// NewPeriod returns a Period; an empty bound is left open.
func NewPeriod(start, end string) *Period {
	p := &Period{Base: model.NewBase(nil, nil)}
	if start != "" {
		p.start = NewDateTime(start)
	}
	if end != "" {
		p.end = NewDateTime(end)
	}
	return p
}

func (p *Period) Start() *DateTime     { return p.start }
func (p *Period) End() *DateTime       { return p.end }
func (*Period) TypeName() string       { return "Period" }
func (p *Period) HasContent() bool     { return model.HasContent(p) }
func (p *Period) Equal(o *Period) bool { return model.Equal(model.Elem(p), model.Elem(o)) }
func (p *Period) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, p)
}

func (p *Period) Fields() []model.Field {
	return append(p.BaseFields(), model.One("start", p.start), model.One("end", p.end))
}

// ToBuilder seeds a builder from p.
func (p *Period) ToBuilder() *PeriodBuilder {
	b := NewPeriodBuilder()
	b.base.CopyFrom(&p.Base)
	b.start, b.end = p.start, p.end
	return b
}

// PeriodBuilder builds a Period.
type PeriodBuilder struct {
	elementBuilder[PeriodBuilder]
	start *DateTime
	end   *DateTime
}

// NewPeriodBuilder starts a Period.
func NewPeriodBuilder() *PeriodBuilder {
	b := &PeriodBuilder{}
	b.self = b
	return b
}

func (b *PeriodBuilder) Start(s string) *PeriodBuilder { return b.StartElement(NewDateTime(s)) }
func (b *PeriodBuilder) StartElement(d *DateTime) *PeriodBuilder {
	b.start = d
	return b
}
func (b *PeriodBuilder) End(s string) *PeriodBuilder { return b.EndElement(NewDateTime(s)) }
func (b *PeriodBuilder) EndElement(d *DateTime) *PeriodBuilder {
	b.end = d
	return b
}

// Build constructs the Period and runs v over it.
func (b *PeriodBuilder) Build(v model.Validator) (*Period, error) {
	return model.Finish(v, &Period{Base: b.base.Base(), start: b.start, end: b.end})
}

// Quantity is a measured amount with an optional coded unit.
type Quantity struct {
	model.Base
	value      *Decimal
	comparator *Code
	unit       *String
	system     *URI
	code       *Code
}

// NewQuantity returns a UCUM Quantity from its decimal lexical form.
func NewQuantity(value, unit string) (*Quantity, error) {
	d, err := ParseDecimal(value)
	if err != nil {
		return nil, err
	}
	return &Quantity{
		Base:   model.NewBase(nil, nil),
		value:  d,
		unit:   NewString(unit),
		system: NewURI(UCUMSystem),
		code:   NewCode(unit),
	}, nil
}

func (q *Quantity) Value() *Decimal        { return q.value }
func (q *Quantity) Comparator() *Code      { return q.comparator }
func (q *Quantity) Unit() *String          { return q.unit }
func (q *Quantity) System() *URI           { return q.system }
func (q *Quantity) Code() *Code            { return q.code }
func (*Quantity) TypeName() string         { return "Quantity" }
func (q *Quantity) HasContent() bool       { return model.HasContent(q) }
func (q *Quantity) Equal(o *Quantity) bool { return model.Equal(model.Elem(q), model.Elem(o)) }
func (q *Quantity) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, q)
}

func (q *Quantity) Fields() []model.Field {
	return append(q.BaseFields(),
		model.One("value", q.value),
		model.One("comparator", q.comparator),
		model.One("unit", q.unit),
		model.One("system", q.system),
		model.One("code", q.code),
	)
}

// ToBuilder seeds a builder from q.
func (q *Quantity) ToBuilder() *QuantityBuilder {
	b := NewQuantityBuilder()
	b.base.CopyFrom(&q.Base)
	b.value, b.comparator, b.unit, b.system, b.code = q.value, q.comparator, q.unit, q.system, q.code
	return b
}

// QuantityBuilder builds a Quantity.
type QuantityBuilder struct {
	elementBuilder[QuantityBuilder]
	value      *Decimal
	comparator *Code
	unit       *String
	system     *URI
	code       *Code
}

// NewQuantityBuilder starts a Quantity.
func NewQuantityBuilder() *QuantityBuilder {
	b := &QuantityBuilder{}
	b.self = b
	return b
}

// Value sets the amount.
func (b *QuantityBuilder) Value(d *apd.Decimal) *QuantityBuilder {
	return b.ValueElement(NewDecimal(d))
}
func (b *QuantityBuilder) ValueElement(d *Decimal) *QuantityBuilder {
	b.value = d
	return b
}
func (b *QuantityBuilder) Comparator(s string) *QuantityBuilder {
	return b.ComparatorElement(NewCode(s))
}
func (b *QuantityBuilder) ComparatorElement(c *Code) *QuantityBuilder {
	b.comparator = c
	return b
}
func (b *QuantityBuilder) Unit(s string) *QuantityBuilder { return b.UnitElement(NewString(s)) }
func (b *QuantityBuilder) UnitElement(s *String) *QuantityBuilder {
	b.unit = s
	return b
}
func (b *QuantityBuilder) System(s string) *QuantityBuilder { return b.SystemElement(NewURI(s)) }
func (b *QuantityBuilder) SystemElement(s *URI) *QuantityBuilder {
	b.system = s
	return b
}
func (b *QuantityBuilder) Code(s string) *QuantityBuilder { return b.CodeElement(NewCode(s)) }
func (b *QuantityBuilder) CodeElement(c *Code) *QuantityBuilder {
	b.code = c
	return b
}

// Build constructs the Quantity and runs v over it.
func (b *QuantityBuilder) Build(v model.Validator) (*Quantity, error) {
	return model.Finish(v, &Quantity{
		Base:       b.base.Base(),
		value:      b.value,
		comparator: b.comparator,
		unit:       b.unit,
		system:     b.system,
		code:       b.code,
	})
}

// Money is an amount in a currency.
type Money struct {
	model.Base
	value    *Decimal
	currency *Code
}

// NewMoney returns a Money from a decimal lexical form and ISO 4217 code.
func NewMoney(value, currency string) (*Money, error) {
	d, err := ParseDecimal(value)
	if err != nil {
		return nil, err
	}
	return &Money{Base: model.NewBase(nil, nil), value: d, currency: NewCode(currency)}, nil
}

func (m *Money) Value() *Decimal     { return m.value }
func (m *Money) Currency() *Code     { return m.currency }
func (*Money) TypeName() string      { return "Money" }
func (m *Money) HasContent() bool    { return model.HasContent(m) }
func (m *Money) Equal(o *Money) bool { return model.Equal(model.Elem(m), model.Elem(o)) }
func (m *Money) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, m)
}

func (m *Money) Fields() []model.Field {
	return append(m.BaseFields(), model.One("value", m.value), model.One("currency", m.currency))
}

// ToBuilder seeds a builder from m.
func (m *Money) ToBuilder() *MoneyBuilder {
	b := NewMoneyBuilder()
	b.base.CopyFrom(&m.Base)
	b.value, b.currency = m.value, m.currency
	return b
}

// MoneyBuilder builds a Money.
type MoneyBuilder struct {
	elementBuilder[MoneyBuilder]
	value    *Decimal
	currency *Code
}

// NewMoneyBuilder starts a Money.
func NewMoneyBuilder() *MoneyBuilder {
	b := &MoneyBuilder{}
	b.self = b
	return b
}

func (b *MoneyBuilder) Value(d *apd.Decimal) *MoneyBuilder { return b.ValueElement(NewDecimal(d)) }
func (b *MoneyBuilder) ValueElement(d *Decimal) *MoneyBuilder {
	b.value = d
	return b
}
func (b *MoneyBuilder) Currency(s string) *MoneyBuilder { return b.CurrencyElement(NewCode(s)) }
func (b *MoneyBuilder) CurrencyElement(c *Code) *MoneyBuilder {
	b.currency = c
	return b
}

// Build constructs the Money and runs v over it.
func (b *MoneyBuilder) Build(v model.Validator) (*Money, error) {
	return model.Finish(v, &Money{Base: b.base.Base(), value: b.value, currency: b.currency})
}

// Ratio is a relationship between two quantities.
type Ratio struct {
	model.Base
	numerator   *Quantity
	denominator *Quantity
}

// NewRatio returns a Ratio of n to d.
func NewRatio(n, d *Quantity) *Ratio {
	return &Ratio{Base: model.NewBase(nil, nil), numerator: n, denominator: d}
}

func (r *Ratio) Numerator() *Quantity   { return r.numerator }
func (r *Ratio) Denominator() *Quantity { return r.denominator }
func (*Ratio) TypeName() string         { return "Ratio" }
func (r *Ratio) HasContent() bool       { return model.HasContent(r) }
func (r *Ratio) Equal(o *Ratio) bool    { return model.Equal(model.Elem(r), model.Elem(o)) }
func (r *Ratio) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, r)
}

func (r *Ratio) Fields() []model.Field {
	return append(r.BaseFields(),
		model.One("numerator", r.numerator),
		model.One("denominator", r.denominator),
	)
}

// ToBuilder seeds a builder from r.
func (r *Ratio) ToBuilder() *RatioBuilder {
	b := NewRatioBuilder()
	b.base.CopyFrom(&r.Base)
	b.numerator, b.denominator = r.numerator, r.denominator
	return b
}

// RatioBuilder builds a Ratio.
type RatioBuilder struct {
	elementBuilder[RatioBuilder]
	numerator   *Quantity
	denominator *Quantity
}

// NewRatioBuilder starts a Ratio.
func NewRatioBuilder() *RatioBuilder {
	b := &RatioBuilder{}
	b.self = b
	return b
}

func (b *RatioBuilder) Numerator(q *Quantity) *RatioBuilder {
	b.numerator = q
	return b
}

func (b *RatioBuilder) Denominator(q *Quantity) *RatioBuilder {
	b.denominator = q
	return b
}

// Build constructs the Ratio and runs v over it.
func (b *RatioBuilder) Build(v model.Validator) (*Ratio, error) {
	return model.Finish(v, &Ratio{Base: b.base.Base(), numerator: b.numerator, denominator: b.denominator})
}

// Meta is the record metadata block.
type Meta struct {
	model.Base
	versionID   *ID
	lastUpdated *Instant
	source      *URI
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding
}

func (m *Meta) VersionID() *ID        { return m.versionID }
func (m *Meta) LastUpdated() *Instant { return m.lastUpdated }
func (m *Meta) Source() *URI          { return m.source }
func (m *Meta) Profile() []*Canonical { return slices.Clone(m.profile) }
func (m *Meta) Security() []*Coding   { return slices.Clone(m.security) }
func (m *Meta) Tag() []*Coding        { return slices.Clone(m.tag) }
func (*Meta) TypeName() string        { return "Meta" }
func (m *Meta) HasContent() bool      { return model.HasContent(m) }
func (m *Meta) Equal(o *Meta) bool    { return model.Equal(model.Elem(m), model.Elem(o)) }
func (m *Meta) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, m)
}

// Profiles returns the declared profile urls.
func (m *Meta) Profiles() []string {
	out := make([]string, 0, len(m.profile))
	for _, p := range m.profile {
		if s, ok := p.Value(); ok {
			out = append(out, s)
		}
	}
	return out
}

func (m *Meta) Fields() []model.Field {
	return append(m.BaseFields(),
		model.One("versionId", m.versionID),
		model.One("lastUpdated", m.lastUpdated),
		model.One("source", m.source),
		model.Many("profile", m.profile),
		model.Many("security", m.security),
		model.Many("tag", m.tag),
	)
}

// ToBuilder seeds a builder from m.
func (m *Meta) ToBuilder() *MetaBuilder {
	b := NewMetaBuilder()
	b.base.CopyFrom(&m.Base)
	b.versionID, b.lastUpdated, b.source = m.versionID, m.lastUpdated, m.source
	b.profile = slices.Clone(m.profile)
	b.security = slices.Clone(m.security)
	b.tag = slices.Clone(m.tag)
	return b
}

// MetaBuilder builds a Meta.
type MetaBuilder struct {
	elementBuilder[MetaBuilder]
	versionID   *ID
	lastUpdated *Instant
	source      *URI
	profile     []*Canonical
	security    []*Coding
	tag         []*Coding
}

// NewMetaBuilder starts a Meta.
func NewMetaBuilder() *MetaBuilder {
	b := &MetaBuilder{}
	b.self = b
	return b
}

func (b *MetaBuilder) VersionID(s string) *MetaBuilder { return b.VersionIDElement(NewID(s)) }
func (b *MetaBuilder) VersionIDElement(id *ID) *MetaBuilder {
	b.versionID = id
	return b
}
func (b *MetaBuilder) LastUpdated(s string) *MetaBuilder {
	return b.LastUpdatedElement(NewInstant(s))
}
func (b *MetaBuilder) LastUpdatedElement(t *Instant) *MetaBuilder {
	b.lastUpdated = t
	return b
}
func (b *MetaBuilder) Source(s string) *MetaBuilder { return b.SourceElement(NewURI(s)) }
func (b *MetaBuilder) SourceElement(u *URI) *MetaBuilder {
	b.source = u
	return b
}

// Profile appends profile urls.
func (b *MetaBuilder) Profile(urls ...string) *MetaBuilder {
	for _, u := range urls {
		b.profile = append(b.profile, NewCanonical(u))
	}
	return b
}

// ProfileElement appends profile elements.
func (b *MetaBuilder) ProfileElement(c ...*Canonical) *MetaBuilder {
	b.profile = model.Append("profile", b.profile, c...)
	return b
}

// SetProfile replaces the profile elements.
func (b *MetaBuilder) SetProfile(c []*Canonical) *MetaBuilder {
	b.profile = model.Replace("profile", c)
	return b
}

// Security appends security labels.
func (b *MetaBuilder) Security(c ...*Coding) *MetaBuilder {
	b.security = model.Append("security", b.security, c...)
	return b
}

// SetSecurity replaces the security labels.
func (b *MetaBuilder) SetSecurity(c []*Coding) *MetaBuilder {
	b.security = model.Replace("security", c)
	return b
}

// Tag appends tags.
func (b *MetaBuilder) Tag(c ...*Coding) *MetaBuilder {
	b.tag = model.Append("tag", b.tag, c...)
	return b
}

// SetTag replaces the tags.
func (b *MetaBuilder) SetTag(c []*Coding) *MetaBuilder {
	b.tag = model.Replace("tag", c)
	return b
}

// Build constructs the Meta and runs v over it.
func (b *MetaBuilder) Build(v model.Validator) (*Meta, error) {
	return model.Finish(v, &Meta{
		Base:        b.base.Base(),
		versionID:   b.versionID,
		lastUpdated: b.lastUpdated,
		source:      b.source,
		profile:     slices.Clone(b.profile),
		security:    slices.Clone(b.security),
		tag:         slices.Clone(b.tag),
	})
}

// Narrative is the human-readable summary of a record.
type Narrative struct {
	model.Base
	status *Code
	div    *XHTML
}

// NewNarrative returns a Narrative with status and div.
func NewNarrative(status, div string) *Narrative {
	return &Narrative{Base: model.NewBase(nil, nil), status: NewCode(status), div: NewXHTML(div)}
}

func (n *Narrative) Status() *Code           { return n.status }
func (n *Narrative) Div() *XHTML             { return n.div }
func (*Narrative) TypeName() string          { return "Narrative" }
func (n *Narrative) HasContent() bool        { return model.HasContent(n) }
func (n *Narrative) Equal(o *Narrative) bool { return model.Equal(model.Elem(n), model.Elem(o)) }
func (n *Narrative) Accept(v model.Visitor, name string, index int) {
	model.Accept(v, name, index, n)
}

func (n *Narrative) Fields() []model.Field {
	return append(n.BaseFields(), model.One("status", n.status), model.One("div", n.div))
}

// ToBuilder seeds a builder from n.
func (n *Narrative) ToBuilder() *NarrativeBuilder {
	b := NewNarrativeBuilder()
	b.base.CopyFrom(&n.Base)
	b.status, b.div = n.status, n.div
	return b
}

// NarrativeBuilder builds a Narrative.
type NarrativeBuilder struct {
	elementBuilder[NarrativeBuilder]
	status *Code
	div    *XHTML
}

// NewNarrativeBuilder starts a Narrative.
func NewNarrativeBuilder() *NarrativeBuilder {
	b := &NarrativeBuilder{}
	b.self = b
	return b
}

func (b *NarrativeBuilder) Status(s string) *NarrativeBuilder { return b.StatusElement(NewCode(s)) }
func (b *NarrativeBuilder) StatusElement(c *Code) *NarrativeBuilder {
	b.status = c
	return b
}
func (b *NarrativeBuilder) Div(s string) *NarrativeBuilder { return b.DivElement(NewXHTML(s)) }
func (b *NarrativeBuilder) DivElement(x *XHTML) *NarrativeBuilder {
	b.div = x
	return b
}

// Build constructs the Narrative and runs v over it.
func (b *NarrativeBuilder) Build(v model.Validator) (*Narrative, error) {
	return model.Finish(v, &Narrative{Base: b.base.Base(), status: b.status, div: b.div})
}
