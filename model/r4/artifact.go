package r4

import (
	"slices"

	"github.com/gofhir/catalog/model"
)

// artifact holds the metadata header shared by knowledge artifacts
// (EffectEvidenceSynthesis, EvidenceVariable).
type artifact struct {
	url             *URI
	identifier      []*Identifier
	version         *String
	name            *String
	title           *String
	status          *Code
	date            *DateTime
	publisher       *String
	description     *Markdown
	jurisdiction    []*CodeableConcept
	copyright       *Markdown
	effectivePeriod *Period
	topic           []*CodeableConcept
}

func (a *artifact) URL() *URI                        { return a.url }
func (a *artifact) Identifier() []*Identifier        { return slices.Clone(a.identifier) }
func (a *artifact) Version() *String                 { return a.version }
func (a *artifact) Name() *String                    { return a.name }
func (a *artifact) Title() *String                   { return a.title }
func (a *artifact) Status() *Code                    { return a.status }
func (a *artifact) Date() *DateTime                  { return a.date }
func (a *artifact) Publisher() *String               { return a.publisher }
func (a *artifact) Description() *Markdown           { return a.description }
func (a *artifact) Jurisdiction() []*CodeableConcept { return slices.Clone(a.jurisdiction) }
func (a *artifact) Copyright() *Markdown             { return a.copyright }
func (a *artifact) EffectivePeriod() *Period         { return a.effectivePeriod }
func (a *artifact) Topic() []*CodeableConcept        { return slices.Clone(a.topic) }

func (a *artifact) artifactFields() []model.Field {
	return []model.Field{
		model.One("url", a.url),
		model.Many("identifier", a.identifier),
		model.One("version", a.version),
		model.One("name", a.name),
		model.One("title", a.title),
		model.One("status", a.status),
		model.One("date", a.date),
		model.One("publisher", a.publisher),
		model.One("description", a.description),
		model.Many("jurisdiction", a.jurisdiction),
		model.One("copyright", a.copyright),
		model.One("effectivePeriod", a.effectivePeriod),
		model.Many("topic", a.topic),
	}
}

// clone returns a with its lists copied.
func (a artifact) clone() artifact {
	a.identifier = slices.Clone(a.identifier)
	a.jurisdiction = slices.Clone(a.jurisdiction)
	a.topic = slices.Clone(a.topic)
	return a
}

// artifactBuilder stages the artifact header. B is the concrete builder.
type artifactBuilder[B any] struct {
	art artifact
	ret *B
}

func (b *artifactBuilder[B]) URL(s string) *B { return b.URLElement(NewURI(s)) }
func (b *artifactBuilder[B]) URLElement(u *URI) *B {
	b.art.url = u
	return b.ret
}

// Identifier appends identifiers.
func (b *artifactBuilder[B]) Identifier(id ...*Identifier) *B {
	b.art.identifier = model.Append("identifier", b.art.identifier, id...)
	return b.ret
}

// SetIdentifier replaces the identifiers.
func (b *artifactBuilder[B]) SetIdentifier(id []*Identifier) *B {
	b.art.identifier = model.Replace("identifier", id)
	return b.ret
}

func (b *artifactBuilder[B]) Version(s string) *B { return b.VersionElement(NewString(s)) }
func (b *artifactBuilder[B]) VersionElement(s *String) *B {
	b.art.version = s
	return b.ret
}

func (b *artifactBuilder[B]) Name(s string) *B { return b.NameElement(NewString(s)) }
func (b *artifactBuilder[B]) NameElement(s *String) *B {
	b.art.name = s
	return b.ret
}

func (b *artifactBuilder[B]) Title(s string) *B { return b.TitleElement(NewString(s)) }
func (b *artifactBuilder[B]) TitleElement(s *String) *B {
	b.art.title = s
	return b.ret
}

func (b *artifactBuilder[B]) Status(s string) *B { return b.StatusElement(NewCode(s)) }
func (b *artifactBuilder[B]) StatusElement(c *Code) *B {
	b.art.status = c
	return b.ret
}

func (b *artifactBuilder[B]) Date(s string) *B { return b.DateElement(NewDateTime(s)) }
func (b *artifactBuilder[B]) DateElement(d *DateTime) *B {
	b.art.date = d
	return b.ret
}

func (b *artifactBuilder[B]) Publisher(s string) *B { return b.PublisherElement(NewString(s)) }
func (b *artifactBuilder[B]) PublisherElement(s *String) *B {
	b.art.publisher = s
	return b.ret
}

func (b *artifactBuilder[B]) Description(s string) *B { return b.DescriptionElement(NewMarkdown(s)) }
func (b *artifactBuilder[B]) DescriptionElement(m *Markdown) *B {
	b.art.description = m
	return b.ret
}

// Jurisdiction appends jurisdictions.
func (b *artifactBuilder[B]) Jurisdiction(c ...*CodeableConcept) *B {
	b.art.jurisdiction = model.Append("jurisdiction", b.art.jurisdiction, c...)
	return b.ret
}

// SetJurisdiction replaces the jurisdictions.
func (b *artifactBuilder[B]) SetJurisdiction(c []*CodeableConcept) *B {
	b.art.jurisdiction = model.Replace("jurisdiction", c)
	return b.ret
}

func (b *artifactBuilder[B]) Copyright(s string) *B { return b.CopyrightElement(NewMarkdown(s)) }
func (b *artifactBuilder[B]) CopyrightElement(m *Markdown) *B {
	b.art.copyright = m
	return b.ret
}

func (b *artifactBuilder[B]) EffectivePeriod(p *Period) *B {
	b.art.effectivePeriod = p
	return b.ret
}

// Topic appends topics.
func (b *artifactBuilder[B]) Topic(c ...*CodeableConcept) *B {
	b.art.topic = model.Append("topic", b.art.topic, c...)
	return b.ret
}

// SetTopic replaces the topics.
func (b *artifactBuilder[B]) SetTopic(c []*CodeableConcept) *B {
	b.art.topic = model.Replace("topic", c)
	return b.ret
}
