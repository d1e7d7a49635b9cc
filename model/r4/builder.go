package r4

import "github.com/gofhir/catalog/model"

// elementBuilder carries the id and extension setters shared by datatype
// builders. B is the concrete builder returned for chaining.
type elementBuilder[B any] struct {
	base model.ElementBuilder
	self *B
}

// ID sets the element id.
func (b *elementBuilder[B]) ID(id string) *B {
	b.base.SetID(id)
	return b.self
}

// ClearID removes the element id.
func (b *elementBuilder[B]) ClearID() *B {
	b.base.ClearID()
	return b.self
}

// Extension appends extensions.
func (b *elementBuilder[B]) Extension(ext ...*Extension) *B {
	b.base.AddExtension(extensions("extension", ext)...)
	return b.self
}

// SetExtension replaces the extensions.
func (b *elementBuilder[B]) SetExtension(ext []*Extension) *B {
	b.base.SetExtensions(replaceExtensions("extension", ext))
	return b.self
}

// backboneBuilder adds modifier extensions for backbone element builders.
type backboneBuilder[B any] struct {
	base model.BackboneBuilder
	self *B
}

// ID sets the element id.
func (b *backboneBuilder[B]) ID(id string) *B {
	b.base.SetID(id)
	return b.self
}

// ClearID removes the element id.
func (b *backboneBuilder[B]) ClearID() *B {
	b.base.ClearID()
	return b.self
}

// Extension appends extensions.
func (b *backboneBuilder[B]) Extension(ext ...*Extension) *B {
	b.base.AddExtension(extensions("extension", ext)...)
	return b.self
}

// SetExtension replaces the extensions.
func (b *backboneBuilder[B]) SetExtension(ext []*Extension) *B {
	b.base.SetExtensions(replaceExtensions("extension", ext))
	return b.self
}

// ModifierExtension appends modifier extensions.
func (b *backboneBuilder[B]) ModifierExtension(ext ...*Extension) *B {
	b.base.AddModifierExtension(extensions("modifierExtension", ext)...)
	return b.self
}

// SetModifierExtension replaces the modifier extensions.
func (b *backboneBuilder[B]) SetModifierExtension(ext []*Extension) *B {
	b.base.SetModifierExtensions(replaceExtensions("modifierExtension", ext))
	return b.self
}

// resourceBuilder carries the setters every record kind shares.
type resourceBuilder[B any] struct {
	base model.ResourceBuilder
	self *B
}

// ID sets the logical id.
func (b *resourceBuilder[B]) ID(id string) *B {
	b.base.SetID(id)
	return b.self
}

// ClearID removes the logical id.
func (b *resourceBuilder[B]) ClearID() *B {
	b.base.ClearID()
	return b.self
}

// Meta sets the metadata; nil clears it.
func (b *resourceBuilder[B]) Meta(m *Meta) *B {
	b.base.SetMeta(model.Elem(m))
	return b.self
}

// ImplicitRules sets the implicit rules url.
func (b *resourceBuilder[B]) ImplicitRules(uri string) *B {
	return b.ImplicitRulesElement(NewURI(uri))
}

// ImplicitRulesElement sets the implicit rules url; nil clears it.
func (b *resourceBuilder[B]) ImplicitRulesElement(uri *URI) *B {
	b.base.SetImplicitRules(model.Elem(uri))
	return b.self
}

// Language sets the language tag.
func (b *resourceBuilder[B]) Language(tag string) *B {
	return b.LanguageElement(NewCode(tag))
}

// LanguageElement sets the language tag; nil clears it.
func (b *resourceBuilder[B]) LanguageElement(tag *Code) *B {
	b.base.SetLanguage(model.Elem(tag))
	return b.self
}

// Text sets the narrative; nil clears it.
func (b *resourceBuilder[B]) Text(n *Narrative) *B {
	b.base.SetText(model.Elem(n))
	return b.self
}

// Contained appends contained records.
func (b *resourceBuilder[B]) Contained(r ...model.Resource) *B {
	b.base.AddContained(r...)
	return b.self
}

// SetContained replaces the contained records.
func (b *resourceBuilder[B]) SetContained(r []model.Resource) *B {
	b.base.SetContained(r)
	return b.self
}

// Extension appends extensions.
func (b *resourceBuilder[B]) Extension(ext ...*Extension) *B {
	b.base.AddExtension(extensions("extension", ext)...)
	return b.self
}

// SetExtension replaces the extensions.
func (b *resourceBuilder[B]) SetExtension(ext []*Extension) *B {
	b.base.SetExtensions(replaceExtensions("extension", ext))
	return b.self
}

// ModifierExtension appends modifier extensions.
func (b *resourceBuilder[B]) ModifierExtension(ext ...*Extension) *B {
	b.base.AddModifierExtension(extensions("modifierExtension", ext)...)
	return b.self
}

// SetModifierExtension replaces the modifier extensions.
func (b *resourceBuilder[B]) SetModifierExtension(ext []*Extension) *B {
	b.base.SetModifierExtensions(replaceExtensions("modifierExtension", ext))
	return b.self
}
