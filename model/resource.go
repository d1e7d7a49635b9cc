package model

import "slices"

// ResourceBase holds the parts shared by every record kind. Meta and text
// are opaque to the framework.
type ResourceBase struct {
	id                *string
	meta              Element
	implicitRules     Element
	language          Element
	text              Element
	contained         []Resource
	extension         []Extension
	modifierExtension []Extension
	memo              *memo
}

// ElementID returns the logical id.
func (r *ResourceBase) ElementID() (string, bool) {
	return r.ResourceID()
}

// ResourceID returns the logical id.
func (r *ResourceBase) ResourceID() (string, bool) {
	if r.id == nil {
		return "", false
	}
	return *r.id, true
}

// Meta returns the metadata block, or nil.
func (r *ResourceBase) Meta() Element { return r.meta }

// ImplicitRules returns the implicit-rules locator, or nil.
func (r *ResourceBase) ImplicitRules() Element { return r.implicitRules }

// Language returns the content language, or nil.
func (r *ResourceBase) Language() Element { return r.language }

// Text returns the narrative, or nil.
func (r *ResourceBase) Text() Element { return r.text }

// Contained returns a copy of the contained resources.
func (r *ResourceBase) Contained() []Resource {
	return slices.Clone(r.contained)
}

// Extensions returns a copy of the extension list.
func (r *ResourceBase) Extensions() []Extension {
	return slices.Clone(r.extension)
}

// ModifierExtensions returns a copy of the modifier extension list.
func (r *ResourceBase) ModifierExtensions() []Extension {
	return slices.Clone(r.modifierExtension)
}

// ResourceFields lists the shared resource fields in declaration order.
func (r *ResourceBase) ResourceFields() []Field {
	return []Field{
		OneOf("meta", r.meta),
		OneOf("implicitRules", r.implicitRules),
		OneOf("language", r.language),
		OneOf("text", r.text),
		ManyOf("contained", r.contained),
		ManyOf("extension", r.extension),
		ManyOf("modifierExtension", r.modifierExtension),
	}
}

func (r *ResourceBase) hashMemo() *memo {
	return r.memo
}

// ResourceBuilder stages the shared resource parts for a concrete builder.
type ResourceBuilder struct {
	id                *string
	meta              Element
	implicitRules     Element
	language          Element
	text              Element
	contained         []Resource
	extension         []Extension
	modifierExtension []Extension
}

// SetID sets the logical id.
func (b *ResourceBuilder) SetID(id string) { b.id = &id }

// ClearID removes the logical id.
func (b *ResourceBuilder) ClearID() { b.id = nil }

// SetMeta sets the metadata block; nil clears it.
func (b *ResourceBuilder) SetMeta(e Element) { b.meta = e }

// SetImplicitRules sets the implicit-rules locator; nil clears it.
func (b *ResourceBuilder) SetImplicitRules(e Element) { b.implicitRules = e }

// SetLanguage sets the content language; nil clears it.
func (b *ResourceBuilder) SetLanguage(e Element) { b.language = e }

// SetText sets the narrative; nil clears it.
func (b *ResourceBuilder) SetText(e Element) { b.text = e }

// AddContained appends contained resources.
func (b *ResourceBuilder) AddContained(r ...Resource) {
	b.contained = Append("contained", b.contained, r...)
}

// SetContained replaces the contained resources.
func (b *ResourceBuilder) SetContained(r []Resource) {
	b.contained = Replace("contained", r)
}

// AddExtension appends extensions.
func (b *ResourceBuilder) AddExtension(ext ...Extension) {
	b.extension = Append("extension", b.extension, ext...)
}

// SetExtensions replaces the extensions.
func (b *ResourceBuilder) SetExtensions(ext []Extension) {
	b.extension = Replace("extension", ext)
}

// AddModifierExtension appends modifier extensions.
func (b *ResourceBuilder) AddModifierExtension(ext ...Extension) {
	b.modifierExtension = Append("modifierExtension", b.modifierExtension, ext...)
}

// SetModifierExtensions replaces the modifier extensions.
func (b *ResourceBuilder) SetModifierExtensions(ext []Extension) {
	b.modifierExtension = Replace("modifierExtension", ext)
}

// CopyFrom seeds the builder from a built resource.
func (b *ResourceBuilder) CopyFrom(r *ResourceBase) {
	b.id = r.id
	b.meta = r.meta
	b.implicitRules = r.implicitRules
	b.language = r.language
	b.text = r.text
	b.contained = slices.Clone(r.contained)
	b.extension = slices.Clone(r.extension)
	b.modifierExtension = slices.Clone(r.modifierExtension)
}

// Resource assembles a ResourceBase from the staged parts. The builder keeps
// its own copies, so it may be reused.
func (b *ResourceBuilder) Resource() ResourceBase {
	return ResourceBase{
		id:                b.id,
		meta:              b.meta,
		implicitRules:     b.implicitRules,
		language:          b.language,
		text:              b.text,
		contained:         slices.Clone(b.contained),
		extension:         slices.Clone(b.extension),
		modifierExtension: slices.Clone(b.modifierExtension),
		memo:              new(memo),
	}
}
