package model

import "slices"

// Base holds the parts shared by every element: the local identifier, the
// extensions and the hash memo. Concrete types embed it by value.
type Base struct {
	id        *string
	extension []Extension
	memo      *memo
}

// NewBase assembles a Base. Callers hand over ownership of ext.
func NewBase(id *string, ext []Extension) Base {
	return Base{id: id, extension: ext, memo: new(memo)}
}

// ElementID returns the local identifier.
func (b *Base) ElementID() (string, bool) {
	if b.id == nil {
		return "", false
	}
	return *b.id, true
}

// Extensions returns a copy of the extension list.
func (b *Base) Extensions() []Extension {
	return slices.Clone(b.extension)
}

// HasID reports whether the local identifier is set.
func (b *Base) HasID() bool {
	return b.id != nil
}

// BaseFields lists the extension field.
func (b *Base) BaseFields() []Field {
	return []Field{ManyOf("extension", b.extension)}
}

func (b *Base) hashMemo() *memo {
	return b.memo
}

// BackboneBase adds modifier extensions to Base.
type BackboneBase struct {
	Base
	modifierExtension []Extension
}

// NewBackboneBase assembles a BackboneBase.
func NewBackboneBase(id *string, ext, modExt []Extension) BackboneBase {
	return BackboneBase{Base: NewBase(id, ext), modifierExtension: modExt}
}

// ModifierExtensions returns a copy of the modifier extension list.
func (b *BackboneBase) ModifierExtensions() []Extension {
	return slices.Clone(b.modifierExtension)
}

// BackboneFields lists the extension and modifierExtension fields.
func (b *BackboneBase) BackboneFields() []Field {
	return []Field{
		ManyOf("extension", b.extension),
		ManyOf("modifierExtension", b.modifierExtension),
	}
}

// HasContent implements the value-or-children rule for composites: an
// identifier or any present field counts as content.
func HasContent(e Element) bool {
	if _, ok := e.ElementID(); ok {
		return true
	}
	return AnyPresent(e.Fields())
}
