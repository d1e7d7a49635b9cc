package model

import (
	"fmt"
	"reflect"
	"slices"

	"github.com/gofhir/catalog/pkg/issue"
)

// PreconditionError is the panic value raised when a builder is misused:
// appending an absent element, or replacing a list with an absent
// collection or one holding absent elements.
type PreconditionError struct {
	Field  string
	Reason string
}

func (e *PreconditionError) Error() string {
	return fmt.Sprintf("precondition failed for %s: %s", e.Field, e.Reason)
}

func precondition(field, format string, args ...any) {
	panic(&PreconditionError{Field: field, Reason: fmt.Sprintf(format, args...)})
}

// IsAbsent reports whether v is nil or an interface holding a nil pointer.
func IsAbsent(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// RequireElements panics with a PreconditionError if any item is absent,
// including a typed nil held in an interface.
func RequireElements[E comparable](field string, items ...E) {
	var zero E
	for i, it := range items {
		if it == zero || IsAbsent(it) {
			precondition(field, "absent element at position %d", i)
		}
	}
}

// Append returns dst with items appended. An absent item is a precondition
// failure.
func Append[E comparable](field string, dst []E, items ...E) []E {
	RequireElements(field, items...)
	return append(dst, items...)
}

// Replace returns a copy of items for use as the new list. An absent
// collection or absent member is a precondition failure.
func Replace[E comparable](field string, items []E) []E {
	if items == nil {
		precondition(field, "absent collection")
	}
	RequireElements(field, items...)
	return slices.Clone(items)
}

// Convert maps a checked list to another element type, typically concrete
// pointers to an interface.
func Convert[From, To any](items []From, conv func(From) To) []To {
	if items == nil {
		return nil
	}
	out := make([]To, len(items))
	for i, it := range items {
		out[i] = conv(it)
	}
	return out
}

// ElementBuilder stages the identifier and extensions of an element.
type ElementBuilder struct {
	id        *string
	extension []Extension
}

// SetID sets the local identifier.
func (b *ElementBuilder) SetID(id string) { b.id = &id }

// ClearID removes the local identifier.
func (b *ElementBuilder) ClearID() { b.id = nil }

// AddExtension appends extensions.
func (b *ElementBuilder) AddExtension(ext ...Extension) {
	b.extension = Append("extension", b.extension, ext...)
}

// SetExtensions replaces the extensions.
func (b *ElementBuilder) SetExtensions(ext []Extension) {
	b.extension = Replace("extension", ext)
}

// CopyFrom seeds the builder from a built element's Base.
func (b *ElementBuilder) CopyFrom(src *Base) {
	b.id = src.id
	b.extension = slices.Clone(src.extension)
}

// Base assembles a Base from the staged parts.
func (b *ElementBuilder) Base() Base {
	return NewBase(b.id, slices.Clone(b.extension))
}

// BackboneBuilder adds modifier extensions to ElementBuilder.
type BackboneBuilder struct {
	ElementBuilder
	modifierExtension []Extension
}

// AddModifierExtension appends modifier extensions.
func (b *BackboneBuilder) AddModifierExtension(ext ...Extension) {
	b.modifierExtension = Append("modifierExtension", b.modifierExtension, ext...)
}

// SetModifierExtensions replaces the modifier extensions.
func (b *BackboneBuilder) SetModifierExtensions(ext []Extension) {
	b.modifierExtension = Replace("modifierExtension", ext)
}

// CopyFrom seeds the builder from a built backbone element.
func (b *BackboneBuilder) CopyFrom(src *BackboneBase) {
	b.ElementBuilder.CopyFrom(&src.Base)
	b.modifierExtension = slices.Clone(src.modifierExtension)
}

// Backbone assembles a BackboneBase from the staged parts.
func (b *BackboneBuilder) Backbone() BackboneBase {
	return BackboneBase{Base: b.Base(), modifierExtension: slices.Clone(b.modifierExtension)}
}

// Validator checks a freshly built tree. A nil or error-free result lets
// the build succeed.
type Validator interface {
	Validate(root Element) *issue.Result
}

type unchecked struct{}

func (unchecked) Validate(Element) *issue.Result { return nil }

// Unchecked is the Validator that skips validation.
var Unchecked Validator = unchecked{}

// Finish runs v over a constructed value and returns it, or a
// *issue.ValidationError when the result has errors. A nil v behaves like
// Unchecked.
func Finish[T Element](v Validator, built T) (T, error) {
	if v == nil {
		return built, nil
	}
	res := v.Validate(built)
	if res != nil && res.HasErrors() {
		var zero T
		return zero, issue.NewValidationError(built.TypeName(), res)
	}
	return built, nil
}
