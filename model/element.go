// Package model defines the element framework shared by every record kind.
//
// An element is an immutable node of a record tree. Concrete types are built
// only through builders and expose their declared fields as a table of
// Field values, which drives traversal, equality, hashing and validation.
// Capabilities are small interfaces composed into Element; concrete types
// embed Base, BackboneBase or ResourceBase for the shared parts.
package model

// Identifiable is implemented by nodes carrying an optional local identifier.
// For resources the identifier is the logical id.
type Identifiable interface {
	ElementID() (string, bool)
}

// Extensible is implemented by nodes carrying extensions.
type Extensible interface {
	Extensions() []Extension
}

// ModifierExtensible is implemented by nodes carrying modifier extensions.
type ModifierExtensible interface {
	ModifierExtensions() []Extension
}

// ContentHolder reports whether a node has observable content: a value, any
// present field, an identifier or an extension.
type ContentHolder interface {
	HasContent() bool
}

// Acceptor is the double-dispatch entry point of the visitor protocol.
type Acceptor interface {
	Accept(v Visitor, name string, index int)
}

// Typed exposes the catalogue type name ("string", "Coding",
// "MedicationKnowledge", "MedicationKnowledge.cost").
type Typed interface {
	TypeName() string
}

// FieldLister exposes the declared fields of a node in declaration order,
// present or not.
type FieldLister interface {
	Fields() []Field
}

// Element is the unit every record tree is made of.
type Element interface {
	Identifiable
	Extensible
	ContentHolder
	Acceptor
	Typed
	FieldLister
}

// PrimitiveKind tells encoders how to render a primitive literal.
type PrimitiveKind int

// Primitive kinds.
const (
	KindString PrimitiveKind = iota
	KindBoolean
	KindNumber
)

// Primitive is an element holding a single scalar value.
type Primitive interface {
	Element
	// Literal returns the canonical lexical form of the value.
	Literal() (string, bool)
	Kind() PrimitiveKind
}

// Backbone is a composite nested inside a record kind.
type Backbone interface {
	Element
	ModifierExtensible
}

// Extension is an opaque key-tagged value or composite attached to an element.
type Extension interface {
	Element
	ExtensionURL() string
	// ExtensionValue returns nil when the extension only nests extensions.
	ExtensionValue() Element
}

// Resource is a top-level record kind.
type Resource interface {
	Element
	ModifierExtensible
	ResourceType() string
	ResourceID() (string, bool)
	Contained() []Resource
}

// Elem converts a possibly nil pointer to an Element, mapping nil to a nil
// interface.
func Elem[T any, P interface {
	*T
	Element
}](p P) Element {
	if p == nil {
		return nil
	}
	return p
}
