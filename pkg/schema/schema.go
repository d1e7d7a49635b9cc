// Package schema describes the field tables the validation engine checks
// element trees against.
//
// A Type mirrors a StructureDefinition snapshot: a flat list of Elements
// keyed by path ("MedicationKnowledge.cost.source"). Backbone fields are
// described inline under their owner's paths; datatype fields point at the
// datatype's own Type through their type code.
package schema

import (
	"slices"
	"strings"

	catalog "github.com/gofhir/catalog"
	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/issue"
)

// Unbounded is the Max of a repeated element without an upper limit.
const Unbounded = -1

// Kind is the StructureDefinition kind of a Type.
type Kind string

// Type kinds.
const (
	KindResource      Kind = "resource"
	KindComplexType   Kind = "complex-type"
	KindPrimitiveType Kind = "primitive-type"
)

// Type codes with special meaning to the engine.
const (
	TypeBackboneElement = "BackboneElement"
	TypeElement         = "Element"
	TypeReference       = "Reference"
	TypeExtension       = "Extension"
	TypeResource        = "Resource"
)

// BindingStrength is the strength of a terminology binding.
type BindingStrength string

// Binding strengths.
const (
	StrengthRequired   BindingStrength = "required"
	StrengthExtensible BindingStrength = "extensible"
	StrengthPreferred  BindingStrength = "preferred"
	StrengthExample    BindingStrength = "example"
)

// IsRequired reports whether a mismatch is a validation error.
func (s BindingStrength) IsRequired() bool {
	return s == StrengthRequired
}

// IsValid reports whether s is one of the four strengths.
func (s BindingStrength) IsValid() bool {
	switch s {
	case StrengthRequired, StrengthExtensible, StrengthPreferred, StrengthExample:
		return true
	}
	return false
}

// Binding ties a coded element to a value set.
type Binding struct {
	Strength    BindingStrength
	ValueSet    string
	Description string
}

// Predicate is a constraint evaluated in Go against the element at the
// constraint's path.
type Predicate func(e model.Element) bool

// Constraint is a named, leveled rule over an element. Predicate takes
// precedence over Expression, which is a FHIRPath invariant.
type Constraint struct {
	Key        string
	Severity   issue.Severity
	Human      string
	Expression string
	Predicate  Predicate
}

// Element describes one field of a Type.
type Element struct {
	Path        string
	Min         int
	Max         int
	Types       []string
	Targets     []string
	Binding     *Binding
	Constraints []Constraint
	IsModifier  bool
	// SkipTargetCheck disables reference-target membership for the field.
	SkipTargetCheck bool
}

// Name returns the last path segment without a choice suffix.
func (e *Element) Name() string {
	name := e.Path
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return strings.TrimSuffix(name, "[x]")
}

// IsChoice reports whether the element is polymorphic.
func (e *Element) IsChoice() bool {
	return strings.HasSuffix(e.Path, "[x]")
}

// IsRequired reports whether the element must be present.
func (e *Element) IsRequired() bool {
	return e.Min > 0
}

// IsRepeated reports whether the element may hold more than one value.
func (e *Element) IsRepeated() bool {
	return e.Max != 1 && e.Max != 0
}

// IsBackbone reports whether the element's children are described inline.
func (e *Element) IsBackbone() bool {
	return len(e.Types) == 1 && (e.Types[0] == TypeBackboneElement || e.Types[0] == TypeElement)
}

// AllowsType reports whether typeName is one of the allowed types. An
// element without types allows anything.
func (e *Element) AllowsType(typeName string) bool {
	return len(e.Types) == 0 || slices.Contains(e.Types, typeName)
}

// AllowsTarget reports whether a reference to kind is acceptable. Elements
// without targets, or targeting Resource, accept any kind.
func (e *Element) AllowsTarget(kind string) bool {
	if len(e.Targets) == 0 {
		return true
	}
	for _, t := range e.Targets {
		if t == kind || t == TypeResource {
			return true
		}
	}
	return false
}

// Type is a field table.
type Type struct {
	Name        string
	URL         string
	Kind        Kind
	Base        string
	FHIRVersion catalog.FHIRVersion
	// Pattern is the lexical rule of a primitive type, unanchored.
	Pattern  string
	Elements []*Element

	index map[string]*Element
}

// NewType creates a Type and indexes its elements. The root element (path
// equal to name) is created when absent so type-level constraints have a
// home.
func NewType(name string, kind Kind, elements ...*Element) *Type {
	t := &Type{Name: name, Kind: kind, FHIRVersion: catalog.R4, Elements: elements}
	t.reindex()
	if _, ok := t.index[name]; !ok {
		root := &Element{Path: name, Max: 1}
		t.Elements = append([]*Element{root}, t.Elements...)
		t.index[name] = root
	}
	return t
}

func (t *Type) reindex() {
	t.index = make(map[string]*Element, len(t.Elements))
	for _, e := range t.Elements {
		t.index[e.Path] = e
	}
}

// Element returns the element at path.
func (t *Type) Element(path string) (*Element, bool) {
	e, ok := t.index[path]
	return e, ok
}

// Root returns the element describing the type itself.
func (t *Type) Root() *Element {
	return t.index[t.Name]
}

// Child returns the element describing field name under parent, trying the
// plain path first and then the choice path.
func (t *Type) Child(parent, name string) (*Element, bool) {
	p := parent + "." + name
	if e, ok := t.index[p]; ok {
		return e, true
	}
	e, ok := t.index[p+"[x]"]
	return e, ok
}

// Children returns the direct children of parent in declaration order.
func (t *Type) Children(parent string) []*Element {
	prefix := parent + "."
	var out []*Element
	for _, e := range t.Elements {
		rest, ok := strings.CutPrefix(e.Path, prefix)
		if ok && !strings.Contains(rest, ".") {
			out = append(out, e)
		}
	}
	return out
}

// Constrain appends type-level constraints to the root element and returns t.
func (t *Type) Constrain(cs ...Constraint) *Type {
	root := t.Root()
	root.Constraints = append(root.Constraints, cs...)
	return t
}
