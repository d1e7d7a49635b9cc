package model

import "strings"

// ReferenceTarget is what a reference states about its target.
type ReferenceTarget struct {
	// Literal is the reference string: "Kind/id", an absolute URL, a
	// "#id" fragment pointing at a contained resource, or a URN.
	Literal string
	// Type is the explicit target-kind annotation, a kind name or a
	// StructureDefinition URL.
	Type string
}

// Referencer is implemented by reference elements.
type Referencer interface {
	Element
	ReferenceTarget() ReferenceTarget
}

// Kind resolves the target kind when it is determinable: from the explicit
// annotation, or from the contained resource a fragment literal points at.
// Any other reference is opaque and ok is false.
func (t ReferenceTarget) Kind(contained []Resource) (kind string, ok bool) {
	if t.Type != "" {
		return KindName(t.Type), true
	}
	if r := t.ContainedTarget(contained); r != nil {
		return r.ResourceType(), true
	}
	return "", false
}

// ContainedTarget returns the contained resource a fragment literal points
// at, or nil.
func (t ReferenceTarget) ContainedTarget(contained []Resource) Resource {
	id, ok := strings.CutPrefix(t.Literal, "#")
	if !ok || id == "" {
		return nil
	}
	for _, r := range contained {
		if r == nil {
			continue
		}
		if rid, ok := r.ResourceID(); ok && rid == id {
			return r
		}
	}
	return nil
}

// IsFragment reports whether the literal points into the enclosing resource.
func (t ReferenceTarget) IsFragment() bool {
	return strings.HasPrefix(t.Literal, "#")
}

// KindName reduces a kind annotation or StructureDefinition URL to the bare
// kind: "http://hl7.org/fhir/StructureDefinition/Organization" becomes
// "Organization".
func KindName(s string) string {
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[i+1:]
	}
	return s
}
