package schema

import (
	"fmt"
	"strings"

	"github.com/gofhir/catalog/pkg/issue"
)

// Lint reports inconsistencies in a field table that would make validation
// misbehave: unknown parents, inverted cardinalities, choices without
// alternatives, references without a reference type, bindings without a
// value set or strength, and unnamed constraints.
func Lint(t *Type) *issue.Result {
	res := issue.NewResult()
	for _, e := range t.Elements {
		if e.Path != t.Name && !strings.HasPrefix(e.Path, t.Name+".") {
			res.AddError(issue.CodeStructure, fmt.Sprintf("path is outside type %s", t.Name), e.Path)
			continue
		}
		if i := strings.LastIndexByte(e.Path, '.'); i > 0 {
			parent := strings.TrimSuffix(e.Path[:i], "[x]")
			if _, ok := t.Element(parent); !ok {
				res.AddError(issue.CodeStructure, fmt.Sprintf("parent %s is not described", parent), e.Path)
			}
		}
		if e.Max != Unbounded && e.Max < e.Min {
			res.AddError(issue.CodeStructure, fmt.Sprintf("max %d is below min %d", e.Max, e.Min), e.Path)
		}
		if e.IsChoice() && len(e.Types) < 2 {
			res.AddWarning(issue.CodeStructure, "choice element lists fewer than two alternatives", e.Path)
		}
		if len(e.Targets) > 0 && !e.allowsReference() {
			res.AddError(issue.CodeStructure, "targets declared on a non-reference element", e.Path)
		}
		if b := e.Binding; b != nil {
			if !b.Strength.IsValid() {
				res.AddError(issue.CodeStructure, fmt.Sprintf("unknown binding strength %q", b.Strength), e.Path)
			}
			if b.ValueSet == "" && b.Strength.IsRequired() {
				res.AddError(issue.CodeStructure, "required binding without a value set", e.Path)
			}
		}
		for _, c := range e.Constraints {
			if c.Key == "" {
				res.AddError(issue.CodeStructure, "constraint without a key", e.Path)
			}
			if c.Expression == "" && c.Predicate == nil {
				res.AddWarning(issue.CodeStructure, fmt.Sprintf("constraint %s has nothing to evaluate", c.Key), e.Path)
			}
		}
	}
	return res
}

func (e *Element) allowsReference() bool {
	for _, t := range e.Types {
		if t == TypeReference || t == "canonical" {
			return true
		}
	}
	return false
}
