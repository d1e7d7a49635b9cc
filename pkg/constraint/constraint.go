// Package constraint evaluates the named, leveled invariants of a field
// table against an element.
//
// Go predicates run directly on the element. FHIRPath expressions run on
// the element's JSON projection, which is computed at most once per call.
package constraint

import (
	"errors"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/issue"
	"github.com/gofhir/catalog/pkg/jsonview"
	"github.com/gofhir/catalog/pkg/schema"
)

// Checker runs constraints. A nil Eval skips expression constraints.
type Checker struct {
	Eval Evaluator
}

// Check evaluates cs against e and records violations at path. Failures to
// compile or evaluate an expression are reported as warnings.
func (c Checker) Check(e model.Element, cs []schema.Constraint, path string, res *issue.Result) {
	var doc []byte
	var docErr error
	for _, con := range cs {
		if con.Predicate != nil {
			if !con.Predicate(e) {
				res.AddIssue(Violation(con, path))
			}
			continue
		}
		if con.Expression == "" || c.Eval == nil {
			continue
		}
		if doc == nil && docErr == nil {
			doc, docErr = jsonview.Marshal(e)
		}
		if docErr != nil {
			res.Add(issue.DiagConstraintEvalError, map[string]any{"key": con.Key, "error": docErr.Error()}, path)
			continue
		}
		ok, err := c.Eval.Evaluate(con.Expression, doc)
		var ce *CompileError
		switch {
		case errors.As(err, &ce):
			res.Add(issue.DiagConstraintCompileError, map[string]any{"key": con.Key, "error": ce.Err.Error()}, path)
		case err != nil:
			res.Add(issue.DiagConstraintEvalError, map[string]any{"key": con.Key, "error": err.Error()}, path)
		case !ok:
			res.AddIssue(Violation(con, path))
		}
	}
}

// Violation builds the issue for a failed constraint at the constraint's
// own severity.
func Violation(c schema.Constraint, path string) issue.Issue {
	i := issue.New(issue.DiagConstraintFailed, map[string]any{"key": c.Key, "human": c.Human}, path)
	if c.Severity != "" {
		i.Severity = c.Severity
	}
	i.Source = c.Key
	return i
}
