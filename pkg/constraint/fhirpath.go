package constraint

import (
	"fmt"

	"github.com/gofhir/fhirpath"

	"github.com/gofhir/catalog/pkg/cache"
)

// Evaluator decides whether an invariant expression holds for a JSON
// document.
type Evaluator interface {
	Evaluate(expression string, doc []byte) (bool, error)
}

// CompileError reports an expression that could not be compiled.
type CompileError struct {
	Expression string
	Err        error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("compile %q: %v", e.Expression, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }

// FHIRPath evaluates FHIRPath invariants, keeping compiled expressions in
// an LRU.
type FHIRPath struct {
	compiled *cache.LRU[string, *fhirpath.Expression]
}

// NewFHIRPath creates an evaluator caching up to capacity expressions.
func NewFHIRPath(capacity int) *FHIRPath {
	return &FHIRPath{compiled: cache.New[string, *fhirpath.Expression](capacity)}
}

// Compile returns the compiled form of expression.
func (f *FHIRPath) Compile(expression string) (*fhirpath.Expression, error) {
	expr, err := f.compiled.GetOrCompute(expression, func() (*fhirpath.Expression, error) {
		return fhirpath.Compile(expression)
	})
	if err != nil {
		return nil, &CompileError{Expression: expression, Err: err}
	}
	return expr, nil
}

// Evaluate implements Evaluator. An empty result means the invariant does
// not apply and holds; a result that is not a boolean counts as holding.
func (f *FHIRPath) Evaluate(expression string, doc []byte) (bool, error) {
	expr, err := f.Compile(expression)
	if err != nil {
		return false, err
	}
	res, err := expr.Evaluate(doc)
	if err != nil {
		return false, fmt.Errorf("evaluate %q: %w", expression, err)
	}
	if res.Empty() {
		return true, nil
	}
	b, err := res.ToBoolean()
	if err != nil {
		return true, nil
	}
	return b, nil
}

// Stats returns the expression cache counters.
func (f *FHIRPath) Stats() cache.Stats {
	return f.compiled.Stats()
}

var _ Evaluator = (*FHIRPath)(nil)
