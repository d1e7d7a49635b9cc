package constraint

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/model/r4"
	"github.com/gofhir/catalog/pkg/issue"
	"github.com/gofhir/catalog/pkg/schema"
)

// fakeEval answers from a table keyed by expression and counts documents.
type fakeEval struct {
	answers map[string]bool
	errs    map[string]error
	docs    [][]byte
}

func (f *fakeEval) Evaluate(expression string, doc []byte) (bool, error) {
	f.docs = append(f.docs, doc)
	if err := f.errs[expression]; err != nil {
		return false, err
	}
	return f.answers[expression], nil
}

func TestCheckPredicates(t *testing.T) {
	never := schema.Constraint{Key: "t-1", Severity: issue.SeverityWarning, Human: "never holds", Predicate: func(model.Element) bool { return false }}
	always := schema.Constraint{Key: "t-2", Human: "always holds", Predicate: func(model.Element) bool { return true }}

	res := issue.NewResult()
	Checker{}.Check(r4.NewString("x"), []schema.Constraint{never, always}, "Thing.name", res)

	require.Len(t, res.Issues, 1)
	i := res.Issues[0]
	assert.Equal(t, "t-1", i.Source)
	assert.Equal(t, issue.SeverityWarning, i.Severity)
	assert.Equal(t, "Thing.name", i.Path())
	assert.Contains(t, i.Diagnostics, "never holds")
}

func TestCheckExpressions(t *testing.T) {
	eval := &fakeEval{
		answers: map[string]bool{"ok": true, "bad": false},
		errs: map[string]error{
			"broken":  &CompileError{Expression: "broken", Err: errors.New("syntax")},
			"runtime": errors.New("boom"),
		},
	}
	cs := []schema.Constraint{
		{Key: "c-ok", Expression: "ok"},
		{Key: "c-bad", Severity: issue.SeverityError, Expression: "bad"},
		{Key: "c-broken", Expression: "broken"},
		{Key: "c-runtime", Expression: "runtime"},
		{Key: "c-none"},
	}

	res := issue.NewResult()
	Checker{Eval: eval}.Check(r4.NewPeriod("2024", "2025"), cs, "Period", res)

	var ids []string
	for _, i := range res.Issues {
		ids = append(ids, i.MessageID)
	}
	assert.Equal(t, []string{
		string(issue.DiagConstraintFailed),
		string(issue.DiagConstraintCompileError),
		string(issue.DiagConstraintEvalError),
	}, ids)
	assert.Equal(t, 1, res.ErrorCount())

	require.Len(t, eval.docs, 4)
	for _, d := range eval.docs[1:] {
		assert.Same(t, &eval.docs[0][0], &d[0], "document should be projected once")
	}
}

func TestCheckWithoutEvaluator(t *testing.T) {
	res := issue.NewResult()
	Checker{}.Check(r4.NewString("x"), []schema.Constraint{{Key: "e-1", Expression: "false"}}, "x", res)
	assert.Empty(t, res.Issues)
}

func TestFHIRPath(t *testing.T) {
	f := NewFHIRPath(8)
	doc := []byte(`{"resourceType":"MedicationKnowledge","status":"active","synonym":["a","b"]}`)

	tests := []struct {
		expr string
		want bool
	}{
		{"status = 'active'", true},
		{"status = 'inactive'", false},
		{"synonym.count() = 2", true},
		{"contained.empty()", true},
		{"code", true},
	}
	for _, tt := range tests {
		t.Run(tt.expr, func(t *testing.T) {
			got, err := f.Evaluate(tt.expr, doc)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := f.Evaluate("status = ", doc)
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "status = ", ce.Expression)

	_, err = f.Evaluate("status = 'active'", doc)
	require.NoError(t, err)
	assert.Greater(t, f.Stats().Hits, uint64(0))
}
