package issue

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNewResult(t *testing.T) {
	r := NewResult()
	if r == nil {
		t.Fatal("NewResult() returned nil")
	}
	if len(r.Issues) != 0 {
		t.Errorf("NewResult() should have no issues, got %d", len(r.Issues))
	}
}

func TestResultAddError(t *testing.T) {
	r := NewResult()
	r.AddError(CodeStructure, "absent element", "MedicationKnowledge.cost[0]")

	if len(r.Issues) != 1 {
		t.Fatalf("Result should have 1 issue, got %d", len(r.Issues))
	}
	if r.Issues[0].Severity != SeverityError {
		t.Errorf("Issue severity = %q, want %q", r.Issues[0].Severity, SeverityError)
	}
	if r.Issues[0].Code != CodeStructure {
		t.Errorf("Issue code = %q, want %q", r.Issues[0].Code, CodeStructure)
	}
	if got := r.Issues[0].Path(); got != "MedicationKnowledge.cost[0]" {
		t.Errorf("Issue path = %q, want %q", got, "MedicationKnowledge.cost[0]")
	}
}

func TestResultCounts(t *testing.T) {
	r := NewResult()
	if r.HasErrors() {
		t.Error("Empty result should not have errors")
	}

	r.AddWarning(CodeCodeInvalid, "warning")
	r.AddInfo(CodeInformational, "info")
	if r.HasErrors() {
		t.Error("Result with only advisories should not have errors")
	}

	r.AddError(CodeRequired, "error")
	r.AddIssue(Issue{Severity: SeverityFatal, Code: CodeProcessing})

	if got := r.ErrorCount(); got != 2 {
		t.Errorf("ErrorCount() = %d; want 2", got)
	}
	if got := r.WarningCount(); got != 1 {
		t.Errorf("WarningCount() = %d; want 1", got)
	}
	if got := r.InfoCount(); got != 1 {
		t.Errorf("InfoCount() = %d; want 1", got)
	}
	if got := len(r.Advisories()); got != 2 {
		t.Errorf("len(Advisories()) = %d; want 2", got)
	}
	if got := len(r.Errors()); got != 2 {
		t.Errorf("len(Errors()) = %d; want 2", got)
	}
}

func TestResultMergeAndFilter(t *testing.T) {
	a := NewResult()
	a.AddError(CodeRequired, "a")
	b := NewResult()
	b.AddWarning(CodeValue, "b")

	a.Merge(b)
	a.Merge(nil)

	if len(a.Issues) != 2 {
		t.Fatalf("merged issues = %d; want 2", len(a.Issues))
	}
	w := a.Filter(SeverityWarning)
	if len(w.Issues) != 1 || w.Issues[0].Diagnostics != "b" {
		t.Errorf("Filter(warning) = %+v; want one issue 'b'", w.Issues)
	}
}

func TestResultPromote(t *testing.T) {
	r := NewResult()
	r.AddWarning(CodeCodeInvalid, "w")
	r.AddInfo(CodeInformational, "i")

	p := r.Promote()
	if !p.HasErrors() {
		t.Error("Promote() should turn warnings into errors")
	}
	if p.InfoCount() != 1 {
		t.Errorf("Promote() InfoCount = %d; want 1", p.InfoCount())
	}
	if r.HasErrors() {
		t.Error("Promote() must not modify the receiver")
	}
}

func TestFormatDiagnostic(t *testing.T) {
	got := FormatDiagnostic(DiagRequired, map[string]any{"field": "status"})
	if got != "Field 'status' is required but absent" {
		t.Errorf("FormatDiagnostic() = %q", got)
	}
	if got := FormatDiagnostic("NOPE", nil); got != "NOPE" {
		t.Errorf("FormatDiagnostic(unknown) = %q; want %q", got, "NOPE")
	}
}

func TestNewUsesTemplateSeverity(t *testing.T) {
	tests := []struct {
		id   DiagnosticID
		want Severity
	}{
		{DiagRequired, SeverityError},
		{DiagBindingRequired, SeverityError},
		{DiagBindingNotInValueSet, SeverityWarning},
		{DiagBindingCannotValidate, SeverityInformation},
		{DiagResourceLanguage, SeverityWarning},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			i := New(tt.id, nil, "X.y")
			if i.Severity != tt.want {
				t.Errorf("New(%s).Severity = %q; want %q", tt.id, i.Severity, tt.want)
			}
			if i.MessageID != string(tt.id) {
				t.Errorf("New(%s).MessageID = %q", tt.id, i.MessageID)
			}
		})
	}
}

func TestAddWithSeverity(t *testing.T) {
	r := NewResult()
	r.AddWithSeverity(SeverityWarning, DiagConstraintFailed, map[string]any{"key": "mk-1", "human": "h"})
	if r.Issues[0].Severity != SeverityWarning {
		t.Errorf("Severity = %q; want warning", r.Issues[0].Severity)
	}
	if r.Issues[0].Diagnostics != "Constraint mk-1 failed: h" {
		t.Errorf("Diagnostics = %q", r.Issues[0].Diagnostics)
	}
}

func TestValidationError(t *testing.T) {
	r := NewResult()
	r.Add(DiagRequired, map[string]any{"field": "status"}, "MedicationKnowledge.status")
	r.Add(DiagListEmpty, map[string]any{"field": "synonym", "min": 1}, "MedicationKnowledge.synonym")
	r.AddWarning(CodeValue, "not shown")

	var err error = NewValidationError("MedicationKnowledge", r)
	wrapped := fmt.Errorf("build: %w", err)

	if !errors.Is(wrapped, ErrValidation) {
		t.Error("errors.Is(wrapped, ErrValidation) = false")
	}
	var verr *ValidationError
	if !errors.As(wrapped, &verr) {
		t.Fatal("errors.As(wrapped, *ValidationError) = false")
	}
	msg := verr.Error()
	if !strings.Contains(msg, "2 validation error(s)") {
		t.Errorf("Error() = %q; want error count", msg)
	}
	if !strings.Contains(msg, "MedicationKnowledge.status: Field 'status' is required but absent") {
		t.Errorf("Error() = %q; want status issue", msg)
	}
	if strings.Contains(msg, "not shown") {
		t.Errorf("Error() = %q; advisories must not be listed", msg)
	}
}
