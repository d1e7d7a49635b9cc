// Package issue defines validation issues aligned with FHIR OperationOutcome.
package issue

// Severity represents the severity of a validation issue.
type Severity string

// Severity constants aligned with FHIR IssueSeverity.
const (
	SeverityFatal       Severity = "fatal"
	SeverityError       Severity = "error"
	SeverityWarning     Severity = "warning"
	SeverityInformation Severity = "information"
)

// IsError reports whether the severity blocks a build.
func (s Severity) IsError() bool {
	return s == SeverityError || s == SeverityFatal
}

// Code represents the type of validation issue (IssueType).
type Code string

// Code constants aligned with FHIR IssueType.
const (
	CodeInvalid       Code = "invalid"
	CodeStructure     Code = "structure"
	CodeRequired      Code = "required"
	CodeValue         Code = "value"
	CodeInvariant     Code = "invariant"
	CodeProcessing    Code = "processing"
	CodeNotSupported  Code = "not-supported"
	CodeNotFound      Code = "not-found"
	CodeCodeInvalid   Code = "code-invalid"
	CodeExtension     Code = "extension"
	CodeBusinessRule  Code = "business-rule"
	CodeTimeout       Code = "timeout"
	CodeInformational Code = "informational"
)

// Issue represents a single validation issue.
type Issue struct {
	// Severity indicates the severity level (error, warning, etc.)
	Severity Severity

	// Code indicates the type of issue
	Code Code

	// Diagnostics is the human-readable description of the issue
	Diagnostics string

	// Expression contains the path(s) of the offending element
	Expression []string

	// Source identifies the check that generated this issue
	Source string

	// MessageID is the identifier from the diagnostic catalog
	MessageID string
}

// IsAdvisory reports whether the issue is informational or a warning.
func (i Issue) IsAdvisory() bool {
	return !i.Severity.IsError()
}

// Path returns the first expression, or "" when the issue has none.
func (i Issue) Path() string {
	if len(i.Expression) == 0 {
		return ""
	}
	return i.Expression[0]
}

// Result holds the collection of issues from validation.
type Result struct {
	Issues []Issue
}

// defaultIssueCapacity is the pre-allocated capacity for Issues slice.
const defaultIssueCapacity = 8

// NewResult creates a new empty Result with pre-allocated capacity.
func NewResult() *Result {
	return &Result{
		Issues: make([]Issue, 0, defaultIssueCapacity),
	}
}

// AddIssue adds an issue to the result.
func (r *Result) AddIssue(issue Issue) {
	r.Issues = append(r.Issues, issue)
}

// AddError adds an error-level issue.
func (r *Result) AddError(code Code, diagnostics string, expression ...string) {
	r.add(SeverityError, code, diagnostics, expression)
}

// AddWarning adds a warning-level issue.
func (r *Result) AddWarning(code Code, diagnostics string, expression ...string) {
	r.add(SeverityWarning, code, diagnostics, expression)
}

// AddInfo adds an information-level issue.
func (r *Result) AddInfo(code Code, diagnostics string, expression ...string) {
	r.add(SeverityInformation, code, diagnostics, expression)
}

func (r *Result) add(sev Severity, code Code, diagnostics string, expression []string) {
	r.Issues = append(r.Issues, Issue{
		Severity:    sev,
		Code:        code,
		Diagnostics: diagnostics,
		Expression:  expression,
	})
}

// HasErrors returns true if there are any error-level issues.
func (r *Result) HasErrors() bool {
	for _, issue := range r.Issues {
		if issue.Severity.IsError() {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error-level issues.
func (r *Result) ErrorCount() int {
	return r.count(func(i Issue) bool { return i.Severity.IsError() })
}

// WarningCount returns the number of warning-level issues.
func (r *Result) WarningCount() int {
	return r.count(func(i Issue) bool { return i.Severity == SeverityWarning })
}

// InfoCount returns the number of information-level issues.
func (r *Result) InfoCount() int {
	return r.count(func(i Issue) bool { return i.Severity == SeverityInformation })
}

func (r *Result) count(match func(Issue) bool) int {
	n := 0
	for _, issue := range r.Issues {
		if match(issue) {
			n++
		}
	}
	return n
}

// Errors returns the error-level issues in report order.
func (r *Result) Errors() []Issue {
	return r.pick(func(i Issue) bool { return i.Severity.IsError() })
}

// Advisories returns the warning and information issues in report order.
func (r *Result) Advisories() []Issue {
	return r.pick(Issue.IsAdvisory)
}

func (r *Result) pick(match func(Issue) bool) []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if match(issue) {
			out = append(out, issue)
		}
	}
	return out
}

// Merge combines another result into this one.
func (r *Result) Merge(other *Result) {
	if other == nil {
		return
	}
	r.Issues = append(r.Issues, other.Issues...)
}

// Filter returns a new Result with only issues matching the given severity.
func (r *Result) Filter(severity Severity) *Result {
	filtered := NewResult()
	for _, issue := range r.Issues {
		if issue.Severity == severity {
			filtered.Issues = append(filtered.Issues, issue)
		}
	}
	return filtered
}

// Promote returns a copy of the result with every warning raised to error.
// Information issues are left alone.
func (r *Result) Promote() *Result {
	out := &Result{Issues: make([]Issue, len(r.Issues))}
	copy(out.Issues, r.Issues)
	for i := range out.Issues {
		if out.Issues[i].Severity == SeverityWarning {
			out.Issues[i].Severity = SeverityError
		}
	}
	return out
}
