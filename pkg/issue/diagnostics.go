package issue

import (
	"fmt"
	"strings"
)

// DiagnosticID identifies a specific diagnostic message.
type DiagnosticID string

// Diagnostic IDs for presence and list checks.
const (
	DiagRequired        DiagnosticID = "REQUIRED_FIELD_MISSING"
	DiagListEmpty       DiagnosticID = "LIST_EMPTY"
	DiagListNullElement DiagnosticID = "LIST_NULL_ELEMENT"
	DiagCardinalityMax  DiagnosticID = "CARDINALITY_MAX"
	DiagValueOrChildren DiagnosticID = "VALUE_OR_CHILDREN"
	DiagPrimitiveFormat DiagnosticID = "PRIMITIVE_INVALID_FORMAT"
)

// Diagnostic IDs for choice fields.
const (
	DiagChoiceType DiagnosticID = "CHOICE_INVALID_TYPE"
)

// Diagnostic IDs for reference checks.
const (
	DiagReferenceTarget      DiagnosticID = "REFERENCE_INVALID_TARGET"
	DiagReferenceFormat      DiagnosticID = "REFERENCE_INVALID_FORMAT"
	DiagReferenceKindLiteral DiagnosticID = "REFERENCE_LITERAL_KIND_MISMATCH"
	DiagReferenceUnresolved  DiagnosticID = "REFERENCE_CONTAINED_NOT_FOUND"
)

// Diagnostic IDs for terminology bindings.
const (
	DiagBindingRequired       DiagnosticID = "BINDING_REQUIRED"
	DiagBindingNotInValueSet  DiagnosticID = "BINDING_NOT_IN_VALUESET"
	DiagBindingCannotValidate DiagnosticID = "BINDING_CANNOT_VALIDATE"
	DiagBindingUnavailable    DiagnosticID = "BINDING_PROVIDER_UNAVAILABLE"
)

// Diagnostic IDs for extensions.
const (
	DiagExtensionNoURL          DiagnosticID = "EXTENSION_NO_URL"
	DiagExtensionValueAndNested DiagnosticID = "EXTENSION_VALUE_AND_NESTED"
)

// Diagnostic IDs for resource-level checks.
const (
	DiagResourceInvalidID     DiagnosticID = "RESOURCE_INVALID_ID"
	DiagResourceLanguage      DiagnosticID = "RESOURCE_LANGUAGE_UNKNOWN"
	DiagContainedNested       DiagnosticID = "CONTAINED_NESTED"
	DiagContainedNoID         DiagnosticID = "CONTAINED_NO_ID"
	DiagResourceUnknownType   DiagnosticID = "RESOURCE_UNKNOWN_TYPE"
	DiagResourceNoFieldTable  DiagnosticID = "RESOURCE_NO_FIELD_TABLE"
	DiagResourceTooManyErrors DiagnosticID = "RESOURCE_TOO_MANY_ERRORS"
)

// Diagnostic IDs for structural constraints.
const (
	DiagConstraintFailed       DiagnosticID = "CONSTRAINT_FAILED"
	DiagConstraintCompileError DiagnosticID = "CONSTRAINT_COMPILE_ERROR"
	DiagConstraintEvalError    DiagnosticID = "CONSTRAINT_EVAL_ERROR"
)

// DiagnosticTemplate defines the structure for a diagnostic message.
type DiagnosticTemplate struct {
	ID       DiagnosticID
	Severity Severity
	Code     Code
	Template string
}

// diagnosticTemplates maps diagnostic IDs to their templates.
// Templates use {placeholder} syntax for variable substitution.
var diagnosticTemplates = map[DiagnosticID]DiagnosticTemplate{
	DiagRequired: {
		Severity: SeverityError,
		Code:     CodeRequired,
		Template: "Field '{field}' is required but absent",
	},
	DiagListEmpty: {
		Severity: SeverityError,
		Code:     CodeRequired,
		Template: "List '{field}' must contain at least {min} element(s)",
	},
	DiagListNullElement: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "List '{field}' contains an absent element at index {index}",
	},
	DiagCardinalityMax: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "List '{field}' has {count} element(s), maximum is {max}",
	},
	DiagValueOrChildren: {
		Severity: SeverityError,
		Code:     CodeInvariant,
		Template: "Element '{type}' must have a value or children",
	},
	DiagPrimitiveFormat: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Value '{value}' is not a valid {type}",
	},
	DiagChoiceType: {
		Severity: SeverityError,
		Code:     CodeStructure,
		Template: "Type '{type}' is not an allowed alternative for '{field}' (allowed: {allowed})",
	},
	DiagReferenceTarget: {
		Severity: SeverityError,
		Code:     CodeInvalid,
		Template: "Reference '{field}' targets '{kind}', allowed targets are {allowed}",
	},
	DiagReferenceFormat: {
		Severity: SeverityWarning,
		Code:     CodeInvalid,
		Template: "Reference literal '{reference}' is not well formed: {reason}",
	},
	DiagReferenceKindLiteral: {
		Severity: SeverityWarning,
		Code:     CodeInvalid,
		Template: "Reference literal '{reference}' names kind '{kind}', allowed targets are {allowed}",
	},
	DiagReferenceUnresolved: {
		Severity: SeverityWarning,
		Code:     CodeNotFound,
		Template: "Reference '{reference}' does not match any contained resource",
	},
	DiagBindingRequired: {
		Severity: SeverityError,
		Code:     CodeCodeInvalid,
		Template: "Code '{code}' from system '{system}' is not in the required value set '{valueSet}'",
	},
	DiagBindingNotInValueSet: {
		Severity: SeverityWarning,
		Code:     CodeCodeInvalid,
		Template: "Code '{code}' from system '{system}' is not in the {strength} value set '{valueSet}'",
	},
	DiagBindingCannotValidate: {
		Severity: SeverityInformation,
		Code:     CodeNotSupported,
		Template: "Value set '{valueSet}' is unknown; binding on '{field}' was not checked",
	},
	DiagBindingUnavailable: {
		Severity: SeverityWarning,
		Code:     CodeProcessing,
		Template: "Terminology provider failed for value set '{valueSet}': {error}",
	},
	DiagExtensionNoURL: {
		Severity: SeverityError,
		Code:     CodeExtension,
		Template: "Extension has no url",
	},
	DiagExtensionValueAndNested: {
		Severity: SeverityError,
		Code:     CodeExtension,
		Template: "Extension '{url}' must have either a value or nested extensions, not both",
	},
	DiagResourceInvalidID: {
		Severity: SeverityError,
		Code:     CodeValue,
		Template: "Logical id '{id}' does not match [A-Za-z0-9-.]{1,64}",
	},
	DiagResourceLanguage: {
		Severity: SeverityWarning,
		Code:     CodeCodeInvalid,
		Template: "Language '{language}' is not a well-formed BCP 47 tag",
	},
	DiagContainedNested: {
		Severity: SeverityError,
		Code:     CodeInvariant,
		Template: "Contained resource '{type}' must not contain further resources",
	},
	DiagContainedNoID: {
		Severity: SeverityError,
		Code:     CodeInvariant,
		Template: "Contained resource '{type}' must have a logical id",
	},
	DiagResourceUnknownType: {
		Severity: SeverityInformation,
		Code:     CodeNotSupported,
		Template: "No field table for type '{type}'; only generic checks applied",
	},
	DiagResourceNoFieldTable: {
		Severity: SeverityInformation,
		Code:     CodeNotSupported,
		Template: "No field table entry for '{path}'",
	},
	DiagResourceTooManyErrors: {
		Severity: SeverityInformation,
		Code:     CodeProcessing,
		Template: "Validation stopped after {max} errors",
	},
	DiagConstraintFailed: {
		Severity: SeverityError,
		Code:     CodeInvariant,
		Template: "Constraint {key} failed: {human}",
	},
	DiagConstraintCompileError: {
		Severity: SeverityWarning,
		Code:     CodeProcessing,
		Template: "Constraint {key} could not be compiled: {error}",
	},
	DiagConstraintEvalError: {
		Severity: SeverityWarning,
		Code:     CodeProcessing,
		Template: "Constraint {key} could not be evaluated: {error}",
	},
}

// FormatDiagnostic formats a diagnostic message with the given parameters.
func FormatDiagnostic(id DiagnosticID, params map[string]any) string {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		return string(id)
	}
	return formatTemplate(tmpl.Template, params)
}

// GetDiagnosticTemplate returns the template for a diagnostic ID.
func GetDiagnosticTemplate(id DiagnosticID) (DiagnosticTemplate, bool) {
	tmpl, ok := diagnosticTemplates[id]
	if ok {
		tmpl.ID = id
	}
	return tmpl, ok
}

// formatTemplate replaces {placeholder} with values from params.
func formatTemplate(template string, params map[string]any) string {
	result := template
	for key, value := range params {
		placeholder := "{" + key + "}"
		result = strings.ReplaceAll(result, placeholder, fmt.Sprint(value))
	}
	return result
}

// New builds an issue from the catalog using the template's default severity.
func New(id DiagnosticID, params map[string]any, expression ...string) Issue {
	tmpl, ok := diagnosticTemplates[id]
	if !ok {
		return Issue{
			Severity:    SeverityError,
			Code:        CodeProcessing,
			Diagnostics: string(id),
			Expression:  expression,
			MessageID:   string(id),
		}
	}
	return Issue{
		Severity:    tmpl.Severity,
		Code:        tmpl.Code,
		Diagnostics: formatTemplate(tmpl.Template, params),
		Expression:  expression,
		MessageID:   string(id),
	}
}

// Add appends a catalog issue with its default severity.
func (r *Result) Add(id DiagnosticID, params map[string]any, expression ...string) {
	r.Issues = append(r.Issues, New(id, params, expression...))
}

// AddWithSeverity appends a catalog issue, overriding the template severity.
func (r *Result) AddWithSeverity(sev Severity, id DiagnosticID, params map[string]any, expression ...string) {
	i := New(id, params, expression...)
	i.Severity = sev
	r.Issues = append(r.Issues, i)
}
