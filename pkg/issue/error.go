package issue

import (
	"errors"
	"fmt"
	"strings"
)

// ErrValidation is matched by every *ValidationError through errors.Is.
var ErrValidation = errors.New("validation failed")

// ValidationError reports a build rejected by validation. Result holds every
// issue found, advisories included.
type ValidationError struct {
	// Type is the type name of the rejected root.
	Type   string
	Result *Result
}

// NewValidationError wraps a result that has errors.
func NewValidationError(typeName string, r *Result) *ValidationError {
	return &ValidationError{Type: typeName, Result: r}
}

func (e *ValidationError) Error() string {
	errs := e.Result.Errors()
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d validation error(s)", e.Type, len(errs))
	for _, i := range errs {
		b.WriteString("\n  - ")
		if p := i.Path(); p != "" {
			b.WriteString(p)
			b.WriteString(": ")
		}
		b.WriteString(i.Diagnostics)
	}
	return b.String()
}

// Is reports ErrValidation as a match.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
