// Package terminology answers value-set membership questions for the
// binding check of the validation engine.
package terminology

import (
	"context"
	"strings"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/schema"
)

// Provider decides whether a coded value is a member of a value set.
//
// found is false when the provider does not know the value set; the engine
// then reports the binding as unchecked. A non-nil error means the provider
// is unavailable, and the engine degrades the check to an advisory.
type Provider interface {
	MemberOf(ctx context.Context, valueSet string, strength schema.BindingStrength, c model.CodeValue) (member, found bool, err error)
}

// ProviderFunc adapts a function to Provider.
type ProviderFunc func(ctx context.Context, valueSet string, strength schema.BindingStrength, c model.CodeValue) (bool, bool, error)

// MemberOf calls f.
func (f ProviderFunc) MemberOf(ctx context.Context, valueSet string, strength schema.BindingStrength, c model.CodeValue) (bool, bool, error) {
	return f(ctx, valueSet, strength, c)
}

// stripVersion removes the version suffix of a canonical URL
// ("http://hl7.org/fhir/ValueSet/publication-status|4.0.1").
func stripVersion(url string) string {
	if idx := strings.LastIndex(url, "|"); idx != -1 {
		return url[:idx]
	}
	return url
}

// externalSystems cannot be expanded locally. A value set including one of
// them whole accepts any code of that system.
var externalSystems = map[string]bool{
	"urn:ietf:bcp:13":                             true,
	"urn:ietf:bcp:47":                             true,
	"urn:iana:tz":                                 true,
	"urn:iso:std:iso:3166":                        true,
	"urn:iso:std:iso:4217":                        true,
	"http://unitsofmeasure.org":                   true,
	"http://snomed.info/sct":                      true,
	"http://loinc.org":                            true,
	"http://www.nlm.nih.gov/research/umls/rxnorm": true,
	"http://hl7.org/fhir/sid/icd-10":              true,
	"http://hl7.org/fhir/sid/icd-10-cm":           true,
}

// IsExternalSystem reports whether system needs a terminology server.
func IsExternalSystem(system string) bool {
	return externalSystems[system]
}
