package catalog

import "strings"

// FHIRVersion identifies a FHIR release.
type FHIRVersion string

// Supported FHIR versions.
const (
	// R4 is FHIR Release 4 (4.0.1)
	R4 FHIRVersion = "R4"
	// R4B is FHIR Release 4B (4.3.0)
	R4B FHIRVersion = "R4B"
	// R5 is FHIR Release 5 (5.0.0)
	R5 FHIRVersion = "R5"
)

// String returns the version string.
func (v FHIRVersion) String() string {
	return string(v)
}

// IsValid returns true if this is a supported FHIR version.
func (v FHIRVersion) IsValid() bool {
	switch v {
	case R4, R4B, R5:
		return true
	default:
		return false
	}
}

// Number returns the full release number declared by StructureDefinitions.
func (v FHIRVersion) Number() string {
	return releaseNumbers[v]
}

var releaseNumbers = map[FHIRVersion]string{
	R4:  "4.0.1",
	R4B: "4.3.0",
	R5:  "5.0.0",
}

// ParseFHIRVersion maps a release number such as "4.0.1" (or a label such
// as "R4") to a FHIRVersion. Only the major.minor part is significant.
func ParseFHIRVersion(s string) (FHIRVersion, bool) {
	if v := FHIRVersion(strings.ToUpper(s)); v.IsValid() {
		return v, true
	}
	switch {
	case strings.HasPrefix(s, "4.0"):
		return R4, true
	case strings.HasPrefix(s, "4.3"):
		return R4B, true
	case strings.HasPrefix(s, "5.0"):
		return R5, true
	}
	return "", false
}
