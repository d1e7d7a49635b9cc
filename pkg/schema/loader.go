package schema

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/buger/jsonparser"
	"github.com/gofhir/fhir/r4"

	catalog "github.com/gofhir/catalog"
	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/issue"
)

// ErrNoElements is returned for StructureDefinitions without snapshot or
// differential elements.
var ErrNoElements = errors.New("structure definition has no elements")

// FromStructureDefinition derives a field table from an R4
// StructureDefinition. The snapshot is preferred; the differential is used
// when no snapshot is present.
func FromStructureDefinition(sd *r4.StructureDefinition) (*Type, error) {
	if sd == nil {
		return nil, errors.New("nil structure definition")
	}

	var defs []r4.ElementDefinition
	switch {
	case sd.Snapshot != nil && len(sd.Snapshot.Element) > 0:
		defs = sd.Snapshot.Element
	case sd.Differential != nil && len(sd.Differential.Element) > 0:
		defs = sd.Differential.Element
	default:
		return nil, fmt.Errorf("%s: %w", derefString(sd.Url), ErrNoElements)
	}

	name := derefString(sd.Type)
	if name == "" {
		name = derefString(sd.Name)
	}

	elements := make([]*Element, 0, len(defs))
	for i := range defs {
		ed := &defs[i]
		// Slices narrow an element further; the engine checks the base
		// element only.
		if ed.SliceName != nil {
			continue
		}
		e, err := convertElement(ed)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", derefString(ed.Path), err)
		}
		elements = append(elements, e)
	}

	t := NewType(name, convertKind(sd.Kind), elements...)
	t.URL = derefString(sd.Url)
	t.Base = model.KindName(derefString(sd.BaseDefinition))
	if sd.FhirVersion != nil {
		if v, ok := catalog.ParseFHIRVersion(string(*sd.FhirVersion)); ok {
			t.FHIRVersion = v
		}
	}
	return t, nil
}

func convertElement(ed *r4.ElementDefinition) (*Element, error) {
	e := &Element{
		Path:       derefString(ed.Path),
		Min:        convertMin(ed.Min),
		IsModifier: derefBool(ed.IsModifier),
	}
	maxVal, err := convertMax(ed.Max)
	if err != nil {
		return nil, err
	}
	e.Max = maxVal

	for i := range ed.Type {
		tr := &ed.Type[i]
		e.Types = append(e.Types, derefString(tr.Code))
		for _, target := range tr.TargetProfile {
			e.Targets = append(e.Targets, model.KindName(target))
		}
	}
	e.Binding = convertBinding(ed.Binding)
	e.Constraints = convertConstraints(ed.Constraint)
	return e, nil
}

func convertKind(kind *r4.StructureDefinitionKind) Kind {
	if kind == nil {
		return KindComplexType
	}
	return Kind(*kind)
}

func convertMin(minVal *uint32) int {
	if minVal == nil {
		return 0
	}
	return int(*minVal)
}

func convertMax(maxVal *string) (int, error) {
	switch s := derefString(maxVal); s {
	case "":
		return 1, nil
	case "*":
		return Unbounded, nil
	default:
		n, err := strconv.Atoi(s)
		if err != nil {
			return 0, fmt.Errorf("invalid max %q: %w", s, err)
		}
		return n, nil
	}
}

func convertBinding(b *r4.ElementDefinitionBinding) *Binding {
	if b == nil {
		return nil
	}
	out := &Binding{
		ValueSet:    derefString(b.ValueSet),
		Description: derefString(b.Description),
	}
	if b.Strength != nil {
		out.Strength = BindingStrength(*b.Strength)
	}
	return out
}

func convertConstraints(cs []r4.ElementDefinitionConstraint) []Constraint {
	if len(cs) == 0 {
		return nil
	}
	out := make([]Constraint, 0, len(cs))
	for i := range cs {
		c := &cs[i]
		sev := issue.SeverityError
		if c.Severity != nil && *c.Severity != r4.ConstraintSeverityError {
			sev = issue.SeverityWarning
		}
		out = append(out, Constraint{
			Key:        derefString(c.Key),
			Severity:   sev,
			Human:      derefString(c.Human),
			Expression: derefString(c.Expression),
		})
	}
	return out
}

// ParseStructureDefinition decodes StructureDefinition JSON and derives its
// field table. For primitive types the value regex is picked up as Pattern.
func ParseStructureDefinition(data []byte) (*Type, error) {
	var sd r4.StructureDefinition
	if err := json.Unmarshal(data, &sd); err != nil {
		return nil, fmt.Errorf("decode structure definition: %w", err)
	}
	t, err := FromStructureDefinition(&sd)
	if err != nil {
		return nil, err
	}
	if t.Kind == KindPrimitiveType {
		t.Pattern = extractPattern(data, t.Name)
	}
	return t, nil
}

const regexExtension = "http://hl7.org/fhir/StructureDefinition/regex"

// extractPattern finds the regex extension on the type of the "<name>.value"
// element, looking in the snapshot first.
func extractPattern(data []byte, name string) string {
	valuePath := name + ".value"
	for _, view := range []string{"snapshot", "differential"} {
		var pattern string
		_, _ = jsonparser.ArrayEach(data, func(elem []byte, _ jsonparser.ValueType, _ int, _ error) {
			if pattern != "" {
				return
			}
			if path, _ := jsonparser.GetString(elem, "path"); path != valuePath {
				return
			}
			_, _ = jsonparser.ArrayEach(elem, func(typ []byte, _ jsonparser.ValueType, _ int, _ error) {
				_, _ = jsonparser.ArrayEach(typ, func(ext []byte, _ jsonparser.ValueType, _ int, _ error) {
					if url, _ := jsonparser.GetString(ext, "url"); url == regexExtension && pattern == "" {
						pattern, _ = jsonparser.GetString(ext, "valueString")
					}
				}, "extension")
			}, "type")
		}, view, "element")
		if pattern != "" {
			return pattern
		}
	}
	return ""
}

// LoadFile reads and parses one StructureDefinition file.
func LoadFile(path string) (*Type, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	t, err := ParseStructureDefinition(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return t, nil
}

// LoadFiles parses every file and registers the results into reg.
func LoadFiles(reg *Registry, paths ...string) error {
	var errs []error
	for _, p := range paths {
		t, err := LoadFile(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		reg.Register(t)
	}
	return errors.Join(errs...)
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func derefBool(b *bool) bool {
	return b != nil && *b
}
