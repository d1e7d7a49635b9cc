package schema

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/gofhir/fhir/r4"

	catalog "github.com/gofhir/catalog"
	"github.com/gofhir/catalog/pkg/issue"
)

func ptr[T any](v T) *T { return &v }

func TestFromStructureDefinition(t *testing.T) {
	t.Run("nil input", func(t *testing.T) {
		if _, err := FromStructureDefinition(nil); err == nil {
			t.Error("expected an error for nil input")
		}
	})

	t.Run("no elements", func(t *testing.T) {
		_, err := FromStructureDefinition(&r4.StructureDefinition{Url: ptr("http://example.org/sd")})
		if !errors.Is(err, ErrNoElements) {
			t.Errorf("error = %v; want ErrNoElements", err)
		}
	})

	t.Run("snapshot elements", func(t *testing.T) {
		kind := r4.StructureDefinitionKindResource
		version := r4.FHIRVersion401
		strength := r4.BindingStrengthRequired
		severity := r4.ConstraintSeverityError

		sd := &r4.StructureDefinition{
			Url:            ptr("http://example.org/StructureDefinition/mk-profile"),
			Name:           ptr("MKProfile"),
			Type:           ptr("MedicationKnowledge"),
			Kind:           &kind,
			FhirVersion:    &version,
			BaseDefinition: ptr("http://hl7.org/fhir/StructureDefinition/MedicationKnowledge"),
			Snapshot: &r4.StructureDefinitionSnapshot{
				Element: []r4.ElementDefinition{
					{
						Path: ptr("MedicationKnowledge"),
						Min:  ptr(uint32(0)),
						Max:  ptr("*"),
						Constraint: []r4.ElementDefinitionConstraint{{
							Key:        ptr("mkp-1"),
							Severity:   &severity,
							Human:      ptr("code is required"),
							Expression: ptr("code.exists()"),
						}},
					},
					{
						Path: ptr("MedicationKnowledge.status"),
						Min:  ptr(uint32(1)),
						Max:  ptr("1"),
						Type: []r4.ElementDefinitionType{{Code: ptr("code")}},
						Binding: &r4.ElementDefinitionBinding{
							Strength: &strength,
							ValueSet: ptr("http://hl7.org/fhir/ValueSet/medicationknowledge-status|4.0.1"),
						},
					},
					{
						Path: ptr("MedicationKnowledge.manufacturer"),
						Max:  ptr("1"),
						Type: []r4.ElementDefinitionType{{
							Code:          ptr("Reference"),
							TargetProfile: []string{"http://hl7.org/fhir/StructureDefinition/Organization"},
						}},
					},
					{
						Path:      ptr("MedicationKnowledge.synonym"),
						SliceName: ptr("brand"),
						Max:       ptr("1"),
					},
				},
			},
		}

		tt, err := FromStructureDefinition(sd)
		if err != nil {
			t.Fatalf("FromStructureDefinition() error = %v", err)
		}
		if tt.Name != "MedicationKnowledge" {
			t.Errorf("Name = %q; want MedicationKnowledge", tt.Name)
		}
		if tt.Kind != KindResource || tt.FHIRVersion != catalog.R4 || tt.Base != "MedicationKnowledge" {
			t.Errorf("Kind/FHIRVersion/Base = %q/%q/%q", tt.Kind, tt.FHIRVersion, tt.Base)
		}
		if len(tt.Elements) != 3 {
			t.Errorf("len(Elements) = %d; want 3 (slices skipped)", len(tt.Elements))
		}

		root := tt.Root()
		if root.Max != Unbounded || len(root.Constraints) != 1 {
			t.Fatalf("root = %+v", root)
		}
		if c := root.Constraints[0]; c.Key != "mkp-1" || c.Severity != issue.SeverityError || c.Expression != "code.exists()" {
			t.Errorf("constraint = %+v", c)
		}

		status, _ := tt.Element("MedicationKnowledge.status")
		if status.Min != 1 || status.Max != 1 || status.Binding == nil || !status.Binding.Strength.IsRequired() {
			t.Errorf("status = %+v", status)
		}

		manufacturer, _ := tt.Element("MedicationKnowledge.manufacturer")
		if len(manufacturer.Targets) != 1 || manufacturer.Targets[0] != "Organization" {
			t.Errorf("manufacturer targets = %v; want [Organization]", manufacturer.Targets)
		}
	})

	t.Run("differential fallback and bad max", func(t *testing.T) {
		sd := &r4.StructureDefinition{
			Type: ptr("X"),
			Differential: &r4.StructureDefinitionDifferential{
				Element: []r4.ElementDefinition{{Path: ptr("X.a"), Max: ptr("many")}},
			},
		}
		if _, err := FromStructureDefinition(sd); err == nil {
			t.Error("expected an error for max \"many\"")
		}
	})
}

const sdJSON = `{
  "resourceType": "StructureDefinition",
  "url": "http://example.org/StructureDefinition/Widget",
  "name": "Widget",
  "type": "Widget",
  "kind": "complex-type",
  "fhirVersion": "4.0.1",
  "snapshot": {
    "element": [
      {"path": "Widget", "min": 0, "max": "*"},
      {"path": "Widget.size", "min": 1, "max": "1", "type": [{"code": "integer"}]}
    ]
  }
}`

func TestParseAndLoadFiles(t *testing.T) {
	tt, err := ParseStructureDefinition([]byte(sdJSON))
	if err != nil {
		t.Fatalf("ParseStructureDefinition() error = %v", err)
	}
	if e, ok := tt.Element("Widget.size"); !ok || !e.IsRequired() {
		t.Errorf("Widget.size = %+v, %v", e, ok)
	}

	if _, err := ParseStructureDefinition([]byte("{")); err == nil {
		t.Error("expected a decode error")
	}

	dir := t.TempDir()
	good := filepath.Join(dir, "widget.json")
	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(good, []byte(sdJSON), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(bad, []byte("not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	reg := NewRegistry()
	err = LoadFiles(reg, good, bad, filepath.Join(dir, "missing.json"))
	if err == nil {
		t.Error("LoadFiles() should report the bad and missing files")
	}
	if _, ok := reg.GetByURL("http://example.org/StructureDefinition/Widget"); !ok {
		t.Error("the good file should still be registered")
	}
}
