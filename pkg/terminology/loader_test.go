package terminology

import (
	"os"
	"path/filepath"
	"testing"
)

const testCodeSystem = `{
  "resourceType": "CodeSystem",
  "url": "http://example.org/CodeSystem/shapes",
  "status": "active",
  "content": "complete",
  "concept": [{"code": "round"}, {"code": "oval"}]
}`

const testValueSet = `{
  "resourceType": "ValueSet",
  "url": "http://example.org/ValueSet/shapes",
  "status": "active",
  "compose": {"include": [{"system": "http://example.org/CodeSystem/shapes"}]}
}`

func TestLoadJSON(t *testing.T) {
	t.Run("bundle loads code systems first", func(t *testing.T) {
		bundle := `{"resourceType": "Bundle", "type": "collection", "entry": [
			{"resource": ` + testValueSet + `},
			{"resource": ` + testCodeSystem + `},
			{"resource": {"resourceType": "Patient"}}
		]}`
		ts := NewEmpty()
		stats, err := ts.LoadJSON([]byte(bundle))
		if err != nil {
			t.Fatalf("LoadJSON() error = %v", err)
		}
		if stats.CodeSystems != 1 || stats.ValueSets != 1 {
			t.Errorf("stats = %+v; want one of each", stats)
		}
		if ok, _ := member(t, ts, "http://example.org/ValueSet/shapes", "", "oval"); !ok {
			t.Error("expected oval in loaded value set")
		}
	})

	t.Run("unsupported resource", func(t *testing.T) {
		if _, err := NewEmpty().LoadJSON([]byte(`{"resourceType": "Patient"}`)); err == nil {
			t.Error("expected error for Patient")
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		if _, err := NewEmpty().LoadJSON([]byte(`not json`)); err == nil {
			t.Error("expected error for invalid JSON")
		}
	})
}

func TestLoadDirectory(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"ValueSet-shapes.json":   testValueSet,
		"CodeSystem-shapes.json": testCodeSystem,
		"package.json":           `{"name": "example"}`,
		"ValueSet-broken.json":   `{"resourceType": "ValueSet"}`,
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o600); err != nil {
			t.Fatal(err)
		}
	}

	ts := NewEmpty()
	stats, err := ts.LoadDirectory(dir)
	if err != nil {
		t.Fatalf("LoadDirectory() error = %v", err)
	}
	if stats.CodeSystems != 1 || stats.ValueSets != 1 || stats.Errors != 1 {
		t.Errorf("stats = %+v; want 1 code system, 1 value set, 1 error", stats)
	}
	if ok, _ := member(t, ts, "http://example.org/ValueSet/shapes", "http://example.org/CodeSystem/shapes", "round"); !ok {
		t.Error("expected round in loaded value set")
	}

	if _, err := ts.LoadDirectory(filepath.Join(dir, "missing")); err == nil {
		t.Error("expected error for missing directory")
	}
}
