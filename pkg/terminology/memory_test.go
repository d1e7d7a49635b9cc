package terminology

import (
	"context"
	"sync"
	"testing"

	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/schema"
)

func member(t *testing.T, p Provider, valueSet, system, code string) (bool, bool) {
	t.Helper()
	ok, found, err := p.MemberOf(context.Background(), valueSet, schema.StrengthRequired, model.CodeValue{System: system, Code: code})
	if err != nil {
		t.Fatalf("MemberOf(%q, %q) error = %v", valueSet, code, err)
	}
	return ok, found
}

func TestInMemoryBuiltins(t *testing.T) {
	ts := NewInMemory()
	if ts.CountCodeSystems() == 0 || ts.CountValueSets() == 0 {
		t.Fatal("expected preloaded terminology")
	}

	tests := []struct {
		name      string
		valueSet  string
		system    string
		code      string
		wantOK    bool
		wantFound bool
	}{
		{"status code without system", vsBase + "publication-status", "", "active", true, true},
		{"status coding", vsBase + "publication-status", hl7Base + "publication-status", "retired", true, true},
		{"unknown status", vsBase + "publication-status", "", "published", false, true},
		{"wrong system", vsBase + "publication-status", "http://example.org/cs", "active", false, true},
		{"versioned url", vsBase + "medicationknowledge-status|4.0.1", "", "inactive", true, true},
		{"group measure", vsBase + "group-measure", "", "median-of-mean", true, true},
		{"external system accepts any code", vsBase + "currencies", "", "EUR", true, true},
		{"snomed wildcard", vsBase + "route-codes", sct, "26643006", true, true},
		{"snomed value set rejects other systems", vsBase + "route-codes", "http://example.org/routes", "oral", false, true},
		{"unknown value set", "http://example.org/ValueSet/none", "", "x", false, false},
		{"empty code", vsBase + "variable-type", "", "", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, found := member(t, ts, tt.valueSet, tt.system, tt.code)
			if ok != tt.wantOK || found != tt.wantFound {
				t.Errorf("MemberOf() = (%v, %v); want (%v, %v)", ok, found, tt.wantOK, tt.wantFound)
			}
		})
	}
}

func TestInMemoryLoadValueSet(t *testing.T) {
	url := "http://example.org/ValueSet/forms"
	system := "http://example.org/CodeSystem/forms"
	tablet, capsule := "tablet", "capsule"
	display := "Tablet"

	t.Run("from expansion", func(t *testing.T) {
		ts := NewEmpty()
		err := ts.LoadValueSet(&r4.ValueSet{
			Url: &url,
			Expansion: &r4.ValueSetExpansion{
				Contains: []r4.ValueSetExpansionContains{
					{System: &system, Code: &tablet, Display: &display, Contains: []r4.ValueSetExpansionContains{
						{System: &system, Code: &capsule},
					}},
				},
			},
		})
		if err != nil {
			t.Fatalf("LoadValueSet() error = %v", err)
		}
		for _, code := range []string{tablet, capsule} {
			if ok, _ := member(t, ts, url, system, code); !ok {
				t.Errorf("expected %q in expansion", code)
			}
		}
	})

	t.Run("from compose", func(t *testing.T) {
		ts := NewEmpty()
		err := ts.LoadValueSet(&r4.ValueSet{
			Url: &url,
			Compose: &r4.ValueSetCompose{
				Include: []r4.ValueSetComposeInclude{{
					System:  &system,
					Concept: []r4.ValueSetComposeIncludeConcept{{Code: &tablet, Display: &display}},
				}},
			},
		})
		if err != nil {
			t.Fatalf("LoadValueSet() error = %v", err)
		}
		if ok, _ := member(t, ts, url, system, tablet); !ok {
			t.Error("expected tablet in compose")
		}
		if ok, _ := member(t, ts, url, system, capsule); ok {
			t.Error("capsule is not listed")
		}
	})

	t.Run("include whole code system", func(t *testing.T) {
		ts := NewEmpty()
		if err := ts.LoadCodeSystem(&r4.CodeSystem{
			Url:     &system,
			Concept: []r4.CodeSystemConcept{{Code: &tablet}, {Code: &capsule}},
		}); err != nil {
			t.Fatalf("LoadCodeSystem() error = %v", err)
		}
		if err := ts.LoadValueSet(&r4.ValueSet{
			Url:     &url,
			Compose: &r4.ValueSetCompose{Include: []r4.ValueSetComposeInclude{{System: &system}}},
		}); err != nil {
			t.Fatalf("LoadValueSet() error = %v", err)
		}
		if ok, _ := member(t, ts, url, system, capsule); !ok {
			t.Error("expected capsule through include-all")
		}
	})

	t.Run("nil and url-less", func(t *testing.T) {
		ts := NewEmpty()
		if err := ts.LoadValueSet(nil); err == nil {
			t.Error("expected error for nil ValueSet")
		}
		if err := ts.LoadValueSet(&r4.ValueSet{}); err == nil {
			t.Error("expected error for ValueSet without URL")
		}
		if err := ts.LoadCodeSystem(&r4.CodeSystem{}); err == nil {
			t.Error("expected error for CodeSystem without URL")
		}
	})
}

func TestInMemoryHierarchy(t *testing.T) {
	ts := NewEmpty()
	system := "http://example.org/CodeSystem/routes"
	parent, child, abstract := "enteral", "oral", "_grouping"
	ts.LoadCodeSystem(&r4.CodeSystem{
		Url: &system,
		Concept: []r4.CodeSystemConcept{{
			Code: &parent,
			Concept: []r4.CodeSystemConcept{
				{Code: &child},
				{Code: &abstract},
			},
		}},
	})

	ts.mu.Lock()
	ts.valueSets["is-a"] = &valueSetData{url: "is-a", codes: map[string]map[string]codeEntry{}, wildcard: map[string]bool{},
		filters: []pendingFilter{{system: system, property: "concept", op: "is-a", value: parent}}}
	ts.valueSets["descendent-of"] = &valueSetData{url: "descendent-of", codes: map[string]map[string]codeEntry{}, wildcard: map[string]bool{},
		filters: []pendingFilter{{system: system, property: "concept", op: "descendent-of", value: parent}}}
	ts.valueSets["regex"] = &valueSetData{url: "regex", codes: map[string]map[string]codeEntry{}, wildcard: map[string]bool{},
		filters: []pendingFilter{{system: system, property: "code", op: "regex", value: "or.*"}}}
	ts.mu.Unlock()

	tests := []struct {
		valueSet string
		code     string
		want     bool
	}{
		{"is-a", parent, true},
		{"is-a", child, true},
		{"is-a", abstract, false},
		{"descendent-of", parent, false},
		{"descendent-of", child, true},
		{"regex", child, true},
		{"regex", parent, false},
	}
	for _, tt := range tests {
		t.Run(tt.valueSet+"/"+tt.code, func(t *testing.T) {
			if ok, _ := member(t, ts, tt.valueSet, system, tt.code); ok != tt.want {
				t.Errorf("MemberOf() = %v; want %v", ok, tt.want)
			}
		})
	}
}

func TestInMemoryConcurrentExpansion(t *testing.T) {
	ts := NewInMemory()
	var wg sync.WaitGroup
	for range 16 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ok, _, err := ts.MemberOf(context.Background(), vsBase+"exposure-state", schema.StrengthRequired, model.CodeValue{Code: "exposure"})
			if err != nil || !ok {
				t.Errorf("MemberOf() = %v, %v", ok, err)
			}
		}()
	}
	wg.Wait()
}

func TestInMemoryCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, _, err := NewInMemory().MemberOf(ctx, vsBase+"publication-status", schema.StrengthRequired, model.CodeValue{Code: "active"}); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestLookup(t *testing.T) {
	ts := NewInMemory()
	display, ok := ts.Lookup(hl7Base+"publication-status", "draft")
	if !ok || display != "Draft" {
		t.Errorf("Lookup() = %q, %v; want Draft, true", display, ok)
	}
	if _, ok := ts.Lookup("http://example.org/none", "x"); ok {
		t.Error("Lookup() found a code in an unknown system")
	}
}
