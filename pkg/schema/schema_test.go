package schema

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func testType() *Type {
	return NewType("Thing", KindResource,
		&Element{Path: "Thing.status", Min: 1, Max: 1, Types: []string{"code"},
			Binding: &Binding{Strength: StrengthRequired, ValueSet: "http://example.org/vs"}},
		&Element{Path: "Thing.value[x]", Max: 1, Types: []string{"string", "Quantity"}},
		&Element{Path: "Thing.part", Max: Unbounded, Types: []string{TypeBackboneElement}},
		&Element{Path: "Thing.part.subject", Min: 1, Max: 1, Types: []string{TypeReference}, Targets: []string{"Patient"}},
	)
}

func TestElementHelpers(t *testing.T) {
	tt := testType()

	status, ok := tt.Element("Thing.status")
	if !ok {
		t.Fatal("Element(Thing.status) not found")
	}
	if !status.IsRequired() || status.IsRepeated() || status.IsChoice() {
		t.Errorf("status flags = required:%v repeated:%v choice:%v", status.IsRequired(), status.IsRepeated(), status.IsChoice())
	}

	value, ok := tt.Child("Thing", "value")
	if !ok {
		t.Fatal("Child(Thing, value) should resolve the choice path")
	}
	if value.Name() != "value" || !value.IsChoice() {
		t.Errorf("value Name() = %q, IsChoice() = %v", value.Name(), value.IsChoice())
	}
	if !value.AllowsType("Quantity") || value.AllowsType("Coding") {
		t.Error("AllowsType mismatch for value[x]")
	}

	part, _ := tt.Element("Thing.part")
	if !part.IsBackbone() || !part.IsRepeated() {
		t.Error("part should be a repeated backbone")
	}

	subject, _ := tt.Child("Thing.part", "subject")
	if !subject.AllowsTarget("Patient") || subject.AllowsTarget("Group") {
		t.Error("AllowsTarget mismatch for subject")
	}
}

func TestAllowsTargetAny(t *testing.T) {
	e := &Element{Types: []string{TypeReference}, Targets: []string{TypeResource}}
	if !e.AllowsTarget("Organization") {
		t.Error("a Resource target should accept any kind")
	}
	if !(&Element{}).AllowsTarget("Anything") {
		t.Error("an element without targets should accept any kind")
	}
}

func TestNewTypeAddsRoot(t *testing.T) {
	tt := testType()
	if tt.Root() == nil || tt.Root().Path != "Thing" {
		t.Fatalf("Root() = %+v; want Thing", tt.Root())
	}

	tt.Constrain(Constraint{Key: "thg-1", Human: "h", Expression: "status.exists()"})
	if got := len(tt.Root().Constraints); got != 1 {
		t.Errorf("root constraints = %d; want 1", got)
	}
}

func TestChildren(t *testing.T) {
	tt := testType()
	var got []string
	for _, e := range tt.Children("Thing") {
		got = append(got, e.Path)
	}
	want := []string{"Thing.status", "Thing.value[x]", "Thing.part"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Children(Thing) mismatch (-want +got):\n%s", diff)
	}
}

func TestBindingStrength(t *testing.T) {
	tests := []struct {
		s        BindingStrength
		required bool
		valid    bool
	}{
		{StrengthRequired, true, true},
		{StrengthExtensible, false, true},
		{StrengthPreferred, false, true},
		{StrengthExample, false, true},
		{"mandatory", false, false},
	}
	for _, tt := range tests {
		if tt.s.IsRequired() != tt.required || tt.s.IsValid() != tt.valid {
			t.Errorf("%q: IsRequired=%v IsValid=%v", tt.s, tt.s.IsRequired(), tt.s.IsValid())
		}
	}
}

func TestRegistry(t *testing.T) {
	a := NewType("A", KindComplexType)
	a.URL = "http://example.org/A"
	reg := NewRegistry(a, NewType("B", KindComplexType))

	if reg.Count() != 2 {
		t.Errorf("Count() = %d; want 2", reg.Count())
	}
	if got, ok := reg.GetByURL("http://example.org/A"); !ok || got != a {
		t.Error("GetByURL(A) failed")
	}
	if diff := cmp.Diff([]string{"A", "B"}, reg.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	overlay := NewType("A", KindComplexType)
	clone := reg.Clone()
	clone.Register(overlay)
	if got, _ := clone.Get("A"); got != overlay {
		t.Error("Register should replace a same-named type")
	}
	if got, _ := reg.Get("A"); got != a {
		t.Error("Clone must be independent of the original")
	}

	reg.Merge(clone)
	if got, _ := reg.Get("A"); got != overlay {
		t.Error("Merge should bring in the overlay")
	}
	reg.Register(nil)
	reg.Merge(nil)
}

func TestLint(t *testing.T) {
	tt := NewType("Bad", KindResource,
		&Element{Path: "Bad.a", Min: 2, Max: 1},
		&Element{Path: "Bad.b[x]", Max: 1, Types: []string{"string"}},
		&Element{Path: "Bad.c", Max: 1, Types: []string{"string"}, Targets: []string{"Patient"}},
		&Element{Path: "Bad.d", Max: 1, Binding: &Binding{Strength: StrengthRequired}},
		&Element{Path: "Bad.missing.e", Max: 1},
		&Element{Path: "Other.f", Max: 1},
	)
	tt.Constrain(Constraint{Human: "no key"})

	res := Lint(tt)
	if got := res.ErrorCount(); got != 6 {
		for _, i := range res.Issues {
			t.Logf("%s %s: %s", i.Severity, i.Path(), i.Diagnostics)
		}
		t.Errorf("ErrorCount() = %d; want 6", got)
	}
	if got := res.WarningCount(); got != 2 {
		t.Errorf("WarningCount() = %d; want 2", got)
	}

	if Lint(testType()).HasErrors() {
		t.Error("a consistent type should lint clean")
	}
}
