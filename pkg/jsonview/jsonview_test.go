package jsonview_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/model/r4"
	"github.com/gofhir/catalog/pkg/jsonview"
)

func decode(t *testing.T, e model.Element) map[string]any {
	t.Helper()
	data, err := jsonview.Marshal(e)
	require.NoError(t, err)
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestMarshalResource(t *testing.T) {
	ing, err := r4.NewMedicationKnowledgeIngredientBuilder().
		Item(r4.NewReference("Substance/ibuprofen")).
		IsActive(true).
		Build(model.Unchecked)
	require.NoError(t, err)

	mk, err := r4.NewMedicationKnowledgeBuilder().
		ID("mk1").
		Status("active").
		Synonym("Advil", "Nurofen").
		Ingredient(ing).
		Build(model.Unchecked)
	require.NoError(t, err)

	want := map[string]any{
		"resourceType": "MedicationKnowledge",
		"id":           "mk1",
		"status":       "active",
		"synonym":      []any{"Advil", "Nurofen"},
		"ingredient": []any{
			map[string]any{
				"itemReference": map[string]any{"reference": "Substance/ibuprofen"},
				"isActive":      true,
			},
		},
	}
	if diff := cmp.Diff(want, decode(t, mk)); diff != "" {
		t.Errorf("projection mismatch (-want +got):\n%s", diff)
	}
}

func TestPrimitiveMetadata(t *testing.T) {
	ext, err := r4.NewExtensionBuilder("http://example.org/source").Value(r4.NewString("label")).Build(model.Unchecked)
	require.NoError(t, err)
	tagged, err := r4.NewStringBuilder().ID("s2").Value("Nurofen").Extension(ext).Build(model.Unchecked)
	require.NoError(t, err)

	mk, err := r4.NewMedicationKnowledgeBuilder().
		SynonymElement(r4.NewString("Advil"), tagged).
		Build(model.Unchecked)
	require.NoError(t, err)

	got := decode(t, mk)
	want := []any{
		nil,
		map[string]any{
			"id": "s2",
			"extension": []any{
				map[string]any{"url": "http://example.org/source", "valueString": "label"},
			},
		},
	}
	if diff := cmp.Diff(want, got["_synonym"]); diff != "" {
		t.Errorf("_synonym mismatch (-want +got):\n%s", diff)
	}
}

func TestNumbersKeepPrecision(t *testing.T) {
	q, err := r4.NewQuantity("12.50", "mg")
	require.NoError(t, err)

	data, err := jsonview.Marshal(q)
	require.NoError(t, err)
	require.JSONEq(t, `{"value": 12.50, "unit": "mg", "system": "http://unitsofmeasure.org", "code": "mg"}`, string(data))
	require.Contains(t, string(data), `12.50`)
}

func TestPrimitiveRoot(t *testing.T) {
	p, err := r4.NewBooleanBuilder().ID("b1").Value(false).Build(model.Unchecked)
	require.NoError(t, err)

	got := jsonview.Project(p)
	want := map[string]any{"id": "b1", "value": false}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestNil(t *testing.T) {
	if got := jsonview.Project(nil); got != nil {
		t.Errorf("Project(nil) = %v, want nil", got)
	}
	if _, err := jsonview.Marshal(nil); err == nil {
		t.Error("Marshal(nil) should fail")
	}
}

func TestChoiceKey(t *testing.T) {
	tests := []struct {
		field, typ, want string
	}{
		{"value", "Quantity", "valueQuantity"},
		{"value", "dateTime", "valueDateTime"},
		{"value", "base64Binary", "valueBase64Binary"},
		{"item", "CodeableConcept", "itemCodeableConcept"},
		{"definition", "canonical", "definitionCanonical"},
	}
	for _, tt := range tests {
		if got := jsonview.ChoiceKey(tt.field, tt.typ); got != tt.want {
			t.Errorf("ChoiceKey(%q, %q) = %q, want %q", tt.field, tt.typ, got, tt.want)
		}
	}
}
