package r4_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/model/r4"
	"github.com/gofhir/catalog/pkg/schema"
)

func panicsWithPrecondition(t *testing.T, field string, fn func()) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a precondition failure")
		var pe *model.PreconditionError
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, field, pe.Field)
	}()
	fn()
}

func TestConvenienceSettersMatchWrapped(t *testing.T) {
	plain, err := r4.NewMedicationKnowledgeBuilder().
		Status("active").
		Synonym("Advil").
		PreparationInstruction("Take with water").
		Build(model.Unchecked)
	require.NoError(t, err)

	wrapped, err := r4.NewMedicationKnowledgeBuilder().
		StatusElement(r4.NewCode("active")).
		SynonymElement(r4.NewString("Advil")).
		PreparationInstructionElement(r4.NewMarkdown("Take with water")).
		Build(model.Unchecked)
	require.NoError(t, err)

	assert.True(t, plain.Equal(wrapped))
	assert.Equal(t, model.Hash(plain), model.Hash(wrapped))
}

func TestBuilderPreconditions(t *testing.T) {
	panicsWithPrecondition(t, "synonym", func() {
		r4.NewMedicationKnowledgeBuilder().SynonymElement(r4.NewString("a"), nil)
	})
	panicsWithPrecondition(t, "synonym", func() {
		r4.NewMedicationKnowledgeBuilder().SetSynonym(nil)
	})
	panicsWithPrecondition(t, "ingredient", func() {
		r4.NewMedicationKnowledgeBuilder().SetIngredient([]*r4.MedicationKnowledgeIngredient{nil})
	})
	panicsWithPrecondition(t, "extension", func() {
		r4.NewCodingBuilder().Extension(nil)
	})
	panicsWithPrecondition(t, "contained", func() {
		r4.NewEvidenceVariableBuilder().Contained(nil)
	})
	panicsWithPrecondition(t, "contained", func() {
		r4.NewMedicationKnowledgeBuilder().Status("active").Contained((*r4.MedicationKnowledge)(nil))
	})
	panicsWithPrecondition(t, "contained", func() {
		r4.NewMedicationKnowledgeBuilder().SetContained([]model.Resource{(*r4.EvidenceVariable)(nil)})
	})

	// An empty, non-nil collection clears the list.
	mk, err := r4.NewMedicationKnowledgeBuilder().Synonym("a").SetSynonym([]*r4.String{}).Build(model.Unchecked)
	require.NoError(t, err)
	assert.Empty(t, mk.Synonym())
}

func TestChoiceTypedNilIsAbsent(t *testing.T) {
	var ref *r4.Reference
	ing, err := r4.NewMedicationKnowledgeIngredientBuilder().Item(ref).Build(model.Unchecked)
	require.NoError(t, err)

	assert.Nil(t, ing.Item())
	f, ok := model.Lookup(ing, "item")
	require.True(t, ok)
	assert.True(t, f.Choice)
	assert.False(t, f.Present())
	assert.False(t, ing.HasContent())

	ing, err = ing.ToBuilder().Item(r4.NewCodeableConceptText("ibuprofen")).Build(model.Unchecked)
	require.NoError(t, err)
	_, isConcept := ing.Item().(*r4.CodeableConcept)
	assert.True(t, isConcept)
}

func TestToBuilderRoundTrip(t *testing.T) {
	ing, err := r4.NewMedicationKnowledgeIngredientBuilder().
		Item(r4.NewReference("Substance/ibuprofen")).
		IsActive(true).
		Build(model.Unchecked)
	require.NoError(t, err)
	cost, err := r4.NewMoney("4.99", "EUR")
	require.NoError(t, err)
	c, err := r4.NewMedicationKnowledgeCostBuilder().
		Type(r4.NewCodeableConceptText("retail")).
		Cost(cost).
		Build(model.Unchecked)
	require.NoError(t, err)

	mk, err := r4.NewMedicationKnowledgeBuilder().
		ID("mk1").
		Language("en").
		Status("active").
		Synonym("Advil").
		Ingredient(ing).
		Cost(c).
		Build(model.Unchecked)
	require.NoError(t, err)

	characteristic, err := r4.NewEvidenceVariableCharacteristicBuilder().
		Definition(r4.NewCanonical("http://example.org/ActivityDefinition/x")).
		ParticipantEffective(r4.NewPeriod("2020", "2021")).
		Build(model.Unchecked)
	require.NoError(t, err)
	ev, err := r4.NewEvidenceVariableBuilder().
		Name("Adults").
		Status("draft").
		Type("dichotomous").
		Characteristic(characteristic).
		Build(model.Unchecked)
	require.NoError(t, err)

	sample, err := r4.NewEffectEvidenceSynthesisSampleSizeBuilder().NumberOfStudies(3).Build(model.Unchecked)
	require.NoError(t, err)
	ees, err := r4.NewEffectEvidenceSynthesisBuilder().
		Status("active").
		Population(r4.NewReference("EvidenceVariable/adults")).
		SampleSize(sample).
		Build(model.Unchecked)
	require.NoError(t, err)

	tests := []struct {
		name string
		orig model.Element
		copy func() (model.Element, error)
	}{
		{"MedicationKnowledge", mk, func() (model.Element, error) { return mk.ToBuilder().Build(model.Unchecked) }},
		{"EvidenceVariable", ev, func() (model.Element, error) { return ev.ToBuilder().Build(model.Unchecked) }},
		{"EffectEvidenceSynthesis", ees, func() (model.Element, error) { return ees.ToBuilder().Build(model.Unchecked) }},
		{"ingredient", ing, func() (model.Element, error) { return ing.ToBuilder().Build(model.Unchecked) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp, err := tt.copy()
			require.NoError(t, err)
			assert.True(t, model.Equal(tt.orig, cp))
			assert.Equal(t, model.Hash(tt.orig), model.Hash(cp))
		})
	}

	t.Run("builder does not alias", func(t *testing.T) {
		b := mk.ToBuilder()
		b.Synonym("Nurofen")
		changed, err := b.Build(model.Unchecked)
		require.NoError(t, err)
		assert.Len(t, mk.Synonym(), 1)
		assert.Len(t, changed.Synonym(), 2)
		assert.False(t, mk.Equal(changed))
	})
}

func TestAccessorsReturnCopies(t *testing.T) {
	mk, err := r4.NewMedicationKnowledgeBuilder().Synonym("a", "b").Build(model.Unchecked)
	require.NoError(t, err)
	before := model.Hash(mk)

	s := mk.Synonym()
	s[0] = r4.NewString("changed")
	assert.Equal(t, "a", mustLiteral(t, mk.Synonym()[0]))

	fresh, err := mk.ToBuilder().Build(model.Unchecked)
	require.NoError(t, err)
	assert.Equal(t, before, model.Hash(fresh))
}

func mustLiteral(t *testing.T, p model.Primitive) string {
	t.Helper()
	s, ok := p.Literal()
	require.True(t, ok)
	return s
}

func TestDecimalPrecision(t *testing.T) {
	a, err := r4.ParseDecimal("1.0")
	require.NoError(t, err)
	b, err := r4.ParseDecimal("1.00")
	require.NoError(t, err)

	assert.Equal(t, "1.0", mustLiteral(t, a))
	assert.Equal(t, "1.00", mustLiteral(t, b))
	assert.False(t, a.Equal(b))

	_, err = r4.ParseDecimal("one")
	assert.Error(t, err)
}

func TestPrimitiveLiterals(t *testing.T) {
	tests := []struct {
		name string
		p    model.Primitive
		want string
		kind model.PrimitiveKind
	}{
		{"boolean", r4.NewBoolean(false), "false", model.KindBoolean},
		{"integer", r4.NewInteger(-7), "-7", model.KindNumber},
		{"unsignedInt", r4.NewUnsignedInt(0), "0", model.KindNumber},
		{"positiveInt", r4.NewPositiveInt(12), "12", model.KindNumber},
		{"string", r4.NewString("x y"), "x y", model.KindString},
		{"dateTime", r4.NewDateTime("2024-02"), "2024-02", model.KindString},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, mustLiteral(t, tt.p))
			assert.Equal(t, tt.kind, tt.p.Kind())
		})
	}

	empty, err := r4.NewStringBuilder().ID("s1").Build(model.Unchecked)
	require.NoError(t, err)
	_, ok := empty.Literal()
	assert.False(t, ok)
	assert.True(t, empty.HasContent())
}

func TestCodings(t *testing.T) {
	cc, err := r4.NewCodeableConceptBuilder().
		Coding(r4.NewCoding("http://snomed.info/sct", "387207008"), r4.NewCoding("http://www.nlm.nih.gov/research/umls/rxnorm", "5640")).
		Text("Ibuprofen").
		Build(model.Unchecked)
	require.NoError(t, err)

	assert.Equal(t, []model.CodeValue{
		{System: "http://snomed.info/sct", Code: "387207008"},
		{System: "http://www.nlm.nih.gov/research/umls/rxnorm", Code: "5640"},
	}, cc.Codings())
	assert.Equal(t, []model.CodeValue{{Code: "active"}}, r4.NewCode("active").Codings())
}

func TestReferenceTarget(t *testing.T) {
	ref, err := r4.NewReferenceBuilder().Reference("#org").Type("Organization").Display("Acme").Build(model.Unchecked)
	require.NoError(t, err)
	assert.Equal(t, model.ReferenceTarget{Literal: "#org", Type: "Organization"}, ref.ReferenceTarget())
	assert.Equal(t, model.ReferenceTarget{Literal: "Substance/1"}, r4.NewReference("Substance/1").ReferenceTarget())
}

func TestSchemasLint(t *testing.T) {
	reg := r4.Schemas()
	for _, name := range []string{
		"MedicationKnowledge", "EffectEvidenceSynthesis", "EvidenceVariable",
		"Extension", "Reference", "Coding", "CodeableConcept", "Quantity", "Money", "Ratio", "Period",
		"string", "code", "decimal", "dateTime",
	} {
		_, ok := reg.Get(name)
		assert.True(t, ok, "missing %s", name)
	}

	for _, name := range reg.Names() {
		typ, _ := reg.Get(name)
		t.Run(name, func(t *testing.T) {
			res := schema.Lint(typ)
			assert.False(t, res.HasErrors(), "lint: %+v", res.Issues)
		})
	}
}

func TestSchemaShape(t *testing.T) {
	reg := r4.Schemas()
	mk, _ := reg.Get("MedicationKnowledge")

	item, ok := mk.Child("MedicationKnowledge.ingredient", "item")
	require.True(t, ok)
	assert.True(t, item.IsChoice())
	assert.True(t, item.AllowsType("Reference"))
	assert.True(t, item.AllowsTarget("Substance"))
	assert.False(t, item.AllowsTarget("Organization"))

	ref, ok := mk.Child("MedicationKnowledge.relatedMedicationKnowledge", "reference")
	require.True(t, ok)
	assert.Equal(t, 1, ref.Min)
	assert.Equal(t, schema.Unbounded, ref.Max)

	status, ok := mk.Child("MedicationKnowledge", "status")
	require.True(t, ok)
	require.NotNil(t, status.Binding)
	assert.Equal(t, schema.StrengthRequired, status.Binding.Strength)
	assert.Equal(t, r4.MedicationKnowledgeStatusVS, status.Binding.ValueSet)
}

func TestDatatypeInvariants(t *testing.T) {
	reg := r4.Schemas()
	constraint := func(typeName, key string) schema.Constraint {
		typ, ok := reg.Get(typeName)
		require.True(t, ok)
		for _, c := range typ.Root().Constraints {
			if c.Key == key {
				require.NotNil(t, c.Predicate)
				return c
			}
		}
		t.Fatalf("%s has no constraint %s", typeName, key)
		return schema.Constraint{}
	}

	per1 := constraint("Period", "per-1")
	assert.True(t, per1.Predicate(r4.NewPeriod("2024-01-01", "2024-05-01")))
	assert.True(t, per1.Predicate(r4.NewPeriod("2024", "2024-06-01")))
	assert.False(t, per1.Predicate(r4.NewPeriod("2024-05-01", "2024-01-01")))
	start, err := r4.NewPeriodBuilder().Start("2024").Build(model.Unchecked)
	require.NoError(t, err)
	assert.True(t, per1.Predicate(start))

	qty3 := constraint("Quantity", "qty-3")
	withSystem, err := r4.NewQuantity("5", "mg")
	require.NoError(t, err)
	assert.True(t, qty3.Predicate(withSystem))
	noSystem, err := r4.NewQuantityBuilder().Code("mg").Build(model.Unchecked)
	require.NoError(t, err)
	assert.False(t, qty3.Predicate(noSystem))

	rat1 := constraint("Ratio", "rat-1")
	assert.True(t, rat1.Predicate(r4.NewRatio(withSystem, withSystem)))
	half, err := r4.NewRatioBuilder().Numerator(withSystem).Build(model.Unchecked)
	require.NoError(t, err)
	assert.False(t, rat1.Predicate(half))
}
