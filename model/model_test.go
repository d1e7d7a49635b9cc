package model_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/model/r4"
	"github.com/gofhir/catalog/pkg/issue"
)

// node is a minimal composite for traversal tests.
type node struct {
	model.Base
	label    string
	children []*node
}

func newNode(label string, children ...*node) *node {
	return &node{Base: model.NewBase(nil, nil), label: label, children: children}
}

func (*node) TypeName() string { return "Node" }

func (n *node) Fields() []model.Field {
	return append(n.BaseFields(), model.Many("child", n.children))
}

func (n *node) HasContent() bool { return model.HasContent(n) }

func (n *node) Accept(v model.Visitor, name string, index int) { model.Accept(v, name, index, n) }

type trace struct {
	events    []string
	skip      string // label whose node is vetoed in PreVisit
	noDescend string // label whose children are vetoed in Visit
}

func (t *trace) PreVisit(e model.Element) bool {
	if e.(*node).label == t.skip {
		t.events = append(t.events, "skip:"+t.skip)
		return false
	}
	return true
}

func (t *trace) VisitStart(name string, index int, e model.Element) {
	t.events = append(t.events, "start:"+e.(*node).label)
}

func (t *trace) Visit(name string, index int, e model.Element) bool {
	return e.(*node).label != t.noDescend
}

func (t *trace) VisitEnd(name string, index int, e model.Element) {
	t.events = append(t.events, "end:"+e.(*node).label)
}

func (t *trace) PostVisit(e model.Element) {
	t.events = append(t.events, "post:"+e.(*node).label)
}

func TestWalkOrder(t *testing.T) {
	tree := newNode("root",
		newNode("a", newNode("a1")),
		newNode("b", newNode("b1")),
		newNode("c"),
	)

	tr := &trace{skip: "c", noDescend: "b"}
	model.Walk(tr, tree)

	want := []string{
		"start:root",
		"start:a", "start:a1", "end:a1", "post:a1", "end:a", "post:a",
		"start:b", "end:b", "post:b",
		"skip:c",
		"end:root", "post:root",
	}
	if diff := cmp.Diff(want, tr.events); diff != "" {
		t.Errorf("traversal mismatch (-want +got):\n%s", diff)
	}
}

type indexRecorder struct {
	model.NopVisitor
	got []string
}

func (r *indexRecorder) VisitStart(name string, index int, e model.Element) {
	r.got = append(r.got, name+"#"+itoa(index))
}

func itoa(i int) string {
	if i < 0 {
		return "-"
	}
	return string(rune('0' + i))
}

func TestWalkSkipsAbsent(t *testing.T) {
	mk, err := r4.NewMedicationKnowledgeBuilder().
		Status("active").
		Synonym("a", "b").
		Build(model.Unchecked)
	require.NoError(t, err)

	r := &indexRecorder{}
	model.Walk(r, mk)
	assert.Equal(t, []string{"MedicationKnowledge#-", "status#-", "synonym#0", "synonym#1"}, r.got)
}

func TestFieldValues(t *testing.T) {
	var absent *r4.String
	f := model.One("name", absent)
	assert.False(t, f.Present())
	assert.Nil(t, f.Value)

	list := model.Many("alias", []*r4.String{r4.NewString("x"), nil})
	require.True(t, list.Present())
	require.Len(t, list.Values, 2)
	assert.Nil(t, list.Values[1])

	assert.False(t, model.Many("empty", []*r4.String(nil)).Present())
	assert.True(t, model.AnyPresent([]model.Field{f, list}))
	assert.False(t, model.AnyPresent([]model.Field{f}))

	mk, err := r4.NewMedicationKnowledgeBuilder().Status("active").Build(model.Unchecked)
	require.NoError(t, err)
	got, ok := model.Lookup(mk, "status")
	require.True(t, ok)
	assert.True(t, got.Present())
	_, ok = model.Lookup(mk, "nope")
	assert.False(t, ok)
}

func precondition(t *testing.T, fn func()) *model.PreconditionError {
	t.Helper()
	var pe *model.PreconditionError
	func() {
		defer func() {
			r := recover()
			require.NotNil(t, r, "expected a precondition panic")
			err, ok := r.(error)
			require.True(t, ok)
			require.True(t, errors.As(err, &pe))
		}()
		fn()
	}()
	return pe
}

func TestBuilderHelpers(t *testing.T) {
	a, b := r4.NewString("a"), r4.NewString("b")

	assert.Equal(t, []*r4.String{a, b}, model.Append("alias", []*r4.String{a}, b))

	pe := precondition(t, func() { model.Append("alias", nil, a, nil) })
	assert.Equal(t, "alias", pe.Field)
	assert.Contains(t, pe.Reason, "position 1")

	pe = precondition(t, func() { model.Replace[*r4.String]("alias", nil) })
	assert.Equal(t, "absent collection", pe.Reason)

	precondition(t, func() { model.Replace("alias", []*r4.String{nil}) })

	src := []*r4.String{a}
	cp := model.Replace("alias", src)
	src[0] = b
	assert.Same(t, a, cp[0])

	assert.Nil(t, model.Convert[*r4.String, model.Element](nil, func(s *r4.String) model.Element { return s }))

	var typedNil *r4.String
	pe = precondition(t, func() { model.Append[model.Element]("alias", nil, a, typedNil) })
	assert.Contains(t, pe.Reason, "position 1")
	precondition(t, func() { model.Replace("alias", []model.Element{typedNil}) })
}

func TestIsAbsent(t *testing.T) {
	var typedNil *r4.String
	tests := []struct {
		name string
		v    any
		want bool
	}{
		{"nil", nil, true},
		{"typed nil pointer", typedNil, true},
		{"typed nil in interface", model.Element(typedNil), true},
		{"present", r4.NewString("x"), false},
		{"non-pointer", "x", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, model.IsAbsent(tt.v))
		})
	}
}

type fixedValidator struct{ res *issue.Result }

func (v fixedValidator) Validate(model.Element) *issue.Result { return v.res }

func TestFinish(t *testing.T) {
	s := r4.NewString("x")

	got, err := model.Finish(model.Unchecked, s)
	require.NoError(t, err)
	assert.Same(t, s, got)

	got, err = model.Finish[*r4.String](nil, s)
	require.NoError(t, err)
	assert.Same(t, s, got)

	warn := issue.NewResult()
	warn.AddWarning(issue.CodeInvalid, "just a warning")
	_, err = model.Finish(fixedValidator{warn}, s)
	require.NoError(t, err)

	bad := issue.NewResult()
	bad.AddError(issue.CodeRequired, "missing")
	got, err = model.Finish(fixedValidator{bad}, s)
	require.Error(t, err)
	assert.Nil(t, got)
	assert.True(t, errors.Is(err, issue.ErrValidation))

	var verr *issue.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "string", verr.Type)
	assert.Same(t, bad, verr.Result)
}

func TestEqualAndHash(t *testing.T) {
	build := func(id string, synonyms ...string) *r4.MedicationKnowledge {
		b := r4.NewMedicationKnowledgeBuilder().Status("active").Synonym(synonyms...)
		if id != "" {
			b.ID(id)
		}
		mk, err := b.Build(model.Unchecked)
		require.NoError(t, err)
		return mk
	}

	a, b := build("x", "one", "two"), build("x", "one", "two")
	assert.True(t, model.Equal(a, b))
	assert.Equal(t, model.Hash(a), model.Hash(b))
	assert.True(t, model.Equal(a, b), "equal after hashes are memoized")

	tests := []struct {
		name  string
		other *r4.MedicationKnowledge
	}{
		{"different id", build("y", "one", "two")},
		{"no id", build("", "one", "two")},
		{"order matters", build("x", "two", "one")},
		{"shorter list", build("x", "one")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.False(t, model.Equal(a, tt.other))
			assert.NotEqual(t, model.Hash(a), model.Hash(tt.other))
		})
	}

	ext, err := r4.NewExtensionBuilder("http://example.org/flag").Value(r4.NewBoolean(true)).Build(model.Unchecked)
	require.NoError(t, err)
	withExt, err := a.ToBuilder().Extension(ext).Build(model.Unchecked)
	require.NoError(t, err)
	assert.False(t, model.Equal(a, withExt))

	assert.True(t, model.Equal(nil, nil))
	assert.False(t, model.Equal(a, nil))
	assert.Equal(t, uint64(0), model.Hash(nil))
}

func TestHashConcurrentFirstUse(t *testing.T) {
	mk, err := r4.NewMedicationKnowledgeBuilder().Status("active").Synonym("a").Build(model.Unchecked)
	require.NoError(t, err)
	fresh, err := mk.ToBuilder().Build(model.Unchecked)
	require.NoError(t, err)

	const n = 32
	sums := make([]uint64, n)
	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sums[i] = model.Hash(mk)
		}()
	}
	wg.Wait()

	for _, s := range sums {
		assert.Equal(t, model.Hash(fresh), s)
	}
}

func TestReferenceTarget(t *testing.T) {
	inner, err := r4.NewMedicationKnowledgeBuilder().ID("m1").Status("active").Build(model.Unchecked)
	require.NoError(t, err)
	contained := []model.Resource{inner}

	tests := []struct {
		name     string
		target   model.ReferenceTarget
		kind     string
		ok       bool
		fragment bool
	}{
		{"annotation", model.ReferenceTarget{Literal: "x", Type: "Organization"}, "Organization", true, false},
		{"annotation url", model.ReferenceTarget{Type: "http://hl7.org/fhir/StructureDefinition/Patient"}, "Patient", true, false},
		{"contained", model.ReferenceTarget{Literal: "#m1"}, "MedicationKnowledge", true, true},
		{"missing fragment", model.ReferenceTarget{Literal: "#m2"}, "", false, true},
		{"container", model.ReferenceTarget{Literal: "#"}, "", false, true},
		{"opaque", model.ReferenceTarget{Literal: "Patient/1"}, "", false, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			kind, ok := tt.target.Kind(contained)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.kind, kind)
			assert.Equal(t, tt.fragment, tt.target.IsFragment())
		})
	}

	assert.Same(t, inner, model.ReferenceTarget{Literal: "#m1"}.ContainedTarget(contained))
	assert.Equal(t, "Organization", model.KindName("Organization"))
}

func TestHasContent(t *testing.T) {
	assert.False(t, newNode("empty").HasContent())
	assert.True(t, newNode("parent", newNode("child")).HasContent())

	withID := &node{Base: model.NewBase(strPtr("n1"), nil)}
	assert.True(t, withID.HasContent())
}

func strPtr(s string) *string { return &s }
