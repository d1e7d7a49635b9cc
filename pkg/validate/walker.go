package validate

import (
	"context"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/text/language"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/issue"
	"github.com/gofhir/catalog/pkg/schema"
)

var (
	logicalIDPattern = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	oidPattern       = regexp.MustCompile(`^[0-2](\.(0|[1-9][0-9]*))+$`)
	kindPattern      = regexp.MustCompile(`^[A-Z][A-Za-z]+$`)
)

// frame is one node on the traversal stack.
type frame struct {
	path string
	typ  *schema.Type
	// tpath is the element path of the node's own field table within typ.
	tpath string
}

// walker carries the state of a single validation.
type walker struct {
	model.NopVisitor
	engine    *Engine
	res       *issue.Result
	container model.Resource
	stack     []frame
	unknown   map[string]bool
	errors    int
	stopped   bool
}

func (w *walker) PreVisit(model.Element) bool { return !w.stopped }

func (w *walker) Visit(name string, index int, e model.Element) bool {
	var path string
	var def *schema.Element
	typ, tpath := w.engine.resolve(e)

	if len(w.stack) == 0 {
		path = name
		if typ != nil {
			def, _ = typ.Element(tpath)
		}
	} else {
		parent := w.stack[len(w.stack)-1]
		path = childPath(parent.path, name, index)
		if parent.typ != nil {
			def, _ = parent.typ.Child(parent.tpath, name)
		}
	}
	w.stack = append(w.stack, frame{path: path, typ: typ, tpath: tpath})

	if typ == nil {
		w.unknownType(e.TypeName(), path)
	}
	w.checkNode(e, typ, tpath, def, path)
	if typ != nil {
		w.checkFields(e, typ, tpath, path)
	}
	return !w.stopped
}

func (w *walker) VisitEnd(string, int, model.Element) {
	w.stack = w.stack[:len(w.stack)-1]
}

// add records i, counting errors against the MaxErrors limit.
func (w *walker) add(i issue.Issue) {
	if w.stopped {
		return
	}
	if i.Severity.IsError() {
		w.errors++
	}
	w.res.AddIssue(i)
	if limit := w.engine.opts.MaxErrors; limit > 0 && w.errors >= limit {
		w.stopped = true
		w.res.Add(issue.DiagResourceTooManyErrors, map[string]any{"max": limit})
	}
}

func (w *walker) addf(id issue.DiagnosticID, params map[string]any, path string) {
	w.add(issue.New(id, params, path))
}

func (w *walker) unknownType(name, path string) {
	if w.unknown == nil {
		w.unknown = make(map[string]bool)
	}
	if w.unknown[name] {
		return
	}
	w.unknown[name] = true
	w.addf(issue.DiagResourceUnknownType, map[string]any{"type": name}, path)
}

// checkNode applies the checks that concern the node itself.
func (w *walker) checkNode(e model.Element, typ *schema.Type, tpath string, def *schema.Element, path string) {
	opts := w.engine.opts

	if !e.HasContent() {
		w.addf(issue.DiagValueOrChildren, map[string]any{"type": e.TypeName()}, path)
	}
	if p, ok := e.(model.Primitive); ok && opts.ValidateFormats && typ != nil && typ.Pattern != "" {
		w.checkFormat(p, typ, path)
	}
	if x, ok := e.(model.Extension); ok {
		w.checkExtension(x, path)
	}
	if def != nil && def.IsChoice() && !def.AllowsType(e.TypeName()) {
		w.addf(issue.DiagChoiceType, map[string]any{
			"type":    e.TypeName(),
			"field":   path,
			"allowed": strings.Join(def.Types, ", "),
		}, path)
	}
	if r, ok := e.(model.Referencer); ok && opts.ValidateReferences && def != nil && !def.SkipTargetCheck {
		w.checkReference(r, def, path)
	}
	if c, ok := e.(model.Coded); ok && def != nil && def.Binding != nil && w.engine.terms != nil {
		w.checkBinding(c, def, path)
	}
	if r, ok := e.(model.Resource); ok {
		w.checkResource(r, path)
	}
	if opts.ValidateConstraints {
		w.checkConstraints(e, typ, tpath, def, path)
	}
}

// checkFields applies presence and cardinality to every declared field.
func (w *walker) checkFields(e model.Element, typ *schema.Type, tpath, path string) {
	for _, f := range e.Fields() {
		def, ok := typ.Child(tpath, f.Name)
		if !ok {
			if f.Present() {
				w.addf(issue.DiagResourceNoFieldTable, map[string]any{"path": tpath + "." + f.Name}, childPath(path, f.Name, -1))
			}
			continue
		}
		fpath := childPath(path, f.Name, -1)
		if !f.Repeated {
			switch {
			case def.Min > 0 && f.Value == nil:
				w.addf(issue.DiagRequired, map[string]any{"field": fpath}, fpath)
			case def.Max == 0 && f.Value != nil:
				w.addf(issue.DiagCardinalityMax, map[string]any{"field": fpath, "count": 1, "max": 0}, fpath)
			}
			continue
		}
		count := len(f.Values)
		if count < def.Min {
			w.addf(issue.DiagListEmpty, map[string]any{"field": fpath, "min": def.Min}, fpath)
		}
		for i, v := range f.Values {
			if v == nil {
				w.addf(issue.DiagListNullElement, map[string]any{"field": fpath, "index": i}, childPath(path, f.Name, i))
			}
		}
		if def.Max != schema.Unbounded && count > def.Max {
			w.addf(issue.DiagCardinalityMax, map[string]any{"field": fpath, "count": count, "max": def.Max}, fpath)
		}
	}
}

func (w *walker) checkFormat(p model.Primitive, typ *schema.Type, path string) {
	lit, ok := p.Literal()
	if !ok {
		return
	}
	re := w.engine.pattern(typ)
	if re != nil && !re.MatchString(lit) {
		w.addf(issue.DiagPrimitiveFormat, map[string]any{"value": lit, "type": typ.Name}, path)
	}
}

func (w *walker) checkExtension(x model.Extension, path string) {
	url := x.ExtensionURL()
	if url == "" {
		w.addf(issue.DiagExtensionNoURL, nil, path)
	}
	if x.ExtensionValue() != nil && len(x.Extensions()) > 0 {
		w.addf(issue.DiagExtensionValueAndNested, map[string]any{"url": url}, path)
	}
}

// checkReference enforces the allowed target kinds. The kind is known from
// an explicit type annotation or a resolved contained fragment; otherwise
// only the literal's kind segment is compared, as a warning.
func (w *walker) checkReference(r model.Referencer, def *schema.Element, path string) {
	t := r.ReferenceTarget()
	var contained []model.Resource
	if w.container != nil {
		contained = w.container.Contained()
	}

	if t.IsFragment() && t.Literal != "#" && t.ContainedTarget(contained) == nil {
		w.addf(issue.DiagReferenceUnresolved, map[string]any{"reference": t.Literal}, path)
	}
	if reason := literalProblem(t.Literal); reason != "" {
		w.addf(issue.DiagReferenceFormat, map[string]any{"reference": t.Literal, "reason": reason}, path)
	}

	allowed := strings.Join(def.Targets, ", ")
	if kind, ok := t.Kind(contained); ok {
		if !def.AllowsTarget(kind) {
			w.addf(issue.DiagReferenceTarget, map[string]any{"field": path, "kind": kind, "allowed": allowed}, path)
		}
		return
	}
	if kind := literalKind(t.Literal); kind != "" && !def.AllowsTarget(kind) {
		w.addf(issue.DiagReferenceKindLiteral, map[string]any{"reference": t.Literal, "kind": kind, "allowed": allowed}, path)
	}
}

// literalProblem describes why a URN literal is malformed, or returns "".
func literalProblem(lit string) string {
	switch {
	case strings.HasPrefix(lit, "urn:uuid:"):
		if _, err := uuid.Parse(strings.TrimPrefix(lit, "urn:uuid:")); err != nil {
			return "invalid UUID"
		}
	case strings.HasPrefix(lit, "urn:oid:"):
		if !oidPattern.MatchString(strings.TrimPrefix(lit, "urn:oid:")) {
			return "invalid OID"
		}
	}
	return ""
}

// literalKind extracts the kind segment of "Kind/id", "Kind/id/_history/v"
// or an absolute URL ending in either. It returns "" for anything else.
func literalKind(lit string) string {
	if lit == "" || strings.HasPrefix(lit, "#") || strings.HasPrefix(lit, "urn:") {
		return ""
	}
	if i := strings.IndexAny(lit, "?#"); i >= 0 {
		lit = lit[:i]
	}
	parts := strings.Split(strings.TrimSuffix(lit, "/"), "/")
	if n := len(parts); n >= 4 && parts[n-2] == "_history" {
		parts = parts[:n-2]
	}
	n := len(parts)
	if n < 2 || parts[n-1] == "" || !kindPattern.MatchString(parts[n-2]) {
		return ""
	}
	return parts[n-2]
}

// checkBinding asks the terminology provider whether any coding of c is in
// the bound value set. Strength decides the severity of a miss.
func (w *walker) checkBinding(c model.Coded, def *schema.Element, path string) {
	b := def.Binding
	if b.ValueSet == "" {
		return
	}
	var codes []model.CodeValue
	for _, cv := range c.Codings() {
		if cv.Code != "" {
			codes = append(codes, cv)
		}
	}
	if len(codes) == 0 {
		return
	}

	ctx := context.Background()
	if d := w.engine.opts.TerminologyTimeout; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	for _, cv := range codes {
		member, found, err := w.engine.terms.MemberOf(ctx, b.ValueSet, b.Strength, cv)
		w.engine.metrics.RecordTerminologyCall(err != nil)
		if err != nil {
			w.engine.log.Warn("terminology lookup in %s failed: %v", b.ValueSet, err)
			w.addf(issue.DiagBindingUnavailable, map[string]any{"valueSet": b.ValueSet, "error": err.Error()}, path)
			return
		}
		if !found {
			if b.Strength == schema.StrengthRequired || b.Strength == schema.StrengthExtensible {
				w.addf(issue.DiagBindingCannotValidate, map[string]any{"valueSet": b.ValueSet, "field": path}, path)
			}
			return
		}
		if member {
			return
		}
	}

	first := codes[0]
	switch b.Strength {
	case schema.StrengthRequired:
		w.addf(issue.DiagBindingRequired, map[string]any{
			"code": first.Code, "system": first.System, "valueSet": b.ValueSet,
		}, path)
	default:
		i := issue.New(issue.DiagBindingNotInValueSet, map[string]any{
			"code": first.Code, "system": first.System, "strength": string(b.Strength), "valueSet": b.ValueSet,
		}, path)
		if b.Strength != schema.StrengthExtensible {
			i.Severity = issue.SeverityInformation
		}
		w.add(i)
	}
}

func (w *walker) checkResource(r model.Resource, path string) {
	if w.engine.opts.ValidateFormats {
		w.checkResourceFormats(r, path)
	}
	for i, c := range r.Contained() {
		if c == nil {
			continue
		}
		cpath := childPath(path, "contained", i)
		if _, ok := c.ResourceID(); !ok {
			w.addf(issue.DiagContainedNoID, map[string]any{"type": c.ResourceType()}, cpath)
		}
		if len(c.Contained()) > 0 {
			w.addf(issue.DiagContainedNested, map[string]any{"type": c.ResourceType()}, cpath)
		}
	}
}

func (w *walker) checkResourceFormats(r model.Resource, path string) {
	if id, ok := r.ResourceID(); ok && !logicalIDPattern.MatchString(id) {
		w.addf(issue.DiagResourceInvalidID, map[string]any{"id": id}, childPath(path, "id", -1))
	}
	l, ok := r.(interface{ Language() model.Element })
	if !ok {
		return
	}
	p, ok := l.Language().(model.Primitive)
	if !ok {
		return
	}
	if tag, ok := p.Literal(); ok {
		if _, err := language.Parse(tag); err != nil {
			w.addf(issue.DiagResourceLanguage, map[string]any{"language": tag}, childPath(path, "language", -1))
		}
	}
}

// checkConstraints runs the constraints declared on the field and, for
// nodes described by a whole table, the table's own constraints.
func (w *walker) checkConstraints(e model.Element, typ *schema.Type, tpath string, def *schema.Element, path string) {
	var cs []schema.Constraint
	if def != nil {
		cs = append(cs, def.Constraints...)
	}
	if typ != nil && tpath == typ.Name {
		if root := typ.Root(); root != def {
			cs = append(cs, root.Constraints...)
		}
	}
	if len(cs) == 0 {
		return
	}
	scratch := issue.NewResult()
	w.engine.checker.Check(e, cs, path, scratch)
	for _, i := range scratch.Issues {
		w.add(i)
	}
}
