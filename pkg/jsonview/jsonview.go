// Package jsonview projects element trees into the FHIR JSON shape.
//
// The projection is driven by the visitor protocol only. It feeds the
// FHIRPath constraint evaluator and gives callers a debug view of a tree;
// it is not a complete wire codec (there is no decoder).
package jsonview

import (
	"encoding/json"
	"fmt"

	"github.com/iancoleman/strcase"

	"github.com/gofhir/catalog/model"
)

// Project returns the JSON object for e. A primitive root projects to
// {"value": ...} plus its id and extensions.
func Project(e model.Element) map[string]any {
	if e == nil {
		return nil
	}
	p := &projector{}
	model.Walk(p, e)
	return p.root
}

// Marshal encodes e as FHIR-shaped JSON.
func Marshal(e model.Element) ([]byte, error) {
	if e == nil {
		return nil, fmt.Errorf("jsonview: nil element")
	}
	return json.Marshal(Project(e))
}

// ChoiceKey returns the JSON property of a choice field holding a value of
// typeName: ("value", "Quantity") gives "valueQuantity".
func ChoiceKey(field, typeName string) string {
	return field + strcase.ToCamel(typeName)
}

type frame struct {
	elem    model.Element
	obj     map[string]any
	under   map[string][]any // parallel "_name" arrays of repeated primitives
	choices map[string]bool
}

func newFrame(e model.Element) *frame {
	f := &frame{elem: e, obj: make(map[string]any)}
	for _, fd := range e.Fields() {
		if fd.Choice {
			if f.choices == nil {
				f.choices = make(map[string]bool)
			}
			f.choices[fd.Name] = true
		}
	}
	return f
}

type projector struct {
	model.NopVisitor
	stack []*frame
	root  map[string]any
}

func (p *projector) VisitStart(_ string, _ int, e model.Element) {
	p.stack = append(p.stack, newFrame(e))
}

func (p *projector) VisitEnd(name string, index int, e model.Element) {
	f := p.stack[len(p.stack)-1]
	p.stack = p.stack[:len(p.stack)-1]

	if len(p.stack) == 0 {
		p.root = f.finishRoot()
		return
	}
	parent := p.stack[len(p.stack)-1]
	key := name
	if parent.choices[name] {
		key = ChoiceKey(name, e.TypeName())
	}
	if prim, ok := e.(model.Primitive); ok {
		value, meta := f.finishPrimitive(prim)
		parent.attachPrimitive(key, index, value, meta)
		return
	}
	parent.attach(key, index, f.finishComposite())
}

func (f *frame) attach(key string, index int, v any) {
	if index < 0 {
		f.obj[key] = v
		return
	}
	list, _ := f.obj[key].([]any)
	f.obj[key] = append(list, v)
}

func (f *frame) attachPrimitive(key string, index int, value any, meta map[string]any) {
	if index < 0 {
		if value != nil {
			f.obj[key] = value
		}
		if meta != nil {
			f.obj["_"+key] = meta
		}
		return
	}
	list, _ := f.obj[key].([]any)
	f.obj[key] = append(list, value)
	if f.under == nil {
		f.under = make(map[string][]any)
	}
	var m any
	if meta != nil {
		m = meta
	}
	f.under[key] = append(f.under[key], m)
}

func (f *frame) flushUnder() {
	for key, list := range f.under {
		for _, m := range list {
			if m != nil {
				f.obj["_"+key] = list
				break
			}
		}
	}
}

func (f *frame) finishComposite() map[string]any {
	f.flushUnder()
	if id, ok := f.elem.ElementID(); ok {
		f.obj["id"] = id
	}
	if ext, ok := f.elem.(model.Extension); ok {
		f.obj["url"] = ext.ExtensionURL()
	}
	if r, ok := f.elem.(model.Resource); ok {
		f.obj["resourceType"] = r.ResourceType()
	}
	return f.obj
}

// finishPrimitive splits a primitive into its JSON value and the "_name"
// object carrying id and extensions.
func (f *frame) finishPrimitive(p model.Primitive) (any, map[string]any) {
	var value any
	if lit, ok := p.Literal(); ok {
		value = literal(p.Kind(), lit)
	}
	meta := f.obj
	if id, ok := p.ElementID(); ok {
		meta["id"] = id
	}
	if len(meta) == 0 {
		meta = nil
	}
	return value, meta
}

func (f *frame) finishRoot() map[string]any {
	if p, ok := f.elem.(model.Primitive); ok {
		value, meta := f.finishPrimitive(p)
		out := make(map[string]any, len(meta)+1)
		for k, v := range meta {
			out[k] = v
		}
		if value != nil {
			out["value"] = value
		}
		return out
	}
	return f.finishComposite()
}

func literal(kind model.PrimitiveKind, lit string) any {
	switch kind {
	case model.KindBoolean:
		return lit == "true"
	case model.KindNumber:
		return json.Number(lit)
	}
	return lit
}
