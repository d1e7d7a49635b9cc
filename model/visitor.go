package model

// Visitor receives depth-first traversal callbacks. Returning false from
// PreVisit skips the node entirely; returning false from Visit skips its
// children but VisitEnd and PostVisit still run. Repeated fields are
// visited member by member with their index; singular fields use index -1.
type Visitor interface {
	PreVisit(e Element) bool
	VisitStart(name string, index int, e Element)
	Visit(name string, index int, e Element) bool
	VisitEnd(name string, index int, e Element)
	PostVisit(e Element)
}

// NopVisitor visits everything and does nothing. Embed it to override only
// the callbacks you need.
type NopVisitor struct{}

func (NopVisitor) PreVisit(Element) bool           { return true }
func (NopVisitor) VisitStart(string, int, Element) {}
func (NopVisitor) Visit(string, int, Element) bool { return true }
func (NopVisitor) VisitEnd(string, int, Element)   {}
func (NopVisitor) PostVisit(Element)               {}

// Walk traverses root, naming it after its type.
func Walk(v Visitor, root Element) {
	if root == nil {
		return
	}
	root.Accept(v, root.TypeName(), -1)
}

// Accept runs the visitor protocol for e. Concrete types call it from their
// Accept method so that callbacks receive the concrete value.
func Accept(v Visitor, name string, index int, e Element) {
	if !v.PreVisit(e) {
		return
	}
	v.VisitStart(name, index, e)
	if v.Visit(name, index, e) {
		for _, f := range e.Fields() {
			visitField(v, f)
		}
	}
	v.VisitEnd(name, index, e)
	v.PostVisit(e)
}

func visitField(v Visitor, f Field) {
	if !f.Repeated {
		if f.Value != nil {
			f.Value.Accept(v, f.Name, -1)
		}
		return
	}
	for i, e := range f.Values {
		if e != nil {
			e.Accept(v, f.Name, i)
		}
	}
}
