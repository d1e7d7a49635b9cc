package model

// Field is one entry of a node's field table.
type Field struct {
	Name string
	// Value holds a singular field; nil when absent.
	Value Element
	// Values holds a repeated field. Absent members stay nil so the
	// non-null check can report them.
	Values   []Element
	Repeated bool
	// Choice marks a polymorphic field whose alternatives are listed in
	// the field table.
	Choice bool
}

// Present reports whether a singular field is set or a repeated field has
// at least one member.
func (f Field) Present() bool {
	if f.Repeated {
		return len(f.Values) > 0
	}
	return f.Value != nil
}

// One describes a singular field backed by a pointer.
func One[T any, P interface {
	*T
	Element
}](name string, p P) Field {
	return Field{Name: name, Value: Elem(p)}
}

// OneOf describes a singular field backed by an interface value.
func OneOf(name string, e Element) Field {
	return Field{Name: name, Value: e}
}

// ChoiceOf describes a polymorphic field.
func ChoiceOf(name string, e Element) Field {
	return Field{Name: name, Value: e, Choice: true}
}

// Many describes a repeated field of pointers.
func Many[T any, P interface {
	*T
	Element
}](name string, list []P) Field {
	f := Field{Name: name, Repeated: true}
	if len(list) > 0 {
		f.Values = make([]Element, len(list))
		for i, p := range list {
			f.Values[i] = Elem(p)
		}
	}
	return f
}

// ManyOf describes a repeated field whose members are interface values.
func ManyOf[E Element](name string, list []E) Field {
	f := Field{Name: name, Repeated: true}
	if len(list) > 0 {
		f.Values = make([]Element, len(list))
		for i, e := range list {
			f.Values[i] = e
		}
	}
	return f
}

// AnyPresent reports whether at least one field is present.
func AnyPresent(fields []Field) bool {
	for _, f := range fields {
		if f.Present() {
			return true
		}
	}
	return false
}

// Lookup returns the field called name.
func Lookup(e Element, name string) (Field, bool) {
	for _, f := range e.Fields() {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
