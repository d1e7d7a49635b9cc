package model

// CodeValue is one coded value as seen by terminology checks.
type CodeValue struct {
	System  string
	Code    string
	Display string
}

// Coded is implemented by elements that can be bound to a value set: codes,
// codings and concepts. A concept yields one CodeValue per coding and is a
// member of a value set when any of them is.
type Coded interface {
	Element
	Codings() []CodeValue
}
