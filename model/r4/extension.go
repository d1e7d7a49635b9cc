package r4

import "github.com/gofhir/catalog/model"

// ExtensionValue is the value[x] of an Extension: any datatype.
type ExtensionValue interface {
	model.Element
	isExtensionValue()
}

// Extension is a url-tagged value or group of nested extensions.
type Extension struct {
	model.Base
	url   string
	value ExtensionValue
}

// URL returns the extension url.
func (e *Extension) URL() string { return e.url }

// Value returns value[x], or nil.
func (e *Extension) Value() ExtensionValue { return e.value }

// ExtensionURL implements model.Extension.
func (e *Extension) ExtensionURL() string { return e.url }

// ExtensionValue implements model.Extension.
func (e *Extension) ExtensionValue() model.Element {
	if e.value == nil {
		return nil
	}
	return e.value
}

func (*Extension) TypeName() string { return "Extension" }

func (e *Extension) Fields() []model.Field {
	return append(e.BaseFields(), model.ChoiceOf("value", e.ExtensionValue()))
}

func (e *Extension) HasContent() bool { return model.HasContent(e) }

func (e *Extension) Accept(v model.Visitor, name string, index int) { model.Accept(v, name, index, e) }

func (e *Extension) Equal(o *Extension) bool { return model.Equal(model.Elem(e), model.Elem(o)) }

// ToBuilder seeds a builder from e.
func (e *Extension) ToBuilder() *ExtensionBuilder {
	b := NewExtensionBuilder(e.url)
	b.base.CopyFrom(&e.Base)
	b.value = e.value
	return b
}

// ExtensionBuilder builds an Extension.
type ExtensionBuilder struct {
	elementBuilder[ExtensionBuilder]
	url   string
	value ExtensionValue
}

// NewExtensionBuilder starts an Extension with the given url.
func NewExtensionBuilder(url string) *ExtensionBuilder {
	b := &ExtensionBuilder{url: url}
	b.self = b
	return b
}

// URL sets the extension url.
func (b *ExtensionBuilder) URL(url string) *ExtensionBuilder {
	b.url = url
	return b
}

// Value sets value[x]; a nil value clears it.
func (b *ExtensionBuilder) Value(v ExtensionValue) *ExtensionBuilder {
	b.value = choice(v)
	return b
}

// Build constructs the Extension and runs v over it.
func (b *ExtensionBuilder) Build(v model.Validator) (*Extension, error) {
	return model.Finish(v, &Extension{Base: b.base.Base(), url: b.url, value: b.value})
}

func extensions(field string, ext []*Extension) []model.Extension {
	model.RequireElements(field, ext...)
	return model.Convert(ext, func(e *Extension) model.Extension { return e })
}

func replaceExtensions(field string, ext []*Extension) []model.Extension {
	return model.Convert(model.Replace(field, ext), func(e *Extension) model.Extension { return e })
}

// choice normalizes a choice value so a typed nil pointer reads as absent.
func choice[C model.Element](v C) C {
	if model.IsAbsent(v) {
		var zero C
		return zero
	}
	return v
}
