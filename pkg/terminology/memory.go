package terminology

import (
	"context"
	"fmt"
	"regexp"
	"sync"

	"github.com/gofhir/fhir/r4"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/pkg/schema"
)

// InMemory is a Provider over locally loaded ValueSets and CodeSystems.
// Filters in a value set compose are expanded lazily on first use.
type InMemory struct {
	mu          sync.RWMutex
	valueSets   map[string]*valueSetData
	codeSystems map[string]*codeSystemData
}

type valueSetData struct {
	url      string
	codes    map[string]map[string]codeEntry // system -> code -> entry
	wildcard map[string]bool                 // external systems included whole
	filters  []pendingFilter
	expanded bool
}

type codeSystemData struct {
	url      string
	codes    map[string]codeEntry
	parents  map[string][]string
	children map[string][]string
}

type codeEntry struct {
	code    string
	display string
	system  string
}

type pendingFilter struct {
	system   string
	property string
	op       string
	value    string
}

const opIncludeAll = "include-all"

func newValueSetData(url string) *valueSetData {
	return &valueSetData{
		url:      url,
		codes:    make(map[string]map[string]codeEntry),
		wildcard: make(map[string]bool),
	}
}

func (vs *valueSetData) add(e codeEntry) {
	if vs.codes[e.system] == nil {
		vs.codes[e.system] = make(map[string]codeEntry)
	}
	vs.codes[e.system][e.code] = e
}

// NewInMemory creates a provider preloaded with the code systems and value
// sets the catalogue binds to.
func NewInMemory() *InMemory {
	s := NewEmpty()
	s.loadBuiltins()
	return s
}

// NewEmpty creates a provider with nothing loaded.
func NewEmpty() *InMemory {
	return &InMemory{
		valueSets:   make(map[string]*valueSetData),
		codeSystems: make(map[string]*codeSystemData),
	}
}

// LoadValueSet loads an R4 ValueSet. The expansion is used when present,
// otherwise the compose.
func (s *InMemory) LoadValueSet(vs *r4.ValueSet) error {
	if vs == nil || vs.Url == nil {
		return fmt.Errorf("valueset is nil or has no URL")
	}

	data := newValueSetData(*vs.Url)
	if vs.Expansion != nil {
		for i := range vs.Expansion.Contains {
			extractContains(&vs.Expansion.Contains[i], data)
		}
		data.expanded = true
	}
	if vs.Compose != nil && !data.expanded {
		extractCompose(vs.Compose, data)
	}

	s.mu.Lock()
	s.valueSets[data.url] = data
	s.mu.Unlock()
	return nil
}

// LoadCodeSystem loads an R4 CodeSystem, including its concept hierarchy.
func (s *InMemory) LoadCodeSystem(cs *r4.CodeSystem) error {
	if cs == nil || cs.Url == nil {
		return fmt.Errorf("codesystem is nil or has no URL")
	}

	data := &codeSystemData{
		url:      *cs.Url,
		codes:    make(map[string]codeEntry),
		parents:  make(map[string][]string),
		children: make(map[string][]string),
	}
	extractConcepts(cs.Concept, "", data)
	for code, parents := range data.parents {
		for _, p := range parents {
			data.children[p] = append(data.children[p], code)
		}
	}

	s.mu.Lock()
	s.codeSystems[data.url] = data
	s.mu.Unlock()
	return nil
}

// AddCodeSystem registers a flat code system: code -> display.
func (s *InMemory) AddCodeSystem(url string, codes map[string]string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addCodeSystem(url, codes)
}

func (s *InMemory) addCodeSystem(url string, codes map[string]string) {
	data := &codeSystemData{
		url:      url,
		codes:    make(map[string]codeEntry, len(codes)),
		parents:  make(map[string][]string),
		children: make(map[string][]string),
	}
	for code, display := range codes {
		data.codes[code] = codeEntry{code: code, display: display, system: url}
	}
	s.codeSystems[url] = data
}

// AddValueSet registers a value set listing codes of one system.
func (s *InMemory) AddValueSet(url, system string, codes map[string]string) {
	data := newValueSetData(url)
	for code, display := range codes {
		data.add(codeEntry{code: code, display: display, system: system})
	}
	data.expanded = true

	s.mu.Lock()
	s.valueSets[url] = data
	s.mu.Unlock()
}

// IncludeSystems registers a value set including every code of the given
// systems. External systems accept any code.
func (s *InMemory) IncludeSystems(url string, systems ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.includeSystems(url, systems...)
}

func (s *InMemory) includeSystems(url string, systems ...string) {
	data := newValueSetData(url)
	for _, system := range systems {
		if IsExternalSystem(system) {
			data.wildcard[system] = true
			continue
		}
		data.filters = append(data.filters, pendingFilter{system: system, op: opIncludeAll})
	}
	s.valueSets[url] = data
}

// MemberOf implements Provider. A code without a system matches any system
// of the value set.
func (s *InMemory) MemberOf(ctx context.Context, valueSet string, _ schema.BindingStrength, c model.CodeValue) (member, found bool, err error) {
	if err := ctx.Err(); err != nil {
		return false, false, err
	}
	valueSet = stripVersion(valueSet)
	if !s.ensureExpanded(valueSet) {
		return false, false, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	vs := s.valueSets[valueSet]
	if c.Code == "" {
		return false, true, nil
	}
	if c.System != "" {
		if vs.wildcard[c.System] {
			return true, true, nil
		}
		_, ok := vs.codes[c.System][c.Code]
		return ok, true, nil
	}
	if len(vs.wildcard) > 0 {
		return true, true, nil
	}
	for _, codes := range vs.codes {
		if _, ok := codes[c.Code]; ok {
			return true, true, nil
		}
	}
	return false, true, nil
}

// Lookup returns the display of code in a loaded code system.
func (s *InMemory) Lookup(system, code string) (display string, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	cs, found := s.codeSystems[system]
	if !found {
		return "", false
	}
	e, ok := cs.codes[code]
	return e.display, ok
}

// HasValueSet reports whether url is loaded.
func (s *InMemory) HasValueSet(url string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.valueSets[stripVersion(url)]
	return ok
}

// CountValueSets returns the number of loaded ValueSets.
func (s *InMemory) CountValueSets() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.valueSets)
}

// CountCodeSystems returns the number of loaded CodeSystems.
func (s *InMemory) CountCodeSystems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.codeSystems)
}

// ensureExpanded expands pending filters of a value set once, with
// double-checked locking. It reports whether the value set is known.
func (s *InMemory) ensureExpanded(url string) bool {
	s.mu.RLock()
	vs, ok := s.valueSets[url]
	if !ok {
		s.mu.RUnlock()
		return false
	}
	if vs.expanded || len(vs.filters) == 0 {
		s.mu.RUnlock()
		return true
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	vs, ok = s.valueSets[url]
	if !ok {
		return false
	}
	if vs.expanded {
		return true
	}
	for _, f := range vs.filters {
		cs, ok := s.codeSystems[f.system]
		if !ok {
			continue
		}
		s.applyFilter(vs, cs, f)
	}
	vs.expanded = true
	return true
}

func (s *InMemory) applyFilter(vs *valueSetData, cs *codeSystemData, f pendingFilter) {
	switch {
	case f.op == opIncludeAll:
		for _, e := range cs.codes {
			vs.add(e)
		}
	case f.property == "concept" && (f.op == "descendent-of" || f.op == "is-a"):
		for _, code := range descendants(cs, f.value, f.op == "is-a") {
			if e, ok := cs.codes[code]; ok {
				vs.add(e)
			}
		}
	case f.property == "code" && f.op == "regex":
		re, err := regexp.Compile("^(?:" + f.value + ")$")
		if err != nil {
			return
		}
		for code, e := range cs.codes {
			if re.MatchString(code) {
				vs.add(e)
			}
		}
	case f.property == "code" && f.op == "=":
		if e, ok := cs.codes[f.value]; ok {
			vs.add(e)
		}
	}
}

// descendants walks the hierarchy below start. Abstract codes (leading
// underscore) are skipped.
func descendants(cs *codeSystemData, start string, includeSelf bool) []string {
	var out []string
	seen := make(map[string]bool)
	var collect func(code string)
	collect = func(code string) {
		if seen[code] {
			return
		}
		seen[code] = true
		if (includeSelf || code != start) && (code == "" || code[0] != '_') {
			out = append(out, code)
		}
		for _, child := range cs.children[code] {
			collect(child)
		}
	}
	collect(start)
	return out
}

func extractContains(c *r4.ValueSetExpansionContains, vs *valueSetData) {
	if c.Code != nil && c.System != nil {
		vs.add(codeEntry{code: *c.Code, display: deref(c.Display), system: *c.System})
	}
	for i := range c.Contains {
		extractContains(&c.Contains[i], vs)
	}
}

func extractCompose(compose *r4.ValueSetCompose, vs *valueSetData) {
	for i := range compose.Include {
		inc := &compose.Include[i]
		if inc.System == nil {
			continue
		}
		system := *inc.System
		for j := range inc.Concept {
			c := &inc.Concept[j]
			if c.Code == nil {
				continue
			}
			vs.add(codeEntry{code: *c.Code, display: deref(c.Display), system: system})
		}
		for _, f := range inc.Filter {
			if f.Property == nil || f.Op == nil || f.Value == nil {
				continue
			}
			vs.filters = append(vs.filters, pendingFilter{
				system:   system,
				property: *f.Property,
				op:       string(*f.Op),
				value:    *f.Value,
			})
		}
		if len(inc.Concept) == 0 && len(inc.Filter) == 0 {
			if IsExternalSystem(system) {
				vs.wildcard[system] = true
				continue
			}
			vs.filters = append(vs.filters, pendingFilter{system: system, op: opIncludeAll})
		}
	}
}

func extractConcepts(concepts []r4.CodeSystemConcept, parent string, cs *codeSystemData) {
	for i := range concepts {
		c := &concepts[i]
		if c.Code == nil {
			continue
		}
		code := *c.Code
		cs.codes[code] = codeEntry{code: code, display: deref(c.Display), system: cs.url}
		if parent != "" {
			cs.parents[code] = append(cs.parents[code], parent)
		}
		for _, p := range c.Property {
			if p.Code != nil && *p.Code == "subsumedBy" && p.ValueCode != nil {
				cs.parents[code] = append(cs.parents[code], *p.ValueCode)
			}
		}
		extractConcepts(c.Concept, code, cs)
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

var _ Provider = (*InMemory)(nil)
