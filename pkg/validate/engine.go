// Package validate implements the validation engine behind every builder's
// Build call.
//
// The engine walks a freshly built tree with the visitor protocol and checks
// each node against its field table from a schema.Registry: presence and
// cardinality, absent list members, choice alternatives, reference targets,
// the value-or-children rule, primitive formats, terminology bindings and
// structural constraints. Errors block the build; warnings and information
// issues are advisories delivered to the configured handler.
package validate

import (
	"regexp"
	"strings"
	"time"

	"github.com/gofhir/catalog/model"
	"github.com/gofhir/catalog/model/r4"
	"github.com/gofhir/catalog/pkg/cache"
	"github.com/gofhir/catalog/pkg/constraint"
	"github.com/gofhir/catalog/pkg/issue"
	"github.com/gofhir/catalog/pkg/logger"
	"github.com/gofhir/catalog/pkg/schema"
	"github.com/gofhir/catalog/pkg/terminology"
)

// Engine validates element trees. It is safe for concurrent use; each call
// keeps its own traversal state.
type Engine struct {
	reg      *schema.Registry
	opts     *Options
	log      *logger.Logger
	checker  constraint.Checker
	terms    terminology.Provider
	metrics  *Metrics
	patterns *cache.LRU[string, *regexp.Regexp]
}

// New creates an engine over reg. A nil registry means the catalogue's
// static field tables.
func New(reg *schema.Registry, opts ...Option) *Engine {
	if reg == nil {
		reg = r4.Schemas()
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	e := &Engine{
		reg:      reg,
		opts:     o,
		log:      o.Logger,
		metrics:  NewMetrics(),
		patterns: cache.New[string, *regexp.Regexp](64),
	}
	if e.log == nil {
		e.log = logger.Default()
	}
	if o.ValidateConstraints {
		e.checker.Eval = constraint.NewFHIRPath(o.ExpressionCacheSize)
	}
	if o.ValidateTerminology {
		p := o.Terminology
		if p == nil {
			p = terminology.NewInMemory()
		}
		if _, ok := p.(*terminology.Cached); !ok {
			p = terminology.NewCached(p, o.TerminologyCacheSize)
		}
		e.terms = p
	} else {
		e.log.Debug("terminology binding checks disabled")
	}
	return e
}

// Registry returns the field tables the engine checks against.
func (e *Engine) Registry() *schema.Registry { return e.reg }

// Metrics returns the engine counters.
func (e *Engine) Metrics() *Metrics { return e.metrics }

// Options returns the effective configuration.
func (e *Engine) Options() Options { return *e.opts }

// Validate implements model.Validator. Besides returning the result it
// records metrics, logs advisories and hands them to the advisory handler.
func (e *Engine) Validate(root model.Element) *issue.Result {
	start := time.Now()
	res := e.Check(root)
	e.metrics.RecordValidation(time.Since(start), res)

	name := ""
	if root != nil {
		name = root.TypeName()
	}
	for _, i := range res.Issues {
		if !i.IsAdvisory() {
			continue
		}
		level := logger.LevelWarn
		if i.Severity == issue.SeverityInformation {
			level = logger.LevelInfo
		}
		e.log.Event(level).
			Str("type", name).
			Str("severity", string(i.Severity)).
			Str("path", i.Path()).
			Str("message_id", i.MessageID).
			Msg(i.Diagnostics)
		if e.opts.Advisory != nil {
			e.opts.Advisory(name, i)
		}
	}
	e.log.Event(logger.LevelDebug).
		Str("type", name).
		Int("errors", res.ErrorCount()).
		Int("warnings", res.WarningCount()).
		Int("information", res.InfoCount()).
		Dur("elapsed", time.Since(start)).
		Msg("validated")
	return res
}

// Check runs every enabled check over root and returns all issues, without
// metrics or advisory delivery.
func (e *Engine) Check(root model.Element) *issue.Result {
	res := issue.NewResult()
	if root == nil {
		return res
	}
	w := &walker{engine: e, res: res}
	if r, ok := root.(model.Resource); ok {
		w.container = r
	}
	model.Walk(w, root)
	if e.opts.StrictMode {
		return res.Promote()
	}
	return res
}

// pattern returns the anchored, compiled lexical rule of a primitive type.
func (e *Engine) pattern(t *schema.Type) *regexp.Regexp {
	re, err := e.patterns.GetOrCompute(t.Name+"|"+t.Pattern, func() (*regexp.Regexp, error) {
		return regexp.Compile("^(?:" + t.Pattern + ")$")
	})
	if err != nil {
		e.log.Warn("invalid pattern for %s: %v", t.Name, err)
		return nil
	}
	return re
}

// resolve finds the table and element path describing a node's fields.
// Backbone nodes are described inline in their owner's table under their
// dotted type name.
func (e *Engine) resolve(el model.Element) (*schema.Type, string) {
	name := el.TypeName()
	owner, _, _ := strings.Cut(name, ".")
	t, ok := e.reg.Get(owner)
	if !ok {
		return nil, name
	}
	if _, ok := t.Element(name); !ok {
		return nil, name
	}
	return t, name
}

// TerminologyStats reports the membership cache counters.
func (e *Engine) TerminologyStats() cache.Stats {
	if c, ok := e.terms.(*terminology.Cached); ok {
		return c.Stats()
	}
	return cache.Stats{}
}
