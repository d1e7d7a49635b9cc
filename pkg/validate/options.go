package validate

import (
	"time"

	"github.com/gofhir/catalog/pkg/issue"
	"github.com/gofhir/catalog/pkg/logger"
	"github.com/gofhir/catalog/pkg/terminology"
)

// Option configures the Engine.
type Option func(*Options)

// AdvisoryHandler receives every warning and information issue of a
// validation that went through Validate.
type AdvisoryHandler func(root string, i issue.Issue)

// Options holds the Engine configuration.
type Options struct {
	// Terminology answers binding checks. Nil means the built-in
	// in-memory provider while ValidateTerminology is set.
	Terminology        terminology.Provider
	TerminologyTimeout time.Duration

	ValidateConstraints bool
	ValidateReferences  bool
	ValidateTerminology bool
	ValidateFormats     bool

	// StrictMode promotes warnings to errors, so they block builds.
	StrictMode bool
	// MaxErrors stops a validation after that many errors; 0 is unlimited.
	MaxErrors int

	ExpressionCacheSize  int
	TerminologyCacheSize int

	Logger   *logger.Logger
	Advisory AdvisoryHandler
}

// DefaultOptions returns the default configuration: every check enabled,
// the built-in in-memory terminology behind an LRU.
func DefaultOptions() *Options {
	return &Options{
		TerminologyTimeout: 2 * time.Second,

		ValidateConstraints: true,
		ValidateReferences:  true,
		ValidateTerminology: true,
		ValidateFormats:     true,

		ExpressionCacheSize:  512,
		TerminologyCacheSize: 1024,
	}
}

// WithTerminology sets the terminology provider. The engine wraps it in a
// terminology.Cached unless it already is one.
func WithTerminology(p terminology.Provider) Option {
	return func(o *Options) {
		o.Terminology = p
		o.ValidateTerminology = p != nil
	}
}

// WithTerminologyTimeout bounds each provider call.
func WithTerminologyTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.TerminologyTimeout = d
	}
}

// WithConstraints enables structural constraint evaluation.
func WithConstraints(enable bool) Option {
	return func(o *Options) {
		o.ValidateConstraints = enable
	}
}

// WithReferences enables reference target checks.
func WithReferences(enable bool) Option {
	return func(o *Options) {
		o.ValidateReferences = enable
	}
}

// WithBindings enables terminology binding checks.
func WithBindings(enable bool) Option {
	return func(o *Options) {
		o.ValidateTerminology = enable
	}
}

// WithFormats enables lexical checks of primitive values, logical ids and
// content languages.
func WithFormats(enable bool) Option {
	return func(o *Options) {
		o.ValidateFormats = enable
	}
}

// WithStrictMode treats warnings as errors.
func WithStrictMode(enable bool) Option {
	return func(o *Options) {
		o.StrictMode = enable
	}
}

// WithMaxErrors sets the maximum number of errors before stopping
// validation. Use 0 for unlimited.
func WithMaxErrors(maxErrors int) Option {
	return func(o *Options) {
		o.MaxErrors = maxErrors
	}
}

// WithExpressionCache sets the FHIRPath expression cache size.
func WithExpressionCache(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.ExpressionCacheSize = size
		}
	}
}

// WithTerminologyCache sets the membership cache size.
func WithTerminologyCache(size int) Option {
	return func(o *Options) {
		if size > 0 {
			o.TerminologyCacheSize = size
		}
	}
}

// WithLogger sets the logger. Defaults to logger.Default().
func WithLogger(l *logger.Logger) Option {
	return func(o *Options) {
		o.Logger = l
	}
}

// WithAdvisoryHandler sets the callback receiving advisories.
func WithAdvisoryHandler(h AdvisoryHandler) Option {
	return func(o *Options) {
		o.Advisory = h
	}
}

// StructuralOptions returns options that check shape only: no terminology
// and no constraints.
func StructuralOptions() []Option {
	return []Option{
		WithBindings(false),
		WithConstraints(false),
	}
}
