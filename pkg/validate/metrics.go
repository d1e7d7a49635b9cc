package validate

import (
	"sync/atomic"
	"time"

	"github.com/gofhir/catalog/pkg/issue"
)

// Metrics tracks engine activity with atomic counters. All methods are
// safe for concurrent use.
type Metrics struct {
	validationsTotal atomic.Uint64
	validationsValid atomic.Uint64

	validationTimeTotal atomic.Uint64
	validationTimeMin   atomic.Uint64
	validationTimeMax   atomic.Uint64

	errorsTotal   atomic.Uint64
	warningsTotal atomic.Uint64
	infosTotal    atomic.Uint64

	terminologyCalls    atomic.Uint64
	terminologyFailures atomic.Uint64
}

// NewMetrics creates a new Metrics instance.
func NewMetrics() *Metrics {
	m := &Metrics{}
	m.validationTimeMin.Store(^uint64(0))
	return m
}

// RecordValidation records a completed validation and its issues.
func (m *Metrics) RecordValidation(duration time.Duration, res *issue.Result) {
	m.validationsTotal.Add(1)
	if !res.HasErrors() {
		m.validationsValid.Add(1)
	}
	for _, i := range res.Issues {
		m.RecordIssue(i.Severity)
	}

	ns := uint64(duration.Nanoseconds()) //nolint:gosec // durations are positive
	m.validationTimeTotal.Add(ns)
	for {
		old := m.validationTimeMin.Load()
		if ns >= old || m.validationTimeMin.CompareAndSwap(old, ns) {
			break
		}
	}
	for {
		old := m.validationTimeMax.Load()
		if ns <= old || m.validationTimeMax.CompareAndSwap(old, ns) {
			break
		}
	}
}

// RecordIssue records an issue based on severity.
func (m *Metrics) RecordIssue(severity issue.Severity) {
	switch severity {
	case issue.SeverityError, issue.SeverityFatal:
		m.errorsTotal.Add(1)
	case issue.SeverityWarning:
		m.warningsTotal.Add(1)
	case issue.SeverityInformation:
		m.infosTotal.Add(1)
	}
}

// RecordTerminologyCall records one provider call.
func (m *Metrics) RecordTerminologyCall(failed bool) {
	m.terminologyCalls.Add(1)
	if failed {
		m.terminologyFailures.Add(1)
	}
}

// ValidationsTotal returns the number of validations performed.
func (m *Metrics) ValidationsTotal() uint64 { return m.validationsTotal.Load() }

// ValidationsValid returns the number of validations without errors.
func (m *Metrics) ValidationsValid() uint64 { return m.validationsValid.Load() }

// ValidationsFailed returns the number of validations with errors.
func (m *Metrics) ValidationsFailed() uint64 {
	return m.validationsTotal.Load() - m.validationsValid.Load()
}

// ValidationRate returns the share of validations without errors.
func (m *Metrics) ValidationRate() float64 {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return float64(m.validationsValid.Load()) / float64(total)
}

// AverageValidationTime returns the mean validation duration.
func (m *Metrics) AverageValidationTime() time.Duration {
	total := m.validationsTotal.Load()
	if total == 0 {
		return 0
	}
	return time.Duration(m.validationTimeTotal.Load() / total) //nolint:gosec // nanoseconds within int64
}

// MinValidationTime returns the shortest validation duration.
func (m *Metrics) MinValidationTime() time.Duration {
	v := m.validationTimeMin.Load()
	if v == ^uint64(0) {
		return 0
	}
	return time.Duration(v) //nolint:gosec // nanoseconds within int64
}

// MaxValidationTime returns the longest validation duration.
func (m *Metrics) MaxValidationTime() time.Duration {
	return time.Duration(m.validationTimeMax.Load()) //nolint:gosec // nanoseconds within int64
}

// ErrorsTotal returns the number of error issues found.
func (m *Metrics) ErrorsTotal() uint64 { return m.errorsTotal.Load() }

// WarningsTotal returns the number of warning issues found.
func (m *Metrics) WarningsTotal() uint64 { return m.warningsTotal.Load() }

// InfosTotal returns the number of information issues found.
func (m *Metrics) InfosTotal() uint64 { return m.infosTotal.Load() }

// TerminologyCalls returns the number of membership lookups made by binding
// checks.
func (m *Metrics) TerminologyCalls() uint64 { return m.terminologyCalls.Load() }

// TerminologyFailures returns the number of provider calls that failed.
func (m *Metrics) TerminologyFailures() uint64 { return m.terminologyFailures.Load() }

// Reset zeroes every counter.
func (m *Metrics) Reset() {
	m.validationsTotal.Store(0)
	m.validationsValid.Store(0)
	m.validationTimeTotal.Store(0)
	m.validationTimeMin.Store(^uint64(0))
	m.validationTimeMax.Store(0)
	m.errorsTotal.Store(0)
	m.warningsTotal.Store(0)
	m.infosTotal.Store(0)
	m.terminologyCalls.Store(0)
	m.terminologyFailures.Store(0)
}
